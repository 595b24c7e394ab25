package entities

import "time"

// TestimonialSource records how a testimonial entered the system.

type TestimonialSource string

const (
	TestimonialSourceAdhoc     TestimonialSource = "adhoc"
	TestimonialSourceSolicited TestimonialSource = "solicited"
	TestimonialSourceInternal  TestimonialSource = "internal"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// Testimonial is a single immutable feedback record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (engagement-index): engagementId
//
// Rating and WouldRecommend are pointers so reporting can distinguish
// "not answered" from a zero value.
type Testimonial struct {
	ID                string            `json:"id"`
	EngagementID      string            `json:"engagementId"`
	EngagementName    string            `json:"engagementName"`
	SubmitterName     string            `json:"submitterName"`
	SubmitterEmail    string            `json:"submitterEmail"`
	SubmitterRole     string            `json:"submitterRole"`
	SubmitterTeam     string            `json:"submitterTeam"`
	Rating            *int              `json:"rating,omitempty"`
	TestimonialText   string            `json:"testimonialText"`
	WhatWorkedWell    string            `json:"whatWorkedWell"`
	WhatCouldImprove  string            `json:"whatCouldImprove"`
	WouldRecommend    *bool             `json:"wouldRecommend,omitempty"`
	Source            TestimonialSource `json:"source"`
	SolicitationToken string            `json:"solicitationToken,omitempty"`
	Approved          bool              `json:"approved"`
	Featured          bool              `json:"featured"`
	SubmittedAt       time.Time         `json:"submittedAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// ClampRating forces a rating into the 1-5 scale.
func ClampRating(r int) int {
	if r < RatingMin {
		return RatingMin
	}
	if r > RatingMax {
		return RatingMax
	}
	return r
}
