package response

import (
	"time"

	"pulse_tracker/internal/domain/entities"
)

type TestimonialResponse struct {
	ID                string    `json:"id"`
	EngagementID      string    `json:"engagementId"`
	EngagementName    string    `json:"engagementName"`
	SubmitterName     string    `json:"submitterName"`
	SubmitterEmail    string    `json:"submitterEmail"`
	SubmitterRole     string    `json:"submitterRole"`
	SubmitterTeam     string    `json:"submitterTeam"`
	Rating            *int      `json:"rating"`
	TestimonialText   string    `json:"testimonialText"`
	WhatWorkedWell    string    `json:"whatWorkedWell"`
	WhatCouldImprove  string    `json:"whatCouldImprove"`
	WouldRecommend    *bool     `json:"wouldRecommend"`
	Source            string    `json:"source"`
	SolicitationToken string    `json:"solicitationToken,omitempty"`
	Approved          bool      `json:"approved"`
	Featured          bool      `json:"featured"`
	SubmittedAt       time.Time `json:"submittedAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromTestimonial(t entities.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:                t.ID,
		EngagementID:      t.EngagementID,
		EngagementName:    t.EngagementName,
		SubmitterName:     t.SubmitterName,
		SubmitterEmail:    t.SubmitterEmail,
		SubmitterRole:     t.SubmitterRole,
		SubmitterTeam:     t.SubmitterTeam,
		Rating:            t.Rating,
		TestimonialText:   t.TestimonialText,
		WhatWorkedWell:    t.WhatWorkedWell,
		WhatCouldImprove:  t.WhatCouldImprove,
		WouldRecommend:    t.WouldRecommend,
		Source:            string(t.Source),
		SolicitationToken: t.SolicitationToken,
		Approved:          t.Approved,
		Featured:          t.Featured,
		SubmittedAt:       t.SubmittedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func FromTestimonials(testimonials []entities.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		out = append(out, FromTestimonial(t))
	}
	return out
}
