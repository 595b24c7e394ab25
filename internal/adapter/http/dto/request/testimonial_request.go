package request

import (
	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase"
)

// SubmitTestimonialRequest is accepted on both the public submit endpoint
// and the internal create endpoint. Rating and wouldRecommend are optional
// answers, not zero-valued ones, hence the pointers.
type SubmitTestimonialRequest struct {
	EngagementID      string `json:"engagementId"`
	SubmitterName     string `json:"submitterName" binding:"required"`
	SubmitterEmail    string `json:"submitterEmail"`
	SubmitterRole     string `json:"submitterRole"`
	SubmitterTeam     string `json:"submitterTeam"`
	Rating            *int   `json:"rating"`
	TestimonialText   string `json:"testimonialText" binding:"required"`
	WhatWorkedWell    string `json:"whatWorkedWell"`
	WhatCouldImprove  string `json:"whatCouldImprove"`
	WouldRecommend    *bool  `json:"wouldRecommend"`
	SolicitationToken string `json:"token"`
}

func (r SubmitTestimonialRequest) ToInput() usecase.SubmitTestimonialInput {
	return usecase.SubmitTestimonialInput{
		EngagementID:      r.EngagementID,
		SubmitterName:     r.SubmitterName,
		SubmitterEmail:    r.SubmitterEmail,
		SubmitterRole:     r.SubmitterRole,
		SubmitterTeam:     r.SubmitterTeam,
		Rating:            r.Rating,
		TestimonialText:   r.TestimonialText,
		WhatWorkedWell:    r.WhatWorkedWell,
		WhatCouldImprove:  r.WhatCouldImprove,
		WouldRecommend:    r.WouldRecommend,
		SolicitationToken: r.SolicitationToken,
	}
}

// UpdateTestimonialRequest is the moderation payload.
type UpdateTestimonialRequest struct {
	Approved         *bool   `json:"approved"`
	Featured         *bool   `json:"featured"`
	TestimonialText  *string `json:"testimonialText"`
	Rating           *int    `json:"rating"`
	WhatWorkedWell   *string `json:"whatWorkedWell"`
	WhatCouldImprove *string `json:"whatCouldImprove"`
	WouldRecommend   *bool   `json:"wouldRecommend"`
}

func (r UpdateTestimonialRequest) ToPatch() entities.TestimonialPatch {
	return entities.TestimonialPatch{
		Approved:         r.Approved,
		Featured:         r.Featured,
		TestimonialText:  r.TestimonialText,
		Rating:           r.Rating,
		WhatWorkedWell:   r.WhatWorkedWell,
		WhatCouldImprove: r.WhatCouldImprove,
		WouldRecommend:   r.WouldRecommend,
	}
}
