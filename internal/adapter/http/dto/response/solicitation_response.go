package response

import (
	"time"

	"pulse_tracker/internal/domain/entities"
)

// SolicitationResponse is the internal/admin view of a feedback invitation.
type SolicitationResponse struct {
	Token          string     `json:"token"`
	EngagementID   string     `json:"engagementId"`
	EngagementName string     `json:"engagementName"`
	RecipientName  string     `json:"recipientName"`
	RecipientEmail string     `json:"recipientEmail"`
	RecipientRole  string     `json:"recipientRole"`
	Message        string     `json:"message"`
	RequestedBy    string     `json:"requestedBy"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	ExpiresAt      time.Time  `json:"expiresAt"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
}

func FromSolicitation(s entities.Solicitation) SolicitationResponse {
	return SolicitationResponse{
		Token:          s.Token,
		EngagementID:   s.EngagementID,
		EngagementName: s.EngagementName,
		RecipientName:  s.RecipientName,
		RecipientEmail: s.RecipientEmail,
		RecipientRole:  s.RecipientRole,
		Message:        s.Message,
		RequestedBy:    s.RequestedBy,
		Status:         string(s.Status),
		CreatedAt:      s.CreatedAt,
		ExpiresAt:      s.ExpiresAt,
		ResolvedAt:     s.ResolvedAt,
	}
}

func FromSolicitations(solicitations []entities.Solicitation) []SolicitationResponse {
	out := make([]SolicitationResponse, 0, len(solicitations))
	for _, s := range solicitations {
		out = append(out, FromSolicitation(s))
	}
	return out
}

// CreateSolicitationResponse carries the shareable form link alongside the
// created record.
type CreateSolicitationResponse struct {
	SolicitationResponse
	FeedbackURL string `json:"feedbackUrl"`
}

func FromCreatedSolicitation(s entities.Solicitation, feedbackURL string) CreateSolicitationResponse {
	return CreateSolicitationResponse{
		SolicitationResponse: FromSolicitation(s),
		FeedbackURL:          feedbackURL,
	}
}

// SolicitationFormResponse is the public projection served to the feedback
// form. It deliberately omits the recipient's email and internal metadata.
type SolicitationFormResponse struct {
	Token          string    `json:"token"`
	EngagementID   string    `json:"engagementId"`
	EngagementName string    `json:"engagementName"`
	RecipientName  string    `json:"recipientName"`
	RecipientRole  string    `json:"recipientRole"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

func FromSolicitationForm(s entities.Solicitation) SolicitationFormResponse {
	return SolicitationFormResponse{
		Token:          s.Token,
		EngagementID:   s.EngagementID,
		EngagementName: s.EngagementName,
		RecipientName:  s.RecipientName,
		RecipientRole:  s.RecipientRole,
		Message:        s.Message,
		Status:         string(s.Status),
		ExpiresAt:      s.ExpiresAt,
	}
}
