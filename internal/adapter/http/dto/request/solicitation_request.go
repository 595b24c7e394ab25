package request

import (
	"pulse_tracker/internal/usecase"
)

// CreateSolicitationRequest asks for a new feedback invitation.
// ExpiryDays overrides the default validity window when positive.
type CreateSolicitationRequest struct {
	EngagementID   string `json:"engagementId" binding:"required"`
	RecipientName  string `json:"recipientName" binding:"required"`
	RecipientEmail string `json:"recipientEmail"`
	RecipientRole  string `json:"recipientRole"`
	Message        string `json:"message"`
	RequestedBy    string `json:"requestedBy"`
	ExpiryDays     int    `json:"expiryDays"`
}

func (r CreateSolicitationRequest) ToInput() usecase.CreateSolicitationInput {
	return usecase.CreateSolicitationInput{
		EngagementID:   r.EngagementID,
		RecipientName:  r.RecipientName,
		RecipientEmail: r.RecipientEmail,
		RecipientRole:  r.RecipientRole,
		Message:        r.Message,
		RequestedBy:    r.RequestedBy,
		ExpiryDays:     r.ExpiryDays,
	}
}
