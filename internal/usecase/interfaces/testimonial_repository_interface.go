package interfaces

import (
	"context"
	"time"

	"pulse_tracker/internal/domain/entities"
)

// ITestimonialRepository abstracts DynamoDB persistence for Testimonial.
//
// CreateSolicited writes the testimonial and resolves its solicitation as a
// single transaction: either both land or neither does. A transaction
// cancelled because the solicitation was no longer pending surfaces as the
// zero value, mirroring the conditional-update convention.

type ITestimonialRepository interface {
	Create(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error)
	CreateSolicited(ctx context.Context, t entities.Testimonial, token string, resolvedAt time.Time) (entities.Testimonial, error)
	GetByID(ctx context.Context, id string) (entities.Testimonial, error)
	// List returns testimonials sorted by submittedAt descending; an empty
	// engagementID means no filter.
	List(ctx context.Context, engagementID string) ([]entities.Testimonial, error)
	Update(ctx context.Context, id string, patch entities.TestimonialPatch) (entities.Testimonial, error)
}
