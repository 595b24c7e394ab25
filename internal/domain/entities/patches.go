package entities

// Patch types model partial updates explicitly: a nil field was not supplied
// and must stay untouched; a non-nil pointer to a zero value clears the
// field. This keeps "absent" and "set to empty" distinguishable all the way
// down to the storage update expression.

// EngagementPatch covers every caller-writable engagement field.
type EngagementPatch struct {
	Name           *string           `json:"name,omitempty"`
	Team           *string           `json:"team,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Status         *EngagementStatus `json:"status,omitempty"`
	Owner          *string           `json:"owner,omitempty"`
	Stakeholders   *[]string         `json:"stakeholders,omitempty"`
	Tools          *[]string         `json:"tools,omitempty"`
	Agents         *[]string         `json:"agents,omitempty"`
	Objectives     *string           `json:"objectives,omitempty"`
	ChatSpace      *string           `json:"chatSpace,omitempty"`
	SuccessMetrics *string           `json:"successMetrics,omitempty"`
	Blockers       *string           `json:"blockers,omitempty"`
	NextSteps      *string           `json:"nextSteps,omitempty"`
	Notes          *string           `json:"notes,omitempty"`
	StartDate      *string           `json:"startDate,omitempty"`
	TargetDate     *string           `json:"targetDate,omitempty"`
	CompletedDate  *string           `json:"completedDate,omitempty"`
}

// TestimonialPatch covers the moderation-editable testimonial fields.
type TestimonialPatch struct {
	Approved         *bool   `json:"approved,omitempty"`
	Featured         *bool   `json:"featured,omitempty"`
	TestimonialText  *string `json:"testimonialText,omitempty"`
	Rating           *int    `json:"rating,omitempty"`
	WhatWorkedWell   *string `json:"whatWorkedWell,omitempty"`
	WhatCouldImprove *string `json:"whatCouldImprove,omitempty"`
	WouldRecommend   *bool   `json:"wouldRecommend,omitempty"`
}

// TaskPatch covers every caller-writable task field.
type TaskPatch struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	Assignee    *string       `json:"assignee,omitempty"`
	DueDate     *string       `json:"dueDate,omitempty"`
	CompletedAt *string       `json:"completedAt,omitempty"`
}

// AgentPatch covers every caller-writable agent field.
type AgentPatch struct {
	Name         *string      `json:"name,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Type         *string      `json:"type,omitempty"`
	Platform     *string      `json:"platform,omitempty"`
	Capabilities *[]string    `json:"capabilities,omitempty"`
	Status       *AgentStatus `json:"status,omitempty"`
}
