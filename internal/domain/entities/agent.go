package entities

import "time"

// AgentStatus marks whether an agent is still deployed anywhere.

type AgentStatus string

const (
	AgentStatusActive     AgentStatus = "active"
	AgentStatusInactive   AgentStatus = "inactive"
	AgentStatusDeprecated AgentStatus = "deprecated"
)

// Agent is a registry entry for an automation agent referenced by
// engagements through their agents list (by name).
//
// Storage model (DynamoDB):
//   - PK: id
//   - Name uniqueness is enforced by the use case, not the table.
type Agent struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Type         string      `json:"type"`     // assistant, workflow, tool
	Platform     string      `json:"platform"` // braintrust, custom, ...
	Capabilities []string    `json:"capabilities"`
	Status       AgentStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`

	// Engagements is populated on demand by joining against the
	// engagement collection; it is never persisted.
	Engagements []AgentEngagementRef `json:"engagements,omitempty"`
}

// AgentEngagementRef is the slim engagement projection attached to agents.
type AgentEngagementRef struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Status      EngagementStatus `json:"status"`
	Team        string           `json:"team"`
	Description string           `json:"description,omitempty"`
}
