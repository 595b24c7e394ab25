package entities

import "time"

// EngagementStatus represents the lifecycle of a tracked engagement.
//
// Domain notes:
//   - The status is advisory: there is no transition table, any status may
//     follow any other. The UI orders columns by this enum.
//   - The closed statuses are terminal only in the sense that they carry a
//     completedDate; reopening is allowed and clears it.

type EngagementStatus string

const (
	EngagementStatusDiscovery      EngagementStatus = "discovery"
	EngagementStatusActive         EngagementStatus = "active"
	EngagementStatusPaused         EngagementStatus = "paused"
	EngagementStatusClosedComplete EngagementStatus = "closed-complete"
	EngagementStatusClosedFailed   EngagementStatus = "closed-failed"
)

// EngagementStatuses lists every status in display/priority order.
var EngagementStatuses = []EngagementStatus{
	EngagementStatusDiscovery,
	EngagementStatusActive,
	EngagementStatusPaused,
	EngagementStatusClosedComplete,
	EngagementStatusClosedFailed,
}

// IsClosed reports whether the status is one of the two terminal statuses.
func (s EngagementStatus) IsClosed() bool {
	return s == EngagementStatusClosedComplete || s == EngagementStatusClosedFailed
}

// IsValid reports whether the status belongs to the enum.
func (s EngagementStatus) IsValid() bool {
	for _, known := range EngagementStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Engagement is an AI/automation initiative tracked through its lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Date fields:
//   - StartDate, TargetDate and CompletedDate are display dates (YYYY-MM-DD);
//     CompletedDate is empty unless the engagement is in a closed status.
//   - CreatedAt/UpdatedAt are server-assigned instants.
type Engagement struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Team           string           `json:"team"`
	Description    string           `json:"description"`
	Status         EngagementStatus `json:"status"`
	Owner          string           `json:"owner"`
	Stakeholders   []string         `json:"stakeholders"`
	Tools          []string         `json:"tools"`
	Agents         []string         `json:"agents"`
	Objectives     string           `json:"objectives"`
	ChatSpace      string           `json:"chatSpace"`
	SuccessMetrics string           `json:"successMetrics"`
	Blockers       string           `json:"blockers"`
	NextSteps      string           `json:"nextSteps"`
	Notes          string           `json:"notes"`
	StartDate      string           `json:"startDate"`
	TargetDate     string           `json:"targetDate"`
	CompletedDate  string           `json:"completedDate"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
