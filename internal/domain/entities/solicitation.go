package entities

import "time"

// SolicitationStatus tracks whether a feedback request is still usable.
//
// A record stays `pending` in storage after its expiry passes; readers must
// compare ExpiresAt against the current time and report `expired` without
// depending on a background sweep.

type SolicitationStatus string

const (
	SolicitationStatusPending   SolicitationStatus = "pending"
	SolicitationStatusCompleted SolicitationStatus = "completed"
	SolicitationStatusExpired   SolicitationStatus = "expired"
)

// Solicitation is a time-boxed, single-use invitation to submit feedback
// about one engagement.
//
// Storage model (DynamoDB):
//   - PK: token
//   - GSI1 (engagement-index): engagementId
//   - TTL attribute: expiresAtTTL
//
// The token doubles as the external identifier and the authorization
// credential of the public feedback form, so it must never be derived from
// recipient data or a counter.
type Solicitation struct {
	Token          string             `json:"token"`
	EngagementID   string             `json:"engagementId"`
	EngagementName string             `json:"engagementName"`
	RecipientName  string             `json:"recipientName"`
	RecipientEmail string             `json:"recipientEmail"`
	RecipientRole  string             `json:"recipientRole"`
	Message        string             `json:"message"`
	RequestedBy    string             `json:"requestedBy"`
	Status         SolicitationStatus `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
	ExpiresAt      time.Time          `json:"expiresAt"`
	ResolvedAt     *time.Time         `json:"resolvedAt,omitempty"`
}

// IsExpired reports whether the solicitation can no longer accept a
// submission at the given instant.
func (s Solicitation) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// EffectiveStatus is the status a reader should observe: a stale pending
// record reports expired even though storage was never rewritten.
func (s Solicitation) EffectiveStatus(now time.Time) SolicitationStatus {
	if s.Status == SolicitationStatusPending && s.IsExpired(now) {
		return SolicitationStatusExpired
	}
	return s.Status
}
