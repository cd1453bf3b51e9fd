package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/platemenu/platemenu/internal/admission"
)

// TopicAdmissionDenied carries one event per denied request. The stream
// exists for retry-storm visibility: a client hammering a closed window
// shows up here long before it shows up in capacity graphs.
const TopicAdmissionDenied = "admission.denied"

// DeniedEvent records a single admission denial.
type DeniedEvent struct {
	ID        string    `json:"id"`
	Identity  string    `json:"identity"`
	Action    string    `json:"action"`
	Limit     int64     `json:"limit"`
	Remaining int64     `json:"remaining"`
	ResetTime time.Time `json:"resetTime"`
	ClientIP  string    `json:"clientIp,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
	DeniedAt  time.Time `json:"deniedAt"`
}

// NewDeniedEvent builds a denial event from a decision and request
// metadata.
func NewDeniedEvent(identity, action string, decision admission.Decision, clientIP, userAgent, requestID string) *DeniedEvent {
	return &DeniedEvent{
		ID:        uuid.NewString(),
		Identity:  identity,
		Action:    action,
		Limit:     decision.Limit,
		Remaining: decision.Remaining,
		ResetTime: decision.ResetTime,
		ClientIP:  clientIP,
		UserAgent: userAgent,
		RequestID: requestID,
		DeniedAt:  time.Now(),
	}
}
