package alert

import "github.com/ramp07413/tuition-admin/core"

// Types
const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeError   = "error"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Alert is a user-facing notification record, created as a side effect of
// payment mutations. `read` is the canonical read-state field.
type Alert struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Read     bool   `json:"read"`
}

// NewAlert contains information needed to create an Alert.
type NewAlert struct {
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=info success warning error"`
	Priority string `json:"priority" validate:"required,oneof=low medium high"`
}

func (na *NewAlert) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Message = core.CleanString(na.Message)
	na.Type = core.CleanString(na.Type, true /* lower */)
	na.Priority = core.CleanString(na.Priority, true /* lower */)
	return core.Validate.Struct(na)
}
