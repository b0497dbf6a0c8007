package domain

import "time"

// ToastKind classifies a toast notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastWarning ToastKind = "warning"
	ToastInfo    ToastKind = "info"
)

// Toast is a transient notification queued for the page shell. A
// positive Duration schedules automatic removal; zero or negative means
// the toast stays until dismissed.
type Toast struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Kind      ToastKind     `json:"kind"`
	Duration  time.Duration `json:"duration_ms"`
	CreatedAt time.Time     `json:"created_at"`
}

// UIState is the feedback snapshot the page shell polls: the busy
// indicator, the queued toasts, and a pending forced navigation, if
// any.
type UIState struct {
	Busy     bool    `json:"busy"`
	Message  string  `json:"message,omitempty"`
	Toasts   []Toast `json:"toasts"`
	Redirect string  `json:"redirect,omitempty"`
}
