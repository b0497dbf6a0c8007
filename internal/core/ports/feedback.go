package ports

import (
	"time"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

// FeedbackService is the per-session notification center: the toast
// queue, the busy indicator, and pending forced navigation. All state
// is transient and dropped with the session.
type FeedbackService interface {
	// Show queues a toast. A positive duration schedules automatic
	// removal; zero or negative leaves the toast until dismissed.
	Show(sessionID, message string, kind domain.ToastKind, duration time.Duration) domain.Toast

	// Kind helpers with the default duration.
	Success(sessionID, message string) domain.Toast
	Error(sessionID, message string) domain.Toast
	Warning(sessionID, message string) domain.Toast
	Info(sessionID, message string) domain.Toast

	// Dismiss removes a toast by id. Idempotent.
	Dismiss(sessionID, toastID string)

	// Clear removes every queued toast for the session.
	Clear(sessionID string)

	// Begin registers an in-flight operation and returns its id. The
	// busy indicator is visible while at least one operation is
	// running; the shown message is the most recently begun one's.
	Begin(sessionID, message string) string

	// End finishes an operation. Ending an unknown id is a no-op.
	End(sessionID, operationID string)

	// RedirectTo records a forced navigation target the page shell
	// must honor on its next poll.
	RedirectTo(sessionID, path string)

	// State returns the feedback snapshot the page shell polls.
	State(sessionID string) domain.UIState

	// Drop discards all feedback state for a session, cancelling any
	// pending toast expiries.
	Drop(sessionID string)
}
