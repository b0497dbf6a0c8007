package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tidesight2026/tidesight/internal/api/metrics"
	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/pkg/clock"
)

const defaultToastDuration = 3 * time.Second

// FeedbackService keeps per-session UI feedback: queued toasts, the set
// of in-flight operations behind the busy indicator, and any pending
// forced navigation. State lives in memory only; it is transient by
// contract.
type FeedbackService struct {
	mu       sync.Mutex
	clk      clock.Clock
	duration time.Duration
	sessions map[string]*feedbackState
}

type feedbackState struct {
	toasts   []domain.Toast
	timers   map[string]clock.Timer
	ops      []operation
	redirect string
}

type operation struct {
	id      string
	message string
}

func NewFeedbackService(clk clock.Clock) *FeedbackService {
	return &FeedbackService{
		clk:      clk,
		duration: defaultToastDuration,
		sessions: make(map[string]*feedbackState),
	}
}

func (f *FeedbackService) Show(sessionID, message string, kind domain.ToastKind, duration time.Duration) domain.Toast {
	toast := domain.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		Duration:  duration,
		CreatedAt: f.clk.Now(),
	}

	f.mu.Lock()
	st := f.state(sessionID)
	st.toasts = append(st.toasts, toast)
	if duration > 0 {
		st.timers[toast.ID] = f.clk.AfterFunc(duration, func() {
			f.Dismiss(sessionID, toast.ID)
		})
	}
	f.mu.Unlock()

	metrics.ToastsTotal.WithLabelValues(string(kind)).Inc()
	return toast
}

func (f *FeedbackService) Success(sessionID, message string) domain.Toast {
	return f.Show(sessionID, message, domain.ToastSuccess, f.duration)
}

func (f *FeedbackService) Error(sessionID, message string) domain.Toast {
	return f.Show(sessionID, message, domain.ToastError, f.duration)
}

func (f *FeedbackService) Warning(sessionID, message string) domain.Toast {
	return f.Show(sessionID, message, domain.ToastWarning, f.duration)
}

func (f *FeedbackService) Info(sessionID, message string) domain.Toast {
	return f.Show(sessionID, message, domain.ToastInfo, f.duration)
}

func (f *FeedbackService) Dismiss(sessionID, toastID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, ok := f.sessions[sessionID]
	if !ok {
		return
	}
	if t, ok := st.timers[toastID]; ok {
		t.Stop()
		delete(st.timers, toastID)
	}
	kept := st.toasts[:0]
	for _, toast := range st.toasts {
		if toast.ID != toastID {
			kept = append(kept, toast)
		}
	}
	st.toasts = kept
}

func (f *FeedbackService) Clear(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, ok := f.sessions[sessionID]
	if !ok {
		return
	}
	for id, t := range st.timers {
		t.Stop()
		delete(st.timers, id)
	}
	st.toasts = nil
}

func (f *FeedbackService) Begin(sessionID, message string) string {
	id := uuid.NewString()

	f.mu.Lock()
	st := f.state(sessionID)
	st.ops = append(st.ops, operation{id: id, message: message})
	f.mu.Unlock()

	return id
}

func (f *FeedbackService) End(sessionID, operationID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, ok := f.sessions[sessionID]
	if !ok {
		return
	}
	kept := st.ops[:0]
	for _, op := range st.ops {
		if op.id != operationID {
			kept = append(kept, op)
		}
	}
	st.ops = kept
}

func (f *FeedbackService) RedirectTo(sessionID, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state(sessionID).redirect = path
}

func (f *FeedbackService) State(sessionID string) domain.UIState {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, ok := f.sessions[sessionID]
	if !ok {
		return domain.UIState{Toasts: []domain.Toast{}}
	}

	out := domain.UIState{
		Busy:     len(st.ops) > 0,
		Toasts:   append([]domain.Toast{}, st.toasts...),
		Redirect: st.redirect,
	}
	// The busy message is the most recently begun operation's: the
	// latest writer wins, but an earlier completion no longer clears a
	// screen another operation still owns.
	if n := len(st.ops); n > 0 {
		out.Message = st.ops[n-1].message
	}
	return out
}

func (f *FeedbackService) Drop(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, ok := f.sessions[sessionID]
	if !ok {
		return
	}
	for _, t := range st.timers {
		t.Stop()
	}
	delete(f.sessions, sessionID)
}

// state returns the session's feedback bucket, creating it on first
// use. Callers hold f.mu.
func (f *FeedbackService) state(sessionID string) *feedbackState {
	st, ok := f.sessions[sessionID]
	if !ok {
		st = &feedbackState{timers: make(map[string]clock.Timer)}
		f.sessions[sessionID] = st
	}
	return st
}
