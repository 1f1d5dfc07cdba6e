package relay

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultResetAfter is how long the success banner stays up.
const DefaultResetAfter = 5 * time.Second

// FormState is a snapshot of a contact form.
type FormState struct {
	Submission
	Submitting bool
	Submitted  bool
	Error      string
}

// Form tracks one contact form through edit, submit and the transient
// success banner. Methods are safe for concurrent use.
type Form struct {
	resetAfter time.Duration

	mu         sync.Mutex
	values     Submission
	submitting bool
	submitted  bool
	lastErr    string
	resetTimer *time.Timer
	closed     bool
}

// NewForm returns an empty form whose success flag clears after resetAfter
// (DefaultResetAfter when zero; negative disables the reset).
func NewForm(resetAfter time.Duration) *Form {
	if resetAfter == 0 {
		resetAfter = DefaultResetAfter
	}
	return &Form{resetAfter: resetAfter}
}

// ResetAfter returns the success banner lifetime.
func (f *Form) ResetAfter() time.Duration {
	return f.resetAfter
}

// Set updates one field by its form name.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch field {
	case "name":
		f.values.Name = value
	case "email":
		f.values.Email = value
	case "subject":
		f.values.Subject = value
	case "message":
		f.values.Message = value
	default:
		return fmt.Errorf("relay: unknown field %q", field)
	}
	return nil
}

// Fill replaces all field values.
func (f *Form) Fill(s Submission) {
	f.mu.Lock()
	f.values = s
	f.mu.Unlock()
}

// State returns a snapshot.
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FormState{
		Submission: f.values,
		Submitting: f.submitting,
		Submitted:  f.submitted,
		Error:      f.lastErr,
	}
}

// Submit sends the current values through s. The submitting flag is set
// before any I/O, so a second Submit while one is running fails with
// ErrInFlight. On success the fields are cleared and the submitted flag is
// raised until the reset timer fires; on failure the fields are kept for a
// retry. Submitting is cleared on every path.
func (f *Form) Submit(ctx context.Context, s Sender) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrInFlight
	}
	values := f.values
	if err := values.Validate(); err != nil {
		f.lastErr = err.Error()
		f.mu.Unlock()
		return err
	}
	f.submitting = true
	f.lastErr = ""
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	_, err := s.Send(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.submitted = false
		f.lastErr = err.Error()
		return err
	}
	f.submitted = true
	f.values = Submission{}
	f.scheduleReset()
	return nil
}

// scheduleReset must be called with mu held.
func (f *Form) scheduleReset() {
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
	if f.resetAfter < 0 || f.closed {
		return
	}
	var t *time.Timer
	t = time.AfterFunc(f.resetAfter, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		// A stopped timer may already be running; only the latest one resets.
		if f.resetTimer != t {
			return
		}
		f.submitted = false
		f.resetTimer = nil
	})
	f.resetTimer = t
}

// Close cancels a pending banner reset. The form stays readable.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}
