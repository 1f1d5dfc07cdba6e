package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	resp    Response
	err     error
	started chan struct{}
	release chan struct{}
	got     []Submission
}

func (s *stubSender) Send(ctx context.Context, sub Submission) (Response, error) {
	s.got = append(s.got, sub)
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.resp, s.err
}

func TestFormSubmitSuccessClearsFields(t *testing.T) {
	f := NewForm(20 * time.Millisecond)
	defer f.Close()
	f.Fill(validSubmission())

	sender := &stubSender{resp: Response{Success: true}}
	require.NoError(t, f.Submit(context.Background(), sender))

	st := f.State()
	assert.True(t, st.Submitted)
	assert.False(t, st.Submitting)
	assert.Equal(t, Submission{}, st.Submission)
	assert.Equal(t, []Submission{validSubmission()}, sender.got)

	require.Eventually(t, func() bool { return !f.State().Submitted }, time.Second, time.Millisecond)
}

func TestFormSubmitFailureKeepsFields(t *testing.T) {
	f := NewForm(0)
	defer f.Close()
	f.Fill(validSubmission())

	sender := &stubSender{err: &RejectedError{StatusCode: 400, Message: "nope"}}
	err := f.Submit(context.Background(), sender)
	require.Error(t, err)

	st := f.State()
	assert.False(t, st.Submitted)
	assert.False(t, st.Submitting)
	assert.Equal(t, validSubmission(), st.Submission)
	assert.Contains(t, st.Error, "nope")
}

func TestFormRejectsInvalidWithoutSending(t *testing.T) {
	f := NewForm(0)
	require.NoError(t, f.Set("name", "Ada"))
	require.Error(t, f.Set("phone", "123"))

	sender := &stubSender{resp: Response{Success: true}}
	err := f.Submit(context.Background(), sender)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Empty(t, sender.got)
	assert.Equal(t, "Ada", f.State().Name)
	assert.False(t, f.State().Submitting)
}

func TestFormGuardsDoubleSubmit(t *testing.T) {
	f := NewForm(-1)
	f.Fill(validSubmission())

	sender := &stubSender{
		resp:    Response{Success: true},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background(), sender) }()

	<-sender.started
	assert.True(t, f.State().Submitting)
	err := f.Submit(context.Background(), &stubSender{})
	assert.True(t, errors.Is(err, ErrInFlight))

	close(sender.release)
	require.NoError(t, <-done)
	assert.False(t, f.State().Submitting)
	assert.Len(t, sender.got, 1)
	// Negative reset keeps the banner up.
	assert.True(t, f.State().Submitted)
}

func TestFormCloseCancelsReset(t *testing.T) {
	f := NewForm(10 * time.Millisecond)
	f.Fill(validSubmission())
	require.NoError(t, f.Submit(context.Background(), &stubSender{resp: Response{Success: true}}))
	f.Close()
	time.Sleep(30 * time.Millisecond)
	assert.True(t, f.State().Submitted)
}

func TestFormStaleResetIgnored(t *testing.T) {
	f := NewForm(time.Millisecond)
	defer f.Close()

	// Let the first timer fire while the lock is held, then replace it.
	f.mu.Lock()
	f.submitted = true
	f.scheduleReset()
	time.Sleep(20 * time.Millisecond)
	f.resetAfter = time.Hour
	f.scheduleReset()
	f.mu.Unlock()

	time.Sleep(20 * time.Millisecond)
	assert.True(t, f.State().Submitted)
	f.mu.Lock()
	assert.NotNil(t, f.resetTimer)
	f.mu.Unlock()
}
