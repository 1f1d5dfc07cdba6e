package relay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Loved the projects section.",
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validSubmission().Validate())

	s := validSubmission()
	s.Subject = "   "
	s.Email = "not-an-email"
	err := s.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "required", verr.Fields["subject"])
	assert.Equal(t, "not a valid address", verr.Fields["email"])
	assert.NotContains(t, verr.Fields, "name")
}

func TestValidateCountsCharacters(t *testing.T) {
	s := validSubmission()
	s.Name = strings.Repeat("é", maxNameLen)
	require.NoError(t, s.Validate())

	s.Name += "é"
	var verr *ValidationError
	require.ErrorAs(t, s.Validate(), &verr)
	assert.Equal(t, "exceeds 200 characters", verr.Fields["name"])
}

func newAPI(t *testing.T, status int, body string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, f := range []string{"access_key", "name", "email", "subject", "message"} {
			if r.FormValue(f) == "" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"success":false,"message":"missing ` + f + `"}`))
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSendSuccess(t *testing.T) {
	srv := newAPI(t, http.StatusOK, `{"success":true,"message":"Email sent successfully!"}`, nil)
	c := NewClient("key-123", WithEndpoint(srv.URL))

	resp, err := c.Send(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Email sent successfully!", resp.Message)
}

func TestClientSendRejected(t *testing.T) {
	srv := newAPI(t, http.StatusOK, `{"success":false,"message":"Invalid access key"}`, nil)
	c := NewClient("bad", WithEndpoint(srv.URL))

	_, err := c.Send(context.Background(), validSubmission())
	var rej *RejectedError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "Invalid access key", rej.Message)
}

func TestClientSendNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient("key", WithEndpoint(url), WithTimeout(time.Second))
	_, err := c.Send(context.Background(), validSubmission())
	require.Error(t, err)
	var rej *RejectedError
	assert.False(t, errors.As(err, &rej))
}

func TestClientSkipsNetworkOnInvalid(t *testing.T) {
	var hits int32
	srv := newAPI(t, http.StatusOK, `{"success":true}`, &hits)
	c := NewClient("key", WithEndpoint(srv.URL))

	_, err := c.Send(context.Background(), Submission{Name: "x"})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Zero(t, atomic.LoadInt32(&hits))

	_, err = NewClient("").Send(context.Background(), validSubmission())
	assert.ErrorIs(t, err, ErrNotConfigured)
}
