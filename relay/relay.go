// Package relay submits contact form messages to a hosted form-submission
// API, which forwards them to the site owner's inbox.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// DefaultEndpoint is the Web3Forms submission URL.
const DefaultEndpoint = "https://api.web3forms.com/submit"

var (
	// ErrInvalid is wrapped by validation failures.
	ErrInvalid = errors.New("relay: invalid submission")

	// ErrInFlight is returned when a submit starts while another is running.
	ErrInFlight = errors.New("relay: submission already in progress")

	// ErrNotConfigured is returned by a client without an access key.
	ErrNotConfigured = errors.New("relay: access key not configured")
)

// Submission is one contact form message. All fields are required.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Trimmed returns s with surrounding whitespace removed from every field.
func (s Submission) Trimmed() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// Input validation limits.
const (
	maxNameLen    = 200
	maxEmailLen   = 320
	maxSubjectLen = 300
	maxMessageLen = 10000
)

// ValidationError lists the offending fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range fieldOrder {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, f+": "+msg)
		}
	}
	return "relay: invalid submission (" + strings.Join(parts, ", ") + ")"
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

var fieldOrder = []string{"name", "email", "subject", "message"}

// Validate checks that every field is present and within limits, and that
// the email parses as an address.
func (s Submission) Validate() error {
	s = s.Trimmed()
	fields := map[string]string{}
	check := func(name, value string, max int) {
		switch {
		case value == "":
			fields[name] = "required"
		case utf8.RuneCountInString(value) > max:
			fields[name] = fmt.Sprintf("exceeds %d characters", max)
		}
	}
	check("name", s.Name, maxNameLen)
	check("email", s.Email, maxEmailLen)
	check("subject", s.Subject, maxSubjectLen)
	check("message", s.Message, maxMessageLen)
	if _, bad := fields["email"]; !bad {
		if addr, err := mail.ParseAddress(s.Email); err != nil || addr.Address != s.Email {
			fields["email"] = "not a valid address"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Response is the API's JSON reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RejectedError reports a reply that did not indicate success.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("relay: submission rejected (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("relay: submission rejected (status %d): %s", e.StatusCode, e.Message)
}

// Sender delivers a submission.
type Sender interface {
	Send(ctx context.Context, s Submission) (Response, error)
}

// Client posts submissions as multipart form data.
type Client struct {
	endpoint  string
	accessKey string
	http      *resty.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(url string) ClientOption {
	return func(c *Client) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// WithTimeout sets the per-request timeout (default 15s).
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// NewClient returns a Client authenticating with accessKey.
func NewClient(accessKey string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:  DefaultEndpoint,
		accessKey: accessKey,
		http: resty.New().
			SetTimeout(15*time.Second).
			SetHeader("Accept", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send validates s and posts it. A reply without success is returned as a
// *RejectedError; transport failures are wrapped.
func (c *Client) Send(ctx context.Context, s Submission) (Response, error) {
	if c.accessKey == "" {
		return Response{}, ErrNotConfigured
	}
	s = s.Trimmed()
	if err := s.Validate(); err != nil {
		return Response{}, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"access_key": c.accessKey,
			"name":       s.Name,
			"email":      s.Email,
			"subject":    s.Subject,
			"message":    s.Message,
		}).
		Post(c.endpoint)
	if err != nil {
		return Response{}, fmt.Errorf("relay: post: %w", err)
	}

	var out Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return Response{}, &RejectedError{
			StatusCode: resp.StatusCode(),
			Message:    "unreadable response: " + err.Error(),
		}
	}
	if !out.Success || resp.IsError() {
		return out, &RejectedError{StatusCode: resp.StatusCode(), Message: out.Message}
	}
	return out, nil
}
