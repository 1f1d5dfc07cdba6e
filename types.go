package folio

import "github.com/eringen/folio/views"

// Submission is a contact message as stored and shown in the dashboard.
type Submission = views.Submission

// Image is an uploaded project thumbnail.
type Image = views.Image

// Submission statuses.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)
