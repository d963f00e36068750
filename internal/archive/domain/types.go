// Package domain defines the types and ports for the archive resources:
// timeline events, issues, and attachments
package domain

import (
	"context"
	"time"

	perr "polittrack/internal/platform/errors"
)

// FinancialFigure is one money line attached to a timeline event
type FinancialFigure struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Source   string  `json:"source"`
}

// TimelineEvent is one dated entry in a career timeline
type TimelineEvent struct {
	ID            int64             `json:"id"`
	Year          int               `json:"year"`
	Type          string            `json:"type"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	FinancialData []FinancialFigure `json:"financialData"`
}

// Issue is a tracked political issue with its cross references
type Issue struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	RelatedPoliticians []int64 `json:"relatedPoliticians"`
	TimelineEvents     []int64 `json:"timelineEvents"`
}

// Attachment is a document related to an issue or politician
// RelatedTo uses "Kind:id" labels like "Issue:1" or "Politician:3"
type Attachment struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadDate"`
	RelatedTo  string    `json:"relatedTo"`
}

// WireAttachment is an attachment as delivered over the wire
type WireAttachment struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Type       string `json:"type"`
	Size       int64  `json:"size"`
	UploadDate string `json:"uploadDate"`
	RelatedTo  string `json:"relatedTo"`
}

// attachment upload dates arrive as RFC 3339 timestamps
var attachmentLayouts = []string{time.RFC3339, "2006-01-02"}

// HydrateAttachment converts a wire attachment, failing on a missing or
// malformed upload date (the only required temporal field on the resource)
func HydrateAttachment(w WireAttachment) (Attachment, error) {
	if w.UploadDate == "" {
		return Attachment{}, perr.Decodef("missing required date uploadDate")
	}
	var (
		t   time.Time
		err error
	)
	for _, layout := range attachmentLayouts {
		t, err = time.Parse(layout, w.UploadDate)
		if err == nil {
			break
		}
	}
	if err != nil {
		return Attachment{}, perr.Wrapf(err, perr.ErrorCodeDecode, "unparseable date %q", w.UploadDate)
	}
	return Attachment{
		ID:         w.ID,
		Name:       w.Name,
		URL:        w.URL,
		Type:       w.Type,
		Size:       w.Size,
		UploadedAt: t,
		RelatedTo:  w.RelatedTo,
	}, nil
}

// ReaderPort is the backing-store surface behind the archive facade
type ReaderPort interface {
	// Timeline returns events, optionally restricted to one politician
	Timeline(ctx context.Context, politicianID *int64) ([]TimelineEvent, error)

	// Issues returns every tracked issue
	Issues(ctx context.Context) ([]Issue, error)

	// Attachments returns attachments, optionally restricted by exact
	// relatedTo label
	Attachments(ctx context.Context, relatedTo string) ([]Attachment, error)
}
