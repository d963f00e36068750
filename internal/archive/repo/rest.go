package repo

import (
	"context"
	"net/url"
	"strconv"

	"polittrack/internal/adapters/backend"
	"polittrack/internal/archive/domain"
	"polittrack/internal/platform/logger"
)

// Rest serves archive resources from the HTTP record service
type Rest struct {
	client *backend.Client
	log    logger.Logger
}

// NewRest returns a network-backed repo
func NewRest(client *backend.Client) *Rest {
	return &Rest{client: client, log: *logger.Named("archive.rest")}
}

// Timeline fetches events, optionally scoped to one politician
func (r *Rest) Timeline(ctx context.Context, politicianID *int64) ([]domain.TimelineEvent, error) {
	q := url.Values{}
	if politicianID != nil {
		q.Set("politicianId", strconv.FormatInt(*politicianID, 10))
	}
	var out []domain.TimelineEvent
	if err := r.client.GetJSON(ctx, "/timeline", q, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.TimelineEvent{}
	}
	return out, nil
}

// Issues fetches every tracked issue
func (r *Rest) Issues(ctx context.Context) ([]domain.Issue, error) {
	var out []domain.Issue
	if err := r.client.GetJSON(ctx, "/issues", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Issue{}
	}
	return out, nil
}

// Attachments fetches attachments, hydrating the upload date per element
// A malformed element is dropped with a warn, the rest of the list survives
func (r *Rest) Attachments(ctx context.Context, relatedTo string) ([]domain.Attachment, error) {
	q := url.Values{}
	if relatedTo != "" {
		q.Set("relatedTo", relatedTo)
	}
	var wire []domain.WireAttachment
	if err := r.client.GetJSON(ctx, "/attachments", q, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Attachment, 0, len(wire))
	for i, w := range wire {
		a, err := domain.HydrateAttachment(w)
		if err != nil {
			r.log.Warn().Int("index", i).Int64("attachment_id", w.ID).Err(err).
				Msg("dropped malformed attachment")
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
