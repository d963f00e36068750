package repo

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"polittrack/internal/adapters/backend"
	"polittrack/internal/politicians/domain"
	"polittrack/internal/platform/logger"
)

// Rest serves records from the HTTP record service
type Rest struct {
	client *backend.Client
	log    logger.Logger
}

// NewRest returns a network-backed repo
func NewRest(client *backend.Client) *Rest {
	return &Rest{client: client, log: *logger.Named("politicians.rest")}
}

// List forwards the query to the backend and hydrates the envelope
// The server's pagination numbers are trusted as-is
func (r *Rest) List(ctx context.Context, p domain.ListParams) (domain.SummaryPage, error) {
	p = p.WithDefaults()
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("size", strconv.Itoa(p.Size))
	q.Set("sort_by", string(p.SortBy))
	if p.Party != "" {
		q.Set("party", p.Party)
	}
	if p.Jurisdiction != "" {
		q.Set("jurisdiction", p.Jurisdiction)
	}

	var w domain.WireSummaryPage
	if err := r.client.GetJSON(ctx, "/politicians", q, &w); err != nil {
		return domain.EmptyPage(p), err
	}
	return domain.HydrateSummaryPage(w), nil
}

// Search issues one request and unwraps the results envelope
// A malformed envelope degrades to an empty slice
func (r *Rest) Search(ctx context.Context, q string) ([]domain.Summary, error) {
	term := strings.TrimSpace(q)
	if term == "" {
		return []domain.Summary{}, nil
	}
	vals := url.Values{}
	vals.Set("q", term)

	var env domain.WireSearchEnvelope
	if err := r.client.GetJSON(ctx, "/search", vals, &env); err != nil {
		return nil, err
	}
	if env.Results == nil {
		return []domain.Summary{}, nil
	}
	return domain.HydrateSummaries(env.Results), nil
}

// Details fetches and hydrates the full profile; 404 comes back as a
// NotFound coded error from the transport layer
func (r *Rest) Details(ctx context.Context, id int64) (*domain.Details, error) {
	var w domain.WireDetails
	if err := r.client.GetJSON(ctx, "/politicians/"+strconv.FormatInt(id, 10), nil, &w); err != nil {
		return nil, err
	}
	d, dropped := domain.HydrateDetails(w)
	for _, bad := range dropped {
		r.log.Warn().
			Int64("politician_id", id).
			Str("collection", bad.Collection).
			Int("index", bad.Index).
			Err(bad.Err).
			Msg("dropped malformed collection element")
	}
	return &d, nil
}
