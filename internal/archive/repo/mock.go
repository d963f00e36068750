// Package repo provides the mock and HTTP backing stores for the archive
// resources
package repo

import (
	"context"

	"polittrack/internal/archive/domain"
	"polittrack/internal/core/listquery"
	perr "polittrack/internal/platform/errors"
)

// Mock serves the memoized offline dataset
type Mock struct{}

// NewMock returns a mock-backed repo
func NewMock() *Mock { return &Mock{} }

// Timeline returns all events; the mock dataset carries no per-politician
// association, so the optional filter is accepted and ignored (matching the
// offline behavior of the original dataset)
func (m *Mock) Timeline(ctx context.Context, politicianID *int64) ([]domain.TimelineEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "timeline canceled")
	}
	events := dataset().timeline
	out := make([]domain.TimelineEvent, 0, len(events))
	for _, e := range events {
		e.FinancialData = append([]domain.FinancialFigure(nil), e.FinancialData...)
		out = append(out, e)
	}
	return out, nil
}

// Issues returns every tracked issue
func (m *Mock) Issues(ctx context.Context) ([]domain.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "issues canceled")
	}
	issues := dataset().issues
	out := make([]domain.Issue, 0, len(issues))
	for _, is := range issues {
		is.RelatedPoliticians = append([]int64(nil), is.RelatedPoliticians...)
		is.TimelineEvents = append([]int64(nil), is.TimelineEvents...)
		out = append(out, is)
	}
	return out, nil
}

// Attachments returns attachments, filtered by exact relatedTo label when set
func (m *Mock) Attachments(ctx context.Context, relatedTo string) ([]domain.Attachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "attachments canceled")
	}
	all := dataset().attachments
	out := make([]domain.Attachment, 0, len(all))
	want := listquery.Fold(relatedTo)
	for _, a := range all {
		if relatedTo != "" && listquery.Fold(a.RelatedTo) != want {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
