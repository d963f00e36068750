// Package repo provides the two backing stores behind the politicians facade:
// the in-process mock dataset and the HTTP record service
package repo

import (
	"context"
	"strings"
	"time"

	"polittrack/internal/core/listquery"
	"polittrack/internal/politicians/domain"
	perr "polittrack/internal/platform/errors"
	pstrings "polittrack/internal/platform/strings"
)

// Mock serves the memoized offline dataset
type Mock struct{}

// NewMock returns a mock-backed repo
func NewMock() *Mock { return &Mock{} }

// sortToken derives the comparison token for a summary per the sort key
func sortToken(s domain.SortBy) func(domain.Summary) string {
	if s.ByFirstName() {
		return func(x domain.Summary) string { return pstrings.FirstToken(x.FullName) }
	}
	return func(x domain.Summary) string { return pstrings.LastToken(x.FullName) }
}

// List runs the query pipeline over the full mock summary set
func (m *Mock) List(ctx context.Context, p domain.ListParams) (domain.SummaryPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.EmptyPage(p), perr.Wrapf(err, perr.ErrorCodeUnavailable, "list canceled")
	}
	p = p.WithDefaults()

	res := listquery.Run(dataset().summaries, listquery.Params[domain.Summary]{
		Page:      p.Page,
		Size:      p.Size,
		SortToken: sortToken(p.SortBy),
		Desc:      p.SortBy.Desc(),
		Filters: []listquery.Match[domain.Summary]{
			{Want: p.Party, Field: func(x domain.Summary) string { return x.CurrentParty }},
			{Want: p.Jurisdiction, Field: func(x domain.Summary) string { return x.Jurisdiction }},
		},
	})

	return domain.SummaryPage{
		Total:   res.Total,
		Page:    res.Page,
		Size:    res.Size,
		Pages:   res.Pages,
		Results: res.Results,
	}, nil
}

// Search matches q as a case-folded substring of the full name
// Looser than List's exact-match filters on purpose: search and filter are
// distinct product features
func (m *Mock) Search(ctx context.Context, q string) ([]domain.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "search canceled")
	}
	needle := listquery.Fold(strings.TrimSpace(q))
	if needle == "" {
		return []domain.Summary{}, nil
	}
	var out []domain.Summary
	for _, s := range dataset().summaries {
		if strings.Contains(listquery.Fold(s.FullName), needle) {
			out = append(out, s)
		}
	}
	return out, nil
}

// Details returns a deep copy of the stored profile or ErrNotFound
func (m *Mock) Details(ctx context.Context, id int64) (*domain.Details, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "details canceled")
	}
	d, ok := dataset().details[id]
	if !ok {
		return nil, perr.NotFoundf("politician %d not found", id)
	}
	c := copyDetails(d)
	return &c, nil
}

// copyDetails clones the record so callers can mutate freely
func copyDetails(d domain.Details) domain.Details {
	c := d
	if d.DateOfBirth != nil {
		t := *d.DateOfBirth
		c.DateOfBirth = &t
	}
	if d.Source != nil {
		s := *d.Source
		c.Source = &s
	}
	c.Positions = append([]domain.Position(nil), d.Positions...)
	for i := range c.Positions {
		c.Positions[i].EndDate = copyTime(c.Positions[i].EndDate)
	}
	c.PartyAffiliations = append([]domain.PartyAffiliation(nil), d.PartyAffiliations...)
	for i := range c.PartyAffiliations {
		c.PartyAffiliations[i].EndDate = copyTime(c.PartyAffiliations[i].EndDate)
	}
	c.CommitteeMemberships = append([]domain.CommitteeMembership(nil), d.CommitteeMemberships...)
	for i := range c.CommitteeMemberships {
		c.CommitteeMemberships[i].EndDate = copyTime(c.CommitteeMemberships[i].EndDate)
	}
	c.Votes = append([]domain.Vote(nil), d.Votes...)
	c.GiftsReceived = append([]domain.Gift(nil), d.GiftsReceived...)
	c.CampaignDonations = append([]domain.CampaignDonation(nil), d.CampaignDonations...)
	c.FinancialDisclosures = append([]domain.FinancialDisclosure(nil), d.FinancialDisclosures...)
	return c
}

func copyTime(pt *time.Time) *time.Time {
	if pt == nil {
		return nil
	}
	t := *pt
	return &t
}
