// Package service provides the politicians facade, the single entry point
// callers use for listing, search, and detail lookups
//
// Failure policy: no transport or decode error escapes raw. List and Details
// return a safe zero result together with a coded, renderable error (the one
// failure callers surface); Search always degrades to an empty slice
package service

import (
	"context"
	"strings"

	"polittrack/internal/politicians/domain"
	perr "polittrack/internal/platform/errors"
	"polittrack/internal/platform/logger"
	"polittrack/internal/platform/validate"
)

// Service implements the caller-facing facade over a ReaderPort
// The backing repo (mock or rest) is chosen once at construction and call
// sites never branch on mode
type Service struct {
	storage domain.ReaderPort
	log     logger.Logger
}

// New constructs the facade over the given backing repo
func New(storage domain.ReaderPort) *Service {
	return &Service{storage: storage, log: *logger.Named("politicians")}
}

// List validates and defaults p, then delegates to the backing store
// Invalid params are an input error: coded Validation, no I/O, no log
// A backing failure is logged and comes back as an empty page that still
// satisfies the pagination invariants, plus the coded error
func (s *Service) List(ctx context.Context, p domain.ListParams) (domain.SummaryPage, error) {
	if err := validate.Struct(p); err != nil {
		return domain.EmptyPage(p), err
	}
	p = p.WithDefaults()

	page, err := s.storage.List(ctx, p)
	if err != nil {
		s.log.Warn().Err(err).Int("page", p.Page).Int("size", p.Size).Msg("list politicians failed")
		return domain.EmptyPage(p), perr.WithOp(err, "politicians.list")
	}
	return page, nil
}

// Search returns summaries whose full name contains q case-insensitively
// Empty or whitespace-only q short-circuits to an empty slice without any I/O
// Every backing failure degrades to an empty slice
func (s *Service) Search(ctx context.Context, q string) []domain.Summary {
	if strings.TrimSpace(q) == "" {
		return []domain.Summary{}
	}
	out, err := s.storage.Search(ctx, q)
	if err != nil {
		s.log.Warn().Err(err).Str("query", q).Msg("search politicians failed")
		return []domain.Summary{}
	}
	if out == nil {
		return []domain.Summary{}
	}
	return out
}

// Details returns the full profile, or nil when the record does not exist
// Not-found is a distinguished absent result: (nil, nil). Any other failure
// is logged and returned as (nil, coded error) alongside the absent record
func (s *Service) Details(ctx context.Context, id int64) (*domain.Details, error) {
	d, err := s.storage.Details(ctx, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			s.log.Debug().Int64("politician_id", id).Msg("politician not found")
			return nil, nil
		}
		s.log.Warn().Err(err).Int64("politician_id", id).Msg("fetch politician details failed")
		return nil, perr.WithOp(err, "politicians.details")
	}
	return d, nil
}
