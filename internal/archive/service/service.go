// Package service provides the archive facade for the secondary resources:
// timeline events, issues, and attachments
//
// These feed side panels that must never block the primary view, so every
// backing failure collapses to an empty slice through one fetch combinator
package service

import (
	"context"

	"polittrack/internal/archive/domain"
	"polittrack/internal/platform/logger"
)

// Service implements the caller-facing archive facade
type Service struct {
	storage domain.ReaderPort
	log     logger.Logger
}

// New constructs the facade over the given backing repo
func New(storage domain.ReaderPort) *Service {
	return &Service{storage: storage, log: *logger.Named("archive")}
}

// fetch is the safe-call wrapper: it runs fn and converts any failure into
// an empty slice, logging the operation that degraded
func fetch[T any](s *Service, op string, fn func() ([]T, error)) []T {
	out, err := fn()
	if err != nil {
		s.log.Warn().Err(err).Str("op", op).Msg("archive fetch degraded to empty")
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}

// Timeline returns events, optionally scoped to one politician
func (s *Service) Timeline(ctx context.Context, politicianID *int64) []domain.TimelineEvent {
	return fetch(s, "archive.timeline", func() ([]domain.TimelineEvent, error) {
		return s.storage.Timeline(ctx, politicianID)
	})
}

// Issues returns every tracked issue
func (s *Service) Issues(ctx context.Context) []domain.Issue {
	return fetch(s, "archive.issues", func() ([]domain.Issue, error) {
		return s.storage.Issues(ctx)
	})
}

// Attachments returns attachments, optionally restricted by relatedTo label
func (s *Service) Attachments(ctx context.Context, relatedTo string) []domain.Attachment {
	return fetch(s, "archive.attachments", func() ([]domain.Attachment, error) {
		return s.storage.Attachments(ctx, relatedTo)
	})
}
