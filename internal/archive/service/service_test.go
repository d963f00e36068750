package service

import (
	"context"
	"testing"

	"polittrack/internal/archive/domain"
	perr "polittrack/internal/platform/errors"
)

type stubRepo struct {
	timeline    []domain.TimelineEvent
	issues      []domain.Issue
	attachments []domain.Attachment
	err         error

	gotPoliticianID *int64
	gotRelatedTo    string
}

func (s *stubRepo) Timeline(ctx context.Context, politicianID *int64) ([]domain.TimelineEvent, error) {
	s.gotPoliticianID = politicianID
	return s.timeline, s.err
}

func (s *stubRepo) Issues(ctx context.Context) ([]domain.Issue, error) {
	return s.issues, s.err
}

func (s *stubRepo) Attachments(ctx context.Context, relatedTo string) ([]domain.Attachment, error) {
	s.gotRelatedTo = relatedTo
	return s.attachments, s.err
}

func TestHappyPathsPassThrough(t *testing.T) {
	stub := &stubRepo{
		timeline:    []domain.TimelineEvent{{ID: 1, Title: "Ran for Senate"}},
		issues:      []domain.Issue{{ID: 1, Title: "Universal Healthcare"}},
		attachments: []domain.Attachment{{ID: 1, Name: "ok.pdf"}},
	}
	svc := New(stub)
	ctx := context.Background()

	id := int64(7)
	if got := svc.Timeline(ctx, &id); len(got) != 1 || got[0].Title != "Ran for Senate" {
		t.Fatalf("Timeline = %+v", got)
	}
	if stub.gotPoliticianID == nil || *stub.gotPoliticianID != 7 {
		t.Fatalf("politician id not forwarded: %v", stub.gotPoliticianID)
	}
	if got := svc.Issues(ctx); len(got) != 1 {
		t.Fatalf("Issues = %+v", got)
	}
	if got := svc.Attachments(ctx, "Issue:1"); len(got) != 1 {
		t.Fatalf("Attachments = %+v", got)
	}
	if stub.gotRelatedTo != "Issue:1" {
		t.Fatalf("relatedTo not forwarded: %q", stub.gotRelatedTo)
	}
}

func TestFailuresDegradeToEmptySlices(t *testing.T) {
	stub := &stubRepo{err: perr.Unavailablef("backend unreachable")}
	svc := New(stub)
	ctx := context.Background()

	if got := svc.Timeline(ctx, nil); got == nil || len(got) != 0 {
		t.Fatalf("Timeline degraded = %v", got)
	}
	if got := svc.Issues(ctx); got == nil || len(got) != 0 {
		t.Fatalf("Issues degraded = %v", got)
	}
	if got := svc.Attachments(ctx, ""); got == nil || len(got) != 0 {
		t.Fatalf("Attachments degraded = %v", got)
	}
}

func TestNilResultsNormalized(t *testing.T) {
	svc := New(&stubRepo{})
	ctx := context.Background()

	if got := svc.Timeline(ctx, nil); got == nil || len(got) != 0 {
		t.Fatalf("nil timeline not normalized: %v", got)
	}
	if got := svc.Issues(ctx); got == nil || len(got) != 0 {
		t.Fatalf("nil issues not normalized: %v", got)
	}
}
