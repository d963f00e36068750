package domain

import "context"

// ReaderPort is the backing-store surface behind the politicians facade
// Two interchangeable implementations exist: the in-process mock dataset and
// the HTTP record service; the choice is made once at wiring time
type ReaderPort interface {
	// List returns a filtered, sorted, paginated listing
	List(ctx context.Context, p ListParams) (SummaryPage, error)

	// Search matches q case-insensitively as a substring of the full name
	// Search is intentionally looser than List's exact-match filters
	Search(ctx context.Context, q string) ([]Summary, error)

	// Details returns the full profile or a NotFound coded error
	Details(ctx context.Context, id int64) (*Details, error)
}
