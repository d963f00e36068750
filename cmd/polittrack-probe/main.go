// Command polittrack-probe exercises every data-layer operation against the
// configured backing store (mock dataset or live backend) and prints the
// results, mirroring what the browser front end would receive
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	archmod "polittrack/internal/archive/module"
	"polittrack/internal/platform/config"
	"polittrack/internal/platform/logger"
	"polittrack/internal/politicians/domain"
	polmod "polittrack/internal/politicians/module"
)

func main() {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	l := logger.Get()

	var (
		fPage   = flag.Int("page", 1, "listing page (1-based)")
		fSize   = flag.Int("size", 9, "listing page size (9 matches the grid layout)")
		fSort   = flag.String("sort", "last_name_asc", "sort key: last_name_asc | last_name_desc | first_name_asc | first_name_desc")
		fParty  = flag.String("party", "", "exact-match party filter")
		fJur    = flag.String("jurisdiction", "", "exact-match jurisdiction filter")
		fQuery  = flag.String("q", "", "search term (substring match on full name)")
		fID     = flag.Int64("id", 0, "politician id for the detail lookup (0 skips)")
		fRel    = flag.String("related", "", "relatedTo label for attachments, e.g. Issue:1")
		fNoArch = flag.Bool("noarchive", false, "skip timeline/issues/attachments")
	)
	flag.Parse()

	ctx := logger.WithRequest(context.Background(), uuid.NewString())

	cfg := config.New()
	politicians := polmod.New(cfg)
	archive := archmod.New(cfg)

	l.Info().Bool("mock", politicians.Mock()).Msg("probe starting")

	reader := politicians.Ports().Reader

	page, err := reader.List(ctx, domain.ListParams{
		Page:         *fPage,
		Size:         *fSize,
		SortBy:       domain.SortBy(*fSort),
		Party:        *fParty,
		Jurisdiction: *fJur,
	})
	if err != nil {
		// the one failure the caller surfaces as a message
		fmt.Fprintf(os.Stderr, "listing unavailable: %v\n", err)
	}
	fmt.Printf("politicians page %d/%d (total %d)\n", page.Page, page.Pages, page.Total)
	printSummaries(page.Results)

	if *fQuery != "" {
		results := reader.Search(ctx, *fQuery)
		fmt.Printf("\nsearch %q: %d result(s)\n", *fQuery, len(results))
		printSummaries(results)
	}

	if *fID > 0 {
		d, err := reader.Details(ctx, *fID)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "details unavailable: %v\n", err)
		case d == nil:
			fmt.Printf("\npolitician %d: not found\n", *fID)
		default:
			printDetails(d)
		}
	}

	if !*fNoArch {
		ar := archive.Ports().Reader

		events := ar.Timeline(ctx, nil)
		fmt.Printf("\ntimeline: %d event(s)\n", len(events))
		for _, e := range events {
			fmt.Printf("  %d [%s] %s\n", e.Year, e.Type, e.Title)
		}

		issues := ar.Issues(ctx)
		fmt.Printf("issues: %d\n", len(issues))
		for _, is := range issues {
			fmt.Printf("  [%s] %s\n", is.Category, is.Title)
		}

		atts := ar.Attachments(ctx, *fRel)
		fmt.Printf("attachments: %d\n", len(atts))
		for _, a := range atts {
			fmt.Printf("  %s (%s, %d bytes, %s)\n", a.Name, a.Type, a.Size, a.RelatedTo)
		}
	}
}

func printSummaries(xs []domain.Summary) {
	if len(xs) == 0 {
		fmt.Println("  (none)")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, s := range xs {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n",
			s.ID, s.FullName, s.CurrentParty, s.CurrentPositionTitle, s.Jurisdiction)
	}
	_ = w.Flush()
}

func printDetails(d *domain.Details) {
	fmt.Printf("\n%s %s (id %d)\n", d.FirstName, d.LastName, d.ID)
	if d.Biography != "" {
		fmt.Printf("  %s\n", d.Biography)
	}
	for _, p := range d.Positions {
		fmt.Printf("  position: %s, %s (%s)\n", p.Title, p.Jurisdiction, domain.FormatRange(p.StartDate, p.EndDate))
	}
	for _, a := range d.PartyAffiliations {
		fmt.Printf("  party: %s (%s)\n", a.PartyName, domain.FormatRange(a.StartDate, a.EndDate))
	}
	fmt.Printf("  votes: %d, gifts: %d, donations: %d, disclosures: %d\n",
		len(d.Votes), len(d.GiftsReceived), len(d.CampaignDonations), len(d.FinancialDisclosures))
}
