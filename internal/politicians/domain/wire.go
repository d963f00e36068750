package domain

import (
	"time"

	perr "polittrack/internal/platform/errors"
	pstrings "polittrack/internal/platform/strings"
)

// Wire formats: the shapes exactly as the backend delivers them, with every
// date a string. Hydration converts them to the typed records above; no date
// string crosses into the domain once hydration has run

// WireSummary is a listing record as delivered over the wire
type WireSummary struct {
	ID                   int64   `json:"id"`
	FullName             string  `json:"full_name"`
	CurrentParty         *string `json:"current_party"`
	CurrentPositionTitle *string `json:"current_position_title"`
	Jurisdiction         *string `json:"jurisdiction"`
}

// WireSummaryPage is the paginated envelope as delivered over the wire
type WireSummaryPage struct {
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	Size    int           `json:"size"`
	Pages   int           `json:"pages"`
	Results []WireSummary `json:"results"`
}

// WireSearchEnvelope wraps search results
type WireSearchEnvelope struct {
	Results []WireSummary `json:"results"`
}

// WireSource mirrors Source with a string retrieval date
type WireSource struct {
	Name          string  `json:"name"`
	URL           *string `json:"url"`
	RetrievalDate string  `json:"retrieval_date"`
}

// WirePosition mirrors Position with string dates
type WirePosition struct {
	Title        string  `json:"title"`
	Jurisdiction string  `json:"jurisdiction"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
}

// WirePartyAffiliation mirrors PartyAffiliation with string dates
type WirePartyAffiliation struct {
	PartyName string  `json:"party_name"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// WireCommitteeMembership mirrors CommitteeMembership with string dates
type WireCommitteeMembership struct {
	Role      string          `json:"role"`
	StartDate string          `json:"start_date"`
	EndDate   *string         `json:"end_date"`
	Committee CommitteeDetail `json:"committee"`
}

// WireVote mirrors Vote with a string vote date
type WireVote struct {
	VoteDate   string `json:"vote_date"`
	Position   string `json:"position"`
	BillNumber string `json:"bill_number"`
	BillTitle  string `json:"bill_title"`
}

// WireGift mirrors Gift with a string report date
type WireGift struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	ReportDate  string  `json:"report_date"`
	Donor       string  `json:"donor"`
}

// WireCampaignDonation mirrors CampaignDonation with a string date
type WireCampaignDonation struct {
	DonorName string  `json:"donor_name"`
	DonorType string  `json:"donor_type"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
}

// WireFinancialDisclosure mirrors FinancialDisclosure with a string filing date
type WireFinancialDisclosure struct {
	ReportYear  int    `json:"report_year"`
	FilingDate  string `json:"filing_date"`
	DocumentURL string `json:"document_url"`
}

// WireDetails is the full profile as delivered over the wire
type WireDetails struct {
	ID                 int64       `json:"id"`
	FirstName          string      `json:"first_name"`
	LastName           string      `json:"last_name"`
	DateOfBirth        *string     `json:"date_of_birth"`
	Biography          *string     `json:"biography"`
	OfficialWebsiteURL *string     `json:"official_website_url"`
	Source             *WireSource `json:"source"`

	Positions            []WirePosition            `json:"positions"`
	PartyAffiliations    []WirePartyAffiliation    `json:"party_affiliations"`
	CommitteeMemberships []WireCommitteeMembership `json:"committee_memberships"`
	Votes                []WireVote                `json:"votes"`
	GiftsReceived        []WireGift                `json:"gifts_received"`
	CampaignDonations    []WireCampaignDonation    `json:"campaign_donations"`
	FinancialDisclosures []WireFinancialDisclosure `json:"financial_disclosures"`
}

// dateLayouts are the accepted wire formats; the backend emits both
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a wire date string against the accepted layouts
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, perr.Wrapf(lastErr, perr.ErrorCodeDecode, "unparseable date %q", s)
}

// optionalDate degrades absent, empty, and malformed strings to nil
// A nil here renders as "Present" (end dates) or blank downstream
func optionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil
	}
	return &t
}

// requiredDate fails on absent or malformed strings
func requiredDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, perr.Decodef("missing required date %s", field)
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, perr.WithField(err, field)
	}
	return t, nil
}

// HydrateSummary converts a wire summary to its domain form
// Summaries carry no dates, so hydration only collapses pointer optionals
func HydrateSummary(w WireSummary) Summary {
	return Summary{
		ID:                   w.ID,
		FullName:             w.FullName,
		CurrentParty:         pstrings.Deref(w.CurrentParty),
		CurrentPositionTitle: pstrings.Deref(w.CurrentPositionTitle),
		Jurisdiction:         pstrings.Deref(w.Jurisdiction),
	}
}

// HydrateSummaries converts a wire summary slice element-wise
func HydrateSummaries(ws []WireSummary) []Summary {
	out := make([]Summary, 0, len(ws))
	for _, w := range ws {
		out = append(out, HydrateSummary(w))
	}
	return out
}

// HydrateSummaryPage converts a wire envelope, trusting its pagination numbers
func HydrateSummaryPage(w WireSummaryPage) SummaryPage {
	return SummaryPage{
		Total:   w.Total,
		Page:    w.Page,
		Size:    w.Size,
		Pages:   w.Pages,
		Results: HydrateSummaries(w.Results),
	}
}

// Dropped records a collection element that failed hydration and was omitted
type Dropped struct {
	Collection string
	Index      int
	Err        error
}

// HydrateDetails converts a wire profile to its domain form
// Collections hydrate element-wise: an element whose required date is missing
// or malformed is dropped and reported, and the record survives
func HydrateDetails(w WireDetails) (Details, []Dropped) {
	var dropped []Dropped
	drop := func(coll string, i int, err error) {
		dropped = append(dropped, Dropped{Collection: coll, Index: i, Err: err})
	}

	d := Details{
		ID:                 w.ID,
		FirstName:          w.FirstName,
		LastName:           w.LastName,
		DateOfBirth:        optionalDate(w.DateOfBirth),
		Biography:          pstrings.Deref(w.Biography),
		OfficialWebsiteURL: pstrings.Deref(w.OfficialWebsiteURL),
	}

	if w.Source != nil {
		rd, err := requiredDate(w.Source.RetrievalDate, "source.retrieval_date")
		if err != nil {
			drop("source", 0, err)
		} else {
			d.Source = &Source{
				Name:          w.Source.Name,
				URL:           pstrings.Deref(w.Source.URL),
				RetrievalDate: rd,
			}
		}
	}

	d.Positions = make([]Position, 0, len(w.Positions))
	for i, p := range w.Positions {
		start, err := requiredDate(p.StartDate, "start_date")
		if err != nil {
			drop("positions", i, err)
			continue
		}
		d.Positions = append(d.Positions, Position{
			Title:        p.Title,
			Jurisdiction: p.Jurisdiction,
			StartDate:    start,
			EndDate:      optionalDate(p.EndDate),
		})
	}

	d.PartyAffiliations = make([]PartyAffiliation, 0, len(w.PartyAffiliations))
	for i, a := range w.PartyAffiliations {
		start, err := requiredDate(a.StartDate, "start_date")
		if err != nil {
			drop("party_affiliations", i, err)
			continue
		}
		d.PartyAffiliations = append(d.PartyAffiliations, PartyAffiliation{
			PartyName: a.PartyName,
			StartDate: start,
			EndDate:   optionalDate(a.EndDate),
		})
	}

	d.CommitteeMemberships = make([]CommitteeMembership, 0, len(w.CommitteeMemberships))
	for i, m := range w.CommitteeMemberships {
		start, err := requiredDate(m.StartDate, "start_date")
		if err != nil {
			drop("committee_memberships", i, err)
			continue
		}
		d.CommitteeMemberships = append(d.CommitteeMemberships, CommitteeMembership{
			Role:      m.Role,
			StartDate: start,
			EndDate:   optionalDate(m.EndDate),
			Committee: m.Committee,
		})
	}

	d.Votes = make([]Vote, 0, len(w.Votes))
	for i, v := range w.Votes {
		when, err := requiredDate(v.VoteDate, "vote_date")
		if err != nil {
			drop("votes", i, err)
			continue
		}
		d.Votes = append(d.Votes, Vote{
			VoteDate:   when,
			Position:   v.Position,
			BillNumber: v.BillNumber,
			BillTitle:  v.BillTitle,
		})
	}

	d.GiftsReceived = make([]Gift, 0, len(w.GiftsReceived))
	for i, g := range w.GiftsReceived {
		when, err := requiredDate(g.ReportDate, "report_date")
		if err != nil {
			drop("gifts_received", i, err)
			continue
		}
		d.GiftsReceived = append(d.GiftsReceived, Gift{
			Description: g.Description,
			Value:       g.Value,
			ReportDate:  when,
			Donor:       g.Donor,
		})
	}

	d.CampaignDonations = make([]CampaignDonation, 0, len(w.CampaignDonations))
	for i, c := range w.CampaignDonations {
		when, err := requiredDate(c.Date, "date")
		if err != nil {
			drop("campaign_donations", i, err)
			continue
		}
		d.CampaignDonations = append(d.CampaignDonations, CampaignDonation{
			DonorName: c.DonorName,
			DonorType: c.DonorType,
			Amount:    c.Amount,
			Date:      when,
		})
	}

	d.FinancialDisclosures = make([]FinancialDisclosure, 0, len(w.FinancialDisclosures))
	for i, f := range w.FinancialDisclosures {
		when, err := requiredDate(f.FilingDate, "filing_date")
		if err != nil {
			drop("financial_disclosures", i, err)
			continue
		}
		d.FinancialDisclosures = append(d.FinancialDisclosures, FinancialDisclosure{
			ReportYear:  f.ReportYear,
			FilingDate:  when,
			DocumentURL: f.DocumentURL,
		})
	}

	return d, dropped
}
