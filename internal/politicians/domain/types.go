// Package domain defines the types and ports for the politicians resources
package domain

import (
	"strconv"
	"time"
)

// SortBy enumerates the supported list orderings
// Values match the backend's sort_by query parameter
type SortBy string

// Supported sort keys
const (
	SortLastNameAsc   SortBy = "last_name_asc"
	SortLastNameDesc  SortBy = "last_name_desc"
	SortFirstNameAsc  SortBy = "first_name_asc"
	SortFirstNameDesc SortBy = "first_name_desc"
)

// Desc reports whether the key orders descending
func (s SortBy) Desc() bool {
	return s == SortLastNameDesc || s == SortFirstNameDesc
}

// ByFirstName reports whether the key sorts on the first name token
func (s SortBy) ByFirstName() bool {
	return s == SortFirstNameAsc || s == SortFirstNameDesc
}

// ListParams are the caller-supplied parameters for a politician listing
// Zero Page/Size/SortBy take defaults; Party and Jurisdiction are optional
// case-insensitive exact-match filters
type ListParams struct {
	Page         int    `json:"page" validate:"omitempty,min=1"`
	Size         int    `json:"size" validate:"omitempty,min=1,max=100"`
	SortBy       SortBy `json:"sort_by" validate:"omitempty,oneof=last_name_asc last_name_desc first_name_asc first_name_desc"`
	Party        string `json:"party"`
	Jurisdiction string `json:"jurisdiction"`
}

// WithDefaults returns a copy with zero fields replaced by defaults
func (p ListParams) WithDefaults() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = 10
	}
	if p.SortBy == "" {
		p.SortBy = SortLastNameAsc
	}
	return p
}

// Summary is the lightweight listing record for an officeholder
// Optional fields use "" for absent
type Summary struct {
	ID                   int64  `json:"id"`
	FullName             string `json:"full_name"`
	CurrentParty         string `json:"current_party,omitempty"`
	CurrentPositionTitle string `json:"current_position_title,omitempty"`
	Jurisdiction         string `json:"jurisdiction,omitempty"`
}

// SummaryPage is the paginated listing envelope
// Pages is always ceil(Total/Size) and len(Results) never exceeds Size
type SummaryPage struct {
	Total   int       `json:"total"`
	Page    int       `json:"page"`
	Size    int       `json:"size"`
	Pages   int       `json:"pages"`
	Results []Summary `json:"results"`
}

// EmptyPage returns an envelope with no results that still satisfies the
// pagination invariants for the given params
func EmptyPage(p ListParams) SummaryPage {
	p = p.WithDefaults()
	return SummaryPage{Page: p.Page, Size: p.Size, Results: []Summary{}}
}

// Source is the citation a detail record was compiled from
type Source struct {
	Name          string    `json:"name"`
	URL           string    `json:"url,omitempty"`
	RetrievalDate time.Time `json:"retrieval_date"`
}

// Position is one political office held
// A nil EndDate means the position is ongoing
type Position struct {
	Title        string     `json:"title"`
	Jurisdiction string     `json:"jurisdiction"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

// Current reports whether the position has no end date
func (p Position) Current() bool { return p.EndDate == nil }

// PartyAffiliation is one party membership span
type PartyAffiliation struct {
	PartyName string     `json:"party_name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// Current reports whether the affiliation has no end date
func (a PartyAffiliation) Current() bool { return a.EndDate == nil }

// CommitteeDetail names a committee and its chamber (House, Senate, Joint)
type CommitteeDetail struct {
	Name    string `json:"name"`
	Chamber string `json:"chamber"`
}

// CommitteeMembership is one committee seat
type CommitteeMembership struct {
	Role      string          `json:"role"`
	StartDate time.Time       `json:"start_date"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
	Committee CommitteeDetail `json:"committee"`
}

// Vote is one recorded floor vote
type Vote struct {
	VoteDate   time.Time `json:"vote_date"`
	Position   string    `json:"position"`
	BillNumber string    `json:"bill_number"`
	BillTitle  string    `json:"bill_title"`
}

// Gift is one reported gift received
type Gift struct {
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	ReportDate  time.Time `json:"report_date"`
	Donor       string    `json:"donor"`
}

// CampaignDonation is one reported campaign contribution
type CampaignDonation struct {
	DonorName string    `json:"donor_name"`
	DonorType string    `json:"donor_type"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
}

// FinancialDisclosure is one filed disclosure document
type FinancialDisclosure struct {
	ReportYear  int       `json:"report_year"`
	FilingDate  time.Time `json:"filing_date"`
	DocumentURL string    `json:"document_url"`
}

// Details is the complete profile of an officeholder
type Details struct {
	ID                 int64      `json:"id"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Biography          string     `json:"biography,omitempty"`
	OfficialWebsiteURL string     `json:"official_website_url,omitempty"`

	Source *Source `json:"source,omitempty"`

	Positions            []Position            `json:"positions"`
	PartyAffiliations    []PartyAffiliation    `json:"party_affiliations"`
	CommitteeMemberships []CommitteeMembership `json:"committee_memberships"`
	Votes                []Vote                `json:"votes"`
	GiftsReceived        []Gift                `json:"gifts_received"`
	CampaignDonations    []CampaignDonation    `json:"campaign_donations"`
	FinancialDisclosures []FinancialDisclosure `json:"financial_disclosures"`
}

// FormatRange renders a year span like "2013 - 2019" or "2013 - Present"
// A nil end means ongoing
func FormatRange(start time.Time, end *time.Time) string {
	if start.IsZero() {
		return ""
	}
	from := strconv.Itoa(start.Year())
	if end == nil || end.IsZero() {
		return from + " - Present"
	}
	return from + " - " + strconv.Itoa(end.Year())
}
