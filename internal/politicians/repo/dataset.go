package repo

import (
	"sync"
	"time"

	"polittrack/internal/politicians/domain"
	ptime "polittrack/internal/platform/time"
)

// The offline dataset. Loaded lazily exactly once, read-only thereafter;
// repos hand out copies, never the backing slices

type mockData struct {
	summaries []domain.Summary
	details   map[int64]domain.Details
}

var (
	dataOnce sync.Once
	data     *mockData
)

func dataset() *mockData {
	dataOnce.Do(func() {
		data = &mockData{
			summaries: mockSummaries(),
			details:   mockDetails(),
		}
	})
	return data
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mockSummaries() []domain.Summary {
	return []domain.Summary{
		{ID: 1, FullName: "Nancy Pelosi", CurrentParty: "Democratic", CurrentPositionTitle: "U.S. Representative", Jurisdiction: "California"},
		{ID: 2, FullName: "Mitch McConnell", CurrentParty: "Republican", CurrentPositionTitle: "Senator", Jurisdiction: "Kentucky"},
		{ID: 3, FullName: "Chuck Schumer", CurrentParty: "Democratic", CurrentPositionTitle: "Senator", Jurisdiction: "New York"},
		{ID: 4, FullName: "Kevin McCarthy", CurrentParty: "Republican", CurrentPositionTitle: "U.S. Representative", Jurisdiction: "California"},
		{ID: 5, FullName: "Alexandria Ocasio-Cortez", CurrentParty: "Democratic", CurrentPositionTitle: "U.S. Representative", Jurisdiction: "New York"},
		{ID: 6, FullName: "Ted Cruz", CurrentParty: "Republican", CurrentPositionTitle: "Senator", Jurisdiction: "Texas"},
		{ID: 7, FullName: "Bernie Sanders", CurrentParty: "Independent", CurrentPositionTitle: "Senator", Jurisdiction: "Vermont"},
		{ID: 8, FullName: "Marco Rubio", CurrentParty: "Republican", CurrentPositionTitle: "Senator", Jurisdiction: "Florida"},
		{ID: 9, FullName: "Elizabeth Warren", CurrentParty: "Democratic", CurrentPositionTitle: "Senator", Jurisdiction: "Massachusetts"},
		{ID: 10, FullName: "Mike Pence", CurrentParty: "Republican", CurrentPositionTitle: "Former Vice President", Jurisdiction: "Indiana"},
		{ID: 11, FullName: "Kamala Harris", CurrentParty: "Democratic", CurrentPositionTitle: "Vice President", Jurisdiction: "California"},
		{ID: 12, FullName: "Joe Biden", CurrentParty: "Democratic", CurrentPositionTitle: "President", Jurisdiction: "Delaware"},
		{ID: 13, FullName: "Donald Trump", CurrentParty: "Republican", CurrentPositionTitle: "Former President", Jurisdiction: "Florida"},
		{ID: 14, FullName: "Pete Buttigieg", CurrentParty: "Democratic", CurrentPositionTitle: "Secretary of Transportation", Jurisdiction: "Michigan"},
		{ID: 15, FullName: "Ron DeSantis", CurrentParty: "Republican", CurrentPositionTitle: "Governor", Jurisdiction: "Florida"},
		{ID: 16, FullName: "Gavin Newsom", CurrentParty: "Democratic", CurrentPositionTitle: "Governor", Jurisdiction: "California"},
		{ID: 17, FullName: "Kirsten Gillibrand", CurrentParty: "Democratic", CurrentPositionTitle: "Senator", Jurisdiction: "New York"},
		{ID: 18, FullName: "Lindsey Graham", CurrentParty: "Republican", CurrentPositionTitle: "Senator", Jurisdiction: "South Carolina"},
		{ID: 19, FullName: "Cory Booker", CurrentParty: "Democratic", CurrentPositionTitle: "Senator", Jurisdiction: "New Jersey"},
		{ID: 20, FullName: "Tim Scott", CurrentParty: "Republican", CurrentPositionTitle: "Senator", Jurisdiction: "South Carolina"},
		{ID: 21, FullName: "Mitt Romney", CurrentParty: "Republican", CurrentPositionTitle: "Senator", Jurisdiction: "Utah"},
		{ID: 22, FullName: "Amy Klobuchar", CurrentParty: "Democratic", CurrentPositionTitle: "Senator", Jurisdiction: "Minnesota"},
		{ID: 23, FullName: "John Cornyn", CurrentParty: "Republican", CurrentPositionTitle: "Senator", Jurisdiction: "Texas"},
	}
}

func mockDetails() map[int64]domain.Details {
	return map[int64]domain.Details{
		1: {
			ID:          1,
			FirstName:   "Nancy",
			LastName:    "Pelosi",
			DateOfBirth: ptime.Ptr(day(1940, time.March, 26)),
			Biography:   "Represented San Francisco in the House since 1987 and twice served as Speaker.",
			Source: &domain.Source{
				Name:          "Congressional Record Archive",
				URL:           "https://example.org/records/pelosi",
				RetrievalDate: day(2023, time.June, 12),
			},
			Positions: []domain.Position{
				{Title: "Speaker of the House", Jurisdiction: "United States", StartDate: day(2019, time.January, 3), EndDate: ptime.Ptr(day(2023, time.January, 3))},
				{Title: "U.S. Representative", Jurisdiction: "California", StartDate: day(1987, time.June, 2)},
			},
			PartyAffiliations: []domain.PartyAffiliation{
				{PartyName: "Democratic", StartDate: day(1987, time.June, 2)},
			},
			CommitteeMemberships: []domain.CommitteeMembership{
				{Role: "Member", StartDate: day(1991, time.January, 3), EndDate: ptime.Ptr(day(2003, time.January, 3)),
					Committee: domain.CommitteeDetail{Name: "Appropriations", Chamber: "House"}},
			},
			Votes: []domain.Vote{
				{VoteDate: day(2021, time.November, 5), Position: "Yes", BillNumber: "H.R.3684", BillTitle: "Infrastructure Investment and Jobs Act"},
				{VoteDate: day(2022, time.August, 12), Position: "Yes", BillNumber: "H.R.5376", BillTitle: "Inflation Reduction Act"},
			},
			GiftsReceived: []domain.Gift{
				{Description: "Commemorative gavel", Value: 350, ReportDate: day(2019, time.February, 1), Donor: "House Historical Society"},
			},
			CampaignDonations: []domain.CampaignDonation{
				{DonorName: "Bay Area Leadership PAC", DonorType: "PAC", Amount: 5000, Date: day(2020, time.September, 18)},
			},
			FinancialDisclosures: []domain.FinancialDisclosure{
				{ReportYear: 2022, FilingDate: day(2023, time.May, 15), DocumentURL: "https://example.org/disclosures/pelosi-2022.pdf"},
			},
		},
		6: {
			ID:          6,
			FirstName:   "Ted",
			LastName:    "Cruz",
			DateOfBirth: ptime.Ptr(day(1970, time.December, 22)),
			Biography:   "Junior senator from Texas, first elected in 2012.",
			Source: &domain.Source{
				Name:          "Senate Historical Office",
				RetrievalDate: day(2023, time.April, 3),
			},
			Positions: []domain.Position{
				{Title: "Solicitor General of Texas", Jurisdiction: "Texas", StartDate: day(2003, time.January, 9), EndDate: ptime.Ptr(day(2008, time.May, 12))},
				{Title: "Senator", Jurisdiction: "Texas", StartDate: day(2013, time.January, 3)},
			},
			PartyAffiliations: []domain.PartyAffiliation{
				{PartyName: "Republican", StartDate: day(2013, time.January, 3)},
			},
			CommitteeMemberships: []domain.CommitteeMembership{
				{Role: "Ranking Member", StartDate: day(2021, time.February, 3),
					Committee: domain.CommitteeDetail{Name: "Commerce, Science, and Transportation", Chamber: "Senate"}},
			},
			Votes: []domain.Vote{
				{VoteDate: day(2021, time.August, 10), Position: "No", BillNumber: "H.R.3684", BillTitle: "Infrastructure Investment and Jobs Act"},
			},
			GiftsReceived: []domain.Gift{},
			CampaignDonations: []domain.CampaignDonation{
				{DonorName: "Lone Star Values PAC", DonorType: "PAC", Amount: 10000, Date: day(2018, time.October, 2)},
			},
			FinancialDisclosures: []domain.FinancialDisclosure{
				{ReportYear: 2021, FilingDate: day(2022, time.May, 16), DocumentURL: "https://example.org/disclosures/cruz-2021.pdf"},
			},
		},
		7: {
			ID:          7,
			FirstName:   "Bernie",
			LastName:    "Sanders",
			DateOfBirth: ptime.Ptr(day(1941, time.September, 8)),
			Biography:   "Senator from Vermont and longest-serving independent in congressional history.",
			Positions: []domain.Position{
				{Title: "Mayor of Burlington", Jurisdiction: "Vermont", StartDate: day(1981, time.April, 6), EndDate: ptime.Ptr(day(1989, time.April, 4))},
				{Title: "U.S. Representative", Jurisdiction: "Vermont", StartDate: day(1991, time.January, 3), EndDate: ptime.Ptr(day(2007, time.January, 3))},
				{Title: "Senator", Jurisdiction: "Vermont", StartDate: day(2007, time.January, 3)},
			},
			PartyAffiliations: []domain.PartyAffiliation{
				{PartyName: "Independent", StartDate: day(1981, time.April, 6)},
			},
			CommitteeMemberships: []domain.CommitteeMembership{
				{Role: "Chair", StartDate: day(2021, time.February, 3),
					Committee: domain.CommitteeDetail{Name: "Budget", Chamber: "Senate"}},
			},
			Votes: []domain.Vote{
				{VoteDate: day(2021, time.August, 10), Position: "Yes", BillNumber: "H.R.3684", BillTitle: "Infrastructure Investment and Jobs Act"},
				{VoteDate: day(2022, time.August, 7), Position: "Yes", BillNumber: "H.R.5376", BillTitle: "Inflation Reduction Act"},
			},
			GiftsReceived:     []domain.Gift{},
			CampaignDonations: []domain.CampaignDonation{},
			FinancialDisclosures: []domain.FinancialDisclosure{
				{ReportYear: 2022, FilingDate: day(2023, time.May, 15), DocumentURL: "https://example.org/disclosures/sanders-2022.pdf"},
			},
		},
	}
}
