package repo

import (
	"sync"
	"time"

	"polittrack/internal/archive/domain"
)

type mockData struct {
	timeline    []domain.TimelineEvent
	issues      []domain.Issue
	attachments []domain.Attachment
}

var (
	dataOnce sync.Once
	data     *mockData
)

func dataset() *mockData {
	dataOnce.Do(func() {
		data = &mockData{
			timeline:    mockTimeline(),
			issues:      mockIssues(),
			attachments: mockAttachments(),
		}
	})
	return data
}

func mockTimeline() []domain.TimelineEvent {
	return []domain.TimelineEvent{
		{
			ID: 1, Year: 2020, Type: "Election",
			Title:       "Ran for Senate",
			Description: "Campaign focused on healthcare reform",
			FinancialData: []domain.FinancialFigure{
				{Amount: 500000, Category: "Donations", Source: "Individuals"},
				{Amount: 250000, Category: "PAC Contributions", Source: "Healthcare PAC"},
			},
		},
		{
			ID: 2, Year: 2021, Type: "Legislation",
			Title:       "Introduced Clean Energy Bill",
			Description: "Proposed comprehensive climate change legislation",
			FinancialData: []domain.FinancialFigure{
				{Amount: 75000, Category: "Travel Expenses", Source: "Personal Funds"},
			},
		},
	}
}

func mockIssues() []domain.Issue {
	return []domain.Issue{
		{
			ID: 1, Title: "Universal Healthcare",
			Description:        "Proposal for a single-payer healthcare system",
			Category:           "Healthcare",
			RelatedPoliticians: []int64{1, 2},
			TimelineEvents:     []int64{1},
		},
		{
			ID: 2, Title: "Climate Action Plan",
			Description:        "Comprehensive strategy for carbon neutrality by 2050",
			Category:           "Environment",
			RelatedPoliticians: []int64{2},
			TimelineEvents:     []int64{2},
		},
		{
			ID: 3, Title: "Infrastructure Investment",
			Description:        "Plan for rebuilding roads, bridges, and public transit",
			Category:           "Economy",
			RelatedPoliticians: []int64{1},
			TimelineEvents:     []int64{},
		},
	}
}

func mockAttachments() []domain.Attachment {
	return []domain.Attachment{
		{
			ID: 1, Name: "Healthcare_White_Paper.pdf",
			URL: "/docs/healthcare-white-paper.pdf", Type: "PDF", Size: 1542876,
			UploadedAt: time.Date(2020, time.March, 15, 10, 30, 0, 0, time.UTC),
			RelatedTo:  "Issue:1",
		},
		{
			ID: 2, Name: "Climate_Proposal_Summary.docx",
			URL: "/docs/climate-proposal-summary.docx", Type: "DOCX", Size: 978345,
			UploadedAt: time.Date(2021, time.July, 22, 14, 15, 0, 0, time.UTC),
			RelatedTo:  "Issue:2",
		},
		{
			ID: 3, Name: "Campaign_Finance_Report.xlsx",
			URL: "/docs/campaign-finance-report.xlsx", Type: "XLSX", Size: 452398,
			UploadedAt: time.Date(2020, time.February, 10, 9, 45, 0, 0, time.UTC),
			RelatedTo:  "Politician:1",
		},
	}
}
