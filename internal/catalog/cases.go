package catalog

// Case is one case-law search result.
type Case struct {
	ID             int
	Title          string
	Court          string
	Year           string
	RelevanceScore int
	Summary        string
	KeyPoints      []string
	Citation       string
}

// SeedCases returns the bundled case-law corpus. The mock searcher serves
// it verbatim; the bleve searcher indexes it.
func SeedCases() []Case {
	return []Case{
		{
			ID:             1,
			Title:          "Smith v. Johnson Construction Co.",
			Court:          "Supreme Court of California",
			Year:           "2023",
			RelevanceScore: 95,
			Summary:        "Employment contract termination dispute regarding 30-day notice requirements and severance obligations.",
			KeyPoints:      []string{"Employment termination", "Notice requirements", "Severance pay"},
			Citation:       "2023 Cal. LEXIS 4567",
		},
		{
			ID:             2,
			Title:          "Tech Innovations Ltd. v. StartupCorp",
			Court:          "Federal Circuit Court",
			Year:           "2022",
			RelevanceScore: 88,
			Summary:        "Contract dispute involving confidentiality clauses and trade secret protection in employment agreements.",
			KeyPoints:      []string{"Confidentiality", "Trade secrets", "Employment contracts"},
			Citation:       "2022 Fed. Cir. LEXIS 8901",
		},
		{
			ID:             3,
			Title:          "Global Services Inc. v. Employee Union",
			Court:          "Court of Appeals, 9th Circuit",
			Year:           "2023",
			RelevanceScore: 82,
			Summary:        "Collective bargaining agreement interpretation regarding individual employment contract modifications.",
			KeyPoints:      []string{"Collective bargaining", "Contract modification", "Union rights"},
			Citation:       "2023 9th Cir. LEXIS 2345",
		},
	}
}
