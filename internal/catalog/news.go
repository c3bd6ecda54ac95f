package catalog

// Article is one legal-news item.
type Article struct {
	ID       int
	Title    string
	Summary  string
	Category NewsCategory
	Date     string
	ReadTime string
	Source   string
	Urgent   bool
}

// SeedArticles returns the bundled news feed, newest first.
func SeedArticles() []Article {
	return []Article{
		{
			ID:       1,
			Title:    "Supreme Court Rules on Digital Privacy Rights in Employment Context",
			Summary:  "A landmark decision establishing new guidelines for employee privacy rights in digital communications and monitoring systems.",
			Category: CategoryEmployment,
			Date:     "2024-01-20",
			ReadTime: "5 min read",
			Source:   "Legal Times",
			Urgent:   true,
		},
		{
			ID:       2,
			Title:    "New Employment Law Amendments Effective March 2024",
			Summary:  "Comprehensive changes to employment regulations including remote work policies, compensation transparency, and termination procedures.",
			Category: CategoryEmployment,
			Date:     "2024-01-18",
			ReadTime: "7 min read",
			Source:   "Employment Law Journal",
		},
		{
			ID:       3,
			Title:    "Corporate Governance Guidelines Updated by SEC",
			Summary:  "Updated guidelines for public companies regarding board composition, executive compensation disclosure, and shareholder rights.",
			Category: CategoryCorporate,
			Date:     "2024-01-15",
			ReadTime: "6 min read",
			Source:   "Corporate Counsel",
		},
		{
			ID:       4,
			Title:    "Federal Court Clarifies Contract Law Precedents",
			Summary:  "Recent ruling provides clarity on force majeure clauses and contract modification requirements in commercial agreements.",
			Category: CategoryContract,
			Date:     "2024-01-12",
			ReadTime: "4 min read",
			Source:   "Contract Law Review",
		},
		{
			ID:       5,
			Title:    "Intellectual Property Protection Updates for Tech Companies",
			Summary:  "New guidelines for patent protection, trade secret enforcement, and software copyright in the technology sector.",
			Category: CategoryIP,
			Date:     "2024-01-10",
			ReadTime: "8 min read",
			Source:   "Tech Law Quarterly",
		},
		{
			ID:       6,
			Title:    "Environmental Compliance Requirements for 2024",
			Summary:  "Updated environmental regulations affecting manufacturing and construction industries with new compliance deadlines.",
			Category: CategoryEnvironmental,
			Date:     "2024-01-08",
			ReadTime: "6 min read",
			Source:   "Environmental Law Times",
			Urgent:   true,
		},
	}
}

// SeedTicker returns the short headlines shown in the dashboard news widget.
func SeedTicker() []string {
	return []string{
		"Supreme Court ruling on digital privacy rights",
		"New employment law amendments effective March 2024",
		"Corporate governance guidelines updated",
		"Recent changes in contract law precedents",
	}
}
