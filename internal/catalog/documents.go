package catalog

// LockerDocument is one entry in the user's document locker.
type LockerDocument struct {
	ID         int
	Name       string
	UploadDate string
	Status     DocumentStatus
}

// Clause is one analyzed section of a document, paired with its plain-
// language translation.
type Clause struct {
	ID           int
	Title        string
	OriginalText string
	Translation  string
	Importance   Importance
}

// SeedDocuments returns the locker contents for a fresh session.
func SeedDocuments() []LockerDocument {
	return []LockerDocument{
		{ID: 1, Name: "Employment Contract.pdf", UploadDate: "2024-01-15", Status: StatusAnalyzed},
		{ID: 2, Name: "Lease Agreement.pdf", UploadDate: "2024-01-14", Status: StatusPending},
		{ID: 3, Name: "NDA Template.pdf", UploadDate: "2024-01-13", Status: StatusAnalyzed},
	}
}

// SeedClauses returns the analyzed clauses of the sample employment contract.
func SeedClauses() []Clause {
	return []Clause{
		{
			ID:           1,
			Title:        "Employment Duration",
			OriginalText: "The Employee's employment under this Agreement shall commence on the Effective Date and shall continue until terminated in accordance with the provisions herein. This Agreement may be terminated by either party with thirty (30) days written notice.",
			Translation:  "Your job starts on the date mentioned in this contract and continues until either you or the company decides to end it. Either side can end the job by giving 30 days written notice to the other.",
			Importance:   ImportanceHigh,
		},
		{
			ID:           2,
			Title:        "Compensation Structure",
			OriginalText: "The Company shall pay Employee a base salary of $75,000 per annum, payable in accordance with the Company's standard payroll practices. In addition to base salary, Employee may be eligible for discretionary bonuses based on performance metrics established by the Company.",
			Translation:  "The company will pay you $75,000 per year, following their normal pay schedule. You might also get bonus money based on how well you do your job, but the company decides if and how much bonus you get.",
			Importance:   ImportanceHigh,
		},
		{
			ID:           3,
			Title:        "Confidentiality Obligations",
			OriginalText: "Employee acknowledges that during the course of employment, Employee may have access to and become acquainted with various trade secrets, inventions, innovations, processes, information, records and specifications owned or licensed by the Company.",
			Translation:  "You understand that in this job, you'll learn about secret business information, company processes, and other private details that belong to the company.",
			Importance:   ImportanceMedium,
		},
	}
}
