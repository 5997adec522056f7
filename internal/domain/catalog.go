package domain

// JobPosting is one entry in the static catalog. The catalog is
// read-only after process start and safe to share across requests.
type JobPosting struct {
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	RequiredKeywords []string `json:"required_keywords"`
}

// DefaultCatalog is the built-in job catalog.
var DefaultCatalog = []JobPosting{
	{Title: "Customer Support Executive", Location: "Jaipur", RequiredKeywords: []string{"customer", "chat", "support", "crm"}},
	{Title: "Data Analyst", Location: "Bangalore", RequiredKeywords: []string{"data", "sql", "python", "analysis"}},
	{Title: "HR Executive", Location: "Delhi", RequiredKeywords: []string{"recruitment", "communication", "hr"}},
	{Title: "Marketing Executive", Location: "Mumbai", RequiredKeywords: []string{"marketing", "campaign", "content"}},
	{Title: "Sales Executive", Location: "Noida", RequiredKeywords: []string{"sales", "client", "crm"}},
}
