package backend

// Wire types for the document-analysis backend. Field names mirror the JSON
// payloads the backend produces; they are consumed read-only by the renderer.

// KeyClause is one highlighted clause in a document summary.
type KeyClause struct {
	Title        string `json:"title"`
	Text         string `json:"text"`
	Explanation  string `json:"explanation"`
	Implications string `json:"implications"`
}

// ImportantTerm is a term/definition pair extracted from a document.
type ImportantTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// SummaryResult is the structured analysis of one uploaded document.
type SummaryResult struct {
	ID               string          `json:"_id,omitempty"`
	ExecutiveSummary string          `json:"executive_summary"`
	KeyClauses       []KeyClause     `json:"key_clauses"`
	ImportantTerms   []ImportantTerm `json:"important_terms"`
	ActionableItems  []string        `json:"actionable_items"`
	Error            string          `json:"error,omitempty"`
	RawResponse      string          `json:"raw_response,omitempty"`
}

// SourceDocument is a retrieval source cited by a drafted clause.
type SourceDocument struct {
	ContractType string `json:"contract_type"`
	ContractID   string `json:"contract_id"`
	FilePath     string `json:"file_path"`
}

// DraftResult is the outcome of one clause-drafting request.
type DraftResult struct {
	Query           string           `json:"query"`
	GeneratedClause string           `json:"generated_clause"`
	Sources         []SourceDocument `json:"sources"`
	Status          string           `json:"status"`
	Error           string           `json:"error,omitempty"`
}

// HealthStatus reports drafting-system readiness.
type HealthStatus struct {
	Status  string `json:"status"`
	System  string `json:"system"`
	Version string `json:"version"`
}

// SystemReady is the HealthStatus.System value for an initialized system.
const SystemReady = "ready"

// ContractType is one entry of the drafting corpus catalog.
type ContractType struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ContractCatalog lists the contract types available for drafting.
type ContractCatalog struct {
	Status         string         `json:"status"`
	TotalContracts int            `json:"total_contracts"`
	ContractTypes  []ContractType `json:"contract_types"`
}

// DocumentRef identifies one stored document in the backend history.
type DocumentRef struct {
	ID        string `json:"_id"`
	Filename  string `json:"filename"`
	CreatedAt string `json:"created_at"`
}

// StoredDocument is a previously analyzed document with its saved summary.
type StoredDocument struct {
	ID        string        `json:"_id"`
	Filename  string        `json:"filename"`
	CreatedAt string        `json:"created_at"`
	Status    string        `json:"status"`
	Summary   SummaryResult `json:"summary"`
}

// UserProfile is the authenticated user's profile data.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
