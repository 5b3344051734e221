package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/render"
)

func TestSummary(t *testing.T) {
	result := &backend.SummaryResult{
		ExecutiveSummary: "A one year lease with automatic renewal.",
		KeyClauses: []backend.KeyClause{
			{Title: "Term", Text: "One year.", Explanation: "Fixed term.", Implications: "Renews unless cancelled."},
			{Title: "Deposit", Text: "Two months rent.", Explanation: "Held in escrow.", Implications: "Refundable."},
			{Title: "Termination", Text: "60 days notice.", Explanation: "Either party.", Implications: "Written notice required."},
		},
		ImportantTerms: []backend.ImportantTerm{
			{Term: "Escrow", Definition: "Funds held by a third party."},
		},
	}

	display := render.Summary(result)

	require.Equal(t, "Document Summary", display.Title)
	require.Len(t, display.Sections, 4)

	executive := display.Sections[0]
	require.Equal(t, "Executive Summary", executive.Heading)
	require.Equal(t, []string{"A one year lease with automatic renewal."}, executive.Paragraphs)

	// Clause order follows the payload.
	clauses := display.Sections[1]
	require.Len(t, clauses.Rows, 3)
	require.Equal(t, "Term", clauses.Rows[0].Cells[0])
	require.Equal(t, "Deposit", clauses.Rows[1].Cells[0])
	require.Equal(t, "Termination", clauses.Rows[2].Cells[0])
	require.Empty(t, clauses.Placeholder)

	terms := display.Sections[2]
	require.Len(t, terms.Rows, 1)
	require.Equal(t, []string{"Escrow", "Funds held by a third party."}, terms.Rows[0].Cells)

	// Empty actionable items get the placeholder, never an empty table.
	actions := display.Sections[3]
	require.Empty(t, actions.Items)
	require.Equal(t, "No actionable items", actions.Placeholder)
}

func TestSummaryEmpty(t *testing.T) {
	display := render.Summary(&backend.SummaryResult{})

	require.Equal(t, "No summary available", display.Sections[0].Placeholder)
	require.Equal(t, "No key clauses identified", display.Sections[1].Placeholder)
	require.Equal(t, "No important terms found", display.Sections[2].Placeholder)
	require.Equal(t, "No actionable items", display.Sections[3].Placeholder)
}

func TestDraft(t *testing.T) {
	result := &backend.DraftResult{
		GeneratedClause: "Each party shall indemnify the other...",
		Sources: []backend.SourceDocument{
			{ContractType: "NDA", ContractID: "c-101"},
			{ContractType: "MSA", ContractID: "c-202"},
		},
	}

	display := render.Draft(result)

	require.Equal(t, "Generated Clause", display.Title)
	require.Len(t, display.Sections, 2)
	require.Equal(t, []string{"Each party shall indemnify the other..."}, display.Sections[0].Paragraphs)
	require.Equal(t, []string{"NDA (c-101)", "MSA (c-202)"}, display.Sections[1].Items)
}

func TestDraftNoSources(t *testing.T) {
	display := render.Draft(&backend.DraftResult{GeneratedClause: "A clause."})

	require.Equal(t, "No source documents available", display.Sections[1].Placeholder)
}
