// Package render shapes backend results into display structures: ordered
// sections with paragraphs, tables, lists, and empty-section placeholders.
// It is pure presentation logic with no I/O.
package render

import (
	"fmt"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
)

// Display is a renderable document.
type Display struct {
	Title    string
	Sections []Section
}

// Section is one block of a Display. Exactly one of Paragraphs, Rows, or
// Items is populated; Placeholder is shown when the section has no content.
type Section struct {
	Heading     string
	Paragraphs  []string
	Rows        []Row
	Items       []string
	Placeholder string
}

// Row is one table row.
type Row struct {
	Cells []string
}

const (
	noClauses   = "No key clauses identified"
	noTerms     = "No important terms found"
	noActions   = "No actionable items"
	noSources   = "No source documents available"
	noSummary   = "No summary available"
	noClauseOut = "No clause was generated"
)

// Summary renders a document analysis. Section and item order follows the
// backend payload.
func Summary(result *backend.SummaryResult) Display {
	display := Display{Title: "Document Summary"}

	executive := Section{Heading: "Executive Summary"}
	if result.ExecutiveSummary != "" {
		executive.Paragraphs = []string{result.ExecutiveSummary}
	} else {
		executive.Placeholder = noSummary
	}
	display.Sections = append(display.Sections, executive)

	clauses := Section{Heading: "Key Clauses"}
	for _, clause := range result.KeyClauses {
		clauses.Rows = append(clauses.Rows, Row{Cells: []string{
			clause.Title,
			clause.Text,
			clause.Explanation,
			clause.Implications,
		}})
	}
	if len(clauses.Rows) == 0 {
		clauses.Placeholder = noClauses
	}
	display.Sections = append(display.Sections, clauses)

	terms := Section{Heading: "Important Terms"}
	for _, term := range result.ImportantTerms {
		terms.Rows = append(terms.Rows, Row{Cells: []string{term.Term, term.Definition}})
	}
	if len(terms.Rows) == 0 {
		terms.Placeholder = noTerms
	}
	display.Sections = append(display.Sections, terms)

	actions := Section{Heading: "Actionable Items"}
	actions.Items = append(actions.Items, result.ActionableItems...)
	if len(actions.Items) == 0 {
		actions.Placeholder = noActions
	}
	display.Sections = append(display.Sections, actions)

	return display
}

// Draft renders a drafted clause with its retrieval sources.
func Draft(result *backend.DraftResult) Display {
	display := Display{Title: "Generated Clause"}

	clause := Section{Heading: "Clause"}
	if result.GeneratedClause != "" {
		clause.Paragraphs = []string{result.GeneratedClause}
	} else {
		clause.Placeholder = noClauseOut
	}
	display.Sections = append(display.Sections, clause)

	sources := Section{Heading: "Source Documents"}
	for _, source := range result.Sources {
		sources.Items = append(sources.Items,
			fmt.Sprintf("%s (%s)", source.ContractType, source.ContractID))
	}
	if len(sources.Items) == 0 {
		sources.Placeholder = noSources
	}
	display.Sections = append(display.Sections, sources)

	return display
}
