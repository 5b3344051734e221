package tui

import "strings"

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("AI-Powered Legal Document Analysis"))
	b.WriteString("\n\n")
	b.WriteString("  Upload contracts for structured summaries, chat with DocBot about\n")
	b.WriteString("  your documents, and draft new clauses grounded in real contracts.\n\n")
	b.WriteString("  " + okStyle.Render("Summarize") + "  clause-by-clause analysis of uploaded PDFs\n")
	b.WriteString("  " + okStyle.Render("Chat") + "       ask questions in plain language\n")
	b.WriteString("  " + okStyle.Render("Draft") + "      generate clauses from a contract corpus\n")
	if !m.svc.Session.Authenticated() {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Log in (8) or register (9) to get started."))
	}
	return b.String()
}

func (m Model) viewTry() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Try DocAnalyzer"))
	b.WriteString("\n\n")
	b.WriteString("  A quick tour, no account required:\n\n")
	b.WriteString("  1. Upload a PDF contract on the Summarize page.\n")
	b.WriteString("  2. Review the executive summary, key clauses, and terms.\n")
	b.WriteString("  3. Ask DocBot follow-up questions on the Chat page.\n\n")
	b.WriteString(dimStyle.Render("  The full workflow needs an account."))
	return b.String()
}
