package agentdoc

import "strings"

// templateSections are the pieces of a well-formed agent document, keyed by
// the subject of the rule each one satisfies.
var templateSections = []struct {
	subject string
	text    string
}{
	{subjectPersona, "You are \"Sentinel\" 🛡️ - a security-focused agent."},
	{subjectMission, "Your mission is to find one vulnerability per run.\n" + MissionClause},
	{subjectBoundaries, "## Boundaries"},
	{subjectAlwaysDo, "✅ **Always do:**\n- Run the tests"},
	{subjectAskFirst, "⚠️ **Ask first:**\n- Adding dependencies"},
	{subjectNeverDo, "🚫 **Never do:**\n- Commit secrets"},
	{subjectDailyProcess, "## Daily Process\n1. Scan\n2. Fix"},
	{subjectPriorityAreas, "## Priority Areas\n- Input validation"},
	{subjectCommonPatterns, "## Common Patterns\n- Parameterized queries"},
}

// agentDocument renders a template document without the sections whose
// subjects are listed in omit.
func agentDocument(omit ...string) string {
	skip := make(map[string]bool, len(omit))
	for _, s := range omit {
		skip[s] = true
	}

	var b strings.Builder
	for _, section := range templateSections {
		if skip[section.subject] {
			continue
		}
		b.WriteString(section.text)
		b.WriteString("\n\n")
	}
	return b.String()
}
