package agentdoc

import (
	"regexp"
	"strings"
)

const (
	subjectMission        = "mission"
	subjectBoundaries     = "Boundaries"
	subjectAlwaysDo       = "Always do"
	subjectAskFirst       = "Ask first"
	subjectNeverDo        = "Never do"
	subjectDailyProcess   = "Daily Process"
	subjectPriorityAreas  = "Priority Areas"
	subjectCommonPatterns = "Common Patterns"
	subjectPersona        = "emoji"
)

// MissionClause is the sentence every agent mission must end with.
const MissionClause = "And ensure the build passes without build or lint errors or warnings."

// personaSymbols are the pictograms that identify a recognized agent persona.
var personaSymbols = []string{
	"🤖", "🛡️", "⚡", "🌐", "🧘", "🔍", "🎨", "😎", "🐳", "☸️",
	"🗄️", "🔄", "📊", "🔌", "📱", "🧪", "⚛️", "📚", "🐍",
}

// Rule is a single presence check over a document's text.
type Rule interface {
	// Subject names the required element in diagnostics.
	Subject() string
	Satisfied(content string) bool
}

type containsRule struct {
	subject string
	marker  string
}

// NewContainsRule returns a rule satisfied when content contains marker
// verbatim.
func NewContainsRule(subject, marker string) Rule {
	return &containsRule{
		subject: subject,
		marker:  marker,
	}
}

func (r *containsRule) Subject() string {
	return r.subject
}

func (r *containsRule) Satisfied(content string) bool {
	return strings.Contains(content, r.marker)
}

func (r *containsRule) String() string {
	return r.marker
}

type patternRule struct {
	subject string
	pattern *regexp.Regexp
}

// NewPatternRule returns a rule satisfied when pattern matches anywhere in
// content.
func NewPatternRule(subject string, pattern *regexp.Regexp) Rule {
	return &patternRule{
		subject: subject,
		pattern: pattern,
	}
}

func (r *patternRule) Subject() string {
	return r.subject
}

func (r *patternRule) Satisfied(content string) bool {
	return r.pattern.MatchString(content)
}

func (r *patternRule) String() string {
	return r.pattern.String()
}

// personaPattern matches the "You are" introduction followed, possibly on a
// later line, by one of the persona symbols.
var personaPattern = func() *regexp.Regexp {
	quoted := make([]string, len(personaSymbols))
	for i, s := range personaSymbols {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile(`(?s)You are.*(?:` + strings.Join(quoted, "|") + `)`)
}()

var defaultRules = []Rule{
	NewContainsRule(subjectMission, MissionClause),
	NewContainsRule(subjectBoundaries, "## Boundaries"),
	NewContainsRule(subjectAlwaysDo, "✅ **Always do:**"),
	NewContainsRule(subjectAskFirst, "⚠️ **Ask first:**"),
	NewContainsRule(subjectNeverDo, "🚫 **Never do:**"),
	NewContainsRule(subjectDailyProcess, "## Daily Process"),
	NewContainsRule(subjectPriorityAreas, "## Priority Areas"),
	NewContainsRule(subjectCommonPatterns, "## Common Patterns"),
	NewPatternRule(subjectPersona, personaPattern),
}

// DefaultRules returns the template rules in check order. The slice is a
// copy; the rules themselves are shared and immutable.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

// PersonaSymbols returns the recognized persona pictograms.
func PersonaSymbols() []string {
	symbols := make([]string, len(personaSymbols))
	copy(symbols, personaSymbols)
	return symbols
}
