package agentdoc

import "fmt"

// Diagnostic reports one required element missing from a document.
type Diagnostic struct {
	Document string `json:"document"`
	Subject  string `json:"subject"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("Missing %s in %s", d.Subject, d.Document)
}

// Check evaluates every rule against doc and returns one diagnostic per
// unsatisfied rule, in rule order.
func Check(doc *Document, rules []Rule) []Diagnostic {
	var diagnostics []Diagnostic
	for _, rule := range rules {
		if rule.Satisfied(doc.Content) {
			continue
		}
		diagnostics = append(diagnostics, Diagnostic{
			Document: doc.Name,
			Subject:  rule.Subject(),
		})
	}
	return diagnostics
}
