package agentdoc

import (
	"fmt"
	"io/fs"
)

// EventType identifies a validation progress event.
type EventType string

const (
	EventValidationStart    EventType = "validation_start"
	EventDocumentChecked    EventType = "document_checked"
	EventValidationComplete EventType = "validation_complete"
)

// ProgressEvent is delivered to a ProgressCallback as validation advances.
// Document is set only for EventDocumentChecked.
type ProgressEvent struct {
	Type     EventType
	Message  string
	Document *DocumentResult
}

// ProgressCallback receives progress events synchronously.
type ProgressCallback func(event ProgressEvent)

// NoopProgressCallback ignores every event.
func NoopProgressCallback(ProgressEvent) {}

// DocumentResult holds the diagnostics produced for one candidate.
type DocumentResult struct {
	Name        string       `json:"name"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Passed reports whether the document satisfied every rule.
func (r *DocumentResult) Passed() bool {
	return len(r.Diagnostics) == 0
}

// Report is the outcome of one validation run, documents in check order.
type Report struct {
	Documents []*DocumentResult `json:"documents"`
}

// Diagnostics flattens the report in document-then-rule order.
func (r *Report) Diagnostics() []Diagnostic {
	var diagnostics []Diagnostic
	for _, doc := range r.Documents {
		diagnostics = append(diagnostics, doc.Diagnostics...)
	}
	return diagnostics
}

// Passed reports whether no diagnostics were produced.
func (r *Report) Passed() bool {
	for _, doc := range r.Documents {
		if !doc.Passed() {
			return false
		}
	}
	return true
}

// Validator checks every agent document in a directory.
type Validator struct {
	fsys  fs.FS
	rules []Rule
}

// Option configures a Validator.
type Option func(*Validator)

// WithRules replaces the default template rules.
func WithRules(rules []Rule) Option {
	return func(v *Validator) {
		v.rules = rules
	}
}

// NewValidator creates a Validator over fsys using the default rules.
func NewValidator(fsys fs.FS, opts ...Option) *Validator {
	v := &Validator{
		fsys:  fsys,
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run validates all candidates and returns the accumulated report.
func (v *Validator) Run() (*Report, error) {
	return v.RunWithProgress(NoopProgressCallback)
}

// RunWithProgress validates candidates one at a time, reporting each document
// as soon as it is checked. A read failure stops the run; the returned report
// holds the documents checked before it.
func (v *Validator) RunWithProgress(callback ProgressCallback) (*Report, error) {
	if callback == nil {
		callback = NoopProgressCallback
	}

	candidates, err := SelectCandidates(v.fsys)
	if err != nil {
		return nil, err
	}

	callback(ProgressEvent{
		Type:    EventValidationStart,
		Message: fmt.Sprintf("Checking %d agent documents", len(candidates)),
	})

	report := &Report{
		Documents: make([]*DocumentResult, 0, len(candidates)),
	}
	for _, name := range candidates {
		doc, err := Load(v.fsys, name)
		if err != nil {
			return report, err
		}

		result := &DocumentResult{
			Name:        name,
			Diagnostics: Check(doc, v.rules),
		}
		report.Documents = append(report.Documents, result)

		callback(ProgressEvent{
			Type:     EventDocumentChecked,
			Message:  fmt.Sprintf("Checked %s", name),
			Document: result,
		})
	}

	callback(ProgressEvent{
		Type:    EventValidationComplete,
		Message: "Done checking agents.",
	})

	return report, nil
}
