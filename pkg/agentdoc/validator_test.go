package agentdoc

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorScenarios(t *testing.T) {
	tests := map[string]struct {
		files fstest.MapFS
		want  []string
	}{
		"complete document": {
			files: fstest.MapFS{"REVIEWER.md": {Data: []byte(agentDocument())}},
			want:  nil,
		},
		"missing boundaries": {
			files: fstest.MapFS{"REVIEWER.md": {Data: []byte(agentDocument(subjectBoundaries))}},
			want:  []string{"Missing Boundaries in REVIEWER.md"},
		},
		"excluded readme": {
			files: fstest.MapFS{"README.md": {Data: []byte("# Project")}},
			want:  nil,
		},
		"lower-case name": {
			files: fstest.MapFS{"agent.md": {Data: []byte("nothing here")}},
			want:  nil,
		},
		"missing mission and persona": {
			files: fstest.MapFS{"OPS.md": {Data: []byte(agentDocument(subjectMission, subjectPersona))}},
			want:  []string{"Missing mission in OPS.md", "Missing emoji in OPS.md"},
		},
		"documents in lexicographic order": {
			files: fstest.MapFS{
				"ZEN.md":   {Data: []byte(agentDocument(subjectNeverDo))},
				"ALPHA.md": {Data: []byte(agentDocument(subjectDailyProcess))},
			},
			want: []string{"Missing Daily Process in ALPHA.md", "Missing Never do in ZEN.md"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			report, err := NewValidator(tc.files).Run()
			require.NoError(t, err)
			assert.Equal(t, tc.want, diagnosticLines(report))
			assert.Equal(t, len(tc.want) == 0, report.Passed())
		})
	}
}

func TestValidatorIsIdempotent(t *testing.T) {
	files := fstest.MapFS{
		"OPS.md":      {Data: []byte(agentDocument(subjectMission))},
		"SENTINEL.md": {Data: []byte(agentDocument(subjectPriorityAreas, subjectCommonPatterns))},
	}
	v := NewValidator(files)

	first, err := v.Run()
	require.NoError(t, err)
	second, err := v.Run()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidatorDocumentsAreIndependent(t *testing.T) {
	ops := []byte(agentDocument(subjectAskFirst))

	alone, err := NewValidator(fstest.MapFS{"OPS.md": {Data: ops}}).Run()
	require.NoError(t, err)

	together, err := NewValidator(fstest.MapFS{
		"AAA.md": {Data: []byte("")},
		"OPS.md": {Data: ops},
		"ZZZ.md": {Data: []byte("")},
	}).Run()
	require.NoError(t, err)

	require.Len(t, together.Documents, 3)
	assert.Equal(t, alone.Documents[0], together.Documents[1])
}

func TestValidatorProgressEvents(t *testing.T) {
	files := fstest.MapFS{
		"OPS.md":      {Data: []byte(agentDocument())},
		"SENTINEL.md": {Data: []byte(agentDocument(subjectBoundaries))},
	}

	var events []ProgressEvent
	_, err := NewValidator(files).RunWithProgress(func(e ProgressEvent) {
		events = append(events, e)
	})
	require.NoError(t, err)

	require.Len(t, events, 4)
	assert.Equal(t, EventValidationStart, events[0].Type)
	assert.Equal(t, EventDocumentChecked, events[1].Type)
	assert.Equal(t, "OPS.md", events[1].Document.Name)
	assert.True(t, events[1].Document.Passed())
	assert.Equal(t, "SENTINEL.md", events[2].Document.Name)
	assert.False(t, events[2].Document.Passed())
	assert.Equal(t, EventValidationComplete, events[3].Type)
}

func TestValidatorWithRules(t *testing.T) {
	files := fstest.MapFS{"OPS.md": {Data: []byte("hello")}}
	rules := []Rule{NewContainsRule("greeting", "hello"), NewContainsRule("farewell", "bye")}

	report, err := NewValidator(files, WithRules(rules)).Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"Missing farewell in OPS.md"}, diagnosticLines(report))
}

type failingFS struct {
	fstest.MapFS
	fail string
}

func (f failingFS) Open(name string) (fs.File, error) {
	if name == f.fail {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.MapFS.Open(name)
}

func TestValidatorStopsOnReadFailure(t *testing.T) {
	files := failingFS{
		MapFS: fstest.MapFS{
			"ALPHA.md": {Data: []byte(agentDocument(subjectBoundaries))},
			"BETA.md":  {Data: []byte(agentDocument())},
			"GAMMA.md": {Data: []byte(agentDocument())},
		},
		fail: "BETA.md",
	}

	report, err := NewValidator(files).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "BETA.md")

	require.NotNil(t, report)
	require.Len(t, report.Documents, 1)
	assert.Equal(t, "ALPHA.md", report.Documents[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "GHOST.md")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func diagnosticLines(report *Report) []string {
	var lines []string
	for _, d := range report.Diagnostics() {
		lines = append(lines, d.String())
	}
	return lines
}
