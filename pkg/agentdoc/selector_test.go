package agentdoc

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAgentDocumentName(t *testing.T) {
	tests := map[string]struct {
		name string
		want bool
	}{
		"upper-case name":           {name: "REVIEWER.md", want: true},
		"upper-case with digits":    {name: "OPS2.md", want: true},
		"upper-case with separator": {name: "CODE_REVIEWER.md", want: true},
		"lower-case name":           {name: "agent.md", want: false},
		"mixed case name":           {name: "Reviewer.md", want: false},
		"no letters":                {name: "123.md", want: false},
		"hidden file":               {name: ".md", want: false},
		"wrong extension":           {name: "REVIEWER.txt", want: false},
		"upper-case extension":      {name: "REVIEWER.MD", want: false},
		"readme excluded":           {name: "README.md", want: false},
		"contributing excluded":     {name: "CONTRIBUTING.md", want: false},
		"license excluded":          {name: "LICENSE.md", want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsAgentDocumentName(tc.name))
		})
	}
}

func TestSelectCandidates(t *testing.T) {
	fsys := fstest.MapFS{
		"SENTINEL.md":     {Data: []byte("x")},
		"OPS.md":          {Data: []byte("x")},
		"README.md":       {Data: []byte("x")},
		"CONTRIBUTING.md": {Data: []byte("x")},
		"LICENSE.md":      {Data: []byte("x")},
		"agent.md":        {Data: []byte("x")},
		"NOTES.txt":       {Data: []byte("x")},
		"DOCS/GUIDE.md":   {Data: []byte("x")},
	}

	got, err := SelectCandidates(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"OPS.md", "SENTINEL.md"}, got)
}

func TestSelectCandidatesSkipsDirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"ARCHIVE.md/OLD.md": {Data: []byte("x")},
		"PALETTE.md":        {Data: []byte("x")},
	}

	got, err := SelectCandidates(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"PALETTE.md"}, got)
}

func TestSelectCandidatesEmpty(t *testing.T) {
	got, err := SelectCandidates(fstest.MapFS{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExcludedNames(t *testing.T) {
	assert.Equal(t, []string{"CONTRIBUTING.md", "LICENSE.md", "README.md"}, ExcludedNames())
	assert.True(t, IsExcluded("README.md"))
	assert.False(t, IsExcluded("readme.md"))
}
