// Package agentdoc discovers agent definition documents and checks them
// against the fixed structural template.
package agentdoc

import (
	"fmt"
	"io"
	"io/fs"
)

// Document is an agent definition file read from disk.
type Document struct {
	Name    string
	Content string
}

// Load reads the named file from fsys.
func Load(fsys fs.FS, name string) (*Document, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open agent document '%s': %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent document '%s': %w", name, err)
	}

	return &Document{
		Name:    name,
		Content: string(data),
	}, nil
}
