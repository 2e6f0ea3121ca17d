// Package output assembles generated files into a manifest and persists it.
package output

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
)

// Well-known output paths, relative to the output directory
const (
	MetadataPath         = ".supercomponents/metadata.json"
	ReadmePath           = "README.md"
	PrinciplesPath       = "design/PRINCIPLES.md"
	PrinciplesHTMLPath   = "design/principles.html"
	PrinciplesStoryPath  = "src/stories/Principles.stories.mdx"
	TokensJSONPath       = "src/tokens/tokens.json"
	TokensCSSPath        = "src/tokens/tokens.css"
	LegacyTokensJSONPath = "src/tokens/tokens.legacy.json"
)

// File is a single output file. Path is slash-separated and relative.
type File struct {
	Path    string
	Content []byte
}

// Manifest is an ordered set of files to write under one root.
type Manifest struct {
	Files []File
}

// Add appends a file, replacing any earlier file with the same path.
func (m *Manifest) Add(p string, content []byte) {
	p = path.Clean(p)
	for i := range m.Files {
		if m.Files[i].Path == p {
			m.Files[i].Content = content
			return
		}
	}
	m.Files = append(m.Files, File{Path: p, Content: content})
}

// AddString is Add for text content.
func (m *Manifest) AddString(p, content string) {
	m.Add(p, []byte(content))
}

// AddJSON adds v as indented JSON with a trailing newline.
func (m *Manifest) AddJSON(p string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", p, err)
	}
	m.Add(p, append(data, '\n'))
	return nil
}

// Paths returns the file paths in sorted order.
func (m *Manifest) Paths() []string {
	paths := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		paths = append(paths, f.Path)
	}
	sort.Strings(paths)
	return paths
}

// Get returns the content of a file in the manifest.
func (m *Manifest) Get(p string) ([]byte, bool) {
	p = path.Clean(p)
	for _, f := range m.Files {
		if f.Path == p {
			return f.Content, true
		}
	}
	return nil, false
}

// validatePath rejects absolute paths and paths escaping the root.
func validatePath(p string) error {
	if p == "" || p == "." {
		return fmt.Errorf("empty output path")
	}
	if path.IsAbs(p) || strings.HasPrefix(p, "../") || p == ".." {
		return fmt.Errorf("output path %q escapes the output directory", p)
	}
	return nil
}
