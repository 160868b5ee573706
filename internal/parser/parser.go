// Package parser extracts requirement statements from batch input files.
package parser

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParsedFile represents a parsed batch input file
type ParsedFile struct {
	Path         string
	Content      []byte
	FileType     FileType
	Requirements []Requirement
	Frontmatter  map[string]interface{} // YAML frontmatter from markdown files
}

// Requirement is one statement extracted from an input file
type Requirement struct {
	// ID is an optional identifier given in structured input.
	ID   string
	Text string
	// Line is the 1-based line the statement starts on, or 0 if unknown.
	Line int
	// Section is the nearest markdown heading above the statement.
	Section string
}

// FileType represents the type of input file
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeMarkdown
	FileTypeJSON
	FileTypeYAML
)

func (t FileType) String() string {
	switch t {
	case FileTypeMarkdown:
		return "markdown"
	case FileTypeJSON:
		return "json"
	case FileTypeYAML:
		return "yaml"
	default:
		return "plain"
	}
}

// Parser defines the interface for parsing input files
type Parser interface {
	Parse(path string, content []byte) (*ParsedFile, error)
	CanParse(path string) bool
}

// Parse reads and parses a file using the appropriate parser
func Parse(path string) (*ParsedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContent(path, content)
}

// ParseContent parses content as if it were read from path. The path only
// selects the parser; "-" or an unknown extension means plain text.
func ParseContent(path string, content []byte) (*ParsedFile, error) {
	return getParser(path).Parse(path, content)
}

// Texts returns the statement texts of a parsed file in order
func (f *ParsedFile) Texts() []string {
	texts := make([]string, len(f.Requirements))
	for i, r := range f.Requirements {
		texts[i] = r.Text
	}
	return texts
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch GetFileType(path) {
	case FileTypeMarkdown:
		return &MarkdownParser{}
	case FileTypeJSON:
		return &JSONParser{}
	case FileTypeYAML:
		return &YAMLParser{}
	default:
		return &PlainParser{}
	}
}

// GetFileType returns the FileType for a given path
func GetFileType(path string) FileType {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return FileTypeMarkdown
	case ".json":
		return FileTypeJSON
	case ".yaml", ".yml":
		return FileTypeYAML
	default:
		return FileTypeUnknown
	}
}

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters
// Returns the parsed frontmatter and the remaining content without frontmatter
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)

	// Must start with ---
	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	// Find the closing ---
	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	frontmatterStr := strings.TrimSpace(rest[:endIdx])

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterStr), &frontmatter); err != nil {
		return nil, content
	}

	// Return remaining content after frontmatter
	remaining := rest[endIdx+4:] // +4 for "\n---"
	if strings.HasPrefix(remaining, "\n") {
		remaining = remaining[1:]
	}

	return frontmatter, []byte(remaining)
}
