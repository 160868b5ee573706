package parser

import (
	"strings"
)

// PlainParser reads one requirement per line. Blank lines are ignored.
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse parses a plain text file
func (p *PlainParser) Parse(path string, content []byte) (*ParsedFile, error) {
	var reqs []Requirement
	for i, line := range strings.Split(string(content), "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		reqs = append(reqs, Requirement{Text: text, Line: i + 1})
	}

	return &ParsedFile{
		Path:         path,
		Content:      content,
		FileType:     FileTypeUnknown,
		Requirements: reqs,
	}, nil
}
