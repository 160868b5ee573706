package parser

import (
	"encoding/json"
	"fmt"
	"strings"
)

// JSONParser parses JSON requirement lists, with the same shapes as YAMLParser
type JSONParser struct{}

// rawRequirement is a structured requirement entry
type rawRequirement struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

func (r rawRequirement) requirement(line int) (Requirement, bool) {
	text := strings.TrimSpace(r.Text)
	if text == "" {
		return Requirement{}, false
	}
	return Requirement{ID: r.ID, Text: text, Line: line}, true
}

// CanParse returns true if this parser can handle the file
func (p *JSONParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeJSON
}

// Parse parses a JSON file
func (p *JSONParser) Parse(path string, content []byte) (*ParsedFile, error) {
	var data interface{}
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	reqs, err := p.extractRequirements(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &ParsedFile{
		Path:         path,
		Content:      content,
		FileType:     FileTypeJSON,
		Requirements: reqs,
	}, nil
}

func (p *JSONParser) extractRequirements(data interface{}) ([]Requirement, error) {
	if obj, ok := data.(map[string]interface{}); ok {
		list, ok := obj["requirements"]
		if !ok {
			return nil, fmt.Errorf("missing \"requirements\" list")
		}
		data = list
	}

	items, ok := data.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a list of requirements")
	}

	var reqs []Requirement
	for i, item := range items {
		var entry rawRequirement
		switch v := item.(type) {
		case string:
			entry.Text = v
		case map[string]interface{}:
			entry.ID, _ = v["id"].(string)
			entry.Text, _ = v["text"].(string)
		default:
			return nil, fmt.Errorf("item %d: unsupported requirement entry", i)
		}
		if r, ok := entry.requirement(0); ok {
			reqs = append(reqs, r)
		}
	}
	return reqs, nil
}
