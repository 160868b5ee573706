package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML requirement lists. The document is either a
// sequence or a mapping with a "requirements" sequence; items are strings
// or mappings with "id" and "text".
type YAMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *YAMLParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeYAML
}

// Parse parses a YAML file
func (p *YAMLParser) Parse(path string, content []byte) (*ParsedFile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	reqs, err := p.extractRequirements(&doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &ParsedFile{
		Path:         path,
		Content:      content,
		FileType:     FileTypeYAML,
		Requirements: reqs,
	}, nil
}

func (p *YAMLParser) extractRequirements(doc *yaml.Node) ([]Requirement, error) {
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		var list *yaml.Node
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == "requirements" {
				list = root.Content[i+1]
			}
		}
		if list == nil {
			return nil, fmt.Errorf("missing \"requirements\" list")
		}
		root = list
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a list of requirements")
	}

	var reqs []Requirement
	for _, item := range root.Content {
		var entry rawRequirement
		switch item.Kind {
		case yaml.ScalarNode:
			entry.Text = item.Value
		case yaml.MappingNode:
			if err := item.Decode(&entry); err != nil {
				return nil, fmt.Errorf("line %d: %w", item.Line, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unsupported requirement entry", item.Line)
		}
		if r, ok := entry.requirement(item.Line); ok {
			reqs = append(reqs, r)
		}
	}
	return reqs, nil
}
