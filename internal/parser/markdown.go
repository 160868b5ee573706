package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser reads list items and paragraphs of a markdown document as
// requirements. Headings label the statements below them; code blocks are
// skipped.
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeMarkdown
}

// Parse parses a markdown file into requirements
func (p *MarkdownParser) Parse(path string, content []byte) (*ParsedFile, error) {
	frontmatter, body := ParseFrontmatter(content)
	lineOffset := bytes.Count(content[:len(content)-len(body)], []byte("\n"))

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(body))

	reqs := p.extractRequirements(doc, body)
	for i := range reqs {
		reqs[i].Line += lineOffset
	}

	return &ParsedFile{
		Path:         path,
		Content:      content, // Keep original content
		FileType:     FileTypeMarkdown,
		Requirements: reqs,
		Frontmatter:  frontmatter,
	}, nil
}

// extractRequirements walks the AST collecting list items and top-level paragraphs
func (p *MarkdownParser) extractRequirements(doc ast.Node, source []byte) []Requirement {
	var reqs []Requirement
	section := ""

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			section = blockText(node, source)
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			var parts []string
			line := 0
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				switch c.Kind() {
				case ast.KindParagraph, ast.KindTextBlock:
					if line == 0 {
						line = blockLine(c, source)
					}
					parts = append(parts, blockText(c, source))
				}
			}
			if t := strings.TrimSpace(strings.Join(parts, " ")); t != "" {
				reqs = append(reqs, Requirement{Text: t, Line: line, Section: section})
			}

		case *ast.Paragraph:
			if _, inList := node.Parent().(*ast.ListItem); inList {
				return ast.WalkSkipChildren, nil
			}
			if t := blockText(node, source); t != "" {
				reqs = append(reqs, Requirement{Text: t, Line: blockLine(node, source), Section: section})
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return reqs
}

// blockText joins the trimmed source lines of a block node with spaces
func blockText(n ast.Node, source []byte) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if s := strings.TrimSpace(string(seg.Value(source))); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// blockLine returns the 1-based line a block node starts on
func blockLine(n ast.Node, source []byte) int {
	if n.Lines().Len() == 0 {
		return 0
	}
	seg := n.Lines().At(0)
	return bytes.Count(source[:seg.Start], []byte("\n")) + 1
}
