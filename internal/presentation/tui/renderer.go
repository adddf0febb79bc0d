package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/scribe/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Markdown renders a page title and its blocks as markdown for previews.
// An empty title is omitted.
func Markdown(title string, blocks []domain.ContentBlock) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	for _, blk := range blocks {
		if blk.IsHeading() {
			b.WriteString("## ")
		}
		b.WriteString(blk.Text())
		b.WriteString("\n\n")
	}
	return b.String()
}
