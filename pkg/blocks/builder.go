package blocks

import (
	"strings"

	"github.com/aretw0/scribe/pkg/domain"
)

// Paragraph builds a paragraph block from text, trimming surrounding whitespace.
func Paragraph(text string) domain.ContentBlock {
	return domain.ContentBlock{
		Object:    "block",
		Type:      domain.BlockParagraph,
		Paragraph: &domain.TextBlock{RichText: domain.NewRichText(strings.TrimSpace(text))},
	}
}

// Heading builds a level 2 heading block from text, trimming surrounding whitespace.
// Callers skip blank headings; see HeadingIfPresent.
func Heading(text string) domain.ContentBlock {
	return domain.ContentBlock{
		Object:   "block",
		Type:     domain.BlockHeading2,
		Heading2: &domain.TextBlock{RichText: domain.NewRichText(strings.TrimSpace(text))},
	}
}

// HeadingIfPresent builds a heading only when text is non-blank.
func HeadingIfPresent(text string) (domain.ContentBlock, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.ContentBlock{}, false
	}
	return Heading(text), true
}
