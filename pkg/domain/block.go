package domain

// BlockType identifies the variant of a ContentBlock.
type BlockType string

const (
	BlockHeading2  BlockType = "heading_2"
	BlockParagraph BlockType = "paragraph"
)

// HeadingLevel is the only heading level produced by scribe.
const HeadingLevel = 2

// TextContent is the payload of a plain text rich-text segment.
type TextContent struct {
	Content string `json:"content"`
}

// RichText is a single plain-text segment. Annotations and links are never set.
type RichText struct {
	Type string      `json:"type"`
	Text TextContent `json:"text"`
}

// NewRichText wraps s in a one-element rich text array.
func NewRichText(s string) []RichText {
	return []RichText{{Type: "text", Text: TextContent{Content: s}}}
}

// TextBlock is the body shared by heading and paragraph blocks.
type TextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// ContentBlock is a heading or paragraph block in the workspace's wire shape.
// Exactly one of Heading2 or Paragraph is set, matching Type.
type ContentBlock struct {
	Object    string     `json:"object"`
	Type      BlockType  `json:"type"`
	Heading2  *TextBlock `json:"heading_2,omitempty"`
	Paragraph *TextBlock `json:"paragraph,omitempty"`
}

// Text returns the plain text carried by the block.
func (b ContentBlock) Text() string {
	var tb *TextBlock
	switch b.Type {
	case BlockHeading2:
		tb = b.Heading2
	case BlockParagraph:
		tb = b.Paragraph
	}
	if tb == nil || len(tb.RichText) == 0 {
		return ""
	}
	return tb.RichText[0].Text.Content
}

// IsHeading reports whether the block is a heading.
func (b ContentBlock) IsHeading() bool {
	return b.Type == BlockHeading2
}
