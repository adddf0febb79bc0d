package blocks

import (
	"github.com/aretw0/scribe/pkg/domain"
)

// ComposeCreate assembles the body of a page creation request.
// The paragraph is the page's only child; an empty emoji falls back to domain.DefaultEmoji.
func ComposeCreate(parentID, title, emoji string, body domain.ContentBlock) *domain.PageCreateRequest {
	if emoji == "" {
		emoji = domain.DefaultEmoji
	}
	return &domain.PageCreateRequest{
		Parent: domain.Parent{PageID: parentID},
		Icon:   domain.Icon{Type: "emoji", Emoji: emoji},
		Properties: domain.PageProperties{
			Title: domain.TitleProperty{Title: domain.NewRichText(title)},
		},
		Children: []domain.ContentBlock{body},
	}
}

// ComposeAppend assembles the body of an append request from raw caller text.
// A heading block comes first when heading is non-blank; the paragraph is always last.
func ComposeAppend(heading, body string) *domain.PageAppendRequest {
	children := make([]domain.ContentBlock, 0, 2)
	if h, ok := HeadingIfPresent(heading); ok {
		children = append(children, h)
	}
	children = append(children, Paragraph(body))
	return &domain.PageAppendRequest{Children: children}
}
