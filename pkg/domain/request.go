package domain

// DefaultEmoji is the page icon used when the caller does not supply one.
const DefaultEmoji = "📄"

// Parent addresses the container a page is created under.
type Parent struct {
	PageID string `json:"page_id"`
}

// Icon is an emoji page icon.
type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// TitleProperty is the title property of a page.
type TitleProperty struct {
	Title []RichText `json:"title"`
}

// PageProperties holds the properties sent on page creation.
type PageProperties struct {
	Title TitleProperty `json:"title"`
}

// PageCreateRequest is the body of POST /pages.
type PageCreateRequest struct {
	Parent     Parent         `json:"parent"`
	Icon       Icon           `json:"icon"`
	Properties PageProperties `json:"properties"`
	Children   []ContentBlock `json:"children"`
}

// Title returns the plain page title.
func (r *PageCreateRequest) Title() string {
	if len(r.Properties.Title.Title) == 0 {
		return ""
	}
	return r.Properties.Title.Title[0].Text.Content
}

// PageAppendRequest is the body of PATCH /blocks/{id}/children.
// The target page is addressed by the URL, not the body.
type PageAppendRequest struct {
	Children []ContentBlock `json:"children"`
}
