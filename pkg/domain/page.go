package domain

// PageRegistryEntry records a page created during the life of the process.
type PageRegistryEntry struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}
