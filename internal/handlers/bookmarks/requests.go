package bookmarks

// AddRequest is the optional body of a new bookmark
type AddRequest struct {
	Notes string   `json:"notes"`
	Tags  []string `json:"tags"`
}

// UpdateRequest changes only the fields present in the body
type UpdateRequest struct {
	Notes *string   `json:"notes"`
	Tags  *[]string `json:"tags"`
}

type CheckResponse struct {
	IsBookmarked bool `json:"isBookmarked"`
}
