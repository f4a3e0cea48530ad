package dto

type CreateReviewRequest struct {
	Name       string  `json:"name"`
	Review     string  `json:"review"`
	Rating     *int    `json:"rating"`
	URL        *string `json:"url"`
	WatchAgain *bool   `json:"watchAgain"`
}

// UpdateReviewRequest carries partial-update fields. Name and Review can
// only be replaced; Rating, URL and WatchAgain can also be cleared with
// an explicit null.
type UpdateReviewRequest struct {
	Name       Optional[string] `json:"name"`
	Review     Optional[string] `json:"review"`
	Rating     Optional[int]    `json:"rating"`
	URL        Optional[string] `json:"url"`
	WatchAgain Optional[bool]   `json:"watchAgain"`
}
