package responses

import "engagement-service/stores"

type CommentResponse struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// CommentPage is the paginated comment list payload. NextCursor is only set
// when HasMore is true.
type CommentPage struct {
	Comments   []stores.RankedComment `json:"comments"`
	NextCursor *string                `json:"next_cursor,omitempty"`
	HasMore    bool                   `json:"has_more"`
}
