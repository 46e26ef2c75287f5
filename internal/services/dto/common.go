package dto

// PageResponse is the envelope every list endpoint returns. Total is the
// exact match count over the same predicate as the page.
type PageResponse struct {
	Items    interface{} `json:"items"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int64       `json:"total"`
}
