package domain

// SuccessResponse is the envelope for every 2xx payload.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for every non-2xx payload. Clients branch on
// Success and, for validation failures, on the per-field Errors list.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
}

// Page is the shape every list endpoint returns.
type Page struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// NewPage applies the same page defaults the usecases do, so callers can
// hand through raw query values.
func NewPage(items interface{}, page, limit int, total int64) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return Page{
		Items: items,
		Pagination: Pagination{
			Current: page,
			Pages:   pages,
			Total:   total,
			Limit:   limit,
		},
	}
}
