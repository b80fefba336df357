package option

// Resp is the option row returned to the front-end.
type Resp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// UpdateReq is one option value to set.
type UpdateReq struct {
	Code  string `json:"code" binding:"required"`
	Value string `json:"value"`
}

// ResetReq resets option values in a category back to their defaults.
type ResetReq struct {
	Category string `json:"category"`
	Code     string `json:"code"`
}
