package dict

// Req for creating or updating a dictionary.
type Req struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
}

// Resp is the dictionary row returned to the front-end.
type Resp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	IsSystem    bool   `json:"isSystem"`
	CreateTime  string `json:"createTime"`
	UpdateTime  string `json:"updateTime"`
}

// ItemPageQuery filters the dictionary item page listing.
type ItemPageQuery struct {
	DictID      int64
	Description string
	Status      *int16
	Page        int
	Size        int
}

// ItemReq for creating or updating a dictionary item.
type ItemReq struct {
	DictID      int64  `json:"dictId"`
	Label       string `json:"label" binding:"required"`
	Value       string `json:"value" binding:"required"`
	Color       string `json:"color"`
	Sort        int32  `json:"sort"`
	Status      int16  `json:"status"`
	Description string `json:"description"`
}

// ItemResp is the dictionary item row returned to the front-end.
type ItemResp struct {
	ID          int64  `json:"id"`
	DictID      int64  `json:"dictId"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Color       string `json:"color"`
	Sort        int32  `json:"sort"`
	Status      int16  `json:"status"`
	Description string `json:"description"`
	CreateTime  string `json:"createTime"`
	UpdateTime  string `json:"updateTime"`
}

// Option is a select-box entry derived from an enabled dictionary item.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}
