package dept

// Req for creating or updating a department.
type Req struct {
	ParentID    int64  `json:"parentId"`
	Name        string `json:"name" binding:"required"`
	Sort        int32  `json:"sort"`
	Status      int16  `json:"status"`
	Description string `json:"description"`
}

// Resp is one node of the department tree.
type Resp struct {
	ID          int64   `json:"id"`
	ParentID    int64   `json:"parentId"`
	Name        string  `json:"name"`
	Sort        int32   `json:"sort"`
	Status      int16   `json:"status"`
	IsSystem    bool    `json:"isSystem"`
	Description string  `json:"description"`
	CreateTime  string  `json:"createTime"`
	UpdateTime  string  `json:"updateTime"`
	Children    []*Resp `json:"children"`
}
