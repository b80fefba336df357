package rbac

// RoleReq for creating or updating a role.
type RoleReq struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	DataScope   int16   `json:"dataScope"`
	Description string  `json:"description"`
	Sort        int32   `json:"sort"`
	MenuIDs     []int64 `json:"menuIds"`
}

// RoleResp is the role row returned to the front-end.
type RoleResp struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	DataScope   int16   `json:"dataScope"`
	Description string  `json:"description"`
	Sort        int32   `json:"sort"`
	IsSystem    bool    `json:"isSystem"`
	MenuIDs     []int64 `json:"menuIds,omitempty"`
	CreateTime  string  `json:"createTime"`
	UpdateTime  string  `json:"updateTime"`
}

// MenuReq for creating or updating a menu.
type MenuReq struct {
	ParentID   int64  `json:"parentId"`
	Title      string `json:"title" binding:"required"`
	Type       int16  `json:"type" binding:"required"`
	Path       string `json:"path"`
	Name       string `json:"name"`
	Component  string `json:"component"`
	Redirect   string `json:"redirect"`
	Icon       string `json:"icon"`
	IsExternal bool   `json:"isExternal"`
	IsCache    bool   `json:"isCache"`
	IsHidden   bool   `json:"isHidden"`
	Permission string `json:"permission"`
	Sort       int32  `json:"sort"`
	Status     int16  `json:"status"`
}

// MenuResp is one node of the menu management tree.
type MenuResp struct {
	ID         int64       `json:"id"`
	ParentID   int64       `json:"parentId"`
	Title      string      `json:"title"`
	Type       int16       `json:"type"`
	Path       string      `json:"path"`
	Name       string      `json:"name"`
	Component  string      `json:"component"`
	Redirect   string      `json:"redirect"`
	Icon       string      `json:"icon"`
	IsExternal bool        `json:"isExternal"`
	IsCache    bool        `json:"isCache"`
	IsHidden   bool        `json:"isHidden"`
	Permission string      `json:"permission"`
	Sort       int32       `json:"sort"`
	Status     int16       `json:"status"`
	CreateTime string      `json:"createTime"`
	Children   []*MenuResp `json:"children"`
}
