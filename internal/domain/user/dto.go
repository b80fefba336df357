package user

// PageQuery filters the user page listing.
type PageQuery struct {
	Description string
	Status      *int16
	DeptID      *int64
	Page        int
	Size        int
}

// CreateReq for creating a user.
type CreateReq struct {
	Username    string  `json:"username" binding:"required"`
	Nickname    string  `json:"nickname" binding:"required"`
	Password    string  `json:"password"`
	Gender      int16   `json:"gender"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Description string  `json:"description"`
	Status      int16   `json:"status"`
	DeptID      int64   `json:"deptId"`
	RoleIDs     []int64 `json:"roleIds"`
}

// UpdateReq for updating a user.
type UpdateReq struct {
	Nickname    string  `json:"nickname"`
	Gender      int16   `json:"gender"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Description string  `json:"description"`
	Status      int16   `json:"status"`
	DeptID      int64   `json:"deptId"`
	RoleIDs     []int64 `json:"roleIds"`
}

// ResetPasswordReq carries the RSA-encrypted replacement password.
type ResetPasswordReq struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// RoleUpdateReq reassigns a user's roles.
type RoleUpdateReq struct {
	RoleIDs []int64 `json:"roleIds" binding:"required"`
}

// Resp is the user row returned to the management front-end. The password
// hash never leaves the service layer.
type Resp struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Nickname    string  `json:"nickname"`
	Gender      int16   `json:"gender"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Avatar      string  `json:"avatar"`
	Description string  `json:"description"`
	Status      int16   `json:"status"`
	IsSystem    bool    `json:"isSystem"`
	DeptID      int64   `json:"deptId"`
	DeptName    string  `json:"deptName"`
	RoleIDs     []int64 `json:"roleIds"`
	RoleNames   []string `json:"roleNames"`
	CreateTime  string  `json:"createTime"`
	UpdateTime  string  `json:"updateTime"`
}
