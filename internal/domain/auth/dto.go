package auth

// LoginRequest mirrors the front-end login form. Password is RSA-encrypted
// and Base64-encoded by the client.
type LoginRequest struct {
	ClientID  string `json:"clientId"`
	AuthType  string `json:"authType"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Captcha   string `json:"captcha"`
	UUID      string `json:"uuid"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserInfo is the "who am I" response.
type UserInfo struct {
	ID               int64    `json:"id"`
	Username         string   `json:"username"`
	Nickname         string   `json:"nickname"`
	Gender           int16    `json:"gender"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Avatar           string   `json:"avatar"`
	Description      string   `json:"description"`
	PwdResetTime     string   `json:"pwdResetTime"`
	PwdExpired       bool     `json:"pwdExpired"`
	RegistrationDate string   `json:"registrationDate"`
	DeptName         string   `json:"deptName"`
	Roles            []string `json:"roles"`
	Permissions      []string `json:"permissions"`
}

// RouteItem is one node of the front-end route tree.
type RouteItem struct {
	ID         int64        `json:"id"`
	Title      string       `json:"title"`
	ParentID   int64        `json:"parentId"`
	Type       int16        `json:"type"`
	Path       string       `json:"path"`
	Name       string       `json:"name"`
	Component  string       `json:"component"`
	Redirect   string       `json:"redirect"`
	Icon       string       `json:"icon"`
	IsExternal bool         `json:"isExternal"`
	IsHidden   bool         `json:"isHidden"`
	IsCache    bool         `json:"isCache"`
	Permission string       `json:"permission"`
	Roles      []string     `json:"roles"`
	Sort       int32        `json:"sort"`
	Status     int16        `json:"status"`
	Children   []*RouteItem `json:"children"`
}
