package syslog

// PageQuery filters the system log page listing.
type PageQuery struct {
	Description string
	Module      string
	IP          string
	Status      *int16
	Page        int
	Size        int
}

// Resp is the log row shown in the listing; bodies and headers are only
// returned by the detail endpoint.
type Resp struct {
	ID            int64  `json:"id"`
	Description   string `json:"description"`
	Module        string `json:"module"`
	RequestURL    string `json:"requestUrl"`
	RequestMethod string `json:"requestMethod"`
	StatusCode    int    `json:"statusCode"`
	TimeTaken     int64  `json:"timeTaken"`
	IP            string `json:"ip"`
	Address       string `json:"address"`
	Browser       string `json:"browser"`
	OS            string `json:"os"`
	Status        int16  `json:"status"`
	CreateUser    *int64 `json:"createUser"`
	CreateTime    string `json:"createTime"`
}

// DetailResp adds the captured request/response payloads.
type DetailResp struct {
	Resp
	RequestHeaders  string `json:"requestHeaders"`
	RequestBody     string `json:"requestBody"`
	ResponseHeaders string `json:"responseHeaders"`
	ResponseBody    string `json:"responseBody"`
	ErrorMsg        string `json:"errorMsg"`
}
