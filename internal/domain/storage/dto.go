package storage

// Req for creating or updating a storage configuration.
type Req struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Type        int16  `json:"type"`
	AccessKey   string `json:"accessKey"`
	SecretKey   string `json:"secretKey"`
	Endpoint    string `json:"endpoint"`
	BucketName  string `json:"bucketName"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
	Sort        int32  `json:"sort"`
	Status      int16  `json:"status"`
}

// Resp is the storage configuration row returned to the front-end. The
// secret key is masked.
type Resp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Type        int16  `json:"type"`
	AccessKey   string `json:"accessKey"`
	SecretKey   string `json:"secretKey"`
	Endpoint    string `json:"endpoint"`
	BucketName  string `json:"bucketName"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
	Sort        int32  `json:"sort"`
	Status      int16  `json:"status"`
	CreateTime  string `json:"createTime"`
	UpdateTime  string `json:"updateTime"`
}
