package httpdto

type PresignUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type CompleteUploadResponse struct {
	ObjectURL string `json:"objectUrl"`
}
