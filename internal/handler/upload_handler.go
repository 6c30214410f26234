package handler

import (
	"net/http"

	"chat-platform/internal/services"
	"chat-platform/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Presign issues a presigned PUT URL; the client uploads the object to S3
// directly, then calls Complete.
func (h *UploadHandler) Presign(c *gin.Context) {
	var req httpdto.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid request"))
		return
	}

	uploaderID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.Failure("unauthorized"))
		return
	}

	res, err := h.service.CreatePresignedUpload(c.Request.Context(), services.PresignInput{
		UploaderID:  uploaderID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		FileSize:    req.FileSize,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(res, ""))
}

func (h *UploadHandler) Complete(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid upload id"))
		return
	}

	objectURL, err := h.service.CompleteUpload(c.Request.Context(), sessionID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(httpdto.CompleteUploadResponse{ObjectURL: objectURL}, "Upload completed successfully"))
}
