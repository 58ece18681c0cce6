package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/pkg/storage"
)

const maxUploadSize = 10 << 20 // 10MB

var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadHandler handles image uploads to object storage
type UploadHandler struct {
	s3 *storage.S3Client
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(s3 *storage.S3Client) *UploadHandler {
	return &UploadHandler{s3: s3}
}

// UploadImage handles POST /api/v1/uploads/images (requires JWT)
// @Summary 이미지 업로드
// @Description multipart form의 image 파일을 업로드하고 URL을 반환합니다.
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Success 201 {object} common.Response
// @Failure 400 {object} common.Response
// @Security BearerAuth
// @Router /uploads/images [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.s3 == nil {
		common.ErrorResponse(c, http.StatusServiceUnavailable, "이미지 저장소가 설정되지 않았습니다", nil)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "image 파일이 필요합니다", err)
		return
	}
	if fileHeader.Size > maxUploadSize {
		common.ErrorResponse(c, http.StatusBadRequest, "파일 크기는 10MB를 넘을 수 없습니다", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedImageExts[ext]
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "지원하지 않는 이미지 형식입니다", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "파일을 열 수 없습니다", err)
		return
	}
	defer file.Close()

	folder := c.DefaultQuery("folder", "posts")
	if folder != "posts" && folder != "verifications" && folder != "profiles" {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 업로드 폴더입니다", nil)
		return
	}

	result, err := h.s3.UploadImage(c.Request.Context(), folder, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "이미지 업로드에 실패했습니다", err)
		return
	}
	common.Created(c, result)
}
