package controllers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 * 1024 * 1024

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
}

// UploadController stores files under UPLOAD_PATH and serves their public
// URLs. The storage root is configurable; the returned URL is built from
// PUBLIC_BASE_URL so a reverse proxy or CDN can front the directory.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

func uploadDir() string {
	dir := os.Getenv("UPLOAD_PATH")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

func (ctl *UploadController) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid file provided"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 10MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	safeName := utils.GenerateUniqueFilename(dir, header.Filename)
	dstPath := filepath.Join(dir, safeName)
	if err := c.SaveUploadedFile(header, dstPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	publicURL := path.Join("/uploads", safeName)
	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		publicURL = base + publicURL
	}

	c.JSON(http.StatusOK, gin.H{"url": publicURL})
}
