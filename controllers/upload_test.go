package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestUploadRejectsDisallowedFileType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload", NewUploadController().Upload)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, csvUploadRequest(t, "/upload", "payload.exe", "MZ"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for disallowed type, got %d", w.Code)
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload", NewUploadController().Upload)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing file, got %d", w.Code)
	}
}
