package controllers

import (
	"net/http"

	"rating-platform-api/models"
	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	db *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{db: db}
}

var commentFilters = utils.FilterConfig{
	SearchFields: []string{"content"},
	ExactFields: map[string]utils.ValueKind{
		"nominee_id":     utils.KindInt,
		"institution_id": utils.KindInt,
		"user_id":        utils.KindInt,
	},
	RangeFields: []string{"created_at"},
}

func (ctl *CommentController) List(c *gin.Context) {
	query := c.Request.URL.Query()
	filters := utils.BuildFilters(query, commentFilters)

	page, err := utils.Paginate[models.Comment](ctl.db, utils.ParamsFromQuery(query), filters, "User")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *CommentController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var comment models.Comment
	if err := ctl.db.Preload("User").First(&comment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Create posts a comment as the authenticated user. Exactly one of
// nominee_id and institution_id must be set.
func (ctl *CommentController) Create(c *gin.Context) {
	var req struct {
		Content       string `json:"content" binding:"required"`
		NomineeID     *int   `json:"nominee_id"`
		InstitutionID *int   `json:"institution_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if (req.NomineeID == nil) == (req.InstitutionID == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exactly one of nominee_id or institution_id must be set"})
		return
	}

	comment := models.Comment{
		Content:       utils.SanitizeInput(req.Content),
		UserID:        currentUserID(c),
		NomineeID:     req.NomineeID,
		InstitutionID: req.InstitutionID,
	}
	if err := ctl.db.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Update edits a comment's content; only the author or an admin may.
func (ctl *CommentController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var comment models.Comment
	if err := ctl.db.First(&comment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.UserID != currentUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to modify this comment"})
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment.Content = utils.SanitizeInput(req.Content)
	if err := ctl.db.Save(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (ctl *CommentController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var comment models.Comment
	if err := ctl.db.First(&comment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.UserID != currentUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to delete this comment"})
		return
	}

	if err := ctl.db.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
