package controllers

import (
	"net/http"

	"rating-platform-api/models"
	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RatingController struct {
	db *gorm.DB
}

func NewRatingController(db *gorm.DB) *RatingController {
	return &RatingController{db: db}
}

var ratingFilters = utils.FilterConfig{
	ExactFields: map[string]utils.ValueKind{
		"nominee_id":         utils.KindInt,
		"institution_id":     utils.KindInt,
		"rating_category_id": utils.KindInt,
	},
	RangeFields: []string{"created_at"},
}

func (ctl *RatingController) List(c *gin.Context) {
	query := c.Request.URL.Query()
	filters := utils.BuildFilters(query, ratingFilters)

	page, err := utils.Paginate[models.Rating](ctl.db, utils.ParamsFromQuery(query), filters,
		"RatingCategory")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *RatingController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var rating models.Rating
	if err := ctl.db.Preload("RatingCategory").First(&rating, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}
	c.JSON(http.StatusOK, rating)
}

// Create stores a scored assessment. Exactly one of nominee_id and
// institution_id must be set.
func (ctl *RatingController) Create(c *gin.Context) {
	var req struct {
		Score            *int    `json:"score" binding:"required,min=0,max=5"`
		Evidence         *string `json:"evidence"`
		Severity         *string `json:"severity"`
		RatingCategoryID int     `json:"rating_category_id" binding:"required"`
		NomineeID        *int    `json:"nominee_id"`
		InstitutionID    *int    `json:"institution_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if (req.NomineeID == nil) == (req.InstitutionID == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exactly one of nominee_id or institution_id must be set"})
		return
	}

	rating := models.Rating{
		Score:            *req.Score,
		Evidence:         req.Evidence,
		Severity:         req.Severity,
		RatingCategoryID: req.RatingCategoryID,
		NomineeID:        req.NomineeID,
		InstitutionID:    req.InstitutionID,
	}
	if err := ctl.db.Create(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rating"})
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (ctl *RatingController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var rating models.Rating
	if err := ctl.db.First(&rating, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}

	var req struct {
		Score    *int    `json:"score" binding:"omitempty,min=0,max=5"`
		Evidence *string `json:"evidence"`
		Severity *string `json:"severity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Score != nil {
		rating.Score = *req.Score
	}
	if req.Evidence != nil {
		rating.Evidence = req.Evidence
	}
	if req.Severity != nil {
		rating.Severity = req.Severity
	}

	if err := ctl.db.Save(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (ctl *RatingController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := ctl.db.Delete(&models.Rating{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}
