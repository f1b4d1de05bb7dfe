package controllers

import (
	"net/http"

	"rating-platform-api/models"
	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RatingCategoryController struct {
	db *gorm.DB
}

func NewRatingCategoryController(db *gorm.DB) *RatingCategoryController {
	return &RatingCategoryController{db: db}
}

var ratingCategoryFilters = utils.FilterConfig{
	SearchFields: []string{"name", "keyword"},
	RangeFields:  []string{"created_at"},
}

type ratingCategoryCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Keyword     string  `json:"keyword"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight" binding:"omitempty,min=0,max=100"`
}

type ratingCategoryUpdateRequest struct {
	Name        *string  `json:"name"`
	Keyword     *string  `json:"keyword"`
	Icon        *string  `json:"icon"`
	Description *string  `json:"description"`
	Weight      *float64 `json:"weight" binding:"omitempty,min=0,max=100"`
}

func (ctl *RatingCategoryController) List(c *gin.Context) {
	query := c.Request.URL.Query()
	filters := utils.BuildFilters(query, ratingCategoryFilters)

	page, err := utils.Paginate[models.RatingCategory](ctl.db, utils.ParamsFromQuery(query), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rating categories"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *RatingCategoryController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var category models.RatingCategory
	if err := ctl.db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctl *RatingCategoryController) Create(c *gin.Context) {
	var req ratingCategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.RatingCategory{
		Name:        req.Name,
		Keyword:     req.Keyword,
		Icon:        req.Icon,
		Description: req.Description,
		Weight:      req.Weight,
	}
	if err := ctl.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rating category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (ctl *RatingCategoryController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var category models.RatingCategory
	if err := ctl.db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating category not found"})
		return
	}

	var req ratingCategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Keyword != nil {
		category.Keyword = *req.Keyword
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Weight != nil {
		category.Weight = *req.Weight
	}

	if err := ctl.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctl *RatingCategoryController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := ctl.db.Delete(&models.RatingCategory{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating category"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating category deleted successfully"})
}
