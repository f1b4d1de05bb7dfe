package controllers

import (
	"net/http"

	"rating-platform-api/models"
	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InstitutionRatingCategoryController manages the institution-level
// evaluation dimensions; request shapes mirror RatingCategoryController.
type InstitutionRatingCategoryController struct {
	db *gorm.DB
}

func NewInstitutionRatingCategoryController(db *gorm.DB) *InstitutionRatingCategoryController {
	return &InstitutionRatingCategoryController{db: db}
}

func (ctl *InstitutionRatingCategoryController) List(c *gin.Context) {
	query := c.Request.URL.Query()
	filters := utils.BuildFilters(query, ratingCategoryFilters)

	page, err := utils.Paginate[models.InstitutionRatingCategory](ctl.db, utils.ParamsFromQuery(query), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch institution rating categories"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *InstitutionRatingCategoryController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var category models.InstitutionRatingCategory
	if err := ctl.db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Institution rating category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctl *InstitutionRatingCategoryController) Create(c *gin.Context) {
	var req ratingCategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.InstitutionRatingCategory{
		Name:        req.Name,
		Keyword:     req.Keyword,
		Icon:        req.Icon,
		Description: req.Description,
		Weight:      req.Weight,
	}
	if err := ctl.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create institution rating category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (ctl *InstitutionRatingCategoryController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var category models.InstitutionRatingCategory
	if err := ctl.db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Institution rating category not found"})
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update institution rating category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctl *InstitutionRatingCategoryController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := ctl.db.Delete(&models.InstitutionRatingCategory{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete institution rating category"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Institution rating category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Institution rating category deleted successfully"})
}
