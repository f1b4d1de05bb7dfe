package controllers

import (
	"net/http"

	"rating-platform-api/models"
	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ImpactAreaController struct {
	db *gorm.DB
}

func NewImpactAreaController(db *gorm.DB) *ImpactAreaController {
	return &ImpactAreaController{db: db}
}

var impactAreaFilters = utils.FilterConfig{
	SearchFields: []string{"name"},
	RangeFields:  []string{"created_at"},
}

func (ctl *ImpactAreaController) List(c *gin.Context) {
	query := c.Request.URL.Query()
	filters := utils.BuildFilters(query, impactAreaFilters)

	page, err := utils.Paginate[models.ImpactArea](ctl.db, utils.ParamsFromQuery(query), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch impact areas"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *ImpactAreaController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var area models.ImpactArea
	if err := ctl.db.First(&area, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Impact area not found"})
		return
	}
	c.JSON(http.StatusOK, area)
}

func (ctl *ImpactAreaController) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area := models.ImpactArea{Name: req.Name, Description: req.Description}
	if err := ctl.db.Create(&area).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create impact area"})
		return
	}
	c.JSON(http.StatusCreated, area)
}

func (ctl *ImpactAreaController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var area models.ImpactArea
	if err := ctl.db.First(&area, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Impact area not found"})
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.Description != nil {
		area.Description = *req.Description
	}

	if err := ctl.db.Save(&area).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update impact area"})
		return
	}
	c.JSON(http.StatusOK, area)
}

func (ctl *ImpactAreaController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := ctl.db.Delete(&models.ImpactArea{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete impact area"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Impact area not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Impact area deleted successfully"})
}
