package controllers

import (
	"net/http"

	"rating-platform-api/models"
	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DistrictController struct {
	db *gorm.DB
}

func NewDistrictController(db *gorm.DB) *DistrictController {
	return &DistrictController{db: db}
}

var districtFilters = utils.FilterConfig{
	SearchFields: []string{"name", "region"},
	ExactFields:  map[string]utils.ValueKind{"region": utils.KindString},
	RangeFields:  []string{"created_at"},
}

func (ctl *DistrictController) List(c *gin.Context) {
	query := c.Request.URL.Query()
	filters := utils.BuildFilters(query, districtFilters)

	page, err := utils.Paginate[models.District](ctl.db, utils.ParamsFromQuery(query), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch districts"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *DistrictController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var district models.District
	if err := ctl.db.First(&district, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
		return
	}
	c.JSON(http.StatusOK, district)
}

func (ctl *DistrictController) Create(c *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required"`
		Region string `json:"region" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	district := models.District{Name: req.Name, Region: req.Region}
	if err := ctl.db.Create(&district).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create district"})
		return
	}
	c.JSON(http.StatusCreated, district)
}

func (ctl *DistrictController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var district models.District
	if err := ctl.db.First(&district, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
		return
	}

	var req struct {
		Name   *string `json:"name"`
		Region *string `json:"region"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		district.Name = *req.Name
	}
	if req.Region != nil {
		district.Region = *req.Region
	}

	if err := ctl.db.Save(&district).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update district"})
		return
	}
	c.JSON(http.StatusOK, district)
}

func (ctl *DistrictController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := ctl.db.Delete(&models.District{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete district"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "District deleted successfully"})
}
