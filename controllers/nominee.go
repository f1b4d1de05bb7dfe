package controllers

import (
	"net/http"

	"rating-platform-api/models"
	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NomineeController struct {
	db *gorm.DB
}

func NewNomineeController(db *gorm.DB) *NomineeController {
	return &NomineeController{db: db}
}

var nomineeFilters = utils.FilterConfig{
	SearchFields: []string{"name"},
	ExactFields: map[string]utils.ValueKind{
		"status":         utils.KindBool,
		"position_id":    utils.KindInt,
		"institution_id": utils.KindInt,
		"district_id":    utils.KindInt,
	},
	RangeFields: []string{"created_at"},
}

func (ctl *NomineeController) List(c *gin.Context) {
	query := c.Request.URL.Query()
	filters := utils.BuildFilters(query, nomineeFilters)

	page, err := utils.Paginate[models.Nominee](ctl.db, utils.ParamsFromQuery(query), filters,
		"Position", "Institution", "District", "Ratings", "Ratings.RatingCategory")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nominees"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get returns one nominee with relations, ratings and the aggregate score.
func (ctl *NomineeController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var nominee models.Nominee
	err := ctl.db.Preload("Position").Preload("Institution").Preload("District").
		Preload("Ratings").Preload("Ratings.RatingCategory").
		First(&nominee, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nominee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nominee":       nominee,
		"average_score": models.AverageScore(nominee.Ratings),
	})
}

func (ctl *NomineeController) Create(c *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required"`
		PositionID    int     `json:"position_id" binding:"required"`
		InstitutionID int     `json:"institution_id" binding:"required"`
		DistrictID    int     `json:"district_id" binding:"required"`
		Status        bool    `json:"status"`
		Evidence      *string `json:"evidence"`
		Image         *string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nominee := models.Nominee{
		Name:          req.Name,
		PositionID:    req.PositionID,
		InstitutionID: req.InstitutionID,
		DistrictID:    req.DistrictID,
		Status:        req.Status,
		Evidence:      req.Evidence,
	}
	if req.Image != nil {
		nominee.Image = utils.ValidateImageURL(*req.Image)
	}

	if err := ctl.db.Create(&nominee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create nominee"})
		return
	}

	ctl.db.Preload("Position").Preload("Institution").Preload("District").
		First(&nominee, nominee.ID)
	c.JSON(http.StatusCreated, nominee)
}

func (ctl *NomineeController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var nominee models.Nominee
	if err := ctl.db.First(&nominee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nominee not found"})
		return
	}

	var req struct {
		Name          *string `json:"name"`
		PositionID    *int    `json:"position_id"`
		InstitutionID *int    `json:"institution_id"`
		DistrictID    *int    `json:"district_id"`
		Status        *bool   `json:"status"`
		Evidence      *string `json:"evidence"`
		Image         *string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		nominee.Name = *req.Name
	}
	if req.PositionID != nil {
		nominee.PositionID = *req.PositionID
	}
	if req.InstitutionID != nil {
		nominee.InstitutionID = *req.InstitutionID
	}
	if req.DistrictID != nil {
		nominee.DistrictID = *req.DistrictID
	}
	if req.Status != nil {
		nominee.Status = *req.Status
	}
	if req.Evidence != nil {
		nominee.Evidence = req.Evidence
	}
	if req.Image != nil {
		nominee.Image = utils.ValidateImageURL(*req.Image)
	}

	if err := ctl.db.Save(&nominee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update nominee"})
		return
	}
	c.JSON(http.StatusOK, nominee)
}

func (ctl *NomineeController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := ctl.db.Delete(&models.Nominee{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete nominee"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nominee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Nominee deleted successfully"})
}
