package controllers

import (
	"net/http"

	"rating-platform-api/models"
	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InstitutionController struct {
	db *gorm.DB
}

func NewInstitutionController(db *gorm.DB) *InstitutionController {
	return &InstitutionController{db: db}
}

var institutionFilters = utils.FilterConfig{
	SearchFields: []string{"name"},
	ExactFields:  map[string]utils.ValueKind{"status": utils.KindBool},
	RangeFields:  []string{"created_at"},
}

func (ctl *InstitutionController) List(c *gin.Context) {
	query := c.Request.URL.Query()
	filters := utils.BuildFilters(query, institutionFilters)

	page, err := utils.Paginate[models.Institution](ctl.db, utils.ParamsFromQuery(query), filters,
		"Ratings", "Ratings.RatingCategory")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch institutions"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get returns one institution with its ratings and the aggregate score.
// The aggregate is the plain mean of scores; category weights are served
// alongside, not folded in.
func (ctl *InstitutionController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var institution models.Institution
	err := ctl.db.Preload("Ratings").Preload("Ratings.RatingCategory").
		First(&institution, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Institution not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"institution":   institution,
		"average_score": models.AverageScore(institution.Ratings),
	})
}

func (ctl *InstitutionController) Create(c *gin.Context) {
	var req struct {
		Name   string  `json:"name" binding:"required"`
		Status bool    `json:"status"`
		Image  *string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	institution := models.Institution{Name: req.Name, Status: req.Status}
	if req.Image != nil {
		institution.Image = utils.ValidateImageURL(*req.Image)
	}

	if err := ctl.db.Create(&institution).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create institution"})
		return
	}
	c.JSON(http.StatusCreated, institution)
}

func (ctl *InstitutionController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var institution models.Institution
	if err := ctl.db.First(&institution, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Institution not found"})
		return
	}

	var req struct {
		Name   *string `json:"name"`
		Status *bool   `json:"status"`
		Image  *string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		institution.Name = *req.Name
	}
	if req.Status != nil {
		institution.Status = *req.Status
	}
	if req.Image != nil {
		institution.Image = utils.ValidateImageURL(*req.Image)
	}

	if err := ctl.db.Save(&institution).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update institution"})
		return
	}
	c.JSON(http.StatusOK, institution)
}

func (ctl *InstitutionController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := ctl.db.Delete(&models.Institution{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete institution"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Institution not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Institution deleted successfully"})
}
