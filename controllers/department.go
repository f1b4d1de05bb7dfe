package controllers

import (
	"net/http"

	"rating-platform-api/models"
	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DepartmentController struct {
	db *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{db: db}
}

var departmentFilters = utils.FilterConfig{
	SearchFields: []string{"name"},
	RangeFields:  []string{"created_at"},
}

func (ctl *DepartmentController) List(c *gin.Context) {
	query := c.Request.URL.Query()
	filters := utils.BuildFilters(query, departmentFilters)

	page, err := utils.Paginate[models.Department](ctl.db, utils.ParamsFromQuery(query), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch departments"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *DepartmentController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var department models.Department
	if err := ctl.db.First(&department, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}
	c.JSON(http.StatusOK, department)
}

func (ctl *DepartmentController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department := models.Department{Name: req.Name}
	if err := ctl.db.Create(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create department"})
		return
	}
	c.JSON(http.StatusCreated, department)
}

func (ctl *DepartmentController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var department models.Department
	if err := ctl.db.First(&department, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}

	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name != nil {
		department.Name = *req.Name
	}

	if err := ctl.db.Save(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update department"})
		return
	}
	c.JSON(http.StatusOK, department)
}

func (ctl *DepartmentController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := ctl.db.Delete(&models.Department{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete department"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Department deleted successfully"})
}
