package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"rating-platform-api/models"
	"rating-platform-api/services"
	"rating-platform-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxImportBytes = 10 * 1024 * 1024

// BulkUploadController handles the CSV bulk-import endpoints and their
// template descriptors. Row-level failures are captured in the summary and
// never surface as HTTP errors; only a missing/oversized/unparsable file
// aborts the whole upload.
type BulkUploadController struct {
	db            *gorm.DB
	nomineeImport *services.NomineeImportService
}

func NewBulkUploadController(db *gorm.DB) *BulkUploadController {
	return &BulkUploadController{
		db:            db,
		nomineeImport: services.NewNomineeImportService(services.NewGormNomineeImportRepository(db)),
	}
}

type importSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// receiveCSV validates the multipart upload and parses it fully. On failure
// it writes the response itself and reports false; no rows are ever
// processed from a file that did not parse.
func (ctl *BulkUploadController) receiveCSV(c *gin.Context) ([]services.CSVRecord, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid file provided"})
		return nil, false
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a .csv"})
		return nil, false
	}
	if header.Size > maxImportBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 10MB limit"})
		return nil, false
	}

	records, err := services.ParseCSV(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process upload",
			"details": err.Error(),
		})
		return nil, false
	}
	return records, true
}

// ImportDistricts creates one district per row. Rows are independent; a
// failed row is reported and the batch continues.
func (ctl *BulkUploadController) ImportDistricts(c *gin.Context) {
	records, ok := ctl.receiveCSV(c)
	if !ok {
		return
	}

	summary := importSummary{Total: len(records)}
	errs := make([]string, 0)

	for _, record := range records {
		if record["name"] == "" || record["region"] == "" {
			summary.Failed++
			errs = append(errs, fmt.Sprintf(
				"Failed to process district %s: Missing required fields: name and region are required",
				record["name"]))
			continue
		}

		district := models.District{Name: record["name"], Region: record["region"]}
		if err := ctl.db.Create(&district).Error; err != nil {
			summary.Failed++
			errs = append(errs, fmt.Sprintf("Failed to process district %s: %v", record["name"], err))
			continue
		}
		summary.Successful++
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Upload processed",
		"summary": summary,
		"errors":  errs,
	})
}

// DistrictTemplate describes the CSV the district importer expects.
func (ctl *BulkUploadController) DistrictTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"template": gin.H{
			"headers":  []string{"name", "region"},
			"required": []string{"name", "region"},
			"example": gin.H{
				"name":   "Example District",
				"region": "Example Region",
			},
		},
	})
}

// ImportInstitutions creates one institution per row.
func (ctl *BulkUploadController) ImportInstitutions(c *gin.Context) {
	records, ok := ctl.receiveCSV(c)
	if !ok {
		return
	}

	summary := importSummary{Total: len(records)}
	errs := make([]string, 0)

	for _, record := range records {
		if record["name"] == "" {
			summary.Failed++
			errs = append(errs, fmt.Sprintf(
				"Failed to process institution %s: Missing institution name", record["name"]))
			continue
		}

		status := strings.EqualFold(record["status"], "true") || record["status"] == "1"
		institution := models.Institution{
			Name:   record["name"],
			Status: status,
			Image:  utils.ValidateImageURL(record["image"]),
		}
		if err := ctl.db.Create(&institution).Error; err != nil {
			summary.Failed++
			errs = append(errs, fmt.Sprintf("Failed to process institution %s: %v", record["name"], err))
			continue
		}
		summary.Successful++
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Upload processed",
		"summary": summary,
		"errors":  errs,
	})
}

// InstitutionTemplate describes the CSV the institution importer expects.
func (ctl *BulkUploadController) InstitutionTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"template": gin.H{
			"headers":  []string{"name", "status", "image"},
			"required": []string{"name"},
			"optional": []string{"status", "image"},
			"example": gin.H{
				"name":   "Example Institution",
				"status": "true",
				"image":  "https://example.com/image.jpg",
			},
		},
	})
}

// ImportNominees runs the full per-row pipeline: find-or-create of the
// referenced position, institution and district, then the nominee itself.
func (ctl *BulkUploadController) ImportNominees(c *gin.Context) {
	records, ok := ctl.receiveCSV(c)
	if !ok {
		return
	}

	result := ctl.nomineeImport.Import(records)

	c.JSON(http.StatusOK, gin.H{
		"message": "Bulk upload completed",
		"summary": gin.H{
			"total":      result.Total,
			"successful": result.Successful,
			"failed":     result.Failed,
			"details":    result.Details,
		},
		"results": result.Results,
	})
}

// NomineeTemplate describes the CSV the nominee importer expects.
func (ctl *BulkUploadController) NomineeTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"template": gin.H{
			"headers":  []string{"name", "position", "institution", "district", "region", "image"},
			"required": []string{"name", "position", "institution", "district", "region"},
			"optional": []string{"image"},
			"example": gin.H{
				"name":        "John Doe",
				"position":    "Chairman",
				"institution": "Example Institution",
				"district":    "Central District",
				"region":      "Central",
				"image":       "https://example.com/image.jpg",
			},
		},
	})
}
