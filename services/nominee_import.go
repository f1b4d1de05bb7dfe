package services

import (
	"errors"
	"fmt"
	"strings"

	"rating-platform-api/models"
	"rating-platform-api/utils"

	"gorm.io/gorm"
)

// NomineeImportRepository is the data access surface the nominee pipeline
// needs. Find methods return (nil, nil) when no row matches.
type NomineeImportRepository interface {
	FindPositionByName(name string) (*models.Position, error)
	CreatePosition(position *models.Position) error
	FindInstitutionByName(name string) (*models.Institution, error)
	CreateInstitution(institution *models.Institution) error
	FindDistrictByName(name string) (*models.District, error)
	CreateDistrict(district *models.District) error
	CreateNominee(nominee *models.Nominee) error
}

type gormNomineeImportRepository struct {
	db *gorm.DB
}

// NewGormNomineeImportRepository wraps the shared handle for the pipeline.
func NewGormNomineeImportRepository(db *gorm.DB) NomineeImportRepository {
	return &gormNomineeImportRepository{db: db}
}

func (r *gormNomineeImportRepository) FindPositionByName(name string) (*models.Position, error) {
	var position models.Position
	err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&position).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *gormNomineeImportRepository) CreatePosition(position *models.Position) error {
	return r.db.Create(position).Error
}

func (r *gormNomineeImportRepository) FindInstitutionByName(name string) (*models.Institution, error) {
	var institution models.Institution
	err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&institution).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &institution, nil
}

func (r *gormNomineeImportRepository) CreateInstitution(institution *models.Institution) error {
	return r.db.Create(institution).Error
}

func (r *gormNomineeImportRepository) FindDistrictByName(name string) (*models.District, error) {
	var district models.District
	err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&district).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *gormNomineeImportRepository) CreateDistrict(district *models.District) error {
	return r.db.Create(district).Error
}

func (r *gormNomineeImportRepository) CreateNominee(nominee *models.Nominee) error {
	return r.db.Create(nominee).Error
}

// EntityCounts tallies find-or-create outcomes for one lookup table.
type EntityCounts struct {
	Created  int `json:"created"`
	Existing int `json:"existing"`
}

// NomineeCounts tallies target-row outcomes.
type NomineeCounts struct {
	Created int `json:"created"`
	Failed  int `json:"failed"`
}

// ImportDetails is the per-entity-type breakdown in the upload summary.
type ImportDetails struct {
	Positions    EntityCounts  `json:"positions"`
	Institutions EntityCounts  `json:"institutions"`
	Districts    EntityCounts  `json:"districts"`
	Nominees     NomineeCounts `json:"nominees"`
}

// CreatedEntityIDs are the lookup rows a successful row resolved to,
// whether found or freshly created.
type CreatedEntityIDs struct {
	Position    int `json:"position"`
	Institution int `json:"institution"`
	District    int `json:"district"`
}

// RowResult is the tagged outcome for one CSV row: Success carries the
// record and resolved ids, failure carries only the reason.
type RowResult struct {
	Success         bool              `json:"success"`
	Nominee         string            `json:"nominee"`
	Data            *models.Nominee   `json:"data,omitempty"`
	Error           string            `json:"error,omitempty"`
	CreatedEntities *CreatedEntityIDs `json:"created_entities,omitempty"`
}

// NomineeImportResult is the full summary returned to the operator.
type NomineeImportResult struct {
	Total      int           `json:"total"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Details    ImportDetails `json:"details"`
	Results    []RowResult   `json:"results"`
}

// NomineeImportService runs the per-row nominee pipeline.
type NomineeImportService struct {
	repo NomineeImportRepository
}

func NewNomineeImportService(repo NomineeImportRepository) *NomineeImportService {
	return &NomineeImportService{repo: repo}
}

// Import processes parsed CSV records one at a time. Rows are deliberately
// serial: two rows naming the same not-yet-existing position must resolve to
// a single created row, which a concurrent find-then-create cannot
// guarantee. Each row is its own unit of work; a failed row never aborts or
// rolls back the rest of the batch.
func (s *NomineeImportService) Import(records []CSVRecord) *NomineeImportResult {
	result := &NomineeImportResult{
		Total:   len(records),
		Results: make([]RowResult, 0, len(records)),
	}

	for _, record := range records {
		row := s.processRow(record, &result.Details)
		if row.Success {
			result.Successful++
		} else {
			result.Failed++
		}
		result.Results = append(result.Results, row)
	}

	return result
}

func (s *NomineeImportService) processRow(record CSVRecord, details *ImportDetails) RowResult {
	name := record["name"]
	positionName := record["position"]
	institutionName := record["institution"]
	districtName := record["district"]
	region := record["region"]

	if name == "" || positionName == "" || institutionName == "" || districtName == "" || region == "" {
		details.Nominees.Failed++
		return RowResult{Success: false, Nominee: name, Error: "Missing required fields"}
	}

	// A malformed image URL drops the image, never the row.
	image := utils.ValidateImageURL(record["image"])

	position, err := s.findOrCreatePosition(positionName, details)
	if err != nil {
		return s.failRow(name, details, err)
	}

	institution, err := s.findOrCreateInstitution(institutionName, details)
	if err != nil {
		return s.failRow(name, details, err)
	}

	district, err := s.findOrCreateDistrict(districtName, region, details)
	if err != nil {
		return s.failRow(name, details, err)
	}

	nominee := &models.Nominee{
		Name:          name,
		PositionID:    position.ID,
		InstitutionID: institution.ID,
		DistrictID:    district.ID,
		Image:         image,
		Status:        false,
	}
	if err := s.repo.CreateNominee(nominee); err != nil {
		return s.failRow(name, details, fmt.Errorf("failed to create nominee: %w", err))
	}

	details.Nominees.Created++
	return RowResult{
		Success: true,
		Nominee: name,
		Data:    nominee,
		CreatedEntities: &CreatedEntityIDs{
			Position:    position.ID,
			Institution: institution.ID,
			District:    district.ID,
		},
	}
}

func (s *NomineeImportService) failRow(name string, details *ImportDetails, err error) RowResult {
	details.Nominees.Failed++
	return RowResult{Success: false, Nominee: name, Error: err.Error()}
}

func (s *NomineeImportService) findOrCreatePosition(name string, details *ImportDetails) (*models.Position, error) {
	position, err := s.repo.FindPositionByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up position: %w", err)
	}
	if position != nil {
		details.Positions.Existing++
		return position, nil
	}

	position = &models.Position{Name: name}
	if err := s.repo.CreatePosition(position); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	details.Positions.Created++
	return position, nil
}

func (s *NomineeImportService) findOrCreateInstitution(name string, details *ImportDetails) (*models.Institution, error) {
	institution, err := s.repo.FindInstitutionByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up institution: %w", err)
	}
	if institution != nil {
		details.Institutions.Existing++
		return institution, nil
	}

	// Institutions created as a side effect of nominee import start hidden.
	institution = &models.Institution{Name: name, Status: false}
	if err := s.repo.CreateInstitution(institution); err != nil {
		return nil, fmt.Errorf("failed to create institution: %w", err)
	}
	details.Institutions.Created++
	return institution, nil
}

func (s *NomineeImportService) findOrCreateDistrict(name, region string, details *ImportDetails) (*models.District, error) {
	district, err := s.repo.FindDistrictByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up district: %w", err)
	}
	if district != nil {
		details.Districts.Existing++
		return district, nil
	}

	district = &models.District{Name: name, Region: region}
	if err := s.repo.CreateDistrict(district); err != nil {
		return nil, fmt.Errorf("failed to create district: %w", err)
	}
	details.Districts.Created++
	return district, nil
}
