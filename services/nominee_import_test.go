package services

import (
	"errors"
	"strings"
	"testing"

	"rating-platform-api/models"
)

// fakeImportRepository backs the pipeline with in-memory tables.
type fakeImportRepository struct {
	positions    []*models.Position
	institutions []*models.Institution
	districts    []*models.District
	nominees     []*models.Nominee

	nextID            int
	failNomineeNamed  string
	failPositionsWith error
}

func newFakeImportRepository() *fakeImportRepository {
	return &fakeImportRepository{nextID: 1}
}

func (r *fakeImportRepository) id() int {
	id := r.nextID
	r.nextID++
	return id
}

func (r *fakeImportRepository) FindPositionByName(name string) (*models.Position, error) {
	if r.failPositionsWith != nil {
		return nil, r.failPositionsWith
	}
	for _, p := range r.positions {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeImportRepository) CreatePosition(position *models.Position) error {
	position.ID = r.id()
	r.positions = append(r.positions, position)
	return nil
}

func (r *fakeImportRepository) FindInstitutionByName(name string) (*models.Institution, error) {
	for _, i := range r.institutions {
		if strings.EqualFold(i.Name, name) {
			return i, nil
		}
	}
	return nil, nil
}

func (r *fakeImportRepository) CreateInstitution(institution *models.Institution) error {
	institution.ID = r.id()
	r.institutions = append(r.institutions, institution)
	return nil
}

func (r *fakeImportRepository) FindDistrictByName(name string) (*models.District, error) {
	for _, d := range r.districts {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeImportRepository) CreateDistrict(district *models.District) error {
	district.ID = r.id()
	r.districts = append(r.districts, district)
	return nil
}

func (r *fakeImportRepository) CreateNominee(nominee *models.Nominee) error {
	if nominee.Name == r.failNomineeNamed {
		return errors.New("store rejected nominee")
	}
	nominee.ID = r.id()
	r.nominees = append(r.nominees, nominee)
	return nil
}

func nomineeRecord(overrides map[string]string) CSVRecord {
	record := CSVRecord{
		"name":        "John Doe",
		"position":    "Chairman",
		"institution": "Example Institution",
		"district":    "Central District",
		"region":      "Central",
	}
	for k, v := range overrides {
		record[k] = v
	}
	return record
}

func TestNomineeImportCreatesLookupsAndNominee(t *testing.T) {
	repo := newFakeImportRepository()
	svc := NewNomineeImportService(repo)

	result := svc.Import([]CSVRecord{nomineeRecord(nil)})

	if result.Total != 1 || result.Successful != 1 || result.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", result)
	}
	if result.Details.Positions.Created != 1 || result.Details.Institutions.Created != 1 ||
		result.Details.Districts.Created != 1 || result.Details.Nominees.Created != 1 {
		t.Fatalf("unexpected details: %+v", result.Details)
	}

	if len(repo.nominees) != 1 {
		t.Fatalf("expected one nominee, got %d", len(repo.nominees))
	}
	nominee := repo.nominees[0]
	if nominee.Status {
		t.Fatal("imported nominees must start with status=false")
	}
	if nominee.PositionID != repo.positions[0].ID ||
		nominee.InstitutionID != repo.institutions[0].ID ||
		nominee.DistrictID != repo.districts[0].ID {
		t.Fatalf("nominee does not reference the created lookups: %+v", nominee)
	}
	if repo.institutions[0].Status {
		t.Fatal("institutions created during import must start hidden")
	}
	if repo.districts[0].Region != "Central" {
		t.Fatalf("district must take the row's region, got %q", repo.districts[0].Region)
	}

	row := result.Results[0]
	if !row.Success || row.CreatedEntities == nil {
		t.Fatalf("unexpected row result: %+v", row)
	}
	if row.CreatedEntities.Position != repo.positions[0].ID {
		t.Fatalf("row must report resolved ids: %+v", row.CreatedEntities)
	}
}

func TestNomineeImportMissingRequiredFields(t *testing.T) {
	repo := newFakeImportRepository()
	svc := NewNomineeImportService(repo)

	result := svc.Import([]CSVRecord{nomineeRecord(map[string]string{"region": ""})})

	if result.Successful != 0 || result.Failed != 1 {
		t.Fatalf("unexpected summary: %+v", result)
	}
	if result.Results[0].Error != "Missing required fields" {
		t.Fatalf("unexpected error: %q", result.Results[0].Error)
	}
	if len(repo.positions) != 0 || len(repo.nominees) != 0 {
		t.Fatal("a failed row must not write anything")
	}
}

func TestNomineeImportReusesExistingPositionCaseInsensitively(t *testing.T) {
	repo := newFakeImportRepository()
	repo.positions = append(repo.positions, &models.Position{ID: repo.id(), Name: "Chairman"})
	svc := NewNomineeImportService(repo)

	result := svc.Import([]CSVRecord{nomineeRecord(map[string]string{"position": "chairman"})})

	if result.Successful != 1 {
		t.Fatalf("unexpected summary: %+v", result)
	}
	if result.Details.Positions.Existing != 1 || result.Details.Positions.Created != 0 {
		t.Fatalf("existing position must be reused: %+v", result.Details.Positions)
	}
	if len(repo.positions) != 1 {
		t.Fatalf("no duplicate position may be created, got %d", len(repo.positions))
	}
}

func TestNomineeImportDropsInvalidImageURL(t *testing.T) {
	repo := newFakeImportRepository()
	svc := NewNomineeImportService(repo)

	result := svc.Import([]CSVRecord{nomineeRecord(map[string]string{"image": "not-a-url"})})

	if result.Successful != 1 {
		t.Fatalf("invalid image must not fail the row: %+v", result)
	}
	if repo.nominees[0].Image != nil {
		t.Fatalf("invalid image must be stored as absent, got %q", *repo.nominees[0].Image)
	}
}

func TestNomineeImportKeepsValidImageURL(t *testing.T) {
	repo := newFakeImportRepository()
	svc := NewNomineeImportService(repo)

	svc.Import([]CSVRecord{nomineeRecord(map[string]string{"image": "https://example.com/pic.jpg"})})

	if repo.nominees[0].Image == nil || *repo.nominees[0].Image != "https://example.com/pic.jpg" {
		t.Fatalf("valid image must be kept: %v", repo.nominees[0].Image)
	}
}

func TestNomineeImportRowsAreIndependent(t *testing.T) {
	repo := newFakeImportRepository()
	repo.failNomineeNamed = "Jane Roe"
	svc := NewNomineeImportService(repo)

	result := svc.Import([]CSVRecord{
		nomineeRecord(map[string]string{"name": "Jane Roe"}),
		nomineeRecord(nil),
	})

	if result.Total != 2 || result.Successful != 1 || result.Failed != 1 {
		t.Fatalf("one failed row must not abort the batch: %+v", result)
	}
	if result.Results[0].Success || !result.Results[1].Success {
		t.Fatalf("unexpected row outcomes: %+v", result.Results)
	}
	if !strings.Contains(result.Results[0].Error, "store rejected nominee") {
		t.Fatalf("row error must carry the cause: %q", result.Results[0].Error)
	}
}

func TestNomineeImportIsIdempotentForLookups(t *testing.T) {
	repo := newFakeImportRepository()
	svc := NewNomineeImportService(repo)

	records := []CSVRecord{nomineeRecord(nil)}
	svc.Import(records)
	second := svc.Import(records)

	if second.Details.Positions.Created != 0 || second.Details.Positions.Existing != 1 {
		t.Fatalf("second import must reuse lookups: %+v", second.Details.Positions)
	}
	if len(repo.positions) != 1 || len(repo.institutions) != 1 || len(repo.districts) != 1 {
		t.Fatal("re-import must not duplicate lookup rows")
	}
	// Nominees have no uniqueness constraint; both imports create one.
	if len(repo.nominees) != 2 {
		t.Fatalf("expected two nominees after re-import, got %d", len(repo.nominees))
	}
}

func TestNomineeImportLookupErrorFailsOnlyThatRow(t *testing.T) {
	repo := newFakeImportRepository()
	repo.failPositionsWith = errors.New("connection lost")
	svc := NewNomineeImportService(repo)

	result := svc.Import([]CSVRecord{nomineeRecord(nil)})

	if result.Failed != 1 {
		t.Fatalf("unexpected summary: %+v", result)
	}
	if !strings.Contains(result.Results[0].Error, "failed to look up position") {
		t.Fatalf("unexpected error: %q", result.Results[0].Error)
	}
	if result.Details.Nominees.Failed != 1 {
		t.Fatalf("details must count the failure: %+v", result.Details.Nominees)
	}
}

func TestNomineeImportSharedLookupAcrossRows(t *testing.T) {
	repo := newFakeImportRepository()
	svc := NewNomineeImportService(repo)

	result := svc.Import([]CSVRecord{
		nomineeRecord(map[string]string{"name": "First"}),
		nomineeRecord(map[string]string{"name": "Second"}),
	})

	if result.Successful != 2 {
		t.Fatalf("unexpected summary: %+v", result)
	}
	if result.Details.Positions.Created != 1 || result.Details.Positions.Existing != 1 {
		t.Fatalf("rows naming the same new position must create it once: %+v", result.Details.Positions)
	}
	if len(repo.positions) != 1 {
		t.Fatalf("expected a single position row, got %d", len(repo.positions))
	}
}
