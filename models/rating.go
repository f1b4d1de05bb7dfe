package models

import "time"

// Rating is a scored assessment of a nominee or an institution against one
// rating category. Exactly one of NomineeID/InstitutionID is set.
type Rating struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Score            int       `gorm:"not null;check:score >= 0 AND score <= 5" json:"score"`
	Evidence         *string   `gorm:"type:text" json:"evidence,omitempty"`
	Severity         *string   `gorm:"size:64" json:"severity,omitempty"`
	RatingCategoryID int       `gorm:"not null;index" json:"rating_category_id"`
	NomineeID        *int      `gorm:"index" json:"nominee_id,omitempty"`
	InstitutionID    *int      `gorm:"index" json:"institution_id,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	RatingCategory RatingCategory `gorm:"foreignKey:RatingCategoryID" json:"rating_category,omitempty"`
}

// RatingCategory is a named evaluation dimension. Weight is a declared
// percentage contribution; nothing enforces that weights sum to 100 and the
// aggregate shown to clients is the plain mean of scores (see AverageScore).
type RatingCategory struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Keyword     string    `gorm:"size:255" json:"keyword"`
	Icon        string    `gorm:"size:255" json:"icon"`
	Description string    `gorm:"type:text" json:"description"`
	Weight      float64   `gorm:"not null;default:0" json:"weight"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// InstitutionRatingCategory mirrors RatingCategory for institution-level
// evaluations; the two sets of dimensions are curated independently.
type InstitutionRatingCategory struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Keyword     string    `gorm:"size:255" json:"keyword"`
	Icon        string    `gorm:"size:255" json:"icon"`
	Description string    `gorm:"type:text" json:"description"`
	Weight      float64   `gorm:"not null;default:0" json:"weight"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName overrides
func (Rating) TableName() string {
	return "ratings"
}

func (RatingCategory) TableName() string {
	return "rating_categories"
}

func (InstitutionRatingCategory) TableName() string {
	return "institution_rating_categories"
}

// AverageScore returns the unweighted arithmetic mean of the given ratings.
// The UI historically labels this "weighted score" but category weights are
// not part of the calculation; the weights are served alongside so clients
// can derive a true weighted mean if that is ever wanted.
func AverageScore(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(ratings))
}
