package models

import "time"

// Nominee is a person evaluated against rating categories, tied to a
// position, institution and district. Nominee names are deliberately not
// unique; duplicates are legitimate.
type Nominee struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"size:255;not null;index" json:"name"`
	PositionID    int       `gorm:"not null;index" json:"position_id"`
	InstitutionID int       `gorm:"not null;index" json:"institution_id"`
	DistrictID    int       `gorm:"not null;index" json:"district_id"`
	Status        bool      `gorm:"not null;default:false" json:"status"`
	Evidence      *string   `gorm:"type:text" json:"evidence,omitempty"`
	Image         *string   `gorm:"size:1024" json:"image,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Position    Position    `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	Institution Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
	District    District    `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
	Ratings     []Rating    `gorm:"foreignKey:NomineeID" json:"ratings,omitempty"`
	Comments    []Comment   `gorm:"foreignKey:NomineeID" json:"comments,omitempty"`
}

func (Nominee) TableName() string {
	return "nominees"
}
