package models

import "time"

type Institution struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Status    bool      `gorm:"not null;default:false" json:"status"`
	Image     *string   `gorm:"size:1024" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Ratings  []Rating  `gorm:"foreignKey:InstitutionID" json:"ratings,omitempty"`
	Comments []Comment `gorm:"foreignKey:InstitutionID" json:"comments,omitempty"`
}

func (Institution) TableName() string {
	return "institutions"
}
