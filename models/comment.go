package models

import "time"

// Comment targets exactly one of a nominee or an institution; the API layer
// rejects creates that set neither or both.
type Comment struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	UserID        int       `gorm:"not null;index" json:"user_id"`
	NomineeID     *int      `gorm:"index" json:"nominee_id,omitempty"`
	InstitutionID *int      `gorm:"index" json:"institution_id,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
