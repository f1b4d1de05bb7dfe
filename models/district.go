package models

import "time"

// District is a lookup entity referenced by nominees. The unique index on
// name backs the case-insensitive find-or-create used by bulk import
// (MySQL utf8mb4 collation is case-insensitive).
type District struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Region    string    `gorm:"size:255;not null" json:"region"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (District) TableName() string {
	return "districts"
}
