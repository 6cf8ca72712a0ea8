package model

import "time"

// Company is optional employer metadata attached to a job post.
type Company struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:text;not null" json:"name"`
	Industry string `gorm:"type:text" json:"industry"`
	Website  string `gorm:"type:text" json:"website"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
