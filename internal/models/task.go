package models

import "time"

// Task is a gradable piece of work attached to a subject.
//
// Tasks have no soft delete and are not cascaded when their subject is
// soft-deleted; they remain reachable through the teacher task endpoints.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Points      int       `gorm:"not null" json:"points"`
	SubjectID   uint      `gorm:"not null;index" json:"subject_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Subject   Subject    `gorm:"foreignKey:SubjectID" json:"-"`
	Solutions []Solution `gorm:"foreignKey:TaskID" json:"-"`
}
