package models

import "time"

// Subject is a course taught by a single teacher and enrollable by students.
//
// DeletedAt is a plain timestamp rather than gorm.DeletedAt: the soft-delete
// filter is applied per query, not globally, because a handful of student
// paths intentionally operate on soft-deleted subjects.
type Subject struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Code        string     `gorm:"size:64;uniqueIndex;not null" json:"code"`
	Credits     int        `gorm:"not null" json:"credits"`
	TeacherID   uint       `gorm:"not null;index" json:"teacher_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `gorm:"index" json:"-"`

	Teacher  User   `gorm:"foreignKey:TeacherID" json:"-"`
	Tasks    []Task `gorm:"foreignKey:SubjectID" json:"-"`
	Students []User `gorm:"many2many:student_subjects" json:"-"`
}

// IsDeleted reports whether the subject has been soft-deleted.
func (s Subject) IsDeleted() bool {
	return s.DeletedAt != nil
}
