package models

import "time"

// User is an account that can either teach subjects or study them.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsTeacher    bool      `gorm:"not null;default:false" json:"is_teacher"`
	CreatedAt    time.Time `json:"created_at"`

	TaughtSubjects   []Subject  `gorm:"foreignKey:TeacherID" json:"-"`
	EnrolledSubjects []Subject  `gorm:"many2many:student_subjects" json:"-"`
	Solutions        []Solution `gorm:"foreignKey:StudentID" json:"-"`
}

// Role names derived from the IsTeacher flag.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Role returns the role name used by the authorization layer.
func (u User) Role() string {
	if u.IsTeacher {
		return RoleTeacher
	}
	return RoleStudent
}
