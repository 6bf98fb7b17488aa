package models

import "time"

// Solution is a student's submitted answer for a task. A student may submit
// multiple solutions for the same task; each row is its own submission.
type Solution struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	TaskID       uint       `gorm:"not null;index" json:"task_id"`
	StudentID    uint       `gorm:"not null;index" json:"student_id"`
	PointsEarned *int       `json:"points_earned"`
	SubmittedAt  time.Time  `gorm:"autoCreateTime" json:"submitted_at"`
	EvaluatedAt  *time.Time `json:"evaluated_at"`

	Task    Task `gorm:"foreignKey:TaskID" json:"-"`
	Student User `gorm:"foreignKey:StudentID" json:"-"`
}

// IsEvaluated reports whether a teacher has graded the solution.
func (s Solution) IsEvaluated() bool {
	return s.PointsEarned != nil
}
