package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/lms-go-api/internal/models"
)

// EnrollmentRepository manages the student_subjects join rows.
type EnrollmentRepository interface {
	IsEnrolled(ctx context.Context, studentID, subjectID uint) (bool, error)
	Enroll(ctx context.Context, studentID, subjectID uint) error
	Leave(ctx context.Context, studentID, subjectID uint) error
	// ListSubjects returns every subject the student is enrolled in,
	// soft-deleted subjects included.
	ListSubjects(ctx context.Context, studentID uint) ([]models.Subject, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository instantiates a GORM-backed repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) IsEnrolled(ctx context.Context, studentID, subjectID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("student_subjects").
		Where("user_id = ?", studentID).
		Where("subject_id = ?", subjectID).
		Count(&count).Error
	return count > 0, err
}

func (r *enrollmentRepository) Enroll(ctx context.Context, studentID, subjectID uint) error {
	// Bare primary-key references so Append only writes the join row.
	student := models.User{ID: studentID}
	subject := models.Subject{ID: subjectID}
	return r.db.WithContext(ctx).Model(&student).Association("EnrolledSubjects").Append(&subject)
}

func (r *enrollmentRepository) Leave(ctx context.Context, studentID, subjectID uint) error {
	student := models.User{ID: studentID}
	subject := models.Subject{ID: subjectID}
	return r.db.WithContext(ctx).Model(&student).Association("EnrolledSubjects").Delete(&subject)
}

func (r *enrollmentRepository) ListSubjects(ctx context.Context, studentID uint) ([]models.Subject, error) {
	student := models.User{ID: studentID}
	var subjects []models.Subject
	if err := r.db.WithContext(ctx).Model(&student).Association("EnrolledSubjects").Find(&subjects); err != nil {
		return nil, err
	}

	return subjects, nil
}
