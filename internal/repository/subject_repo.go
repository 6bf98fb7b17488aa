package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/lms-go-api/internal/models"
)

// SubjectRepository defines persistence operations for subjects.
//
// "Active" methods filter out soft-deleted rows; the unfiltered variants
// exist for the paths that intentionally see soft-deleted subjects
// (leaving a stale enrollment, ownership probes on task mutation).
type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	Save(ctx context.Context, subject *models.Subject) error
	ListActive(ctx context.Context) ([]models.Subject, error)
	ListActiveByTeacher(ctx context.Context, teacherID uint) ([]models.Subject, error)
	GetActiveByID(ctx context.Context, id uint) (models.Subject, error)
	GetActiveOwned(ctx context.Context, teacherID, id uint) (models.Subject, error)
	GetActiveOwnedWithStudents(ctx context.Context, teacherID, id uint) (models.Subject, error)
	GetByID(ctx context.Context, id uint) (models.Subject, error)
	GetOwned(ctx context.Context, teacherID, id uint) (models.Subject, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository instantiates a GORM-backed repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("deleted_at IS NULL")
}

func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) Save(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

func (r *subjectRepository) ListActive(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := r.active(ctx).Order("created_at ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}

	return subjects, nil
}

func (r *subjectRepository) ListActiveByTeacher(ctx context.Context, teacherID uint) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := r.active(ctx).Where("teacher_id = ?", teacherID).Order("created_at ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}

	return subjects, nil
}

func (r *subjectRepository) GetActiveByID(ctx context.Context, id uint) (models.Subject, error) {
	var subject models.Subject
	if err := r.active(ctx).First(&subject, id).Error; err != nil {
		return models.Subject{}, err
	}

	return subject, nil
}

func (r *subjectRepository) GetActiveOwned(ctx context.Context, teacherID, id uint) (models.Subject, error) {
	var subject models.Subject
	if err := r.active(ctx).Where("teacher_id = ?", teacherID).First(&subject, id).Error; err != nil {
		return models.Subject{}, err
	}

	return subject, nil
}

func (r *subjectRepository) GetActiveOwnedWithStudents(ctx context.Context, teacherID, id uint) (models.Subject, error) {
	var subject models.Subject
	if err := r.active(ctx).Preload("Students").Where("teacher_id = ?", teacherID).First(&subject, id).Error; err != nil {
		return models.Subject{}, err
	}

	return subject, nil
}

func (r *subjectRepository) GetByID(ctx context.Context, id uint) (models.Subject, error) {
	var subject models.Subject
	if err := r.db.WithContext(ctx).First(&subject, id).Error; err != nil {
		return models.Subject{}, err
	}

	return subject, nil
}

func (r *subjectRepository) GetOwned(ctx context.Context, teacherID, id uint) (models.Subject, error) {
	var subject models.Subject
	if err := r.db.WithContext(ctx).Where("teacher_id = ?", teacherID).First(&subject, id).Error; err != nil {
		return models.Subject{}, err
	}

	return subject, nil
}

func (r *subjectRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	// Uniqueness is global and permanent: soft-deleted subjects keep their code.
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subject{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
