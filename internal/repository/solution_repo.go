package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/lms-go-api/internal/models"
)

// SolutionRepository defines persistence operations for solutions.
type SolutionRepository interface {
	Create(ctx context.Context, solution *models.Solution) error
	Save(ctx context.Context, solution *models.Solution) error
	GetByID(ctx context.Context, id uint) (models.Solution, error)
	ListByTask(ctx context.Context, taskID uint) ([]models.Solution, error)
	ListByTaskAndStudent(ctx context.Context, taskID, studentID uint) ([]models.Solution, error)
	CountByTask(ctx context.Context, taskID uint) (total, evaluated int64, err error)
}

type solutionRepository struct {
	db *gorm.DB
}

// NewSolutionRepository instantiates a GORM-backed repository.
func NewSolutionRepository(db *gorm.DB) SolutionRepository {
	return &solutionRepository{db: db}
}

func (r *solutionRepository) Create(ctx context.Context, solution *models.Solution) error {
	return r.db.WithContext(ctx).Create(solution).Error
}

func (r *solutionRepository) Save(ctx context.Context, solution *models.Solution) error {
	return r.db.WithContext(ctx).Save(solution).Error
}

func (r *solutionRepository) GetByID(ctx context.Context, id uint) (models.Solution, error) {
	var solution models.Solution
	if err := r.db.WithContext(ctx).First(&solution, id).Error; err != nil {
		return models.Solution{}, err
	}

	return solution, nil
}

func (r *solutionRepository) ListByTask(ctx context.Context, taskID uint) ([]models.Solution, error) {
	var solutions []models.Solution
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Order("submitted_at ASC").Find(&solutions).Error; err != nil {
		return nil, err
	}

	return solutions, nil
}

func (r *solutionRepository) ListByTaskAndStudent(ctx context.Context, taskID, studentID uint) ([]models.Solution, error) {
	var solutions []models.Solution
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Where("student_id = ?", studentID).
		Order("submitted_at ASC").
		Find(&solutions).Error; err != nil {
		return nil, err
	}

	return solutions, nil
}

func (r *solutionRepository) CountByTask(ctx context.Context, taskID uint) (int64, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Solution{}).Where("task_id = ?", taskID).Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var evaluated int64
	if err := r.db.WithContext(ctx).Model(&models.Solution{}).
		Where("task_id = ?", taskID).
		Where("points_earned IS NOT NULL").
		Count(&evaluated).Error; err != nil {
		return 0, 0, err
	}

	return total, evaluated, nil
}
