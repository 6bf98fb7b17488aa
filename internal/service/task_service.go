package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-go-api/internal/dto"
	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/repository"
)

// TaskService covers the teacher-scoped task and grading workflows.
type TaskService interface {
	Create(ctx context.Context, teacherID, subjectID uint, payload dto.TaskCreateRequest) (dto.TaskResponse, error)
	ListBySubject(ctx context.Context, teacherID, subjectID uint) ([]dto.TaskResponse, error)
	Update(ctx context.Context, teacherID, taskID uint, payload dto.TaskUpdateRequest) (dto.TaskResponse, error)
	GetWithStats(ctx context.Context, teacherID, taskID uint) (dto.TaskWithStatsResponse, error)
	ListSolutions(ctx context.Context, teacherID, taskID uint) ([]dto.SolutionResponse, error)
	Evaluate(ctx context.Context, teacherID, solutionID uint, payload dto.SolutionEvaluateRequest) (dto.SolutionResponse, error)
}

type taskService struct {
	subjects  repository.SubjectRepository
	tasks     repository.TaskRepository
	solutions repository.SolutionRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewTaskService constructs a TaskService instance. The cache client may be
// nil; stats are then computed on every request.
func NewTaskService(subjects repository.SubjectRepository, tasks repository.TaskRepository, solutions repository.SolutionRepository, cache *redis.Client, cacheTTL time.Duration, validate *validator.Validate, logger zerolog.Logger) TaskService {
	return &taskService{
		subjects:  subjects,
		tasks:     tasks,
		solutions: solutions,
		cache:     cache,
		cacheTTL:  cacheTTL,
		validator: validate,
		logger:    logger.With().Str("component", "task_service").Logger(),
		now:       time.Now,
	}
}

func taskStatsCacheKey(taskID uint) string {
	return fmt.Sprintf("task:stats:%d", taskID)
}

func (s *taskService) Create(ctx context.Context, teacherID, subjectID uint, payload dto.TaskCreateRequest) (dto.TaskResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TaskResponse{}, err
	}

	// Subject must exist, be non-deleted and owned by the acting teacher.
	if _, err := s.subjects.GetActiveOwned(ctx, teacherID, subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TaskResponse{}, ErrSubjectNotFound
		}
		return dto.TaskResponse{}, err
	}

	task := models.Task{
		Name:        sanitizePlain(payload.Name),
		Description: sanitizeRich(payload.Description),
		Points:      payload.Points,
		SubjectID:   subjectID,
	}

	if err := s.tasks.Create(ctx, &task); err != nil {
		return dto.TaskResponse{}, err
	}

	s.logger.Info().Uint("task_id", task.ID).Uint("subject_id", subjectID).Msg("task created")

	return dto.NewTaskResponse(task), nil
}

func (s *taskService) ListBySubject(ctx context.Context, teacherID, subjectID uint) ([]dto.TaskResponse, error) {
	if _, err := s.subjects.GetActiveOwned(ctx, teacherID, subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	tasks, err := s.tasks.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	return dto.NewTaskResponseSlice(tasks), nil
}

// ownedTask resolves a task and verifies the task->subject->teacher chain.
// The ownership probe deliberately skips the soft-delete filter: tasks of a
// soft-deleted subject remain manageable through these paths.
func (s *taskService) ownedTask(ctx context.Context, teacherID, taskID uint) (models.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	if _, err := s.subjects.GetOwned(ctx, teacherID, task.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrNotSubjectOwner
		}
		return models.Task{}, err
	}

	return task, nil
}

func (s *taskService) Update(ctx context.Context, teacherID, taskID uint, payload dto.TaskUpdateRequest) (dto.TaskResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TaskResponse{}, err
	}

	task, err := s.ownedTask(ctx, teacherID, taskID)
	if err != nil {
		return dto.TaskResponse{}, err
	}

	// Full replace, mirroring the subject update semantics.
	task.Name = sanitizePlain(payload.Name)
	task.Description = sanitizeRich(payload.Description)
	task.Points = payload.Points

	if err := s.tasks.Save(ctx, &task); err != nil {
		return dto.TaskResponse{}, err
	}

	return dto.NewTaskResponse(task), nil
}

func (s *taskService) GetWithStats(ctx context.Context, teacherID, taskID uint) (dto.TaskWithStatsResponse, error) {
	task, err := s.ownedTask(ctx, teacherID, taskID)
	if err != nil {
		return dto.TaskWithStatsResponse{}, err
	}

	stats, err := s.loadStats(ctx, taskID)
	if err != nil {
		return dto.TaskWithStatsResponse{}, err
	}

	return dto.NewTaskWithStatsResponse(task, stats), nil
}

func (s *taskService) loadStats(ctx context.Context, taskID uint) (dto.TaskStats, error) {
	cacheKey := taskStatsCacheKey(taskID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var stats dto.TaskStats
			if unmarshalErr := json.Unmarshal([]byte(cached), &stats); unmarshalErr == nil {
				s.logger.Debug().Uint("task_id", taskID).Msg("task stats cache hit")
				return stats, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read task stats cache")
		}
	}

	total, evaluated, err := s.solutions.CountByTask(ctx, taskID)
	if err != nil {
		return dto.TaskStats{}, err
	}

	stats := dto.TaskStats{TotalSolutions: total, EvaluatedSolutions: evaluated}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store task stats cache")
			}
		}
	}

	return stats, nil
}

func (s *taskService) ListSolutions(ctx context.Context, teacherID, taskID uint) ([]dto.SolutionResponse, error) {
	if _, err := s.ownedTask(ctx, teacherID, taskID); err != nil {
		return nil, err
	}

	solutions, err := s.solutions.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	return dto.NewSolutionResponseSlice(solutions), nil
}

func (s *taskService) Evaluate(ctx context.Context, teacherID, solutionID uint, payload dto.SolutionEvaluateRequest) (dto.SolutionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SolutionResponse{}, err
	}

	solution, err := s.solutions.GetByID(ctx, solutionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SolutionResponse{}, ErrSolutionNotFound
		}
		return dto.SolutionResponse{}, err
	}

	task, err := s.tasks.GetByID(ctx, solution.TaskID)
	if err != nil {
		return dto.SolutionResponse{}, err
	}

	if _, err := s.subjects.GetOwned(ctx, teacherID, task.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SolutionResponse{}, ErrNotSubjectOwner
		}
		return dto.SolutionResponse{}, err
	}

	points := *payload.PointsEarned
	if points < 0 || points > task.Points {
		return dto.SolutionResponse{}, &PointsRangeError{Max: task.Points}
	}

	evaluatedAt := s.now()
	solution.PointsEarned = &points
	solution.EvaluatedAt = &evaluatedAt

	if err := s.solutions.Save(ctx, &solution); err != nil {
		return dto.SolutionResponse{}, err
	}

	s.invalidateStats(ctx, solution.TaskID)

	s.logger.Info().Uint("solution_id", solution.ID).Int("points", points).Msg("solution evaluated")

	return dto.NewSolutionResponse(solution), nil
}

func (s *taskService) invalidateStats(ctx context.Context, taskID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, taskStatsCacheKey(taskID)).Err(); err != nil {
		s.logger.Warn().Err(err).Uint("task_id", taskID).Msg("failed to invalidate task stats cache")
	}
}
