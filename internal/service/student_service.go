package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-go-api/internal/dto"
	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/repository"
)

// StudentService covers browsing, enrollment and solution submission.
type StudentService interface {
	ListSubjects(ctx context.Context) ([]dto.SubjectResponse, error)
	ListEnrolled(ctx context.Context, studentID uint) ([]dto.SubjectResponse, error)
	Enroll(ctx context.Context, studentID, subjectID uint) error
	Leave(ctx context.Context, studentID, subjectID uint) error
	ListTasks(ctx context.Context, studentID, subjectID uint) ([]dto.TaskResponse, error)
	Submit(ctx context.Context, studentID, taskID uint, payload dto.SolutionCreateRequest) (dto.SolutionResponse, error)
	ListMySolutions(ctx context.Context, studentID, taskID uint) ([]dto.SolutionResponse, error)
}

type studentService struct {
	subjects    repository.SubjectRepository
	tasks       repository.TaskRepository
	solutions   repository.SolutionRepository
	enrollments repository.EnrollmentRepository
	cache       *redis.Client
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewStudentService constructs a StudentService instance. The cache client
// may be nil; it is only used to invalidate task stats on submission.
func NewStudentService(subjects repository.SubjectRepository, tasks repository.TaskRepository, solutions repository.SolutionRepository, enrollments repository.EnrollmentRepository, cache *redis.Client, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		subjects:    subjects,
		tasks:       tasks,
		solutions:   solutions,
		enrollments: enrollments,
		cache:       cache,
		validator:   validate,
		logger:      logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) ListSubjects(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.subjects.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewSubjectResponseSlice(subjects), nil
}

func (s *studentService) ListEnrolled(ctx context.Context, studentID uint) ([]dto.SubjectResponse, error) {
	// No soft-delete filter here: a subject deleted after enrollment stays
	// visible so the student can still leave it.
	subjects, err := s.enrollments.ListSubjects(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return dto.NewSubjectResponseSlice(subjects), nil
}

func (s *studentService) Enroll(ctx context.Context, studentID, subjectID uint) error {
	subject, err := s.subjects.GetActiveByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}

	enrolled, err := s.enrollments.IsEnrolled(ctx, studentID, subject.ID)
	if err != nil {
		return err
	}
	if enrolled {
		return ErrAlreadyEnrolled
	}

	if err := s.enrollments.Enroll(ctx, studentID, subject.ID); err != nil {
		return err
	}

	s.logger.Info().Uint("student_id", studentID).Uint("subject_id", subject.ID).Msg("student enrolled")

	return nil
}

func (s *studentService) Leave(ctx context.Context, studentID, subjectID uint) error {
	// Deliberately unfiltered lookup: students may leave soft-deleted subjects.
	subject, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}

	enrolled, err := s.enrollments.IsEnrolled(ctx, studentID, subject.ID)
	if err != nil {
		return err
	}
	if !enrolled {
		return ErrNotEnrolled
	}

	if err := s.enrollments.Leave(ctx, studentID, subject.ID); err != nil {
		return err
	}

	s.logger.Info().Uint("student_id", studentID).Uint("subject_id", subject.ID).Msg("student left subject")

	return nil
}

func (s *studentService) ListTasks(ctx context.Context, studentID, subjectID uint) ([]dto.TaskResponse, error) {
	subject, err := s.subjects.GetActiveByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	enrolled, err := s.enrollments.IsEnrolled(ctx, studentID, subject.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, ErrEnrollmentRequired
	}

	tasks, err := s.tasks.ListBySubject(ctx, subject.ID)
	if err != nil {
		return nil, err
	}

	return dto.NewTaskResponseSlice(tasks), nil
}

func (s *studentService) Submit(ctx context.Context, studentID, taskID uint, payload dto.SolutionCreateRequest) (dto.SolutionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SolutionResponse{}, err
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SolutionResponse{}, ErrTaskNotFound
		}
		return dto.SolutionResponse{}, err
	}

	enrolled, err := s.enrollments.IsEnrolled(ctx, studentID, task.SubjectID)
	if err != nil {
		return dto.SolutionResponse{}, err
	}
	if !enrolled {
		return dto.SolutionResponse{}, ErrEnrollmentRequired
	}

	solution := models.Solution{
		Content:   sanitizePlain(payload.Content),
		TaskID:    task.ID,
		StudentID: studentID,
	}

	if err := s.solutions.Create(ctx, &solution); err != nil {
		return dto.SolutionResponse{}, err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, taskStatsCacheKey(task.ID)).Err(); err != nil {
			s.logger.Warn().Err(err).Uint("task_id", task.ID).Msg("failed to invalidate task stats cache")
		}
	}

	s.logger.Info().Uint("solution_id", solution.ID).Uint("task_id", task.ID).Msg("solution submitted")

	return dto.NewSolutionResponse(solution), nil
}

func (s *studentService) ListMySolutions(ctx context.Context, studentID, taskID uint) ([]dto.SolutionResponse, error) {
	solutions, err := s.solutions.ListByTaskAndStudent(ctx, taskID, studentID)
	if err != nil {
		return nil, err
	}

	return dto.NewSolutionResponseSlice(solutions), nil
}
