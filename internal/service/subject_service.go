package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-go-api/internal/dto"
	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/repository"
)

// SubjectService covers the teacher-scoped subject lifecycle.
type SubjectService interface {
	ListOwned(ctx context.Context, teacherID uint) ([]dto.SubjectResponse, error)
	Create(ctx context.Context, teacherID uint, payload dto.SubjectCreateRequest) (dto.SubjectResponse, error)
	Get(ctx context.Context, teacherID, subjectID uint) (dto.SubjectWithStudentsResponse, error)
	Update(ctx context.Context, teacherID, subjectID uint, payload dto.SubjectUpdateRequest) (dto.SubjectResponse, error)
	Delete(ctx context.Context, teacherID, subjectID uint) error
}

type subjectService struct {
	subjects  repository.SubjectRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewSubjectService constructs a SubjectService instance.
func NewSubjectService(subjects repository.SubjectRepository, validate *validator.Validate, logger zerolog.Logger) SubjectService {
	return &subjectService{
		subjects:  subjects,
		validator: validate,
		logger:    logger.With().Str("component", "subject_service").Logger(),
		now:       time.Now,
	}
}

func (s *subjectService) ListOwned(ctx context.Context, teacherID uint) ([]dto.SubjectResponse, error) {
	subjects, err := s.subjects.ListActiveByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	return dto.NewSubjectResponseSlice(subjects), nil
}

func (s *subjectService) Create(ctx context.Context, teacherID uint, payload dto.SubjectCreateRequest) (dto.SubjectResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubjectResponse{}, err
	}

	exists, err := s.subjects.CodeExists(ctx, payload.Code)
	if err != nil {
		return dto.SubjectResponse{}, err
	}
	if exists {
		return dto.SubjectResponse{}, ErrSubjectCodeTaken
	}

	subject := models.Subject{
		Name:        sanitizePlain(payload.Name),
		Description: sanitizeRich(payload.Description),
		Code:        sanitizePlain(payload.Code),
		Credits:     payload.Credits,
		TeacherID:   teacherID,
	}

	if err := s.subjects.Create(ctx, &subject); err != nil {
		return dto.SubjectResponse{}, err
	}

	s.logger.Info().Uint("subject_id", subject.ID).Str("code", subject.Code).Msg("subject created")

	return dto.NewSubjectResponse(subject), nil
}

func (s *subjectService) Get(ctx context.Context, teacherID, subjectID uint) (dto.SubjectWithStudentsResponse, error) {
	subject, err := s.subjects.GetActiveOwnedWithStudents(ctx, teacherID, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubjectWithStudentsResponse{}, ErrSubjectNotFound
		}
		return dto.SubjectWithStudentsResponse{}, err
	}

	return dto.NewSubjectWithStudentsResponse(subject), nil
}

func (s *subjectService) Update(ctx context.Context, teacherID, subjectID uint, payload dto.SubjectUpdateRequest) (dto.SubjectResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubjectResponse{}, err
	}

	subject, err := s.subjects.GetActiveOwned(ctx, teacherID, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubjectResponse{}, ErrSubjectNotFound
		}
		return dto.SubjectResponse{}, err
	}

	// Full replace: every base field is overwritten with the payload value.
	subject.Name = sanitizePlain(payload.Name)
	subject.Description = sanitizeRich(payload.Description)
	subject.Code = sanitizePlain(payload.Code)
	subject.Credits = payload.Credits

	if err := s.subjects.Save(ctx, &subject); err != nil {
		return dto.SubjectResponse{}, err
	}

	return dto.NewSubjectResponse(subject), nil
}

func (s *subjectService) Delete(ctx context.Context, teacherID, subjectID uint) error {
	subject, err := s.subjects.GetActiveOwned(ctx, teacherID, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}

	deletedAt := s.now()
	subject.DeletedAt = &deletedAt

	if err := s.subjects.Save(ctx, &subject); err != nil {
		return err
	}

	s.logger.Info().Uint("subject_id", subject.ID).Msg("subject soft-deleted")

	return nil
}
