package dto

import (
	"time"

	"github.com/noah-isme/lms-go-api/internal/models"
)

// SubjectCreateRequest carries the payload for creating a subject.
type SubjectCreateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Code        string `json:"code" validate:"required,max=64"`
	Credits     int    `json:"credits" validate:"gte=0"`
}

// SubjectUpdateRequest carries the payload for a full-replace subject update.
// Every base field must be resupplied; this is not a partial patch.
type SubjectUpdateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Code        string `json:"code" validate:"required,max=64"`
	Credits     int    `json:"credits" validate:"gte=0"`
}

// SubjectResponse is returned to API clients when viewing subjects.
type SubjectResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Code        string    `json:"code"`
	Credits     int       `json:"credits"`
	TeacherID   uint      `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubjectWithStudentsResponse augments a subject with its enrolled students.
type SubjectWithStudentsResponse struct {
	SubjectResponse
	Students []UserResponse `json:"students"`
}

// NewSubjectResponse converts a Subject model into a DTO.
func NewSubjectResponse(model models.Subject) SubjectResponse {
	return SubjectResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Code:        model.Code,
		Credits:     model.Credits,
		TeacherID:   model.TeacherID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// NewSubjectResponseSlice converts a slice of Subject models.
func NewSubjectResponseSlice(subjects []models.Subject) []SubjectResponse {
	responses := make([]SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, NewSubjectResponse(subject))
	}
	return responses
}

// NewSubjectWithStudentsResponse converts a Subject with its Students association loaded.
func NewSubjectWithStudentsResponse(model models.Subject) SubjectWithStudentsResponse {
	return SubjectWithStudentsResponse{
		SubjectResponse: NewSubjectResponse(model),
		Students:        NewUserResponseSlice(model.Students),
	}
}
