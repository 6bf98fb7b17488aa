package dto

import (
	"time"

	"github.com/noah-isme/lms-go-api/internal/models"
)

// SolutionCreateRequest carries a student's submission payload.
type SolutionCreateRequest struct {
	Content string `json:"content" validate:"required"`
}

// SolutionEvaluateRequest carries a teacher's grading payload. PointsEarned
// is a pointer so that an explicit zero grade survives JSON decoding.
type SolutionEvaluateRequest struct {
	PointsEarned *int `json:"points_earned" validate:"required"`
}

// SolutionResponse is returned to API clients when viewing solutions.
type SolutionResponse struct {
	ID           uint       `json:"id"`
	Content      string     `json:"content"`
	TaskID       uint       `json:"task_id"`
	StudentID    uint       `json:"student_id"`
	PointsEarned *int       `json:"points_earned"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	EvaluatedAt  *time.Time `json:"evaluated_at"`
}

// NewSolutionResponse converts a Solution model into a DTO.
func NewSolutionResponse(model models.Solution) SolutionResponse {
	return SolutionResponse{
		ID:           model.ID,
		Content:      model.Content,
		TaskID:       model.TaskID,
		StudentID:    model.StudentID,
		PointsEarned: model.PointsEarned,
		SubmittedAt:  model.SubmittedAt,
		EvaluatedAt:  model.EvaluatedAt,
	}
}

// NewSolutionResponseSlice converts a slice of Solution models.
func NewSolutionResponseSlice(solutions []models.Solution) []SolutionResponse {
	responses := make([]SolutionResponse, 0, len(solutions))
	for _, solution := range solutions {
		responses = append(responses, NewSolutionResponse(solution))
	}
	return responses
}
