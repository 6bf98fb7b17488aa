package dto

import (
	"time"

	"github.com/noah-isme/lms-go-api/internal/models"
)

// TaskCreateRequest carries the payload for creating a task under a subject.
type TaskCreateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Points      int    `json:"points" validate:"required,gt=0"`
}

// TaskUpdateRequest carries the payload for a full-replace task update.
type TaskUpdateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Points      int    `json:"points" validate:"required,gt=0"`
}

// TaskResponse is returned to API clients when viewing tasks.
type TaskResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	SubjectID   uint      `json:"subject_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskStats aggregates solution counters for a task.
type TaskStats struct {
	TotalSolutions     int64 `json:"total_solutions"`
	EvaluatedSolutions int64 `json:"evaluated_solutions"`
}

// TaskWithStatsResponse augments a task with solution counters.
type TaskWithStatsResponse struct {
	TaskResponse
	TaskStats
}

// NewTaskResponse converts a Task model into a DTO.
func NewTaskResponse(model models.Task) TaskResponse {
	return TaskResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Points:      model.Points,
		SubjectID:   model.SubjectID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// NewTaskResponseSlice converts a slice of Task models.
func NewTaskResponseSlice(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, NewTaskResponse(task))
	}
	return responses
}

// NewTaskWithStatsResponse combines a task with its solution counters.
func NewTaskWithStatsResponse(model models.Task, stats TaskStats) TaskWithStatsResponse {
	return TaskWithStatsResponse{
		TaskResponse: NewTaskResponse(model),
		TaskStats:    stats,
	}
}
