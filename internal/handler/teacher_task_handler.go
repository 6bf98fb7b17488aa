package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/lms-go-api/internal/dto"
	"github.com/noah-isme/lms-go-api/internal/service"
	"github.com/noah-isme/lms-go-api/internal/utils"
)

// TeacherTaskHandler manages the teacher-scoped task and grading endpoints.
type TeacherTaskHandler struct {
	service service.TaskService
	logger  zerolog.Logger
}

// NewTeacherTaskHandler builds a task handler instance.
func NewTeacherTaskHandler(service service.TaskService, logger zerolog.Logger) *TeacherTaskHandler {
	return &TeacherTaskHandler{
		service: service,
		logger:  logger.With().Str("component", "teacher_task_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *TeacherTaskHandler) Register(router fiber.Router) {
	router.Post("/subjects/:id/tasks", h.create)
	router.Get("/subjects/:id/tasks", h.list)
	router.Put("/tasks/:id", h.update)
	router.Get("/tasks/:id", h.getWithStats)
	router.Get("/tasks/:id/solutions", h.listSolutions)
	router.Post("/solutions/:id/evaluate", h.evaluate)
}

func (h *TeacherTaskHandler) create(c *fiber.Ctx) error {
	subjectID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.TaskCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	task, err := h.service.Create(c.Context(), userIDFromContext(c), subjectID, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "task created", task)
}

func (h *TeacherTaskHandler) list(c *fiber.Ctx) error {
	subjectID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	tasks, err := h.service.ListBySubject(c.Context(), userIDFromContext(c), subjectID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "tasks retrieved", tasks)
}

func (h *TeacherTaskHandler) update(c *fiber.Ctx) error {
	taskID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.TaskUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	task, err := h.service.Update(c.Context(), userIDFromContext(c), taskID, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "task updated", task)
}

func (h *TeacherTaskHandler) getWithStats(c *fiber.Ctx) error {
	taskID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	task, err := h.service.GetWithStats(c.Context(), userIDFromContext(c), taskID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "task retrieved", task)
}

func (h *TeacherTaskHandler) listSolutions(c *fiber.Ctx) error {
	taskID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	solutions, err := h.service.ListSolutions(c.Context(), userIDFromContext(c), taskID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "solutions retrieved", solutions)
}

func (h *TeacherTaskHandler) evaluate(c *fiber.Ctx) error {
	solutionID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.SolutionEvaluateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	solution, err := h.service.Evaluate(c.Context(), userIDFromContext(c), solutionID, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "solution evaluated", solution)
}

func (h *TeacherTaskHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	var pointsRange *service.PointsRangeError
	switch {
	case errors.Is(err, service.ErrSubjectNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "subject not found")
	case errors.Is(err, service.ErrTaskNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "task not found")
	case errors.Is(err, service.ErrSolutionNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "solution not found")
	case errors.Is(err, service.ErrNotSubjectOwner):
		return utils.SendError(c, fiber.StatusForbidden, "not authorized")
	case errors.As(err, &pointsRange):
		return utils.SendError(c, fiber.StatusBadRequest, pointsRange.Error())
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
