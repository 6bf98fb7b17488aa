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

// StudentHandler manages the student-scoped browsing, enrollment and
// submission endpoints.
type StudentHandler struct {
	service service.StudentService
	logger  zerolog.Logger
}

// NewStudentHandler builds a student handler instance.
func NewStudentHandler(service service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("/subjects", h.listSubjects)
	router.Get("/my-subjects", h.listEnrolled)
	router.Post("/subjects/:id/enroll", h.enroll)
	router.Delete("/subjects/:id/leave", h.leave)
	router.Get("/subjects/:id/tasks", h.listTasks)
	router.Post("/tasks/:id/submit", h.submit)
	router.Get("/tasks/:id/my-solutions", h.listMySolutions)
}

func (h *StudentHandler) listSubjects(c *fiber.Ctx) error {
	subjects, err := h.service.ListSubjects(c.Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "subjects retrieved", subjects)
}

func (h *StudentHandler) listEnrolled(c *fiber.Ctx) error {
	subjects, err := h.service.ListEnrolled(c.Context(), userIDFromContext(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "enrolled subjects retrieved", subjects)
}

func (h *StudentHandler) enroll(c *fiber.Ctx) error {
	subjectID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Enroll(c.Context(), userIDFromContext(c), subjectID); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "successfully enrolled in subject", nil)
}

func (h *StudentHandler) leave(c *fiber.Ctx) error {
	subjectID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Leave(c.Context(), userIDFromContext(c), subjectID); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "successfully left subject", nil)
}

func (h *StudentHandler) listTasks(c *fiber.Ctx) error {
	subjectID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	tasks, err := h.service.ListTasks(c.Context(), userIDFromContext(c), subjectID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "tasks retrieved", tasks)
}

func (h *StudentHandler) submit(c *fiber.Ctx) error {
	taskID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.SolutionCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	solution, err := h.service.Submit(c.Context(), userIDFromContext(c), taskID, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "solution submitted", solution)
}

func (h *StudentHandler) listMySolutions(c *fiber.Ctx) error {
	taskID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	solutions, err := h.service.ListMySolutions(c.Context(), userIDFromContext(c), taskID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "solutions retrieved", solutions)
}

func (h *StudentHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrSubjectNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "subject not found")
	case errors.Is(err, service.ErrTaskNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "task not found")
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return utils.SendError(c, fiber.StatusBadRequest, "already enrolled in this subject")
	case errors.Is(err, service.ErrNotEnrolled):
		return utils.SendError(c, fiber.StatusBadRequest, "not enrolled in this subject")
	case errors.Is(err, service.ErrEnrollmentRequired):
		return utils.SendError(c, fiber.StatusForbidden, "you must be enrolled in this subject")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
