package handler_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-go-api/internal/dto"
)

func TestStudentHandlerBrowseSubjects(t *testing.T) {
	app, db, tokens := setupApp(t)
	teacher := createAccount(t, db, "teacher1", true)
	student := createAccount(t, db, "student1", false)
	createSubjectRow(t, db, teacher.ID, "ALG-101")
	createSubjectRow(t, db, teacher.ID, "DB-101")
	auth := bearerToken(t, tokens, student)

	resp := doJSON(t, app, fiber.MethodGet, "/api/student/subjects", auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed struct {
		Success bool                  `json:"success"`
		Data    []dto.SubjectResponse `json:"data"`
	}
	decodeResponse(t, resp, &listed)
	require.True(t, listed.Success)
	require.Len(t, listed.Data, 2)
}

func TestStudentHandlerEnrollAndLeave(t *testing.T) {
	app, db, tokens := setupApp(t)
	teacher := createAccount(t, db, "teacher1", true)
	student := createAccount(t, db, "student1", false)
	subject := createSubjectRow(t, db, teacher.ID, "ALG-101")
	auth := bearerToken(t, tokens, student)

	enrollPath := fmt.Sprintf("/api/student/subjects/%d/enroll", subject.ID)
	leavePath := fmt.Sprintf("/api/student/subjects/%d/leave", subject.ID)

	resp := doJSON(t, app, fiber.MethodPost, enrollPath, auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Equal(t, "successfully enrolled in subject", body.Message)

	resp = doJSON(t, app, fiber.MethodPost, enrollPath, auth, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	decodeResponse(t, resp, &body)
	require.Equal(t, "already enrolled in this subject", body.Message)

	resp = doJSON(t, app, fiber.MethodGet, "/api/student/my-subjects", auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var enrolled struct {
		Data []dto.SubjectResponse `json:"data"`
	}
	decodeResponse(t, resp, &enrolled)
	require.Len(t, enrolled.Data, 1)

	resp = doJSON(t, app, fiber.MethodDelete, leavePath, auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = doJSON(t, app, fiber.MethodDelete, leavePath, auth, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	decodeResponse(t, resp, &body)
	require.Equal(t, "not enrolled in this subject", body.Message)

	// Re-enrollment works after leaving.
	resp = doJSON(t, app, fiber.MethodPost, enrollPath, auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestStudentHandlerEnrollUnknownSubject(t *testing.T) {
	app, db, tokens := setupApp(t)
	student := createAccount(t, db, "student1", false)
	auth := bearerToken(t, tokens, student)

	resp := doJSON(t, app, fiber.MethodPost, "/api/student/subjects/999/enroll", auth, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, "subject not found", body.Message)
}

func TestStudentHandlerTasksRequireEnrollment(t *testing.T) {
	app, db, tokens := setupApp(t)
	teacher := createAccount(t, db, "teacher1", true)
	student := createAccount(t, db, "student1", false)
	subject := createSubjectRow(t, db, teacher.ID, "ALG-101")
	createTaskRow(t, db, subject.ID, 10)
	auth := bearerToken(t, tokens, student)

	tasksPath := fmt.Sprintf("/api/student/subjects/%d/tasks", subject.ID)

	resp := doJSON(t, app, fiber.MethodGet, tasksPath, auth, nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, "you must be enrolled in this subject", body.Message)

	enrollRow(t, db, student.ID, subject.ID)

	resp = doJSON(t, app, fiber.MethodGet, tasksPath, auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var listed struct {
		Data []dto.TaskResponse `json:"data"`
	}
	decodeResponse(t, resp, &listed)
	require.Len(t, listed.Data, 1)
}

func TestStudentHandlerSubmitAndListSolutions(t *testing.T) {
	app, db, tokens := setupApp(t)
	teacher := createAccount(t, db, "teacher1", true)
	student := createAccount(t, db, "student1", false)
	subject := createSubjectRow(t, db, teacher.ID, "ALG-101")
	task := createTaskRow(t, db, subject.ID, 10)
	enrollRow(t, db, student.ID, subject.ID)
	auth := bearerToken(t, tokens, student)

	submitPath := fmt.Sprintf("/api/student/tasks/%d/submit", task.ID)

	resp := doJSON(t, app, fiber.MethodPost, submitPath, auth, dto.SolutionCreateRequest{Content: "my answer"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Success bool                 `json:"success"`
		Data    dto.SolutionResponse `json:"data"`
		Message string               `json:"message"`
	}
	decodeResponse(t, resp, &created)
	require.True(t, created.Success)
	require.Equal(t, "solution submitted", created.Message)
	require.Equal(t, student.ID, created.Data.StudentID)
	require.Nil(t, created.Data.PointsEarned)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/student/tasks/%d/my-solutions", task.ID), auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var listed struct {
		Data []dto.SolutionResponse `json:"data"`
	}
	decodeResponse(t, resp, &listed)
	require.Len(t, listed.Data, 1)
	require.Equal(t, "my answer", listed.Data[0].Content)
}

func TestStudentHandlerSubmitRequiresEnrollment(t *testing.T) {
	app, db, tokens := setupApp(t)
	teacher := createAccount(t, db, "teacher1", true)
	student := createAccount(t, db, "student1", false)
	subject := createSubjectRow(t, db, teacher.ID, "ALG-101")
	task := createTaskRow(t, db, subject.ID, 10)
	auth := bearerToken(t, tokens, student)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/student/tasks/%d/submit", task.ID), auth, dto.SolutionCreateRequest{Content: "my answer"})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = doJSON(t, app, fiber.MethodPost, "/api/student/tasks/999/submit", auth, dto.SolutionCreateRequest{Content: "my answer"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestStudentRoutesRequireStudentRole(t *testing.T) {
	app, db, tokens := setupApp(t)
	teacher := createAccount(t, db, "teacher1", true)

	resp := doJSON(t, app, fiber.MethodGet, "/api/student/subjects", bearerToken(t, tokens, teacher), nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, "insufficient permissions", body.Message)

	resp = doJSON(t, app, fiber.MethodGet, "/api/student/subjects", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
