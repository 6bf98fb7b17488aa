package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-go-api/internal/config"
	"github.com/noah-isme/lms-go-api/internal/handler"
	"github.com/noah-isme/lms-go-api/internal/middleware"
	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/repository"
	"github.com/noah-isme/lms-go-api/internal/router"
	"github.com/noah-isme/lms-go-api/internal/service"
	"github.com/noah-isme/lms-go-api/pkg/security"
)

// setupApp wires the full application against a private in-memory database
// with the real JWT middleware, so requests travel the same path as in
// production.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *security.TokenManager) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Subject{}, &models.Task{}, &models.Solution{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.Nop()
	tokens := security.NewTokenManager("test-secret", time.Minute)

	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	authService := service.NewAuthService(userRepo, tokens, validate, logger)
	subjectService := service.NewSubjectService(subjectRepo, validate, logger)
	taskService := service.NewTaskService(subjectRepo, taskRepo, solutionRepo, nil, time.Minute, validate, logger)
	studentService := service.NewStudentService(subjectRepo, taskRepo, solutionRepo, enrollmentRepo, nil, validate, logger)
	seedService := service.NewSeedService(userRepo, logger)

	app := fiber.New()
	router.Register(app, config.Config{AppName: "Test", AppEnv: "test", JWTSecret: "test-secret"}, router.Dependencies{
		AuthHandler:           handler.NewAuthHandler(authService, logger),
		TeacherSubjectHandler: handler.NewTeacherSubjectHandler(subjectService, logger),
		TeacherTaskHandler:    handler.NewTeacherTaskHandler(taskService, logger),
		StudentHandler:        handler.NewStudentHandler(studentService, logger),
		SeedHandler:           handler.NewSeedHandler(seedService, logger),
		JWTMiddleware:         middleware.JWTProtected(tokens, userRepo),
	})

	return app, db, tokens
}

func createAccount(t *testing.T, db *gorm.DB, username string, isTeacher bool) models.User {
	t.Helper()

	hash, err := security.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: hash,
		IsTeacher:    isTeacher,
	}
	require.NoError(t, db.Create(&user).Error)

	return user
}

func createSubjectRow(t *testing.T, db *gorm.DB, teacherID uint, code string) models.Subject {
	t.Helper()

	subject := models.Subject{
		Name:        "Subject " + code,
		Description: "description",
		Code:        code,
		Credits:     5,
		TeacherID:   teacherID,
	}
	require.NoError(t, db.Create(&subject).Error)

	return subject
}

func createTaskRow(t *testing.T, db *gorm.DB, subjectID uint, points int) models.Task {
	t.Helper()

	task := models.Task{
		Name:        "Task",
		Description: "solve it",
		Points:      points,
		SubjectID:   subjectID,
	}
	require.NoError(t, db.Create(&task).Error)

	return task
}

func enrollRow(t *testing.T, db *gorm.DB, studentID, subjectID uint) {
	t.Helper()

	student := models.User{ID: studentID}
	subject := models.Subject{ID: subjectID}
	require.NoError(t, db.Model(&student).Association("EnrolledSubjects").Append(&subject))
}

func createSolutionRow(t *testing.T, db *gorm.DB, taskID, studentID uint) models.Solution {
	t.Helper()

	solution := models.Solution{Content: "answer", TaskID: taskID, StudentID: studentID}
	require.NoError(t, db.Create(&solution).Error)

	return solution
}

func bearerToken(t *testing.T, tokens *security.TokenManager, user models.User) string {
	t.Helper()

	token, err := tokens.Issue(user.Email)
	require.NoError(t, err)

	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method, path, authorization string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}
