package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/pkg/security"
)

// newTestDB opens a named in-memory database so fixtures do not bleed
// between tests sharing the sqlite cache.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Subject{}, &models.Task{}, &models.Solution{}))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, isTeacher bool) models.User {
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

func createSubject(t *testing.T, db *gorm.DB, teacherID uint, code string) models.Subject {
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

func createTask(t *testing.T, db *gorm.DB, subjectID uint, points int) models.Task {
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

func softDeleteSubject(t *testing.T, db *gorm.DB, subjectID uint) {
	t.Helper()

	now := time.Now()
	require.NoError(t, db.Model(&models.Subject{}).Where("id = ?", subjectID).Update("deleted_at", &now).Error)
}

func enrollStudent(t *testing.T, db *gorm.DB, studentID, subjectID uint) {
	t.Helper()

	student := models.User{ID: studentID}
	subject := models.Subject{ID: subjectID}
	require.NoError(t, db.WithContext(context.Background()).Model(&student).Association("EnrolledSubjects").Append(&subject))
}
