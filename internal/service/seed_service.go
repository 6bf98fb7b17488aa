package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/repository"
	"github.com/noah-isme/lms-go-api/pkg/security"
)

// SeedService creates the initial teacher accounts.
type SeedService interface {
	SeedTeachers(ctx context.Context) (string, error)
}

type seedService struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewSeedService constructs a seeding service.
func NewSeedService(users repository.UserRepository, logger zerolog.Logger) SeedService {
	return &seedService{
		users:  users,
		logger: logger.With().Str("component", "seed_service").Logger(),
	}
}

type seedAccount struct {
	username string
	email    string
	password string
}

var seedTeachers = []seedAccount{
	{username: "teacher1", email: "teacher1@test.com", password: "teacher123"},
	{username: "teacher2", email: "teacher2@test.com", password: "teacher123"},
}

// SeedTeachers creates the default teacher accounts once. Calling it again
// is a no-op that reports the accounts already exist.
func (s *seedService) SeedTeachers(ctx context.Context) (string, error) {
	exists, err := s.users.TeacherExists(ctx)
	if err != nil {
		return "", err
	}
	if exists {
		return "Teachers already exist", nil
	}

	for _, account := range seedTeachers {
		hash, err := security.HashPassword(account.password)
		if err != nil {
			return "", err
		}

		teacher := models.User{
			Username:     account.username,
			Email:        account.email,
			PasswordHash: hash,
			IsTeacher:    true,
		}

		if err := s.users.Create(ctx, &teacher); err != nil {
			return "", err
		}
	}

	s.logger.Info().Int("count", len(seedTeachers)).Msg("teacher accounts seeded")

	return "Successfully created 2 teachers", nil
}
