package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers translate these into
// HTTP status codes; everything else surfaces as an internal error.
var (
	// ErrUsernameTaken indicates the username is already registered.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrSubjectNotFound indicates the subject is unknown, soft-deleted or not owned.
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrSubjectCodeTaken indicates the subject code is already in use.
	ErrSubjectCodeTaken = errors.New("subject code already exists")

	// ErrTaskNotFound indicates the task could not be found.
	ErrTaskNotFound = errors.New("task not found")
	// ErrSolutionNotFound indicates the solution could not be found.
	ErrSolutionNotFound = errors.New("solution not found")
	// ErrNotSubjectOwner indicates the acting teacher does not own the subject.
	ErrNotSubjectOwner = errors.New("not authorized")

	// ErrAlreadyEnrolled indicates a duplicate enrollment attempt.
	ErrAlreadyEnrolled = errors.New("already enrolled in this subject")
	// ErrNotEnrolled indicates an attempt to leave a subject without an enrollment.
	ErrNotEnrolled = errors.New("not enrolled in this subject")
	// ErrEnrollmentRequired indicates the student must be enrolled to access the resource.
	ErrEnrollmentRequired = errors.New("you must be enrolled in this subject")
)

// PointsRangeError is returned when a grade falls outside [0, task.points].
type PointsRangeError struct {
	Max int
}

func (e *PointsRangeError) Error() string {
	return fmt.Sprintf("points must be between 0 and %d", e.Max)
}
