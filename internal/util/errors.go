package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrCourseNotFound     = errors.New("course not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in course")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSessionNotFound    = errors.New("study session not found")
	ErrGoalNotFound       = errors.New("study goal not found")
	ErrInvalidTargetHours = errors.New("target hours must be positive")
	ErrInvalidDateRange   = errors.New("end date must not precede start date")
)
