package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a malformed request, reported with the
// offending field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents an action forbidden for the caller's role type
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// StateTransitionError represents a refused lifecycle transition, such as
// patching an obstacle that is already terminal
type StateTransitionError struct {
	Entity  string
	Message string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Entity, e.Message)
}

// ReferencedError represents a delete refused because other entities still
// reference the target
type ReferencedError struct {
	Entity       string
	ReferencedBy string
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("%s is referenced by %s and cannot be deleted", e.Entity, e.ReferencedBy)
}

// VersionConflictError represents an optimistic concurrency failure: the
// versioned resource changed under the caller
type VersionConflictError struct {
	Entity   string
	Expected int64
	Actual   int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s changed concurrently: expected revision %d, found %d", e.Entity, e.Expected, e.Actual)
}

// Entity Not Found Errors
var (
	ErrRoleNotFound        = &NotFoundError{Entity: "role"}
	ErrTaskNotFound        = &NotFoundError{Entity: "task"}
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrObstacleNotFound    = &NotFoundError{Entity: "obstacle"}
	ErrConflictNotFound    = &NotFoundError{Entity: "conflict"}
	ErrScheduleNotFound    = &NotFoundError{Entity: "schedule"}
	ErrSpecialDateNotFound = &NotFoundError{Entity: "special date"}
)

// Already Exists Errors
var (
	ErrRoleExists        = &AlreadyExistsError{Entity: "role", Context: "with this name"}
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrConflictExists    = &AlreadyExistsError{Entity: "conflict", Context: "for this task pair"}
	ErrScheduleExists    = &AlreadyExistsError{Entity: "schedule", Context: "for this user, task and date"}
	ErrSpecialDateExists = &AlreadyExistsError{Entity: "special date", Context: "for this date and type"}
)

// Business Logic Errors
var (
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrWeekNotMondayToSunday  = errors.New("period must start on Monday and end on Sunday, covering exactly one week")
	ErrSameTasksForConflict   = errors.New("a task cannot conflict with itself")
	ErrTaskNotOnDay           = errors.New("task does not occur on the given day of week")
	ErrRoleNotAllowedForTask  = errors.New("user does not have an allowed role for the task")
	ErrUserHasApprovedObstacle = errors.New("user has an approved obstacle for this task")
	ErrScheduleInConflict     = errors.New("schedule is in conflict with other schedules")
	ErrUserDisabled           = errors.New("user account is disabled")
	ErrSystemRoleImmutable    = errors.New("system role can only have its display metadata changed")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrNotSupervisor      = &AuthorizationError{Message: "caller does not hold a supervisor role"}
	ErrNotApplicant       = &AuthorizationError{Message: "only the applicant may withdraw an obstacle"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsStateTransition checks if an error is a StateTransitionError
func IsStateTransition(err error) bool {
	var stateErr *StateTransitionError
	return errors.As(err, &stateErr)
}

// IsReferenced checks if an error is a ReferencedError
func IsReferenced(err error) bool {
	var refErr *ReferencedError
	return errors.As(err, &refErr)
}

// IsVersionConflict checks if an error is a VersionConflictError
func IsVersionConflict(err error) bool {
	var verErr *VersionConflictError
	return errors.As(err, &verErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewStateTransitionError creates a new StateTransitionError
func NewStateTransitionError(entity, message string) error {
	return &StateTransitionError{Entity: entity, Message: message}
}

// NewReferencedError creates a new ReferencedError
func NewReferencedError(entity, referencedBy string) error {
	return &ReferencedError{Entity: entity, ReferencedBy: referencedBy}
}

// NewVersionConflictError creates a new VersionConflictError
func NewVersionConflictError(entity string, expected, actual int64) error {
	return &VersionConflictError{Entity: entity, Expected: expected, Actual: actual}
}
