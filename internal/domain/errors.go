package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateSlug      = errors.New("slug already in use for this language")
	ErrRegistrationClosed = errors.New("registration is closed for this event")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownNamespace   = errors.New("unknown namespace")
	ErrInvalidStyle       = errors.New("style is not allowed in this namespace")
)

// ValidationKind identifies which validity rule an entity violated.
type ValidationKind string

const (
	KindEndBeforeStart         ValidationKind = "end_before_start"
	KindSameDayTimesRequired   ValidationKind = "same_day_times_required"
	KindSameDayTimeOrder       ValidationKind = "same_day_time_order"
	KindRegistrationConflict   ValidationKind = "registration_conflict"
	KindRegistrationDeadline   ValidationKind = "registration_deadline_required"
	KindCoordinatorEmailNeeded ValidationKind = "coordinator_email_required"
)

// ValidationError is returned when an entity fails a validity rule. Only the first
// violated rule is reported.
type ValidationError struct {
	Kind   ValidationKind
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(kind ValidationKind, reason string) *ValidationError {
	return &ValidationError{Kind: kind, Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
