package bizerror

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")

	ErrProjectCodeExisted = errors.New("project code existed")

	// ErrInvalidState covers every operation issued against a version whose
	// lifecycle state does not allow it, including the loser of a concurrent
	// submit/approve race.
	ErrInvalidState = errors.New("invalid state")

	ErrContractRequired      = errors.New("contract document required")
	ErrJobCategoryRequired   = errors.New("job category required")
	ErrInvalidValidityPeriod = errors.New("invalid validity period")
)
