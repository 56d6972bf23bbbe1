package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Domain errors. Storage uniqueness violations are translated into these
// at the service boundary so controllers never see raw database errors.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicatePhone     = errors.New("phone already registered")
	ErrBrandRequired      = errors.New("brand could not be resolved for this request")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrNotFound           = errors.New("record not found")
	ErrSessionExists      = errors.New("workout already logged for this date")
	ErrAlreadyAssigned    = errors.New("professional already assigned to this user")
	ErrInvalidAssignment  = errors.New("assignment requires a professional and a client of the same brand")
)

const pgUniqueViolation = "23505"

// translateDuplicate maps a Postgres unique violation to the domain error
// for the constraint that fired. Two concurrent inserts race on the
// constraint itself; the loser lands here (spec'd behavior: the database,
// not application logic, decides the winner).
func translateDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case "uq_users_brand_email":
		return ErrDuplicateEmail
	case "uq_users_brand_phone":
		return ErrDuplicatePhone
	case "uq_brands_slug":
		return ErrSlugTaken
	case "uq_session_unique_day":
		return ErrSessionExists
	case "uq_prof_user_pair":
		return ErrAlreadyAssigned
	}
	return err
}
