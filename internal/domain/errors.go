package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("not enough funds")
	ErrAlreadyPaid       = errors.New("bill already paid")
	ErrNonZeroBalance    = errors.New("cannot delete with non-zero balance")
	ErrUnauthorized      = errors.New("could not validate credentials")
	ErrConflict          = errors.New("user already exists")
	ErrBadRequest        = errors.New("bad request")
	ErrInvalidCode       = errors.New("wrong code")
)
