package entity

import (
	"errors"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrForbidden             = errors.New("forbidden")
	ErrPersonalCreditLimit   = errors.New("personal customers can only have one active credit")
	ErrCustomerNotEligible   = errors.New("customer has overdue debt on existing products")
	ErrCustomerUnavailable   = errors.New("customer service unavailable")
	ErrDuplicateCreditNumber = errors.New("credit number already taken")
	ErrCreditNumberExhausted = errors.New("credit number generation exhausted")
)
