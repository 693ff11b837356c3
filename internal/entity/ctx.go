package entity

import (
	"context"
)

// Identity is resolved by the API gateway and propagated to this service in
// the X-Customer-Id, X-User-Role and X-User-Id headers.

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

type AuthHeaders struct {
	CustomerID string
	UserRole   string
	UserID     string
}

func (a AuthHeaders) IsAdmin() bool {
	return a.UserRole == RoleAdmin
}

func (a AuthHeaders) HasCustomerID(customerID string) bool {
	return a.CustomerID != "" && a.CustomerID == customerID
}

type CtxKey int

const (
	CtxKeyAuth CtxKey = iota
)

func CtxWithAuth(ctx context.Context, auth AuthHeaders) context.Context {
	return context.WithValue(ctx, CtxKeyAuth, auth)
}

// AuthFromCtx returns the caller identity or ErrUnauthenticated if it is
// not present.
func AuthFromCtx(ctx context.Context) (AuthHeaders, error) {
	auth, ok := ctx.Value(CtxKeyAuth).(AuthHeaders)
	if !ok {
		return auth, ErrUnauthenticated
	}

	return auth, nil
}
