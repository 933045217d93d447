// Package common defines shared sentinel errors used across the marketplace
// services. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	ErrorNotAuthenticated = errors.New("not authenticated")
	ErrorNotOwner         = errors.New("not the owner")
)
