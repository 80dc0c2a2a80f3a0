// internal/services/errors.go
package services

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidSession  = errors.New("invalid session")
)
