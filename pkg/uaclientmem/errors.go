/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uaclientmem

import (
	"errors"

	"github.com/uagate/uatypes/pkg/ua"
)

var ErrNotFoundError = ua.ErrNotFoundError

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return ua.EnrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrInvalidFixtureError = errors.New("invalid fixture")

func ErrInvalidFixture(msg string, args ...any) error {
	return ua.EnrichError(ErrInvalidFixtureError, msg, args...)
}
