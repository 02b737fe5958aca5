/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetree

import (
	"errors"

	"github.com/uagate/uatypes/pkg/ua"
)

var ErrNotFoundError = ua.ErrNotFoundError

func ErrNotFound(msg string, args ...any) error {
	return ua.ErrNotFound(msg, args...)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return ua.EnrichError(ErrAlreadyExistsError, msg, args...)
}
