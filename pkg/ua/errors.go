/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrNamespaceNotFound(idx uint16) error {
	return ErrNotFound("namespace index %d", idx)
}

func ErrInvalidNodeID(s string, cause error) error {
	return ErrInvalid("node id «%s»: %v", s, cause)
}
