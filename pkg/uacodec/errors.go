/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"errors"

	"github.com/uagate/uatypes/pkg/ua"
)

var ErrInvalidValueError = errors.New("invalid value")

func ErrInvalidValue(msg string, args ...any) error {
	return ua.EnrichError(ErrInvalidValueError, msg, args...)
}

var ErrMalformedDataError = errors.New("malformed data")

func ErrMalformedData(msg string, args ...any) error {
	return ua.EnrichError(ErrMalformedDataError, msg, args...)
}
