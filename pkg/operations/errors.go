/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package operations

import (
	"context"
	"errors"

	"github.com/uagate/uatypes/pkg/ua"
)

var ErrUnexpectedResponseError = errors.New("unexpected response")

func ErrUnexpectedResponse(msg string, args ...any) error {
	return ua.EnrichError(ErrUnexpectedResponseError, msg, args...)
}

// Returns status code to report for every item of failed request
func failureStatus(err error) ua.StatusCode {
	if errors.Is(err, context.DeadlineExceeded) {
		return ua.StatusBadTimeout
	}
	return ua.StatusBadCommunicationError
}
