/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import (
	"errors"

	"github.com/uagate/uatypes/pkg/ua"
)

var ErrMalformedPeerError = errors.New("malformed peer")

func ErrMalformedPeer(msg string, args ...any) error {
	return ua.EnrichError(ErrMalformedPeerError, msg, args...)
}

func ErrNamespaceMissing(dt any, ns uint16) error {
	return ErrMalformedPeer("namespace %d of data type %v is absent in namespace table", ns, dt)
}

var ErrUnsupportedError = errors.New("not supported")

func ErrUnsupported(msg string, args ...any) error {
	return ua.EnrichError(ErrUnsupportedError, msg, args...)
}

var ErrCodecFactoryError = errors.New("codec factory failed")

func ErrCodecFactory(dt any, cause error) error {
	return ua.EnrichError(ErrCodecFactoryError, "%v: %v", dt, cause)
}
