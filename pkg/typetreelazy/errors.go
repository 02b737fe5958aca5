/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreelazy

import (
	"errors"

	"github.com/uagate/uatypes/pkg/ua"
)

var ErrNamespaceTableError = errors.New("failed to read namespace table")

func ErrNamespaceTable(cause error) error {
	return ua.EnrichError(ErrNamespaceTableError, "%v", cause)
}

var errNoSupertype = errors.New("no supertype")

var errCycle = errors.New("supertype cycle")

var errTooDeep = errors.New("too many supertypes")
