/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreebuilder

import (
	"errors"

	"github.com/uagate/uatypes/pkg/ua"
)

var ErrNamespaceTableError = errors.New("failed to read namespace table")

func ErrNamespaceTable(cause error) error {
	return ua.EnrichError(ErrNamespaceTableError, "%v", cause)
}
