/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreebuilder

const DefaultMaxDepth = 0
