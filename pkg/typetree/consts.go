/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetree

const defaultTreeCapacity = 128

// Indent of String() dump per depth level
const dumpIndent = "  "
