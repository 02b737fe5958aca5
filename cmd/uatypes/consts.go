/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

const (
	Default_CacheProvider = "hashicorp"
	Default_CacheSize     = 100_000
	Default_LazyMaxDepth  = 64
)

const (
	format_JSON   = "json"
	format_Binary = "binary"
	format_XML    = "xml"
)
