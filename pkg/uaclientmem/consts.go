/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uaclientmem

const continuationPointPrefix = "cp-"
