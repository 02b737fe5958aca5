/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

import (
	"fmt"
	"strings"
)

// # NamespaceTable
//
// Immutable snapshot of server namespace array: index -> URI.
//
// Zero value is empty table. Use NewNamespaceTable() to create table.
type NamespaceTable struct {
	uris    []string
	indexes map[string]uint16
}

// Creates namespace table from namespace array.
//
// If uris is empty or first URI is not standard namespace then standard namespace is inserted at index 0.
// If URI is repeated then first index is used to find it.
func NewNamespaceTable(uris ...string) NamespaceTable {
	t := NamespaceTable{
		uris:    make([]string, 0, len(uris)+1),
		indexes: make(map[string]uint16, len(uris)+1),
	}
	if len(uris) == 0 || uris[0] != NamespaceURI_UA {
		t.uris = append(t.uris, NamespaceURI_UA)
	}
	t.uris = append(t.uris, uris...)
	for i, uri := range t.uris {
		if _, exists := t.indexes[uri]; !exists {
			t.indexes[uri] = uint16(i)
		}
	}
	return t
}

// Returns URI by index. Returns false if index is out of table
func (t NamespaceTable) URI(idx uint16) (string, bool) {
	if int(idx) >= len(t.uris) {
		return "", false
	}
	return t.uris[idx], true
}

// Returns index by URI. Returns false if URI is absent
func (t NamespaceTable) Index(uri string) (uint16, bool) {
	idx, ok := t.indexes[uri]
	return idx, ok
}

// Returns is namespace with specified index present in table
func (t NamespaceTable) Contains(idx uint16) bool {
	return int(idx) < len(t.uris)
}

func (t NamespaceTable) Len() int {
	return len(t.uris)
}

// Returns copy of namespace array
func (t NamespaceTable) URIs() []string {
	return append([]string(nil), t.uris...)
}

func (t NamespaceTable) String() string {
	b := strings.Builder{}
	for i, uri := range t.uris {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %s", i, uri)
	}
	return "[" + b.String() + "]"
}
