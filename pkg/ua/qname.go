/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

import (
	"fmt"
	"strconv"
	"strings"
)

// # QualifiedName
//
// Browse name of a node: namespace index plus name.
//
// String form is «<ns>:<name>», namespace 0 is omitted.
type QualifiedName struct {
	NamespaceIndex uint16
	Name           string
}

func NewQualifiedName(ns uint16, name string) QualifiedName {
	return QualifiedName{NamespaceIndex: ns, Name: name}
}

func (qn QualifiedName) IsNull() bool {
	return qn.NamespaceIndex == 0 && qn.Name == ""
}

func (qn QualifiedName) String() string {
	if qn.NamespaceIndex == 0 {
		return qn.Name
	}
	return fmt.Sprintf("%d:%s", qn.NamespaceIndex, qn.Name)
}

// Parses qualified name from «<ns>:<name>» or «<name>» form.
//
// Name without numeric prefix is in namespace 0, so «urn:x» is a name, not a namespace
func ParseQualifiedName(s string) (QualifiedName, error) {
	if prefix, name, ok := strings.Cut(s, ":"); ok {
		if ns, err := strconv.ParseUint(prefix, 10, 16); err == nil {
			if name == "" {
				return QualifiedName{}, ErrInvalid("qualified name «%s»: empty name", s)
			}
			return QualifiedName{NamespaceIndex: uint16(ns), Name: name}, nil
		}
	}
	return QualifiedName{Name: s}, nil
}

func (qn QualifiedName) MarshalText() ([]byte, error) {
	return []byte(qn.String()), nil
}

func (qn *QualifiedName) UnmarshalText(text []byte) (err error) {
	*qn, err = ParseQualifiedName(string(text))
	return err
}
