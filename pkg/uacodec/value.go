/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"fmt"
	"strings"

	"github.com/uagate/uatypes/pkg/ua"
)

func NewStruct(dataTypeID ua.NodeID, fields ...Field) *Struct {
	return &Struct{DataTypeID: dataTypeID, Fields: fields}
}

// Returns field value. Returns false if field is absent
func (s *Struct) Get(name string) (any, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Sets field value, adds field if it is absent
func (s *Struct) Set(name string, value any) *Struct {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			s.Fields[i].Value = value
			return s
		}
	}
	s.Fields = append(s.Fields, Field{Name: name, Value: value})
	return s
}

// Returns string like «ns=1;i=5{Temperature: 21.5, Mode: Heating_1}»
func (s *Struct) String() string {
	b := strings.Builder{}
	b.WriteString(s.DataTypeID.String())
	b.WriteByte('{')
	for i, f := range s.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", f.Name, f.Value)
	}
	b.WriteByte('}')
	return b.String()
}

func (v EnumValue) String() string {
	if v.Name == "" {
		return fmt.Sprint(v.Value)
	}
	return fmt.Sprintf("%s%c%d", v.Name, enumXMLSeparator, v.Value)
}
