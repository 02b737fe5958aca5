/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

// Creates binary, XML and JSON codec for structure or enumeration data type.
//
// Implements dtmanager.CodecFactory. Field types are resolved by manager when values are encoded or decoded
func Factory(dt *typetree.DataType, m dtmanager.IDataTypeManager) (dtmanager.ICodec, error) {
	def := dt.Definition()
	if s, ok := def.Structure(); ok {
		if s.StructureType >= ua.StructureType_count {
			return nil, dtmanager.ErrUnsupported("%v of %v", s.StructureType, dt)
		}
		for i, f := range s.Fields {
			if f.Name == "" {
				return nil, ua.ErrInvalid("field %d of %v has no name", i, dt)
			}
		}
		return &structCodec{dt: dt, def: s, m: m}, nil
	}
	if e, ok := def.Enum(); ok {
		return &enumCodec{dt: dt, def: e}, nil
	}
	return nil, dtmanager.ErrUnsupported("data type %v has no definition", dt)
}
