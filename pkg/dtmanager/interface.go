/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import (
	"context"
	"encoding/xml"
	"io"

	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

// Codec of values of one data type.
//
// Codec implements one or more of IBinaryCodec, IXMLCodec and IJSONCodec.
type ICodec interface {
	DataType() *typetree.DataType
}

type IBinaryCodec interface {
	ICodec
	EncodeBinary(ctx context.Context, w io.Writer, v any) error
	DecodeBinary(ctx context.Context, r io.Reader) (any, error)
}

type IXMLCodec interface {
	ICodec
	EncodeXML(ctx context.Context, e *xml.Encoder, start xml.StartElement, v any) error
	DecodeXML(ctx context.Context, d *xml.Decoder, start xml.StartElement) (any, error)
}

type IJSONCodec interface {
	ICodec
	EncodeJSON(ctx context.Context, v any) ([]byte, error)
	DecodeJSON(ctx context.Context, data []byte) (any, error)
}

// Creates codec for data type.
//
// Factory is called while manager is locked, so factory may keep manager for later use
// but must not call its Codec() or DataTypeID() methods.
type CodecFactory func(dt *typetree.DataType, m IDataTypeManager) (ICodec, error)

// Registry of codecs of data types.
//
// @ConcurrentAccess
type IDataTypeManager interface {
	// Returns codec by data type id or by encoding id
	Codec(ctx context.Context, id ua.NodeID) (ICodec, bool)

	BinaryEncodingID(ctx context.Context, dataTypeID ua.NodeID) (ua.NodeID, bool)
	XMLEncodingID(ctx context.Context, dataTypeID ua.NodeID) (ua.NodeID, bool)
	JSONEncodingID(ctx context.Context, dataTypeID ua.NodeID) (ua.NodeID, bool)

	// Returns data type id by encoding id
	DataTypeID(ctx context.Context, encodingID ua.NodeID) (ua.NodeID, bool)

	// Registers codec for data type and its encodings. Later registration overwrites earlier
	RegisterType(dataTypeID ua.NodeID, codec ICodec, encodings typetree.Encodings)

	// Returns built-in type used to encode values of data type
	BuiltinType(ctx context.Context, id ua.NodeID) (ua.BuiltinType, bool)

	IsEnumType(ctx context.Context, id ua.NodeID) bool
}
