/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"bytes"
	"context"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

var (
	boilerID   = ua.NewNumericNodeID(1, 1)
	pointID    = ua.NewNumericNodeID(1, 10)
	modeID     = ua.NewNumericNodeID(1, 20)
	setpointID = ua.NewNumericNodeID(1, 30)
	readingID  = ua.NewNumericNodeID(1, 40)
	anyID      = ua.NewNumericNodeID(1, 50)
)

func scalar(name string, dataType ua.NodeID) ua.StructureField {
	return ua.StructureField{Name: name, DataType: dataType, ValueRank: ua.ValueRank_Scalar}
}

func encodings(binary, xml, json uint32) typetree.Encodings {
	return typetree.Encodings{
		Binary: ua.NewNumericNodeID(1, binary),
		XML:    ua.NewNumericNodeID(1, xml),
		JSON:   ua.NewNumericNodeID(1, json),
	}
}

// Returns eager manager over tree with test structures
func testManager(t *testing.T) *dtmanager.Manager {
	tree := typetree.NewBuiltin()
	add := func(parent ua.NodeID, id ua.NodeID, name string, def ua.DataTypeDefinition, enc typetree.Encodings) {
		_, err := tree.AddChild(parent, typetree.NewDataType(id, ua.NewQualifiedName(1, name), false, def, enc))
		require.NoError(t, err)
	}

	add(ua.NodeID_Enumeration, modeID, "BoilerMode", ua.NewEnumDefinition(ua.EnumDefinition{Fields: []ua.EnumField{
		{Value: 0, Name: "Off"}, {Value: 1, Name: "Heating"}, {Value: 2, Name: "Standby"},
	}}), typetree.Encodings{})

	add(ua.NodeID_Structure, pointID, "Point", ua.NewStructureDefinition(ua.StructureDefinition{
		Fields: []ua.StructureField{scalar("X", ua.NS0(ua.ID_Double)), scalar("Y", ua.NS0(ua.ID_Double))},
	}), encodings(11, 12, 13))

	add(ua.NodeID_Structure, boilerID, "Boiler", ua.NewStructureDefinition(ua.StructureDefinition{
		Fields: []ua.StructureField{
			scalar("Name", ua.NS0(ua.ID_String)),
			scalar("Temperature", ua.NS0(ua.ID_Double)),
			scalar("Mode", modeID),
			{Name: "Tags", DataType: ua.NS0(ua.ID_String), ValueRank: ua.ValueRank_OneDimension},
			scalar("Origin", pointID),
			scalar("Payload", ua.NodeID_Structure),
			scalar("Serial", ua.NS0(ua.ID_Guid)),
			scalar("Started", ua.NS0(ua.ID_DateTime)),
			scalar("Raw", ua.NS0(ua.ID_ByteString)),
			scalar("Node", ua.NS0(ua.ID_NodeId)),
			scalar("Status", ua.NS0(ua.ID_StatusCode)),
			scalar("Label", ua.NS0(ua.ID_QualifiedName)),
			scalar("Caption", ua.NS0(ua.ID_LocalizedText)),
			scalar("Count", ua.NS0(ua.ID_UInt64)),
			scalar("Delta", ua.NS0(ua.ID_Int64)),
			scalar("Flag", ua.NS0(ua.ID_Boolean)),
			scalar("Small", ua.NS0(ua.ID_SByte)),
			scalar("Timeout", ua.NS0(ua.ID_Duration)),
			{Name: "Modes", DataType: modeID, ValueRank: ua.ValueRank_OneDimension},
		},
	}), encodings(2, 3, 4))

	unit := scalar("Unit", ua.NS0(ua.ID_String))
	unit.IsOptional = true
	limit := scalar("Limit", ua.NS0(ua.ID_Double))
	limit.IsOptional = true
	add(ua.NodeID_Structure, setpointID, "Setpoint", ua.NewStructureDefinition(ua.StructureDefinition{
		StructureType: ua.StructureType_StructureWithOptionalFields,
		Fields:        []ua.StructureField{scalar("Value", ua.NS0(ua.ID_Double)), unit, limit},
	}), encodings(31, 32, 33))

	add(ua.NodeID_Structure, readingID, "Reading", ua.NewStructureDefinition(ua.StructureDefinition{
		StructureType: ua.StructureType_Union,
		Fields:        []ua.StructureField{scalar("Number", ua.NS0(ua.ID_Double)), scalar("Text", ua.NS0(ua.ID_String))},
	}), encodings(41, 42, 43))

	add(ua.NodeID_Structure, anyID, "Any", ua.NewStructureDefinition(ua.StructureDefinition{
		Fields: []ua.StructureField{scalar("Value", ua.NodeID_BaseDataType)},
	}), encodings(51, 52, 53))

	m, err := dtmanager.NewEager(tree, ua.NewNamespaceTable("urn:test"), Factory, nil)
	require.NoError(t, err)
	return m
}

func codec[C dtmanager.ICodec](t *testing.T, m dtmanager.IDataTypeManager, id ua.NodeID) C {
	c, ok := m.Codec(context.Background(), id)
	require.True(t, ok, id)
	res, ok := c.(C)
	require.True(t, ok)
	return res
}

func encodeBinary(t *testing.T, c dtmanager.IBinaryCodec, v any) []byte {
	buf := bytes.Buffer{}
	require.NoError(t, c.EncodeBinary(context.Background(), &buf, v))
	return buf.Bytes()
}

func decodeBinary(t *testing.T, c dtmanager.IBinaryCodec, data []byte) any {
	r := bytes.NewReader(data)
	v, err := c.DecodeBinary(context.Background(), r)
	require.NoError(t, err)
	require.Zero(t, r.Len(), "all bytes must be read")
	return v
}

func encodeXML(t *testing.T, c dtmanager.IXMLCodec, name string, v any) string {
	buf := bytes.Buffer{}
	e := xml.NewEncoder(&buf)
	require.NoError(t, c.EncodeXML(context.Background(), e, xml.StartElement{Name: xml.Name{Local: name}}, v))
	require.NoError(t, e.Flush())
	return buf.String()
}

func decodeXML(t *testing.T, c dtmanager.IXMLCodec, data string) (any, error) {
	d := xml.NewDecoder(bytes.NewBufferString(data))
	for {
		tok, err := d.Token()
		require.NoError(t, err)
		if start, ok := tok.(xml.StartElement); ok {
			return c.DecodeXML(context.Background(), d, start)
		}
	}
}
