/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uaclientmem

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uagate/uatypes/pkg/iuaclient"
	"github.com/uagate/uatypes/pkg/ua"
)

func TestLoadFixture(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	f, err := os.Open("testdata/plant.yaml")
	require.NoError(err)
	defer f.Close()

	s, err := LoadFixture(f)
	require.NoError(err)

	table, err := s.NamespaceTable(ctx)
	require.NoError(err)
	idx, ok := table.Index("urn:uagate:plant")
	require.True(ok)
	require.EqualValues(1, idx)

	limits, err := s.OperationLimits(ctx)
	require.NoError(err)
	require.Equal(iuaclient.OperationLimits{MaxNodesPerBrowse: 4, MaxNodesPerRead: 16}, limits)

	boiler := ua.NewNumericNodeID(1, 3001)

	t.Run("children listed before parents are added", func(t *testing.T) {
		res, err := s.Browse(ctx, []ua.BrowseDescription{ua.BrowseSupertype(ua.NewNumericNodeID(1, 3010))})
		require.NoError(err)
		require.Len(res[0].References, 1)
		require.Equal(boiler.Expanded(), res[0].References[0].NodeID)
	})

	t.Run("definitions", func(t *testing.T) {
		res, err := s.Read(ctx, []ua.ReadValueID{
			{NodeID: boiler, AttributeID: ua.AttributeID_DataTypeDefinition},
			{NodeID: ua.NewNumericNodeID(1, 3020), AttributeID: ua.AttributeID_DataTypeDefinition},
			{NodeID: ua.NewNumericNodeID(1, 3030), AttributeID: ua.AttributeID_DataTypeDefinition},
			{NodeID: ua.NewNumericNodeID(1, 3050), AttributeID: ua.AttributeID_DataTypeDefinition},
		})
		require.NoError(err)

		sd, ok := res[0].Value.(ua.DataTypeDefinition).Structure()
		require.True(ok)
		require.Equal(ua.NodeID_Structure, sd.BaseDataType)
		require.Len(sd.Fields, 2)
		require.Equal(ua.ValueRank_Scalar, sd.Fields[0].ValueRank)
		require.True(sd.Fields[1].IsArray())

		ed, ok := res[1].Value.(ua.DataTypeDefinition).Enum()
		require.True(ok)
		require.Len(ed.Fields, 3)
		require.Equal("Heating", ed.Fields[1].DisplayName)

		sd, ok = res[2].Value.(ua.DataTypeDefinition).Structure()
		require.True(ok)
		require.Equal(ua.StructureType_StructureWithOptionalFields, sd.StructureType)
		require.True(sd.Fields[1].IsOptional)

		require.Equal(ua.StatusBadAttributeIDInvalid, res[3].StatusCode)
	})

	t.Run("encodings", func(t *testing.T) {
		res, err := s.Browse(ctx, []ua.BrowseDescription{ua.BrowseEncodings(boiler), ua.BrowseEncodings(ua.NewNumericNodeID(1, 3030))})
		require.NoError(err)
		require.Len(res[0].References, 2, "max references per node")
		require.NotEmpty(res[0].ContinuationPoint)
		require.Equal(ua.NewQualifiedName(1, ua.EncodingName_Binary), res[1].References[0].BrowseName)
	})
}

func TestLoadFixtureErrors(t *testing.T) {
	require := require.New(t)

	tests := map[string]string{
		"unknown field":          "dataTypez: []",
		"unknown parent":         "dataTypes: [{id: ns=1;i=1, parent: ns=1;i=2, name: 1:A}]",
		"bad node id":            "dataTypes: [{id: x=1, name: 1:A}]",
		"bad structure type":     "dataTypes: [{id: ns=1;i=1, name: 1:A, structure: {type: Class}}]",
		"structure and enum":     "dataTypes: [{id: ns=1;i=1, name: 1:A, structure: {}, enum: {}}]",
		"duplicate id":           "dataTypes: [{id: ns=1;i=1, name: 1:A}, {id: ns=1;i=1, name: 1:B}]",
		"builtin id is occupied": "dataTypes: [{id: i=22, name: Structure}]",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewFromYAML([]byte(data))
			require.ErrorIs(err, ErrInvalidFixtureError)
		})
	}

	t.Run("empty fixture", func(t *testing.T) {
		s, err := NewFromYAML(nil)
		require.NoError(err)
		require.NotNil(s)
	})
}
