/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/typetreebuilder"
	"github.com/uagate/uatypes/pkg/ua"
	"github.com/uagate/uatypes/pkg/uaclientmem"
)

func buildEager(t *testing.T, s *uaclientmem.Server, f *testFactory, metrics imetrics.IMetrics) (*Manager, error) {
	ctx := context.Background()
	tree, err := typetreebuilder.BuildDataTypeTree(ctx, s, typetreebuilder.NewDefaultParams(), metrics)
	require.NoError(t, err)
	table, err := s.NamespaceTable(ctx)
	require.NoError(t, err)
	return NewEager(tree, table, f.factory, metrics)
}

func TestEager(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	f := newTestFactory()
	metrics := imetrics.Provide()
	m, err := buildEager(t, plant(t), f, metrics)
	require.NoError(err)

	codecOf := func(id ua.NodeID) ua.NodeID {
		c, ok := m.Codec(ctx, id)
		require.True(ok, id)
		return c.DataType().ID()
	}

	t.Run("structure codec by type id and by every encoding id", func(t *testing.T) {
		for _, id := range []ua.NodeID{boilerID, plantID(3002), plantID(3003), plantID(3004)} {
			require.Equal(boilerID, codecOf(id))
		}
		require.Equal(steamBoilerID, codecOf(plantID(3011)))
		require.Equal(setpointID, codecOf(plantID(3031)))
	})

	t.Run("default encoding of definition is used if encoding is absent", func(t *testing.T) {
		require.Equal(readingID, codecOf(plantID(3041)))
		id, ok := m.DataTypeID(ctx, plantID(3041))
		require.True(ok)
		require.Equal(readingID, id)
	})

	t.Run("enumerations are registered", func(t *testing.T) {
		require.Equal(boilerModeID, codecOf(boilerModeID))
		require.True(m.IsEnumType(ctx, boilerModeID))
	})

	t.Run("standard codecs are registered", func(t *testing.T) {
		require.Equal(ua.NS0(ua.ID_Argument), codecOf(ua.NS0(ua.ID_Argument)))
		require.Equal(ua.NS0(ua.ID_Argument), codecOf(ua.NS0(ua.ID_Argument_Encoding_DefaultBinary)))
		require.Equal(ua.NS0(ua.ID_NodeClass), codecOf(ua.NS0(ua.ID_NodeClass)))
		require.Equal(1, f.callsOf(ua.NS0(ua.ID_Argument)))
	})

	t.Run("types without definition have no codec", func(t *testing.T) {
		for _, id := range []ua.NodeID{cycleTimeID, ua.NS0(ua.ID_Double), plantID(9999)} {
			_, ok := m.Codec(ctx, id)
			require.False(ok, id)
		}
	})

	t.Run("encoding ids", func(t *testing.T) {
		id, ok := m.BinaryEncodingID(ctx, boilerID)
		require.True(ok)
		require.Equal(plantID(3002), id)
		id, ok = m.XMLEncodingID(ctx, boilerID)
		require.True(ok)
		require.Equal(plantID(3003), id)
		id, ok = m.JSONEncodingID(ctx, boilerID)
		require.True(ok)
		require.Equal(plantID(3004), id)

		_, ok = m.XMLEncodingID(ctx, steamBoilerID)
		require.False(ok)
		_, ok = m.BinaryEncodingID(ctx, cycleTimeID)
		require.False(ok)

		id, ok = m.DataTypeID(ctx, plantID(3004))
		require.True(ok)
		require.Equal(boilerID, id)
		_, ok = m.DataTypeID(ctx, boilerID)
		require.False(ok, "data type id is not encoding id")
	})

	t.Run("builtin types", func(t *testing.T) {
		bt, ok := m.BuiltinType(ctx, cycleTimeID)
		require.True(ok)
		require.Equal(ua.BuiltinType_Double, bt)
		bt, ok = m.BuiltinType(ctx, boilerModeID)
		require.True(ok)
		require.Equal(ua.BuiltinType_Int32, bt)
		bt, ok = m.BuiltinType(ctx, boilerID)
		require.True(ok)
		require.Equal(ua.BuiltinType_ExtensionObject, bt)
	})

	t.Run("every codec is created once", func(t *testing.T) {
		for _, id := range []ua.NodeID{boilerID, steamBoilerID, boilerModeID, setpointID, readingID} {
			require.Equal(1, f.callsOf(id), id)
		}
		require.Zero(f.callsOf(cycleTimeID))
		require.Equal(float64(len(m.Bindings())), metrics.Value(imetrics.MetricCodecsRegisteredTotal, ""))
	})

	t.Run("bindings are ordered by data type id", func(t *testing.T) {
		bb := m.Bindings()
		for i := 1; i < len(bb); i++ {
			require.Less(bb[i-1].DataTypeID.String(), bb[i].DataTypeID.String())
		}
	})

	t.Run("later registration overwrites earlier", func(t *testing.T) {
		dt, ok := m.Tree().DataType(boilerID)
		require.True(ok)
		codec := &testCodec{dt}
		m.RegisterType(boilerID, codec, typetree.Encodings{Binary: plantID(3999)})

		c, ok := m.Codec(ctx, boilerID)
		require.True(ok)
		require.Same(codec, c)
		c, ok = m.Codec(ctx, plantID(3999))
		require.True(ok)
		require.Same(codec, c)

		_, ok = m.Codec(ctx, plantID(3002))
		require.False(ok, "stale encoding binding must be removed")
		_, ok = m.XMLEncodingID(ctx, boilerID)
		require.False(ok)
	})
}

func TestEagerErrors(t *testing.T) {
	require := require.New(t)

	t.Run("namespace absent in namespace table", func(t *testing.T) {
		s := plant(t)
		require.NoError(s.AddDataType(ua.NodeID_Structure, ua.NewNumericNodeID(5, 1), ua.NewQualifiedName(5, "Alien"), false,
			ua.NewStructureDefinition(ua.StructureDefinition{Fields: []ua.StructureField{{Name: "X", DataType: ua.NS0(ua.ID_Int32)}}})))

		m, err := buildEager(t, s, newTestFactory(), nil)
		require.ErrorIs(err, ErrMalformedPeerError)
		require.ErrorContains(err, "Alien")
		require.Nil(m)
	})

	t.Run("factory failure", func(t *testing.T) {
		m, err := buildEager(t, plant(t), newTestFactory(setpointID), nil)
		require.ErrorIs(err, ErrCodecFactoryError)
		require.ErrorIs(err, errTestFactory)
		require.Nil(m)
	})

	t.Run("standard codec factory failure", func(t *testing.T) {
		m, err := buildEager(t, plant(t), newTestFactory(ua.NS0(ua.ID_Range)), nil)
		require.ErrorIs(err, ErrCodecFactoryError)
		require.Nil(m)
	})
}
