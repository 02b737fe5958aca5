/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/objcache"
	"github.com/uagate/uatypes/pkg/typetreelazy"
	"github.com/uagate/uatypes/pkg/ua"
	"github.com/uagate/uatypes/pkg/uaclientmem"
)

func TestLazy(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	s := plant(t)
	f := newTestFactory()
	metrics := imetrics.Provide()
	m := NewLazy(s, nil, f.factory, NewDefaultParams(), metrics)

	t.Run("standard codecs are available without server calls", func(t *testing.T) {
		c, ok := m.Codec(ctx, ua.NS0(ua.ID_EUInformation))
		require.True(ok)
		require.Equal(ua.NS0(ua.ID_EUInformation), c.DataType().ID())

		_, ok = m.Codec(ctx, ua.NS0(ua.ID_Double))
		require.False(ok, "standard namespace is never resolved")
		require.Zero(s.Calls(uaclientmem.Op_Browse))
		require.Zero(s.Calls(uaclientmem.Op_Read))
	})

	t.Run("codec by data type id", func(t *testing.T) {
		c, ok := m.Codec(ctx, boilerID)
		require.True(ok)
		require.Equal(boilerID, c.DataType().ID())

		id, ok := m.DataTypeID(ctx, plantID(3003))
		require.True(ok)
		require.Equal(boilerID, id)

		s.ResetCalls()
		c2, ok := m.Codec(ctx, plantID(3002))
		require.True(ok)
		require.Same(c, c2)
		require.Zero(s.Calls(uaclientmem.Op_Browse))
		require.Equal(1, f.callsOf(boilerID))
	})

	t.Run("codec by encoding id", func(t *testing.T) {
		c, ok := m.Codec(ctx, plantID(3011))
		require.True(ok)
		require.Equal(steamBoilerID, c.DataType().ID())

		c2, ok := m.Codec(ctx, steamBoilerID)
		require.True(ok)
		require.Same(c, c2)
	})

	t.Run("data type id resolves encoding", func(t *testing.T) {
		id, ok := m.DataTypeID(ctx, plantID(3031))
		require.True(ok)
		require.Equal(setpointID, id)
	})

	t.Run("encoding ids resolve data type", func(t *testing.T) {
		id, ok := m.BinaryEncodingID(ctx, readingID)
		require.True(ok)
		require.Equal(plantID(3041), id)
		_, ok = m.XMLEncodingID(ctx, readingID)
		require.False(ok)
		_, ok = m.JSONEncodingID(ctx, cycleTimeID)
		require.False(ok)
		require.Equal(1, f.callsOf(readingID))
	})

	t.Run("enumeration", func(t *testing.T) {
		c, ok := m.Codec(ctx, boilerModeID)
		require.True(ok)
		require.Equal(boilerModeID, c.DataType().ID())
		require.True(m.IsEnumType(ctx, boilerModeID))
		bt, ok := m.BuiltinType(ctx, boilerModeID)
		require.True(ok)
		require.Equal(ua.BuiltinType_Int32, bt)
	})

	t.Run("data type without definition has no codec", func(t *testing.T) {
		_, ok := m.Codec(ctx, cycleTimeID)
		require.False(ok)
		bt, ok := m.BuiltinType(ctx, cycleTimeID)
		require.True(ok)
		require.Equal(ua.BuiltinType_Double, bt)
	})

	t.Run("encoding which is not standard one", func(t *testing.T) {
		custom := plantID(3099)
		require.NoError(s.AddEncoding(boilerID, custom, ua.NewQualifiedName(1, "Custom Binary")))

		c, ok := m.Codec(ctx, custom)
		require.True(ok)
		require.Equal(boilerID, c.DataType().ID())
		require.Equal(1, f.callsOf(boilerID), "bound codec is reused")

		b, ok := m.binding(boilerID)
		require.True(ok)
		require.Equal([]ua.NodeID{custom}, b.Extra)
	})

	t.Run("metrics", func(t *testing.T) {
		require.Positive(metrics.Value(imetrics.MetricCodecsRegisteredTotal, ""))
		require.Positive(metrics.Value(imetrics.MetricResolutionFailuresTotal, ""))
	})
}

func TestLazyFailures(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	t.Run("failed resolution is remembered until cleared", func(t *testing.T) {
		s := plant(t)
		m := NewLazy(s, nil, newTestFactory().factory, NewDefaultParams(), nil)

		unknown := plantID(9999)
		_, ok := m.Codec(ctx, unknown)
		require.False(ok)
		require.Positive(s.Calls(uaclientmem.Op_Browse))

		s.ResetCalls()
		_, ok = m.Codec(ctx, unknown)
		require.False(ok)
		_, ok = m.DataTypeID(ctx, unknown)
		require.False(ok)
		_, ok = m.BinaryEncodingID(ctx, unknown)
		require.False(ok)
		require.Zero(s.Calls(uaclientmem.Op_Browse))
		require.Zero(s.Calls(uaclientmem.Op_Read))

		m.ClearFailedResolutions()
		_, ok = m.Codec(ctx, unknown)
		require.False(ok)
		require.Positive(s.Calls(uaclientmem.Op_Browse))
	})

	t.Run("transport failure", func(t *testing.T) {
		s := plant(t)
		m := NewLazy(s, nil, newTestFactory().factory, NewDefaultParams(), nil)

		s.SetFaultHook(func(context.Context, uaclientmem.Op) error { return errors.New("link down") })
		_, ok := m.Codec(ctx, boilerID)
		require.False(ok)

		s.SetFaultHook(nil)
		_, ok = m.Codec(ctx, boilerID)
		require.False(ok, "failure is remembered")

		m.ClearFailedResolutions()
		c, ok := m.Codec(ctx, boilerID)
		require.True(ok)
		require.Equal(boilerID, c.DataType().ID())
	})

	t.Run("namespace absent in namespace table is silent failure", func(t *testing.T) {
		s := plant(t)
		alien := ua.NewNumericNodeID(5, 1)
		require.NoError(s.AddDataType(ua.NodeID_Structure, alien, ua.NewQualifiedName(5, "Alien"), false,
			ua.NewStructureDefinition(ua.StructureDefinition{Fields: []ua.StructureField{{Name: "X", DataType: ua.NS0(ua.ID_Int32)}}})))
		f := newTestFactory()
		m := NewLazy(s, nil, f.factory, NewDefaultParams(), nil)

		_, ok := m.Codec(ctx, alien)
		require.False(ok)
		require.Zero(f.callsOf(alien))
	})

	t.Run("factory failure", func(t *testing.T) {
		f := newTestFactory(setpointID, ua.NS0(ua.ID_Range))
		m := NewLazy(plant(t), nil, f.factory, NewDefaultParams(), nil)

		_, ok := m.Codec(ctx, ua.NS0(ua.ID_Range))
		require.False(ok, "failed standard codec is skipped")
		_, ok = m.Codec(ctx, ua.NS0(ua.ID_Argument))
		require.True(ok)

		_, ok = m.Codec(ctx, setpointID)
		require.False(ok)
		_, ok = m.Codec(ctx, setpointID)
		require.False(ok)
		require.Equal(1, f.callsOf(setpointID))
	})
}

func TestLazyConcurrentResolution(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	for p := objcache.CacheProvider(0); p < objcache.CacheProvider_count; p++ {
		t.Run(p.String(), func(t *testing.T) {
			s := plant(t)
			f := newTestFactory()
			params := NewDefaultParams()
			params.NegativeCacheProvider = p
			tree := typetreelazy.New(s, nil, typetreelazy.NewDefaultParams(), nil)
			m := NewLazy(s, tree, f.factory, params, nil)
			require.Same(tree, m.Tree())

			const readers = 50
			wg := sync.WaitGroup{}
			codecs := make([]ICodec, readers)
			for i := 0; i < readers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					codecs[i], _ = m.Codec(ctx, plantID(3011))
				}(i)
			}
			wg.Wait()

			for _, c := range codecs {
				require.NotNil(c)
				require.Same(codecs[0], c)
			}
			require.Equal(1, f.callsOf(steamBoilerID))
		})
	}
}
