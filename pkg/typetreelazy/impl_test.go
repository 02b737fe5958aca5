/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreelazy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/objcache"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/typetreebuilder"
	"github.com/uagate/uatypes/pkg/ua"
	"github.com/uagate/uatypes/pkg/uaclientmem"
)

var errLink = errors.New("link down")

// Adds chain of n structures below Structure: ns=1;i=1 is the topmost, ns=1;i=n is the leaf.
// Every structure has binary encoding ns=1;i=100+k
func addChain(t *testing.T, s *uaclientmem.Server, n int) []ua.NodeID {
	ids := make([]ua.NodeID, 0, n)
	parent := ua.NodeID_Structure
	for k := 1; k <= n; k++ {
		id := ua.NewNumericNodeID(1, uint32(k))
		def := ua.NewStructureDefinition(ua.StructureDefinition{
			BaseDataType: parent,
			Fields:       []ua.StructureField{{Name: fmt.Sprintf("F%d", k), DataType: ua.NS0(ua.ID_Int32), ValueRank: ua.ValueRank_Scalar}},
		})
		require.NoError(t, s.AddDataType(parent, id, ua.NewQualifiedName(1, fmt.Sprintf("S%d", k)), false, def))
		require.NoError(t, s.AddEncoding(id, ua.NewNumericNodeID(1, uint32(100+k)), ua.NewQualifiedName(0, ua.EncodingName_Binary)))
		ids = append(ids, id)
		parent = id
	}
	return ids
}

func TestResolve(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	s := uaclientmem.New("urn:plant")
	chain := addChain(t, s, 3)
	leaf := chain[2]

	metrics := imetrics.Provide()
	tree := New(s, nil, NewDefaultParams(), metrics)
	base := tree.Len()

	t.Run("builtin types are known without server calls", func(t *testing.T) {
		require.True(tree.IsStructType(ctx, ua.NS0(ua.ID_Argument)))
		require.True(tree.IsEnumType(ctx, ua.NS0(ua.ID_NodeClass)))
		require.Zero(s.Calls(uaclientmem.Op_Browse))
		require.Zero(s.Calls(uaclientmem.Op_Read))
	})

	t.Run("leaf resolves whole path", func(t *testing.T) {
		dt, ok := tree.DataType(ctx, leaf)
		require.True(ok)
		require.Equal(ua.NewQualifiedName(1, "S3"), dt.Name())
		require.Equal(base+3, tree.Len())

		require.Equal(4, s.Calls(uaclientmem.Op_Browse), "three supertype browses, one encodings browse")
		require.Equal(1, s.Calls(uaclientmem.Op_Read), "attributes of whole path are read at once")
		require.Equal(1, s.Calls(uaclientmem.Op_NamespaceTable))
		require.Equal(1.0, metrics.Value(imetrics.MetricResolutionsTotal, ""))
	})

	t.Run("queries", func(t *testing.T) {
		s.ResetCalls()

		require.True(tree.Contains(ctx, chain[0]))
		require.True(tree.IsSubtypeOf(ctx, leaf, chain[0]))
		require.True(tree.IsSubtypeOf(ctx, leaf, ua.NodeID_Structure))
		require.False(tree.IsSubtypeOf(ctx, chain[0], leaf))
		require.True(tree.IsStructType(ctx, chain[1]))
		require.False(tree.IsEnumType(ctx, chain[1]))

		bt, ok := tree.BuiltinType(ctx, leaf)
		require.True(ok)
		require.Equal(ua.BuiltinType_ExtensionObject, bt)

		enc, ok := tree.BinaryEncodingID(ctx, chain[1])
		require.True(ok)
		require.Equal(ua.NewNumericNodeID(1, 102), enc)
		_, ok = tree.XMLEncodingID(ctx, chain[1])
		require.False(ok)
		_, ok = tree.JSONEncodingID(ctx, chain[1])
		require.False(ok)

		require.Zero(s.Calls(uaclientmem.Op_Browse), "resolved data types are served from tree")
		require.Zero(s.Calls(uaclientmem.Op_Read))
	})

	t.Run("snapshot", func(t *testing.T) {
		snap := tree.Snapshot()
		require.Equal(tree.Len(), snap.Len())
		require.True(snap.IsSubtypeOf(leaf, chain[0]))
	})
}

func TestLazyEqualsEager(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	s := uaclientmem.New("urn:plant")
	chain := addChain(t, s, 4)
	require.NoError(s.AddEncoding(chain[3], ua.NewNumericNodeID(1, 200), ua.NewQualifiedName(1, ua.EncodingName_JSON)))

	eager, err := typetreebuilder.BuildDataTypeTree(ctx, s, typetreebuilder.NewDefaultParams(), nil)
	require.NoError(err)

	lazy := New(s, nil, NewDefaultParams(), nil)
	_, ok := lazy.DataType(ctx, chain[3])
	require.True(ok)
	snap := lazy.Snapshot()

	parentOf := func(tree *typetree.Tree, id ua.NodeID) ua.NodeID {
		h, ok := tree.Node(id)
		require.True(ok)
		p, ok := tree.Parent(h)
		require.True(ok)
		return tree.DataTypeAt(p).ID()
	}

	for _, id := range chain {
		e, ok := eager.DataType(id)
		require.True(ok)
		l, ok := snap.DataType(id)
		require.True(ok)

		require.Equal(e.Name(), l.Name())
		require.Equal(e.IsAbstract(), l.IsAbstract())
		require.Equal(e.Definition(), l.Definition())
		require.Equal(e.Encodings(), l.Encodings())
		require.Equal(parentOf(eager, id), parentOf(snap, id))
	}
}

func TestFailedResolutions(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	t.Run("unknown data type is not retried until cleared", func(t *testing.T) {
		s := uaclientmem.New("urn:plant")
		metrics := imetrics.Provide()
		tree := New(s, nil, NewDefaultParams(), metrics)
		id := ua.NewNumericNodeID(1, 1)

		require.False(tree.Contains(ctx, id))
		require.Equal(1, s.Calls(uaclientmem.Op_Browse))

		require.NoError(s.AddDataType(ua.NodeID_Structure, id, ua.NewQualifiedName(1, "Late"), false, ua.NoDefinition))

		for i := 0; i < 3; i++ {
			require.False(tree.Contains(ctx, id))
			_, ok := tree.DataType(ctx, id)
			require.False(ok)
		}
		require.Equal(1, s.Calls(uaclientmem.Op_Browse), "failed resolution is remembered")
		require.Equal(1.0, metrics.Value(imetrics.MetricResolutionFailuresTotal, ""))

		tree.ClearFailedResolutions()
		require.True(tree.Contains(ctx, id))
		require.True(tree.IsStructType(ctx, id))
	})

	t.Run("transport failure", func(t *testing.T) {
		s := uaclientmem.New("urn:plant")
		chain := addChain(t, s, 2)
		tree := New(s, nil, NewDefaultParams(), nil)

		s.SetFaultHook(func(_ context.Context, op uaclientmem.Op) error {
			if op == uaclientmem.Op_Browse {
				return errLink
			}
			return nil
		})
		require.False(tree.Contains(ctx, chain[1]))

		s.SetFaultHook(nil)
		require.False(tree.Contains(ctx, chain[1]))

		tree.ClearFailedResolutions()
		require.True(tree.Contains(ctx, chain[1]))
		require.True(tree.Contains(ctx, chain[0]))
	})

	t.Run("transport failure while describing", func(t *testing.T) {
		for _, failing := range []uaclientmem.Op{uaclientmem.Op_Read, uaclientmem.Op_Browse} {
			t.Run(failing.String(), func(t *testing.T) {
				s := uaclientmem.New("urn:plant")
				chain := addChain(t, s, 2)
				metrics := imetrics.Provide()
				tree := New(s, nil, NewDefaultParams(), metrics)

				browses := 0
				s.SetFaultHook(func(_ context.Context, op uaclientmem.Op) error {
					if op != failing {
						return nil
					}
					if op == uaclientmem.Op_Browse {
						// supertype browses succeed, encodings browse fails
						if browses++; browses <= 2 {
							return nil
						}
					}
					return errLink
				})
				require.False(tree.Contains(ctx, chain[1]))
				require.False(tree.Contains(ctx, chain[0]), "nothing of the path is attached")
				require.Equal(typetree.NewBuiltin().Len(), tree.Len())
				require.Equal(1.0, metrics.Value(imetrics.MetricResolutionFailuresTotal, ""))

				s.SetFaultHook(nil)
				require.False(tree.Contains(ctx, chain[1]), "failure is remembered")

				tree.ClearFailedResolutions()
				dt, ok := tree.DataType(ctx, chain[1])
				require.True(ok)
				require.Equal(ua.DefinitionKind_Structure, dt.Definition().Kind())
				enc, ok := tree.BinaryEncodingID(ctx, chain[1])
				require.True(ok)
				require.Equal(ua.NewNumericNodeID(1, 102), enc)
				require.True(tree.IsStructType(ctx, chain[0]))
			})
		}
	})

	t.Run("supertype cycle", func(t *testing.T) {
		s := uaclientmem.New("urn:plant")
		x := ua.NewNumericNodeID(1, 1)
		y := ua.NewNumericNodeID(1, 2)
		require.NoError(s.AddDataType(ua.NullNodeID, x, ua.NewQualifiedName(1, "X"), false, ua.NoDefinition))
		require.NoError(s.AddDataType(x, y, ua.NewQualifiedName(1, "Y"), false, ua.NoDefinition))
		require.NoError(s.AddReference(y, ua.NodeID_HasSubtype, x))

		tree := New(s, nil, NewDefaultParams(), nil)
		require.False(tree.Contains(ctx, y))
		require.False(tree.Contains(ctx, x))
		require.Equal(typetree.NewBuiltin().Len(), tree.Len())
	})

	t.Run("no supertype", func(t *testing.T) {
		s := uaclientmem.New("urn:plant")
		x := ua.NewNumericNodeID(1, 1)
		require.NoError(s.AddDataType(ua.NullNodeID, x, ua.NewQualifiedName(1, "X"), false, ua.NoDefinition))

		tree := New(s, nil, NewDefaultParams(), nil)
		require.False(tree.Contains(ctx, x))
	})

	t.Run("max depth", func(t *testing.T) {
		s := uaclientmem.New("urn:plant")
		chain := addChain(t, s, 5)

		params := NewDefaultParams()
		params.MaxDepth = 3
		tree := New(s, nil, params, nil)
		require.False(tree.Contains(ctx, chain[4]))
		require.True(tree.Contains(ctx, chain[2]))

		tree.ClearFailedResolutions()
		require.True(tree.Contains(ctx, chain[4]), "only two unknown supertypes are left")
	})

	t.Run("negative cache providers", func(t *testing.T) {
		for p := objcache.CacheProvider(0); p < objcache.CacheProvider_count; p++ {
			t.Run(p.String(), func(t *testing.T) {
				s := uaclientmem.New("urn:plant")
				params := NewDefaultParams()
				params.NegativeCacheProvider = p
				params.NegativeCacheSize = 10
				tree := New(s, nil, params, nil)

				id := ua.NewNumericNodeID(1, 1)
				require.False(tree.Contains(ctx, id))
				require.False(tree.Contains(ctx, id))
				require.Equal(1, s.Calls(uaclientmem.Op_Browse))
			})
		}
	})
}

func TestConcurrentResolve(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	s := uaclientmem.New("urn:plant")
	chain := addChain(t, s, 3)
	tree := New(s, nil, NewDefaultParams(), nil)

	const readers = 50
	wg := sync.WaitGroup{}
	start := make(chan struct{})
	results := make([]bool, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = tree.IsSubtypeOf(ctx, chain[2], chain[0])
		}(i)
	}
	close(start)
	wg.Wait()

	for _, ok := range results {
		require.True(ok)
	}
	require.Equal(1, s.Calls(uaclientmem.Op_Read), "one resolution for all concurrent queries")
	require.Equal(4, s.Calls(uaclientmem.Op_Browse))
}

func TestNamespaceTable(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	s := uaclientmem.New("urn:plant")
	tree := New(s, nil, NewDefaultParams(), nil)

	t.Run("read once", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			table, err := tree.NamespaceTable(ctx)
			require.NoError(err)
			require.Equal(2, table.Len())
		}
		require.Equal(1, s.Calls(uaclientmem.Op_NamespaceTable))
	})

	t.Run("invalidate", func(t *testing.T) {
		s.SetNamespaces("urn:plant", "urn:line")
		tree.InvalidateNamespaceTable()
		table, err := tree.NamespaceTable(ctx)
		require.NoError(err)
		require.Equal(3, table.Len())
		require.Equal(2, s.Calls(uaclientmem.Op_NamespaceTable))
	})

	t.Run("refresh", func(t *testing.T) {
		s.SetNamespaces("urn:plant")
		require.NoError(tree.RefreshNamespaceTable(ctx))
		table, err := tree.NamespaceTable(ctx)
		require.NoError(err)
		require.Equal(2, table.Len())
	})

	t.Run("failed refresh keeps table", func(t *testing.T) {
		s.SetFaultHook(func(_ context.Context, op uaclientmem.Op) error {
			if op == uaclientmem.Op_NamespaceTable {
				return errLink
			}
			return nil
		})
		defer s.SetFaultHook(nil)

		require.ErrorIs(tree.RefreshNamespaceTable(ctx), ErrNamespaceTableError)
		table, err := tree.NamespaceTable(ctx)
		require.NoError(err)
		require.Equal(2, table.Len())

		tree.InvalidateNamespaceTable()
		_, err = tree.NamespaceTable(ctx)
		require.ErrorIs(err, ErrNamespaceTableError)
		require.False(tree.Contains(ctx, ua.NewNumericNodeID(1, 1)), "resolution fails without namespace table")
	})
}

func TestSeed(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	s := uaclientmem.New("urn:plant")
	chain := addChain(t, s, 2)

	seed := typetree.NewBuiltin()
	_, err := seed.AddChild(ua.NodeID_Structure, typetree.NewDataType(chain[0], ua.NewQualifiedName(1, "Seeded"), false, ua.NoDefinition, typetree.Encodings{}))
	require.NoError(err)

	tree := New(s, seed, NewDefaultParams(), nil)
	dt, ok := tree.DataType(ctx, chain[0])
	require.True(ok)
	require.Equal("Seeded", dt.Name().Name)
	require.Zero(s.Calls(uaclientmem.Op_Browse))

	require.True(tree.Contains(ctx, chain[1]))
	require.Equal(2, s.Calls(uaclientmem.Op_Browse), "supertype browse stops at seeded data type")
	require.Equal(seed.Len(), typetree.NewBuiltin().Len()+1, "seed is not modified")
}
