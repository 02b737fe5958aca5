/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
	"github.com/uagate/uatypes/pkg/uaclientmem"
)

var errTestFactory = errors.New("factory test error")

type testCodec struct {
	dt *typetree.DataType
}

func (c *testCodec) DataType() *typetree.DataType { return c.dt }

// Codec factory which counts calls per data type and fails for listed ids
type testFactory struct {
	mu    sync.Mutex
	calls map[ua.NodeID]int
	fail  map[ua.NodeID]bool
}

func newTestFactory(fail ...ua.NodeID) *testFactory {
	f := &testFactory{calls: map[ua.NodeID]int{}, fail: map[ua.NodeID]bool{}}
	for _, id := range fail {
		f.fail[id] = true
	}
	return f
}

func (f *testFactory) factory(dt *typetree.DataType, _ IDataTypeManager) (ICodec, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[dt.ID()]++
	if f.fail[dt.ID()] {
		return nil, errTestFactory
	}
	return &testCodec{dt}, nil
}

func (f *testFactory) callsOf(id ua.NodeID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

func plant(t *testing.T) *uaclientmem.Server {
	data, err := os.ReadFile("../uaclientmem/testdata/plant.yaml")
	require.NoError(t, err)
	s, err := uaclientmem.NewFromYAML(data)
	require.NoError(t, err)
	return s
}

func plantID(id uint32) ua.NodeID { return ua.NewNumericNodeID(1, id) }

var (
	boilerID      = plantID(3001)
	steamBoilerID = plantID(3010)
	boilerModeID  = plantID(3020)
	setpointID    = plantID(3030)
	readingID     = plantID(3040)
	cycleTimeID   = plantID(3050)
)
