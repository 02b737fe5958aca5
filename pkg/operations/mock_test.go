/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package operations

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/uagate/uatypes/pkg/iuaclient"
	"github.com/uagate/uatypes/pkg/ua"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Browse(ctx context.Context, nodes []ua.BrowseDescription) ([]ua.BrowseResult, error) {
	args := m.Called(ctx, nodes)
	res, _ := args.Get(0).([]ua.BrowseResult)
	return res, args.Error(1)
}

func (m *mockClient) BrowseNext(ctx context.Context, cp []byte) (ua.BrowseResult, error) {
	args := m.Called(ctx, cp)
	return args.Get(0).(ua.BrowseResult), args.Error(1)
}

func (m *mockClient) Read(ctx context.Context, nodes []ua.ReadValueID) ([]ua.DataValue, error) {
	args := m.Called(ctx, nodes)
	res, _ := args.Get(0).([]ua.DataValue)
	return res, args.Error(1)
}

func (m *mockClient) OperationLimits(ctx context.Context) (iuaclient.OperationLimits, error) {
	args := m.Called(ctx)
	return args.Get(0).(iuaclient.OperationLimits), args.Error(1)
}

func (m *mockClient) NamespaceTable(ctx context.Context) (ua.NamespaceTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(ua.NamespaceTable), args.Error(1)
}

func browseNodes(ids ...uint32) []ua.BrowseDescription {
	res := make([]ua.BrowseDescription, 0, len(ids))
	for _, id := range ids {
		res = append(res, ua.BrowseSubtypes(ua.NewNumericNodeID(1, id)))
	}
	return res
}

// Returns one good result per node with single reference named as node
func browseResults(nodes []ua.BrowseDescription) []ua.BrowseResult {
	res := make([]ua.BrowseResult, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, ua.BrowseResult{References: []ua.ReferenceDescription{ref(n.NodeID.String())}})
	}
	return res
}

func ref(name string) ua.ReferenceDescription {
	return ua.ReferenceDescription{
		ReferenceTypeID: ua.NodeID_HasSubtype,
		IsForward:       true,
		NodeID:          ua.NewStringNodeID(1, name).Expanded(),
		BrowseName:      ua.NewQualifiedName(1, name),
		NodeClass:       ua.NodeClass_DataType,
	}
}

func readNodes(ids ...uint32) []ua.ReadValueID {
	res := make([]ua.ReadValueID, 0, len(ids))
	for _, id := range ids {
		res = append(res, ua.ReadValueID{NodeID: ua.NewNumericNodeID(1, id), AttributeID: ua.AttributeID_BrowseName})
	}
	return res
}

func readResults(nodes []ua.ReadValueID) []ua.DataValue {
	res := make([]ua.DataValue, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, ua.NewDataValue(ua.NewQualifiedName(1, n.NodeID.String())))
	}
	return res
}
