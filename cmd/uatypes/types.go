/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/iuaclient"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/typetreebuilder"
	"github.com/uagate/uatypes/pkg/typetreelazy"
)

type CLIParams struct {
	// Path to peer fixture, embedded plant fixture is used if empty
	Fixture           string
	MaxNodesPerBrowse int
	MaxNodesPerRead   int
	// Maximum depth of eager build and of lazy supertype walk
	MaxDepth      int
	CacheProvider string
	CacheSize     int
	Session       string
}

type WiredPeer struct {
	Client      iuaclient.IClient
	Metrics     imetrics.IMetrics
	Factory     dtmanager.CodecFactory
	BuildParams typetreebuilder.Params
	LazyParams  typetreelazy.Params
	CodecParams dtmanager.Params
}
