//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/google/wire"

	imetrics "github.com/uagate/uatypes/pkg/metrics"
)

func wirePeer(params CLIParams) (WiredPeer, error) {
	panic(
		wire.Build(
			provideClient,
			imetrics.Provide,
			provideCodecFactory,
			provideExecutorParams,
			provideCacheProvider,
			provideBuildParams,
			provideLazyParams,
			provideCodecParams,
			wire.Struct(new(WiredPeer), "*"),
		),
	)
}
