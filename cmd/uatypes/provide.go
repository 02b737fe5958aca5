/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/goutils/logger"
	"github.com/uagate/uatypes/pkg/iuaclient"
	"github.com/uagate/uatypes/pkg/objcache"
	"github.com/uagate/uatypes/pkg/operations"
	"github.com/uagate/uatypes/pkg/typetreebuilder"
	"github.com/uagate/uatypes/pkg/typetreelazy"
	"github.com/uagate/uatypes/pkg/uaclientmem"
	"github.com/uagate/uatypes/pkg/uacodec"
)

//go:embed fixture.yaml
var defaultFixture []byte

func provideClient(params CLIParams) (iuaclient.IClient, error) {
	data := defaultFixture
	if params.Fixture != "" {
		var err error
		if data, err = os.ReadFile(params.Fixture); err != nil {
			return nil, err
		}
		logger.Verbose("fixture loaded from", params.Fixture)
	}
	server, err := uaclientmem.NewFromYAML(data)
	if err != nil {
		return nil, err
	}
	return server, nil
}

func provideCodecFactory() dtmanager.CodecFactory {
	return uacodec.Factory
}

func provideExecutorParams(params CLIParams) operations.Params {
	return operations.Params{
		MaxNodesPerBrowse: params.MaxNodesPerBrowse,
		MaxNodesPerRead:   params.MaxNodesPerRead,
		Session:           params.Session,
	}
}

func provideCacheProvider(params CLIParams) (objcache.CacheProvider, error) {
	if params.CacheSize <= 0 {
		return objcache.Hashicorp, fmt.Errorf("cache size must be positive, got %d", params.CacheSize)
	}
	p, ok := objcache.CacheProviderByName(params.CacheProvider)
	if !ok {
		return p, fmt.Errorf("unknown cache provider %q", params.CacheProvider)
	}
	return p, nil
}

func provideBuildParams(params CLIParams, exec operations.Params) typetreebuilder.Params {
	return typetreebuilder.Params{
		MaxDepth: params.MaxDepth,
		Executor: exec,
	}
}

func provideLazyParams(params CLIParams, cache objcache.CacheProvider, exec operations.Params) typetreelazy.Params {
	p := typetreelazy.Params{
		MaxDepth:              params.MaxDepth,
		NegativeCacheSize:     params.CacheSize,
		NegativeCacheProvider: cache,
		Executor:              exec,
	}
	if p.MaxDepth <= 0 {
		p.MaxDepth = Default_LazyMaxDepth
	}
	return p
}

func provideCodecParams(params CLIParams, cache objcache.CacheProvider, exec operations.Params) dtmanager.Params {
	return dtmanager.Params{
		NegativeCacheSize:     params.CacheSize,
		NegativeCacheProvider: cache,
		Executor:              exec,
	}
}
