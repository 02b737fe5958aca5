/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uagate/uatypes/pkg/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return cobrau.ExecCommandAndCatchInterrupt(prepareRootCmd(args, ver))
}

func prepareRootCmd(args []string, ver string) *cobra.Command {
	params := CLIParams{}
	rootCmd := cobrau.PrepareRootCmd(
		"uatypes",
		"OPC UA remote data type resolver",
		args,
		ver,
		newTreeCmd(&params),
		newResolveCmd(&params),
		newCodecsCmd(&params),
		newConvertCmd(&params),
		newMetricsCmd(&params),
	)
	initGlobalFlags(rootCmd, &params)
	return rootCmd
}

func initGlobalFlags(cmd *cobra.Command, params *CLIParams) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&params.Fixture, "fixture", "", "Path to YAML fixture of peer address space")
	flags.IntVar(&params.MaxNodesPerBrowse, "max-nodes-per-browse", 0, "Overrides peer MaxNodesPerBrowse if positive")
	flags.IntVar(&params.MaxNodesPerRead, "max-nodes-per-read", 0, "Overrides peer MaxNodesPerRead if positive")
	flags.IntVar(&params.MaxDepth, "max-depth", 0, "Maximum depth of type hierarchy, 0 means default")
	flags.StringVar(&params.CacheProvider, "cache", Default_CacheProvider, "Negative cache provider: hashicorp, theine or imcache")
	flags.IntVar(&params.CacheSize, "cache-size", Default_CacheSize, "Maximum count of remembered failed resolutions")
	flags.StringVar(&params.Session, "session", "", "Session label of metrics")
}
