/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/spf13/cobra"

	imetrics "github.com/uagate/uatypes/pkg/metrics"
)

func newMetricsCmd(params *CLIParams) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics [<id>...]",
		Short: "Bind all codecs eagerly, resolve ids on demand and print metrics in Prometheus format",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseNodeIDs(args)
			if err != nil {
				return err
			}
			peer, err := wirePeer(*params)
			if err != nil {
				return err
			}
			ctx := peer.logContext(cmd.Context())
			if _, err := peer.eagerManager(ctx); err != nil {
				return err
			}
			m := peer.lazyManager()
			for _, id := range ids {
				m.Codec(ctx, id)
			}
			return peer.Metrics.List(func(metric imetrics.IMetric, value float64) error {
				_, err := cmd.OutOrStdout().Write(imetrics.ToPrometheus(metric, value))
				return err
			})
		},
	}
}
