/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uagate/uatypes/pkg/ua"
)

func newTreeCmd(params *CLIParams) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Build data type tree of peer and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rootID, err := ua.ParseNodeID(root)
			if err != nil {
				return err
			}
			peer, err := wirePeer(*params)
			if err != nil {
				return err
			}
			tree, err := peer.buildTree(peer.logContext(cmd.Context()), rootID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), tree)
			return err
		},
	}
	cmd.Flags().StringVar(&root, "root", ua.NodeID_BaseDataType.String(), "Root data type")
	return cmd
}
