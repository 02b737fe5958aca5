/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCodecsCmd(params *CLIParams) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "codecs",
		Short: "Bind codecs to all data types of peer and print bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			peer, err := wirePeer(*params)
			if err != nil {
				return err
			}
			m, err := peer.eagerManager(peer.logContext(cmd.Context()))
			if err != nil {
				return err
			}
			for _, b := range m.Bindings() {
				if b.DataTypeID.Namespace() == 0 && !all {
					continue
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(fmt.Sprint(b.Codec.DataType(), " ", encodingsText(b.Encodings, b.Extra...)))); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Print standard namespace bindings too")
	return cmd
}
