/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

func newResolveCmd(params *CLIParams) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <id>...",
		Short: "Resolve data types or encodings on demand and print their codecs",
		Args:  cobra.MinimumNArgs(1),
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
			m := peer.lazyManager()
			for _, id := range ids {
				if err := printResolved(ctx, cmd.OutOrStdout(), m, id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printResolved(ctx context.Context, out io.Writer, m *dtmanager.LazyManager, id ua.NodeID) error {
	if codec, ok := m.Codec(ctx, id); ok {
		dt := codec.DataType()
		_, err := fmt.Fprintln(out, strings.TrimSpace(fmt.Sprintf("%s: %s %s", id, dt, encodingsText(dt.Encodings()))))
		return err
	}
	dt, ok := m.Tree().DataType(ctx, id)
	if !ok {
		_, err := fmt.Fprintf(out, "%s: unresolved\n", id)
		return err
	}
	if bt, ok := m.BuiltinType(ctx, id); ok {
		_, err := fmt.Fprintf(out, "%s: %s builtin=%s\n", id, dt, bt)
		return err
	}
	_, err := fmt.Fprintf(out, "%s: %s no codec\n", id, dt)
	return err
}

func encodingsText(enc typetree.Encodings, extra ...ua.NodeID) string {
	parts := make([]string, 0, len(extra)+3)
	for _, e := range []struct {
		name string
		id   ua.NodeID
	}{{format_Binary, enc.Binary}, {format_XML, enc.XML}, {format_JSON, enc.JSON}} {
		if !e.id.IsNull() {
			parts = append(parts, e.name+"="+e.id.String())
		}
	}
	for _, id := range extra {
		parts = append(parts, "extra="+id.String())
	}
	return strings.Join(parts, " ")
}
