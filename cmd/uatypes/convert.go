/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/ua"
)

var errFormatUnsupported = errors.New("format is not supported by codec")

type (
	decodeFunc func(ctx context.Context, codec dtmanager.ICodec, input string) (any, error)
	encodeFunc func(ctx context.Context, codec dtmanager.ICodec, w io.Writer, v any) error
)

var decoders = map[string]decodeFunc{
	format_JSON: func(ctx context.Context, codec dtmanager.ICodec, input string) (any, error) {
		c, ok := codec.(dtmanager.IJSONCodec)
		if !ok {
			return nil, errFormatUnsupported
		}
		return c.DecodeJSON(ctx, []byte(input))
	},
	format_Binary: func(ctx context.Context, codec dtmanager.ICodec, input string) (any, error) {
		c, ok := codec.(dtmanager.IBinaryCodec)
		if !ok {
			return nil, errFormatUnsupported
		}
		data, err := hex.DecodeString(strings.TrimSpace(input))
		if err != nil {
			return nil, err
		}
		return c.DecodeBinary(ctx, bytes.NewReader(data))
	},
	format_XML: func(ctx context.Context, codec dtmanager.ICodec, input string) (any, error) {
		c, ok := codec.(dtmanager.IXMLCodec)
		if !ok {
			return nil, errFormatUnsupported
		}
		d := xml.NewDecoder(strings.NewReader(input))
		for {
			tok, err := d.Token()
			if err != nil {
				return nil, err
			}
			if start, ok := tok.(xml.StartElement); ok {
				return c.DecodeXML(ctx, d, start)
			}
		}
	},
}

var encoders = map[string]encodeFunc{
	format_JSON: func(ctx context.Context, codec dtmanager.ICodec, w io.Writer, v any) error {
		c, ok := codec.(dtmanager.IJSONCodec)
		if !ok {
			return errFormatUnsupported
		}
		data, err := c.EncodeJSON(ctx, v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	},
	format_Binary: func(ctx context.Context, codec dtmanager.ICodec, w io.Writer, v any) error {
		c, ok := codec.(dtmanager.IBinaryCodec)
		if !ok {
			return errFormatUnsupported
		}
		buf := bytes.Buffer{}
		if err := c.EncodeBinary(ctx, &buf, v); err != nil {
			return err
		}
		_, err := io.WriteString(w, hex.EncodeToString(buf.Bytes()))
		return err
	},
	format_XML: func(ctx context.Context, codec dtmanager.ICodec, w io.Writer, v any) error {
		c, ok := codec.(dtmanager.IXMLCodec)
		if !ok {
			return errFormatUnsupported
		}
		e := xml.NewEncoder(w)
		if err := c.EncodeXML(ctx, e, xml.StartElement{}, v); err != nil {
			return err
		}
		return e.Flush()
	},
}

func formatNames() string {
	names := maps.Keys(decoders)
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func newConvertCmd(params *CLIParams) *cobra.Command {
	from, to := format_JSON, format_Binary
	cmd := &cobra.Command{
		Use:   "convert <id> <value>",
		Short: "Decode value of data type and encode it in another format, binary values are hex strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			decode, ok := decoders[from]
			if !ok {
				return fmt.Errorf("unknown format %q, expected one of: %s", from, formatNames())
			}
			encode, ok := encoders[to]
			if !ok {
				return fmt.Errorf("unknown format %q, expected one of: %s", to, formatNames())
			}
			id, err := ua.ParseNodeID(args[0])
			if err != nil {
				return err
			}
			peer, err := wirePeer(*params)
			if err != nil {
				return err
			}
			ctx := peer.logContext(cmd.Context())
			codec, ok := peer.lazyManager().Codec(ctx, id)
			if !ok {
				return fmt.Errorf("no codec for %s", id)
			}
			v, err := decode(ctx, codec, args[1])
			if err != nil {
				return fmt.Errorf("decode %s %s: %w", codec.DataType(), from, err)
			}
			out := cmd.OutOrStdout()
			if err := encode(ctx, codec, out, v); err != nil {
				return fmt.Errorf("encode %s %s: %w", codec.DataType(), to, err)
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", from, "Input format")
	cmd.Flags().StringVar(&to, "to", to, "Output format")
	return cmd
}
