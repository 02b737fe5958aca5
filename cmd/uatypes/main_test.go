/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	imetrics "github.com/uagate/uatypes/pkg/metrics"
)

func execTestCmd(args ...string) (string, error) {
	cmd := prepareRootCmd(append([]string{"uatypes"}, args...), "1.2.3")
	out := bytes.Buffer{}
	cmd.SetOut(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	require := require.New(t)

	out, err := execTestCmd("version")
	require.NoError(err)
	require.Equal("uatypes version 1.2.3\n", out)
}

func TestTree(t *testing.T) {
	t.Run("whole hierarchy", func(t *testing.T) {
		require := require.New(t)
		out, err := execTestCmd("tree")
		require.NoError(err)
		require.Contains(out, "BaseDataType (i=24)\n")
		require.Contains(out, "    1:Boiler (ns=1;i=3001)\n      1:SteamBoiler (ns=1;i=3010)\n")
		require.Contains(out, "1:BoilerMode (ns=1;i=3020)")
	})

	t.Run("subtree", func(t *testing.T) {
		require := require.New(t)
		out, err := execTestCmd("tree", "--root", "ns=1;i=3001", "--max-nodes-per-browse", "1")
		require.NoError(err)
		require.Contains(out, "\n  1:SteamBoiler (ns=1;i=3010)\n")
		require.NotContains(out, "BoilerMode")
	})

	t.Run("depth limit", func(t *testing.T) {
		require := require.New(t)
		out, err := execTestCmd("tree", "--max-depth", "1")
		require.NoError(err)
		require.Contains(out, "  Structure (i=22)\n")
		require.NotContains(out, "Boiler")
	})
}

func TestResolve(t *testing.T) {
	require := require.New(t)

	out, err := execTestCmd("resolve", "ns=1;i=3011", "ns=1;i=3001", "i=11", "ns=1;i=9999", "--cache", "theine")
	require.NoError(err)
	require.Equal(
		"ns=1;i=3011: 1:SteamBoiler (ns=1;i=3010) binary=ns=1;i=3011\n"+
			"ns=1;i=3001: 1:Boiler (ns=1;i=3001) binary=ns=1;i=3002 xml=ns=1;i=3003 json=ns=1;i=3004\n"+
			"i=11: Double (i=11) builtin=Double\n"+
			"ns=1;i=9999: unresolved\n",
		out)
}

func TestCodecs(t *testing.T) {
	t.Run("peer namespaces", func(t *testing.T) {
		require := require.New(t)
		out, err := execTestCmd("codecs")
		require.NoError(err)
		require.Contains(out, "1:Boiler (ns=1;i=3001) binary=ns=1;i=3002 xml=ns=1;i=3003 json=ns=1;i=3004\n")
		require.Contains(out, "1:BoilerMode (ns=1;i=3020)\n")
		require.Contains(out, "1:Reading (ns=1;i=3040) binary=ns=1;i=3041\n")
		require.NotContains(out, "(i=884)")
	})

	t.Run("all namespaces", func(t *testing.T) {
		require := require.New(t)
		out, err := execTestCmd("codecs", "--all")
		require.NoError(err)
		require.Contains(out, "(i=884)")
		require.Contains(out, "1:Setpoint (ns=1;i=3030) binary=ns=1;i=3031\n")
	})
}

func TestConvert(t *testing.T) {
	const (
		jsonValue   = `{"Temperature":80,"Pressure":1.5,"Mode":1}`
		binaryValue = "0000000000005440" + "000000000000f83f" + "01000000"
	)

	t.Run("json to binary", func(t *testing.T) {
		require := require.New(t)
		out, err := execTestCmd("convert", "ns=1;i=3010", jsonValue)
		require.NoError(err)
		require.Equal(binaryValue+"\n", out)
	})

	t.Run("binary to json by encoding id", func(t *testing.T) {
		require := require.New(t)
		out, err := execTestCmd("convert", "ns=1;i=3011", binaryValue, "--from", "binary", "--to", "json")
		require.NoError(err)
		require.Equal(jsonValue+"\n", out)
	})

	t.Run("json to xml and back", func(t *testing.T) {
		require := require.New(t)
		xmlValue, err := execTestCmd("convert", "ns=1;i=3010", jsonValue, "--to", "xml")
		require.NoError(err)
		require.Contains(xmlValue, "<Temperature>80</Temperature>")

		out, err := execTestCmd("convert", "ns=1;i=3010", xmlValue, "--from", "xml", "--to", "json")
		require.NoError(err)
		require.Equal(jsonValue+"\n", out)
	})

	t.Run("errors", func(t *testing.T) {
		for name, args := range map[string][]string{
			"unknown input format":  {"convert", "ns=1;i=3010", "{}", "--from", "yaml"},
			"unknown output format": {"convert", "ns=1;i=3010", "{}", "--to", "yaml"},
			"invalid id":            {"convert", "ns=x", "{}"},
			"unknown data type":     {"convert", "ns=1;i=9999", "{}"},
			"invalid hex":           {"convert", "ns=1;i=3010", "zz", "--from", "binary"},
			"no arguments":          {"convert"},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := execTestCmd(args...)
				require.Error(t, err)
			})
		}
	})
}

func TestMetrics(t *testing.T) {
	require := require.New(t)

	out, err := execTestCmd("metrics", "ns=1;i=3010", "ns=1;i=9999", "--session", "plant")
	require.NoError(err)
	require.Contains(out, imetrics.MetricCodecsRegisteredTotal+`{session="plant"} `)
	require.Contains(out, imetrics.MetricBrowseTotal+`{session="plant"} `)
	require.Contains(out, imetrics.MetricResolutionFailuresTotal+`{session="plant"} `)
}

func TestFixture(t *testing.T) {
	require := require.New(t)

	fixture := filepath.Join(t.TempDir(), "peer.yaml")
	require.NoError(os.WriteFile(fixture, []byte(`
namespaces: [urn:test]
dataTypes:
  - id: ns=1;i=1
    name: 1:Point
    encodings: {binary: ns=1;i=2}
    structure:
      fields:
        - {name: X, dataType: i=6}
`), 0600))

	out, err := execTestCmd("codecs", "--fixture", fixture)
	require.NoError(err)
	require.Equal("1:Point (ns=1;i=1) binary=ns=1;i=2\n", out)

	t.Run("errors", func(t *testing.T) {
		for name, args := range map[string][]string{
			"missing fixture":    {"codecs", "--fixture", filepath.Join(t.TempDir(), "absent.yaml")},
			"unknown cache":      {"resolve", "i=11", "--cache", "nope"},
			"invalid cache size": {"resolve", "i=11", "--cache-size", "0"},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := execTestCmd(args...)
				require.Error(err)
			})
		}
	})
}
