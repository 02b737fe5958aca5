/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/uuid"
)

// Grammar of node id string representation:
//
//	[svr=<uint32>;] [nsu=<uri>; | ns=<uint16>;] (i=<uint32> | s=<string> | g=<guid> | b=<base64>)
//
// String identifier consumes the rest of input, so it may contain any characters.
type nodeIDAST struct {
	Server   *string `parser:"@Server?"`
	NsURI    *string `parser:"( @NsURI"`
	Ns       *string `parser:"| @Ns )?"`
	Numeric  *string `parser:"( @Numeric"`
	GUID     *string `parser:"| @GUID"`
	Opaque   *string `parser:"| @Opaque"`
	StringID *string `parser:"| @String )"`
}

var (
	nodeIDLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Server", Pattern: `svr=\d+;`},
		{Name: "NsURI", Pattern: `nsu=[^;]*;`},
		{Name: "Ns", Pattern: `ns=\d+;`},
		{Name: "Numeric", Pattern: `i=\d+`},
		{Name: "GUID", Pattern: `g=[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`},
		{Name: "Opaque", Pattern: `b=[A-Za-z0-9+/]*={0,2}`},
		{Name: "String", Pattern: `s=[\s\S]*`},
	})

	nodeIDParser = participle.MustBuild[nodeIDAST](participle.Lexer(nodeIDLexer))
)

var (
	errEmptyNodeID        = errors.New("empty string")
	errExpandedNotAllowed = errors.New("server index and namespace URI are not allowed")
)

func parseNodeIDAST(s string) (*nodeIDAST, error) {
	if s == "" {
		return nil, errEmptyNodeID
	}
	return nodeIDParser.ParseString("", s)
}

// Parses node id from string representation, like «ns=2;i=5001», «s=Boiler» or «ns=1;g=...».
func ParseNodeID(s string) (NodeID, error) {
	ast, err := parseNodeIDAST(s)
	if err != nil {
		return NullNodeID, ErrInvalidNodeID(s, err)
	}
	if ast.Server != nil || ast.NsURI != nil {
		return NullNodeID, ErrInvalidNodeID(s, errExpandedNotAllowed)
	}
	id, err := ast.nodeID()
	if err != nil {
		return NullNodeID, ErrInvalidNodeID(s, err)
	}
	return id, nil
}

// Same as ParseNodeID but panics on error. Intended for well-known ids and tests
func MustParseNodeID(s string) NodeID {
	id, err := ParseNodeID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Parses expanded node id from string representation, like «svr=1;nsu=urn:plant;i=5001»
func ParseExpandedNodeID(s string) (ExpandedNodeID, error) {
	ast, err := parseNodeIDAST(s)
	if err != nil {
		return ExpandedNodeID{}, ErrInvalidNodeID(s, err)
	}
	id, err := ast.nodeID()
	if err != nil {
		return ExpandedNodeID{}, ErrInvalidNodeID(s, err)
	}
	res := ExpandedNodeID{nodeID: id}
	if ast.Server != nil {
		svr, err := strconv.ParseUint(trimToken(*ast.Server, "svr="), 10, 32)
		if err != nil {
			return ExpandedNodeID{}, ErrInvalidNodeID(s, err)
		}
		res.serverIndex = uint32(svr)
	}
	if ast.NsURI != nil {
		res.namespaceURI = trimToken(*ast.NsURI, "nsu=")
		res.nodeID.ns = 0
	}
	return res, nil
}

func (ast *nodeIDAST) nodeID() (NodeID, error) {
	var ns uint16
	if ast.Ns != nil {
		v, err := strconv.ParseUint(trimToken(*ast.Ns, "ns="), 10, 16)
		if err != nil {
			return NullNodeID, err
		}
		ns = uint16(v)
	}

	switch {
	case ast.Numeric != nil:
		v, err := strconv.ParseUint(strings.TrimPrefix(*ast.Numeric, "i="), 10, 32)
		if err != nil {
			return NullNodeID, err
		}
		return NewNumericNodeID(ns, uint32(v)), nil
	case ast.GUID != nil:
		g, err := uuid.Parse(strings.TrimPrefix(*ast.GUID, "g="))
		if err != nil {
			return NullNodeID, err
		}
		return NewGUIDNodeID(ns, g), nil
	case ast.Opaque != nil:
		b, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(*ast.Opaque, "b="))
		if err != nil {
			return NullNodeID, err
		}
		return NewOpaqueNodeID(ns, b), nil
	case ast.StringID != nil:
		return NewStringNodeID(ns, strings.TrimPrefix(*ast.StringID, "s=")), nil
	}
	// notest: grammar guarantees one of identifiers
	return NullNodeID, errors.New("identifier expected")
}

func trimToken(token, prefix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(token, prefix), ";")
}
