/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uaclientmem

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/uagate/uatypes/pkg/iuaclient"
	"github.com/uagate/uatypes/pkg/ua"
)

type fixture struct {
	Namespaces           []string          `yaml:"namespaces"`
	Limits               fixtureLimits     `yaml:"limits"`
	MaxReferencesPerNode int               `yaml:"maxReferencesPerNode"`
	DataTypes            []fixtureDataType `yaml:"dataTypes"`
}

type fixtureLimits struct {
	MaxNodesPerBrowse int `yaml:"maxNodesPerBrowse"`
	MaxNodesPerRead   int `yaml:"maxNodesPerRead"`
}

type fixtureDataType struct {
	ID        ua.NodeID         `yaml:"id"`
	Parent    ua.NodeID         `yaml:"parent"`
	Name      ua.QualifiedName  `yaml:"name"`
	Abstract  bool              `yaml:"abstract"`
	Encodings fixtureEncodings  `yaml:"encodings"`
	Structure *fixtureStructure `yaml:"structure"`
	Enum      *fixtureEnum      `yaml:"enum"`
}

type fixtureEncodings struct {
	Binary ua.NodeID `yaml:"binary"`
	XML    ua.NodeID `yaml:"xml"`
	JSON   ua.NodeID `yaml:"json"`

	// Namespace index of encoding browse names, standard namespace by default
	NameNamespace uint16 `yaml:"nameNamespace"`
}

type fixtureStructure struct {
	Type            string         `yaml:"type"`
	DefaultEncoding ua.NodeID      `yaml:"defaultEncoding"`
	Fields          []fixtureField `yaml:"fields"`
}

type fixtureField struct {
	Name            string    `yaml:"name"`
	Description     string    `yaml:"description"`
	DataType        ua.NodeID `yaml:"dataType"`
	ValueRank       *int32    `yaml:"valueRank"`
	ArrayDimensions []uint32  `yaml:"arrayDimensions"`
	MaxStringLength uint32    `yaml:"maxStringLength"`
	Optional        bool      `yaml:"optional"`
}

type fixtureEnum struct {
	Fields []fixtureEnumField `yaml:"fields"`
}

type fixtureEnumField struct {
	Value       int64  `yaml:"value"`
	Name        string `yaml:"name"`
	DisplayName string `yaml:"displayName"`
	Description string `yaml:"description"`
}

// Returns new server loaded from YAML fixture.
//
// Fixture example:
//
//	namespaces: [urn:plant]
//	limits: {maxNodesPerBrowse: 10, maxNodesPerRead: 100}
//	maxReferencesPerNode: 5
//	dataTypes:
//	  - id: ns=1;i=3001
//	    parent: i=22
//	    name: 1:Boiler
//	    encodings: {binary: ns=1;i=3002, json: ns=1;i=3003}
//	    structure:
//	      fields:
//	        - {name: Temperature, dataType: i=11}
//	        - {name: Tags, dataType: i=12, valueRank: 1}
//
// Data types may be listed in any order. Parent defaults to Structure for structures and
// to Enumeration for enumerations.
func LoadFixture(r io.Reader) (*Server, error) {
	f := fixture{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, ErrInvalidFixture("%v", err)
	}

	s := New(f.Namespaces...)
	s.SetOperationLimits(iuaclient.OperationLimits{
		MaxNodesPerBrowse: f.Limits.MaxNodesPerBrowse,
		MaxNodesPerRead:   f.Limits.MaxNodesPerRead,
	})
	s.SetMaxReferencesPerNode(f.MaxReferencesPerNode)

	pending := f.DataTypes
	for len(pending) > 0 {
		next := make([]fixtureDataType, 0, len(pending))
		for _, dt := range pending {
			if !s.contains(dt.parentID()) {
				next = append(next, dt)
				continue
			}
			if err := s.addFixtureDataType(dt); err != nil {
				return nil, ErrInvalidFixture("data type %v: %v", dt.ID, err)
			}
		}
		if len(next) == len(pending) {
			return nil, ErrInvalidFixture("data type %v: parent %v not found", next[0].ID, next[0].parentID())
		}
		pending = next
	}
	return s, nil
}

// Same as LoadFixture but reads fixture from bytes
func NewFromYAML(data []byte) (*Server, error) {
	return LoadFixture(bytes.NewReader(data))
}

func (s *Server) contains(id ua.NodeID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nodes[id]
	return ok
}

func (dt fixtureDataType) parentID() ua.NodeID {
	if !dt.Parent.IsNull() {
		return dt.Parent
	}
	switch {
	case dt.Structure != nil:
		return ua.NodeID_Structure
	case dt.Enum != nil:
		return ua.NodeID_Enumeration
	}
	return ua.NodeID_BaseDataType
}

func (dt fixtureDataType) definition() (ua.DataTypeDefinition, error) {
	switch {
	case dt.Structure != nil && dt.Enum != nil:
		return ua.NoDefinition, errors.New("both structure and enum definitions")
	case dt.Structure != nil:
		st, err := parseStructureType(dt.Structure.Type)
		if err != nil {
			return ua.NoDefinition, err
		}
		def := ua.StructureDefinition{
			DefaultEncodingID: dt.Structure.DefaultEncoding,
			BaseDataType:      dt.parentID(),
			StructureType:     st,
			Fields:            make([]ua.StructureField, 0, len(dt.Structure.Fields)),
		}
		for _, f := range dt.Structure.Fields {
			rank := ua.ValueRank_Scalar
			if f.ValueRank != nil {
				rank = *f.ValueRank
			}
			def.Fields = append(def.Fields, ua.StructureField{
				Name:            f.Name,
				Description:     f.Description,
				DataType:        f.DataType,
				ValueRank:       rank,
				ArrayDimensions: f.ArrayDimensions,
				MaxStringLength: f.MaxStringLength,
				IsOptional:      f.Optional,
			})
		}
		return ua.NewStructureDefinition(def), nil
	case dt.Enum != nil:
		def := ua.EnumDefinition{Fields: make([]ua.EnumField, 0, len(dt.Enum.Fields))}
		for _, f := range dt.Enum.Fields {
			displayName := f.DisplayName
			if displayName == "" {
				displayName = f.Name
			}
			def.Fields = append(def.Fields, ua.EnumField{Value: f.Value, Name: f.Name, DisplayName: displayName, Description: f.Description})
		}
		return ua.NewEnumDefinition(def), nil
	}
	return ua.NoDefinition, nil
}

func parseStructureType(s string) (ua.StructureType, error) {
	if s == "" {
		return ua.StructureType_Structure, nil
	}
	for st := ua.StructureType(0); st < ua.StructureType_count; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return ua.StructureType_Structure, ua.ErrInvalid("structure type «%s»", s)
}

func (s *Server) addFixtureDataType(dt fixtureDataType) error {
	def, err := dt.definition()
	if err != nil {
		return err
	}
	if err := s.AddDataType(dt.parentID(), dt.ID, dt.Name, dt.Abstract, def); err != nil {
		return err
	}
	for _, enc := range []struct {
		id   ua.NodeID
		name string
	}{
		{dt.Encodings.Binary, ua.EncodingName_Binary},
		{dt.Encodings.XML, ua.EncodingName_XML},
		{dt.Encodings.JSON, ua.EncodingName_JSON},
	} {
		if enc.id.IsNull() {
			continue
		}
		if err := s.AddEncoding(dt.ID, enc.id, ua.NewQualifiedName(dt.Encodings.NameNamespace, enc.name)); err != nil {
			return err
		}
	}
	return nil
}
