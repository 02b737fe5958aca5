/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/uagate/uatypes/pkg/goutils/logger"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

func (r *registry) init(factory CodecFactory, metrics imetrics.IMetrics, session string) {
	if metrics == nil {
		metrics = imetrics.Provide()
	}
	r.byType = make(map[ua.NodeID]*Binding)
	r.byEncoding = make(map[ua.NodeID]*Binding)
	r.factory = factory
	r.metrics = metrics
	r.session = session
}

// Returns binding by data type id or by encoding id. Must be called under lock
func (r *registry) lookup(id ua.NodeID) (*Binding, bool) {
	if b, ok := r.byType[id]; ok {
		return b, true
	}
	b, ok := r.byEncoding[id]
	return b, ok
}

func (r *registry) codec(id ua.NodeID) (ICodec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if b, ok := r.lookup(id); ok {
		return b.Codec, true
	}
	return nil, false
}

func (r *registry) binding(dataTypeID ua.NodeID) (*Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byType[dataTypeID]
	return b, ok
}

// Must be called under write lock
func (r *registry) register(dataTypeID ua.NodeID, codec ICodec, enc typetree.Encodings, extra ...ua.NodeID) *Binding {
	if old, ok := r.byType[dataTypeID]; ok {
		for _, id := range old.encodingIDs() {
			if r.byEncoding[id] == old {
				delete(r.byEncoding, id)
			}
		}
	}
	b := &Binding{DataTypeID: dataTypeID, Encodings: enc, Extra: extra, Codec: codec}
	r.byType[dataTypeID] = b
	for _, id := range b.encodingIDs() {
		r.byEncoding[id] = b
	}
	r.metrics.Increase(imetrics.MetricCodecsRegisteredTotal, r.session, 1)
	return b
}

// Creates codec by factory and registers it. Must be called under write lock
func (r *registry) bind(m IDataTypeManager, dt *typetree.DataType, extra ...ua.NodeID) (ICodec, error) {
	codec, err := r.factory(dt, m)
	if err != nil {
		return nil, ErrCodecFactory(dt, err)
	}
	r.register(dt.ID(), codec, dt.Encodings(), extra...)
	if logger.IsTrace() {
		logger.Trace("codec registered for", dt)
	}
	return codec, nil
}

// Registers codecs of standard namespace structures and enumerations.
//
// If strict then first factory failure is returned, else failures are logged and skipped
func (r *registry) bindBuiltin(m IDataTypeManager, strict bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	builtin := typetree.NewBuiltin()
	builtin.Walk(builtin.Root(), func(h typetree.NodeHandle, _ int) bool {
		dt := builtin.DataTypeAt(h)
		if dt.Definition().Kind() == ua.DefinitionKind_None {
			return true
		}
		if _, err = r.bind(m, dt); err != nil && !strict {
			logger.Warning("standard codec is not registered:", err)
			err = nil
		}
		return err == nil
	})
	return err
}

func (r *registry) RegisterType(dataTypeID ua.NodeID, codec ICodec, enc typetree.Encodings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(dataTypeID, codec, enc)
}

// Returns all bindings ordered by data type id string
func (r *registry) Bindings() []Binding {
	r.mu.RLock()
	byName := make(map[string]Binding, len(r.byType))
	for id, b := range r.byType {
		byName[id.String()] = *b
	}
	r.mu.RUnlock()

	names := maps.Keys(byName)
	slices.Sort(names)
	res := make([]Binding, 0, len(names))
	for _, n := range names {
		res = append(res, byName[n])
	}
	return res
}

func (b *Binding) encodingIDs() []ua.NodeID {
	return append(b.Encodings.IDs(), b.Extra...)
}
