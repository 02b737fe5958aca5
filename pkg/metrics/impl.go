/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 *
 * Modifications copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

import (
	"bytes"
	"sort"
	"strconv"
	"sync"
)

type metric struct {
	name    string
	session string
}

func (m *metric) Name() string {
	return m.name
}

func (m *metric) Session() string {
	return m.session
}

type mapMetrics struct {
	metrics map[metric]float64
	lock    sync.RWMutex
}

func newMetrics() IMetrics {
	return &mapMetrics{
		metrics: make(map[metric]float64),
	}
}

func (m *mapMetrics) Increase(metricName string, session string, valueDelta float64) {
	key := metric{
		name:    metricName,
		session: session,
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	m.metrics[key] = m.metrics[key] + valueDelta
}

func (m *mapMetrics) Value(metricName string, session string) float64 {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.metrics[metric{name: metricName, session: session}]
}

// List enumerates metrics ordered by name then by session
func (m *mapMetrics) List(cb func(metric IMetric, metricValue float64) (err error)) (err error) {
	m.lock.RLock()
	keys := make([]metric, 0, len(m.metrics))
	for k := range m.metrics {
		keys = append(keys, k)
	}
	values := make([]float64, 0, len(keys))
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return keys[i].session < keys[j].session
	})
	for _, k := range keys {
		values = append(values, m.metrics[k])
	}
	m.lock.RUnlock()

	for i := range keys {
		if err = cb(&keys[i], values[i]); err != nil {
			return err
		}
	}
	return nil
}

// ToPrometheus renders metric in Prometheus text exposition format
func ToPrometheus(metric IMetric, metricValue float64) []byte {
	bb := bytes.Buffer{}
	bb.WriteString(metric.Name())
	if metric.Session() != "" {
		bb.WriteString(`{session="`)
		bb.WriteString(metric.Session())
		bb.WriteString(`"}`)
	}
	bb.WriteRune(' ')
	bb.WriteString(strconv.FormatFloat(metricValue, 'f', -1, bitSize))
	bb.WriteRune('\n')
	return bb.Bytes()
}
