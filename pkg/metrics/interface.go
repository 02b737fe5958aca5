/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 *
 * @author Michael Saigachenko
 *
 * Modifications copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

type IMetric interface {
	Name() string

	// Session returns empty string when not specified
	Session() string
}

type IMetrics interface {
	// Increase metric value with "delta".
	// The default metric value is always 0.
	// Naming best practices: https://prometheus.io/docs/practices/naming/
	//
	// @ConcurrentAccess
	Increase(metricName string, session string, valueDelta float64)

	// Value returns current metric value, 0 if metric was never increased
	//
	// @ConcurrentAccess
	Value(metricName string, session string) float64

	// List lists current values of all metrics
	//
	// @ConcurrentAccess
	List(cb func(metric IMetric, metricValue float64) (err error)) (err error)
}
