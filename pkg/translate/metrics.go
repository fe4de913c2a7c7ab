// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts the work done by a Translator.
type Metrics struct {
	// Fallbacks counts the unsupported-feature errors returned, by feature.
	Fallbacks *prometheus.CounterVec
	// TablesTranslated counts table descriptors built.
	TablesTranslated prometheus.Counter
	// TVFsTranslated counts table functions translated.
	TVFsTranslated prometheus.Counter
}

// NewMetrics returns unregistered translator metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gpopt",
			Subsystem: "translate",
			Name:      "fallbacks_total",
			Help:      "Number of translations abandoned because of an unsupported feature.",
		}, []string{"feature"}),
		TablesTranslated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gpopt",
			Subsystem: "translate",
			Name:      "tables_total",
			Help:      "Number of table descriptors built.",
		}),
		TVFsTranslated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gpopt",
			Subsystem: "translate",
			Name:      "table_functions_total",
			Help:      "Number of table functions translated.",
		}),
	}
}

// Register registers every metric with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Fallbacks, m.TablesTranslated, m.TVFsTranslated} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
