// Copyright 2025 The SCALSRenderer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resolve

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "scals"
	subsystem = "resolve"
)

// Metrics provides access to resolution-pass metrics.
var Metrics = newPassMetrics()

// PassMetrics holds prometheus metrics for resolution passes.
type PassMetrics struct {
	passDuration  prometheus.Histogram
	nodesResolved prometheus.Counter
}

func newPassMetrics() *PassMetrics {
	return &PassMetrics{
		passDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "pass_duration_seconds",
				Help:      "Resolution pass time in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 12), // 10µs to ~40ms
			},
		),
		nodesResolved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "nodes_resolved_total",
				Help:      "Total IR nodes produced across passes.",
			},
		),
	}
}

// Register registers the metrics with reg.
func (m *PassMetrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.passDuration, m.nodesResolved)
}

// ObservePass records one completed pass.
func (m *PassMetrics) ObservePass(durationSeconds float64, nodes int) {
	m.passDuration.Observe(durationSeconds)
	m.nodesResolved.Add(float64(nodes))
}
