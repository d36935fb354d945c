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

package expression

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "scals"
	subsystem = "expression"
)

// Metrics provides access to expression-evaluation metrics.
var Metrics = newEvalMetrics()

// EvalMetrics holds prometheus metrics for expression evaluation.
type EvalMetrics struct {
	evaluationTime *prometheus.HistogramVec
	interpolations prometheus.Counter
}

func newEvalMetrics() *EvalMetrics {
	return &EvalMetrics{
		evaluationTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "evaluation_duration_seconds",
				Help:      "Expression evaluation time in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 2, 10), // 1µs to ~1ms
			},
			[]string{"form"}, // ternary, array, index, arithmetic, template
		),
		interpolations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "interpolations_total",
				Help:      "Number of templates that contained at least one ${...} span.",
			},
		),
	}
}

// Register registers the metrics with reg. Registration is explicit so
// library consumers choose their own registry.
func (m *EvalMetrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.evaluationTime, m.interpolations)
}

// ObserveEvaluation records one Evaluate call and which grammar form
// matched.
func (m *EvalMetrics) ObserveEvaluation(form string, durationSeconds float64) {
	m.evaluationTime.WithLabelValues(form).Observe(durationSeconds)
}

// IncInterpolation counts a template interpolation that did real work.
func (m *EvalMetrics) IncInterpolation() {
	m.interpolations.Inc()
}
