// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package snapshotter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/driftmon/driftmon/pkg/drift"
)

var (
	refreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "driftmon_refresh_duration_seconds",
			Help:    "Time taken to assemble a complete snapshot",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	refreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driftmon_refresh_total",
			Help: "Total number of snapshot refresh attempts",
		},
		[]string{"status"}, // success or canceled
	)

	sourceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "driftmon_source_duration_seconds",
			Help:    "Time taken by individual diagnostic commands",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15},
		},
		[]string{"source"},
	)

	sourceEmpty = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driftmon_source_empty_total",
			Help: "Number of diagnostic commands that produced no output",
		},
		[]string{"source"},
	)

	driftScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "driftmon_drift_score",
			Help: "Drift Score of the latest snapshot (0-100)",
		},
	)

	componentScore = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "driftmon_component_score",
			Help: "Component scores of the latest snapshot (0-20)",
		},
		[]string{"component"},
	)

	uptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "driftmon_uptime_seconds",
			Help: "Host uptime at the latest snapshot",
		},
	)
)

func recordScore(score drift.Score, components drift.ComponentScores) {
	driftScore.Set(float64(score.Value))
	for _, c := range components.Named() {
		componentScore.WithLabelValues(c.Name).Set(c.Score)
	}
}
