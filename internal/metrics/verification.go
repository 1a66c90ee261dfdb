// Copyright © 2021 Kaleido, Inc.
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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var VerificationCounter *prometheus.CounterVec
var VerificationHistogram *prometheus.HistogramVec

var MetricsVerifications = "el_verification_total"
var MetricsVerificationDuration = "el_verification_duration_seconds"

var StatusLabelName = "status"

func InitVerificationMetrics() {
	VerificationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsVerifications,
		Help: "Number of file verifications completed, by final file status",
	}, []string{StatusLabelName})
	VerificationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    MetricsVerificationDuration,
		Help:    "Time taken to verify a file, from validation through to ledger submission",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{StatusLabelName})
}

func RegisterVerificationMetrics() {
	registry.MustRegister(VerificationCounter)
	registry.MustRegister(VerificationHistogram)
}
