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

var SignatureCounter prometheus.Counter
var SigningFailureCounter prometheus.Counter
var IdentifierEventsCounter *prometheus.CounterVec

var MetricsSignatures = "el_identity_signatures_total"
var MetricsSigningFailures = "el_identity_signing_failures_total"
var MetricsIdentifierEvents = "el_identity_events_total"

var EventTypeLabelName = "event_type"

func InitIdentityMetrics() {
	SignatureCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricsSignatures,
		Help: "Number of signatures created by identifiers",
	})
	SigningFailureCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricsSigningFailures,
		Help: "Number of signing attempts that failed",
	})
	IdentifierEventsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsIdentifierEvents,
		Help: "Number of events appended to identifier event logs",
	}, []string{EventTypeLabelName})
}

func RegisterIdentityMetrics() {
	registry.MustRegister(SignatureCounter)
	registry.MustRegister(SigningFailureCounter)
	registry.MustRegister(IdentifierEventsCounter)
}
