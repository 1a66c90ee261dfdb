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
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var registry *prometheus.Registry
var restInstrumentation *Instrumentation

// Registry returns the Prometheus registry shared by the servers and managers,
// creating and registering every collector on first use
func Registry() *prometheus.Registry {
	mutex.Lock()
	defer mutex.Unlock()
	if registry == nil {
		initMetricsCollectors()
		registry = prometheus.NewRegistry()
		registerMetricsCollectors()
	}

	return registry
}

// GetRestServerInstrumentation returns the REST server's Prometheus middleware, ensuring its metrics are never
// registered twice
func GetRestServerInstrumentation() *Instrumentation {
	r := Registry()
	mutex.Lock()
	defer mutex.Unlock()
	if restInstrumentation == nil {
		restInstrumentation = NewCustomInstrumentation(true, "el_apiserver", "rest", prometheus.DefBuckets, map[string]string{}, r)
	}
	return restInstrumentation
}

// Clear will reset the Prometheus metrics registry and instrumentations, useful for testing
func Clear() {
	mutex.Lock()
	defer mutex.Unlock()
	registry = nil
	restInstrumentation = nil
}

func initMetricsCollectors() {
	InitIdentityMetrics()
	InitVerificationMetrics()
	InitLedgerMetrics()
	InitRulesMetrics()
}

func registerMetricsCollectors() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	RegisterIdentityMetrics()
	RegisterVerificationMetrics()
	RegisterLedgerMetrics()
	RegisterRulesMetrics()
}
