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

var LedgerSubmissionsCounter *prometheus.CounterVec
var LedgerQueriesCounter *prometheus.CounterVec

var MetricsLedgerSubmissions = "el_ledger_submissions_total"
var MetricsLedgerQueries = "el_ledger_queries_total"

var LocationLabelName = "location"
var MethodNameLabelName = "methodName"

func InitLedgerMetrics() {
	LedgerSubmissionsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsLedgerSubmissions,
		Help: "Number of verification records submitted to the ledger, by resulting status",
	}, []string{LocationLabelName, StatusLabelName})
	LedgerQueriesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsLedgerQueries,
		Help: "Number of queries made against the ledger",
	}, []string{LocationLabelName, MethodNameLabelName})
}

func RegisterLedgerMetrics() {
	registry.MustRegister(LedgerSubmissionsCounter)
	registry.MustRegister(LedgerQueriesCounter)
}
