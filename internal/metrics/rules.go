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

var RuleEvaluationsCounter *prometheus.CounterVec

var MetricsRuleEvaluations = "el_rules_evaluations_total"

var RuleTypeLabelName = "rule_type"
var OutcomeLabelName = "outcome"

func InitRulesMetrics() {
	RuleEvaluationsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsRuleEvaluations,
		Help: "Number of rules evaluated against files, by aggregated outcome",
	}, []string{RuleTypeLabelName, OutcomeLabelName})
}

func RegisterRulesMetrics() {
	registry.MustRegister(RuleEvaluationsCounter)
}
