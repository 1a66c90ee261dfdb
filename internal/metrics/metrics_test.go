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
	"context"
	"testing"
	"time"

	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetricsManager(t *testing.T) (*metricsManager, func()) {
	config.Reset()
	Clear()
	ctx, cancel := context.WithCancel(context.Background())
	mmi := NewMetricsManager(ctx)
	mm := mmi.(*metricsManager)
	assert.True(t, mm.IsMetricsEnabled())
	assert.NoError(t, mm.Start())
	assert.Equal(t, len(mm.timeMap), 0)
	return mm, cancel
}

func TestCountSignatures(t *testing.T) {
	mm, cancel := newTestMetricsManager(t)
	defer cancel()
	mm.CountSignature()
	mm.CountSignature()
	mm.CountSigningFailure()
	assert.Equal(t, float64(2), testutil.ToFloat64(SignatureCounter))
	assert.Equal(t, float64(1), testutil.ToFloat64(SigningFailureCounter))
}

func TestCountIdentifierEvent(t *testing.T) {
	mm, cancel := newTestMetricsManager(t)
	defer cancel()
	mm.CountIdentifierEvent(fftypes.IdentifierEventRotation)
	m, err := IdentifierEventsCounter.GetMetricWith(prometheus.Labels{EventTypeLabelName: "rotation"})
	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m))
}

func TestVerificationStartedCompleted(t *testing.T) {
	mm, cancel := newTestMetricsManager(t)
	defer cancel()
	fileID := fftypes.NewUUID()
	mm.VerificationStarted(fileID)
	assert.Equal(t, 1, len(mm.timeMap))
	assert.False(t, mm.GetTime(fileID.String()).IsZero())

	mm.VerificationCompleted(fileID, fftypes.FileStatusVerified)
	assert.Equal(t, 0, len(mm.timeMap))
	m, err := VerificationCounter.GetMetricWith(prometheus.Labels{StatusLabelName: "verified"})
	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m))
	assert.Equal(t, 1, testutil.CollectAndCount(VerificationHistogram))
}

func TestVerificationCompletedNoStart(t *testing.T) {
	mm, cancel := newTestMetricsManager(t)
	defer cancel()
	mm.VerificationCompleted(fftypes.NewUUID(), fftypes.FileStatusError)
	m, err := VerificationCounter.GetMetricWith(prometheus.Labels{StatusLabelName: "error"})
	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m))
	assert.Equal(t, 0, testutil.CollectAndCount(VerificationHistogram))
}

func TestVerificationNilFile(t *testing.T) {
	mm, cancel := newTestMetricsManager(t)
	defer cancel()
	mm.VerificationStarted(nil)
	mm.VerificationCompleted(nil, fftypes.FileStatusError)
	assert.Equal(t, 0, len(mm.timeMap))
	assert.Equal(t, 0, testutil.CollectAndCount(VerificationCounter))
}

func TestLedgerSubmission(t *testing.T) {
	mm, cancel := newTestMetricsManager(t)
	defer cancel()
	mm.LedgerSubmission("utdbql", fftypes.TransactionStatusPending)
	m, err := LedgerSubmissionsCounter.GetMetricWith(prometheus.Labels{LocationLabelName: "utdbql", StatusLabelName: "Pending"})
	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m))
}

func TestLedgerQuery(t *testing.T) {
	mm, cancel := newTestMetricsManager(t)
	defer cancel()
	mm.LedgerQuery("ledgerrest", "GetRecord")
	m, err := LedgerQueriesCounter.GetMetricWith(prometheus.Labels{LocationLabelName: "ledgerrest", MethodNameLabelName: "GetRecord"})
	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m))
}

func TestRuleEvaluated(t *testing.T) {
	mm, cancel := newTestMetricsManager(t)
	defer cancel()
	mm.RuleEvaluated(fftypes.RuleTypeRange, fftypes.RuleOutcomeFail)
	m, err := RuleEvaluationsCounter.GetMetricWith(prometheus.Labels{RuleTypeLabelName: "range", OutcomeLabelName: "Fail"})
	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m))
}

func TestMetricsDisabled(t *testing.T) {
	config.Reset()
	Clear()
	config.Set(config.MetricsEnabled, false)
	mm := NewMetricsManager(context.Background()).(*metricsManager)
	assert.False(t, mm.IsMetricsEnabled())
	mm.CountSignature()
	mm.CountSigningFailure()
	mm.CountIdentifierEvent(fftypes.IdentifierEventInception)
	mm.LedgerSubmission("utdbql", fftypes.TransactionStatusFailed)
	mm.LedgerQuery("utdbql", "GetRecord")
	mm.RuleEvaluated(fftypes.RuleTypeRequired, fftypes.RuleOutcomePass)
	mm.VerificationStarted(fftypes.NewUUID())
	assert.Nil(t, registry)
}

func TestTimeMap(t *testing.T) {
	mm, cancel := newTestMetricsManager(t)
	defer cancel()
	mm.AddTime("id1")
	assert.WithinDuration(t, time.Now(), mm.GetTime("id1"), time.Second)
	mm.DeleteTime("id1")
	assert.True(t, mm.GetTime("id1").IsZero())
}

func TestRestServerInstrumentationOnce(t *testing.T) {
	Clear()
	i1 := GetRestServerInstrumentation()
	i2 := GetRestServerInstrumentation()
	assert.Same(t, i1, i2)
}
