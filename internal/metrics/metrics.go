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
	"sync"
	"time"

	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
)

var mutex = &sync.Mutex{}

type Manager interface {
	CountSignature()
	CountSigningFailure()
	CountIdentifierEvent(eventType fftypes.IdentifierEventType)
	VerificationStarted(fileID *fftypes.UUID)
	VerificationCompleted(fileID *fftypes.UUID, status fftypes.FileStatus)
	LedgerSubmission(location string, status fftypes.TransactionStatus)
	LedgerQuery(location, method string)
	RuleEvaluated(ruleType fftypes.RuleType, outcome fftypes.RuleOutcome)
	AddTime(id string)
	GetTime(id string) time.Time
	DeleteTime(id string)
	IsMetricsEnabled() bool
	Start() error
}

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
	timeMap        map[string]time.Time
}

func NewMetricsManager(ctx context.Context) Manager {
	mm := &metricsManager{
		ctx:            ctx,
		metricsEnabled: config.GetBool(config.MetricsEnabled),
		timeMap:        make(map[string]time.Time),
	}
	if mm.metricsEnabled {
		Registry()
	}

	return mm
}

func (mm *metricsManager) Start() error {
	return nil
}

func (mm *metricsManager) CountSignature() {
	if mm.metricsEnabled {
		SignatureCounter.Inc()
	}
}

func (mm *metricsManager) CountSigningFailure() {
	if mm.metricsEnabled {
		SigningFailureCounter.Inc()
	}
}

func (mm *metricsManager) CountIdentifierEvent(eventType fftypes.IdentifierEventType) {
	if mm.metricsEnabled {
		IdentifierEventsCounter.WithLabelValues(string(eventType)).Inc()
	}
}

func (mm *metricsManager) VerificationStarted(fileID *fftypes.UUID) {
	if fileID != nil {
		mm.AddTime(fileID.String())
	}
}

// VerificationCompleted records the outcome of a verification, and the time
// since it was started. Completions with no recorded start only count.
func (mm *metricsManager) VerificationCompleted(fileID *fftypes.UUID, status fftypes.FileStatus) {
	if fileID == nil {
		return
	}
	id := fileID.String()
	start := mm.GetTime(id)
	mm.DeleteTime(id)
	if !mm.metricsEnabled {
		return
	}
	VerificationCounter.WithLabelValues(string(status)).Inc()
	if !start.IsZero() {
		VerificationHistogram.WithLabelValues(string(status)).Observe(time.Since(start).Seconds())
	}
}

func (mm *metricsManager) LedgerSubmission(location string, status fftypes.TransactionStatus) {
	if mm.metricsEnabled {
		LedgerSubmissionsCounter.WithLabelValues(location, string(status)).Inc()
	}
}

func (mm *metricsManager) LedgerQuery(location, method string) {
	if mm.metricsEnabled {
		LedgerQueriesCounter.WithLabelValues(location, method).Inc()
	}
}

func (mm *metricsManager) RuleEvaluated(ruleType fftypes.RuleType, outcome fftypes.RuleOutcome) {
	if mm.metricsEnabled {
		RuleEvaluationsCounter.WithLabelValues(string(ruleType), string(outcome)).Inc()
	}
}

func (mm *metricsManager) AddTime(id string) {
	mutex.Lock()
	mm.timeMap[id] = time.Now()
	mutex.Unlock()
}

func (mm *metricsManager) GetTime(id string) time.Time {
	mutex.Lock()
	t := mm.timeMap[id]
	mutex.Unlock()
	return t
}

func (mm *metricsManager) DeleteTime(id string) {
	mutex.Lock()
	delete(mm.timeMap, id)
	mutex.Unlock()
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}
