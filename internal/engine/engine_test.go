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

package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/kaleido-io/emissionsledger/internal/cache"
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/mocks/databasemocks"
	"github.com/kaleido-io/emissionsledger/mocks/identitymocks"
	"github.com/kaleido-io/emissionsledger/mocks/ledgermocks"
	"github.com/kaleido-io/emissionsledger/mocks/metricsmocks"
	"github.com/kaleido-io/emissionsledger/mocks/rulesmocks"
	"github.com/kaleido-io/emissionsledger/mocks/verificationmocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const configFile = "../../test/config/emissionsledger.core.yaml"

type testEngine struct {
	engine
	mdi *databasemocks.Plugin
	mli *ledgermocks.Plugin
	mim *identitymocks.Manager
	mre *rulesmocks.Evaluator
	mvm *verificationmocks.Manager
	mmm *metricsmocks.Manager
}

func newTestEngine() *testEngine {
	config.Reset()
	ctx := context.Background()
	te := &testEngine{
		mdi: &databasemocks.Plugin{},
		mli: &ledgermocks.Plugin{},
		mim: &identitymocks.Manager{},
		mre: &rulesmocks.Evaluator{},
		mvm: &verificationmocks.Manager{},
		mmm: &metricsmocks.Manager{},
	}
	te.engine = engine{
		ctx:          ctx,
		database:     te.mdi,
		ledger:       te.mli,
		cache:        cache.NewCacheManager(ctx),
		metrics:      te.mmm,
		identity:     te.mim,
		rules:        te.mre,
		verification: te.mvm,
	}
	te.mli.On("Name").Return("utdbql").Maybe()
	return te
}

func TestInitDatabasePluginUnknown(t *testing.T) {
	config.Reset()
	e := NewEngine()
	config.Set(config.DatabaseType, "wrong")
	err := e.Init(context.Background())
	assert.Regexp(t, "EV10108", err)
}

func TestInitLedgerPluginUnknown(t *testing.T) {
	config.Reset()
	e := &engine{database: &databasemocks.Plugin{}}
	config.Set(config.LedgerType, "wrong")
	err := e.Init(context.Background())
	assert.Regexp(t, "EV10109", err)
}

func TestInitIdentityFail(t *testing.T) {
	config.Reset()
	e := &engine{database: &databasemocks.Plugin{}, ledger: &ledgermocks.Plugin{}}
	config.Set(config.IdentitySuite, "rot13")
	err := e.Init(context.Background())
	assert.Regexp(t, "EV10110", err)
}

func TestInitRulesFail(t *testing.T) {
	config.Reset()
	e := &engine{database: &databasemocks.Plugin{}, ledger: &ledgermocks.Plugin{}, identity: &identitymocks.Manager{}}
	config.Set(config.RulesPatternCacheSize, -1)
	err := e.Init(context.Background())
	assert.Regexp(t, "EV10212", err)
}

func TestInitVerificationFail(t *testing.T) {
	config.Reset()
	e := &engine{database: &databasemocks.Plugin{}, identity: &identitymocks.Manager{}, rules: &rulesmocks.Evaluator{}}
	err := e.initComponents(context.Background())
	assert.Regexp(t, "EV10135", err)
}

func TestInitLedgerInitFail(t *testing.T) {
	te := newTestEngine()
	te.mli.On("Init", mock.Anything, mock.Anything, &te.engine).Return(fmt.Errorf("pop"))
	err := te.engine.Init(context.Background())
	assert.Regexp(t, "pop", err)
}

func TestStartMetricsFail(t *testing.T) {
	te := newTestEngine()
	te.mmm.On("Start").Return(fmt.Errorf("pop"))
	err := te.Start()
	assert.Regexp(t, "pop", err)
	te.Close()
	te.mli.AssertNotCalled(t, "Close")
}

func TestStartCloseOk(t *testing.T) {
	te := newTestEngine()
	te.mmm.On("Start").Return(nil)
	te.mli.On("Start").Return(nil)
	te.mli.On("Close").Return().Once()
	err := te.Start()
	assert.NoError(t, err)
	te.Close()
	te.Close()
	te.mli.AssertExpectations(t)
}

func TestTransactionUpdateForwarded(t *testing.T) {
	te := newTestEngine()
	tx := &fftypes.LedgerTransaction{TxID: "tx-1", Status: fftypes.TransactionStatusFailed}
	te.mvm.On("TransactionUpdate", tx).Return(nil)
	err := te.TransactionUpdate(tx)
	assert.NoError(t, err)
	te.mvm.AssertExpectations(t)
}

func TestEngineE2E(t *testing.T) {
	err := config.ReadConfig(configFile)
	assert.NoError(t, err)
	e := NewEngine()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err = e.Init(ctx)
	assert.NoError(t, err)
	err = e.Start()
	assert.NoError(t, err)
	defer e.Close()

	schemaID := fmt.Sprintf("engine-e2e-%s", fftypes.ShortID())
	min := float64(0)
	_, err = e.CreateRule(ctx, &fftypes.ValidationRule{SchemaID: schemaID, RuleType: fftypes.RuleTypeRequired, Field: "emissionId", Active: true})
	assert.NoError(t, err)
	_, err = e.CreateRule(ctx, &fftypes.ValidationRule{SchemaID: schemaID, RuleType: fftypes.RuleTypeRange, Field: "emissionValue", Active: true,
		Parameters: &fftypes.RuleParameters{Min: &min}})
	assert.NoError(t, err)
	_, err = e.CreateRule(ctx, &fftypes.ValidationRule{SchemaID: schemaID, RuleType: fftypes.RuleTypeReference, Field: "type", Active: true,
		Severity: fftypes.SeverityWarning, Parameters: &fftypes.RuleParameters{ReferenceType: "gas"}})
	assert.NoError(t, err)
	_, err = e.UpsertReferenceData(ctx, &fftypes.ReferenceData{Type: "gas", Code: "CO2", Name: "Carbon dioxide"})
	assert.NoError(t, err)

	file, err := e.CreateFile(ctx, &fftypes.FileInput{
		Name:     "emissions.csv",
		SchemaID: schemaID,
		Rows:     fftypes.JSONObjectArray{{"id": "001", "type": "CO2", "value": float64(100)}},
	})
	assert.NoError(t, err)
	assert.Equal(t, fftypes.FileStatusUploaded, file.Status)

	file, err = e.MapFile(ctx, file.ID.String(), &fftypes.MappingInput{
		Mapping: fftypes.FieldMapping{"emissionId": "id", "emissionValue": "value", "type": "type"},
	})
	assert.NoError(t, err)
	assert.Equal(t, fftypes.FileStatusMapped, file.Status)
	assert.Equal(t, int64(1), file.Version)

	res, err := e.VerifyFile(ctx, file.ID.String(), &fftypes.VerifyRequest{CreateBlockchainRecord: true})
	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 0, res.ValidationResults.WarningCount)
	assert.Equal(t, fftypes.FileStatusVerified, res.Status)

	rr, err := e.GetFileRecord(ctx, file.ID.String(), true)
	assert.NoError(t, err)
	assert.Equal(t, res.VerificationRecord.RecordID, rr.VerificationRecord.RecordID)
	assert.True(t, rr.BlockchainVerification.IsAuthentic)

	ltx, err := e.GetTransaction(ctx, res.VerificationRecord.BlockchainTxID)
	assert.NoError(t, err)
	assert.Equal(t, fftypes.TransactionStatusConfirmed, ltx.Status)

	identifier, err := e.GetIdentifier(ctx, res.VerificationRecord.CreatedBy)
	assert.NoError(t, err)
	assert.Equal(t, "test-controller", identifier.Controller)
}
