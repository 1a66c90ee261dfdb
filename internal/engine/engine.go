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

	"github.com/kaleido-io/emissionsledger/internal/cache"
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/database"
	"github.com/kaleido-io/emissionsledger/internal/database/difactory"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/identity"
	"github.com/kaleido-io/emissionsledger/internal/ledger"
	"github.com/kaleido-io/emissionsledger/internal/ledger/lfactory"
	"github.com/kaleido-io/emissionsledger/internal/log"
	"github.com/kaleido-io/emissionsledger/internal/metrics"
	"github.com/kaleido-io/emissionsledger/internal/rules"
	"github.com/kaleido-io/emissionsledger/internal/verification"
)

var (
	databaseConfig = config.NewPluginConfig("database")
	ledgerConfig   = config.NewPluginConfig("ledger")
)

// Engine is the main interface behind the API, implementing the actions
type Engine interface {
	ledger.Callbacks

	Init(ctx context.Context) error
	Start() error
	Close()

	// Files
	CreateFile(ctx context.Context, input *fftypes.FileInput) (*fftypes.File, error)
	GetFileByID(ctx context.Context, id string) (*fftypes.File, error)
	MapFile(ctx context.Context, id string, input *fftypes.MappingInput) (*fftypes.File, error)
	ResetFile(ctx context.Context, id string) (*fftypes.File, error)
	GetFileRecord(ctx context.Context, id string, verifyOnBlockchain bool) (*fftypes.RecordResponse, error)

	// Rules and reference data
	CreateRule(ctx context.Context, rule *fftypes.ValidationRule) (*fftypes.ValidationRule, error)
	GetRules(ctx context.Context, schemaID string, activeOnly bool) ([]*fftypes.ValidationRule, error)
	UpsertReferenceData(ctx context.Context, rd *fftypes.ReferenceData) (*fftypes.ReferenceData, error)

	// Identifiers
	CreateIdentifier(ctx context.Context, input *fftypes.IdentifierInput) (*fftypes.Identifier, error)
	GetIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error)
	RotateIdentifier(ctx context.Context, id string) (*fftypes.RotationResult, error)
	EraseIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error)
	RevokeIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error)
	GetIdentifierEvents(ctx context.Context, id string) ([]*fftypes.IdentifierEvent, error)
	VerifyIdentifierEvents(ctx context.Context, id string) (*fftypes.EventLogVerification, error)

	// Verification
	VerifyFile(ctx context.Context, id string, req *fftypes.VerifyRequest) (*fftypes.VerifyResult, error)
	GetRecord(ctx context.Context, recordID string, verifyOnBlockchain bool) (*fftypes.RecordResponse, error)
	GetTransaction(ctx context.Context, txID string) (*fftypes.LedgerTransaction, error)
}

type engine struct {
	ctx          context.Context
	started      bool
	database     database.Plugin
	ledger       ledger.Plugin
	cache        cache.Manager
	metrics      metrics.Manager
	identity     identity.Manager
	rules        rules.Evaluator
	verification verification.Manager
}

func NewEngine() Engine {
	e := &engine{}

	// Initialize the config on all the factories
	difactory.InitPrefix(databaseConfig)
	lfactory.InitPrefix(ledgerConfig)

	return e
}

func (e *engine) Init(ctx context.Context) (err error) {
	e.ctx = ctx
	err = e.initPlugins(ctx)
	if err == nil {
		err = e.initComponents(ctx)
	}
	if err == nil {
		err = e.initLedgerPlugin(ctx)
	}
	return err
}

func (e *engine) Start() error {
	err := e.metrics.Start()
	if err == nil {
		err = e.ledger.Start()
	}
	if err == nil {
		e.started = true
	}
	return err
}

func (e *engine) Close() {
	if e.ledger != nil && e.started {
		e.ledger.Close()
		e.started = false
	}
}

// TransactionUpdate forwards asynchronous ledger confirmations to the verification engine
func (e *engine) TransactionUpdate(tx *fftypes.LedgerTransaction) error {
	log.L(e.ctx).Debugf("Ledger transaction update %s status=%s", tx.TxID, tx.Status)
	return e.verification.TransactionUpdate(tx)
}

func (e *engine) initPlugins(ctx context.Context) (err error) {
	if e.database == nil {
		if e.database, err = e.initDatabasePlugin(ctx); err != nil {
			return err
		}
	}

	if e.ledger == nil {
		pluginType := config.GetString(config.LedgerType)
		if e.ledger, err = lfactory.GetPlugin(ctx, pluginType); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) initComponents(ctx context.Context) (err error) {
	if e.cache == nil {
		e.cache = cache.NewCacheManager(ctx)
	}

	if e.metrics == nil {
		e.metrics = metrics.NewMetricsManager(ctx)
	}

	if e.identity == nil {
		if e.identity, err = identity.NewIdentityManager(ctx, e.database, e.cache, e.metrics, nil); err != nil {
			return err
		}
	}

	if e.rules == nil {
		if e.rules, err = rules.NewEvaluator(ctx, e.database, e.cache, e.metrics); err != nil {
			return err
		}
	}

	if e.verification == nil {
		if e.verification, err = verification.NewVerificationManager(ctx, e.database, e.identity, e.ledger, e.rules, e.metrics); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) initDatabasePlugin(ctx context.Context) (database.Plugin, error) {
	pluginType := config.GetString(config.DatabaseType)
	plugin, err := difactory.GetPlugin(ctx, pluginType)
	if err != nil {
		return nil, err
	}
	err = plugin.Init(ctx, databaseConfig.SubPrefix(pluginType))
	return plugin, err
}

// initLedgerPlugin runs after the components, as ledger events are delivered to the verification engine
func (e *engine) initLedgerPlugin(ctx context.Context) error {
	return e.ledger.Init(ctx, ledgerConfig.SubPrefix(e.ledger.Name()), e)
}
