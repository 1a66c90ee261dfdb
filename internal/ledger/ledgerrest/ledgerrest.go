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

package ledgerrest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/karlseguin/ccache"
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/ledger"
	"github.com/kaleido-io/emissionsledger/internal/log"
	"github.com/kaleido-io/emissionsledger/internal/restclient"
)

// LedgerREST submits records to a remote ledger gateway over HTTP. The gateway
// confirms transactions asynchronously, so pending transactions are polled
// until they reach a final state.
type LedgerREST struct {
	ctx          context.Context
	cancelCtx    context.CancelFunc
	capabilities *ledger.Capabilities
	callbacks    ledger.Callbacks
	client       *resty.Client
	pollInterval time.Duration
	cache        *ccache.Cache
	cacheTTL     time.Duration
	pendingMux   sync.Mutex
	pending      map[string]fftypes.TransactionStatus
	started      bool
	closed       chan struct{}
}

type gatewayError struct {
	Error string `json:"error"`
}

func (l *LedgerREST) Name() string {
	return "rest"
}

func (l *LedgerREST) Init(ctx context.Context, prefix config.Prefix, callbacks ledger.Callbacks) error {
	if prefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, "url", "ledger.rest")
	}
	client, err := restclient.New(ctx, prefix)
	if err != nil {
		return err
	}
	l.client = client
	l.ctx, l.cancelCtx = context.WithCancel(ctx)
	l.capabilities = &ledger.Capabilities{}
	l.callbacks = callbacks
	l.pollInterval = prefix.GetDuration(LedgerRESTConfPollInterval)
	l.cacheTTL = prefix.GetDuration(LedgerRESTConfCacheTTL)
	l.cache = ccache.New(ccache.Configure().MaxSize(prefix.GetInt64(LedgerRESTConfCacheSize)))
	l.pending = make(map[string]fftypes.TransactionStatus)
	l.closed = make(chan struct{})
	return nil
}

func (l *LedgerREST) Capabilities() *ledger.Capabilities {
	return l.capabilities
}

func (l *LedgerREST) Start() error {
	l.started = true
	go l.pollLoop()
	return nil
}

func (l *LedgerREST) Close() {
	l.cancelCtx()
	if l.started {
		<-l.closed
	}
	l.cache.Stop()
}

func (l *LedgerREST) StoreRecord(ctx context.Context, record *fftypes.VerificationRecord) (*fftypes.StoreResult, error) {
	if err := record.Validate(ctx); err != nil {
		return nil, err
	}
	var result fftypes.StoreResult
	var errBody gatewayError
	res, err := l.client.R().
		SetContext(ctx).
		SetBody(record).
		SetResult(&result).
		SetError(&errBody).
		Post("/records")
	if err == nil && res.StatusCode() == http.StatusConflict {
		return nil, i18n.NewError(ctx, i18n.MsgDuplicateRecord, record.RecordID)
	}
	if err != nil || !res.IsSuccess() {
		return nil, restclient.WrapRestErr(ctx, res, err, i18n.MsgLedgerRESTErr)
	}
	if result.Status != fftypes.TransactionStatusConfirmed && result.Status != fftypes.TransactionStatusFailed {
		l.trackPending(result.TxID, result.Status)
	}
	log.L(ctx).Infof("Record %s submitted in tx %s (%s)", record.RecordID, result.TxID, result.Status)
	return &result, nil
}

func (l *LedgerREST) trackPending(txID string, status fftypes.TransactionStatus) {
	l.pendingMux.Lock()
	defer l.pendingMux.Unlock()
	l.pending[txID] = status
}

func (l *LedgerREST) GetRecord(ctx context.Context, recordID string) (*fftypes.VerificationRecord, error) {
	if cached := l.cache.Get(recordID); cached != nil && !cached.Expired() {
		cached.Extend(l.cacheTTL)
		return ledger.CopyRecord(cached.Value().(*fftypes.VerificationRecord)), nil
	}
	var record fftypes.VerificationRecord
	res, err := l.client.R().
		SetContext(ctx).
		SetResult(&record).
		Get("/records/" + recordID)
	if err == nil && res.StatusCode() == http.StatusNotFound {
		return nil, i18n.NewError(ctx, i18n.MsgRecordNotFound, recordID)
	}
	if err != nil || !res.IsSuccess() {
		return nil, restclient.WrapRestErr(ctx, res, err, i18n.MsgLedgerRESTErr)
	}
	// Only confirmed records are final
	if record.BlockchainStatus == fftypes.BlockchainStatusConfirmed {
		l.cache.Set(recordID, ledger.CopyRecord(&record), l.cacheTTL)
	}
	return &record, nil
}

func (l *LedgerREST) VerifyRecord(ctx context.Context, recordID string) (*fftypes.RecordVerification, error) {
	var verification fftypes.RecordVerification
	res, err := l.client.R().
		SetContext(ctx).
		SetResult(&verification).
		Get("/records/" + recordID + "/verify")
	if err == nil && res.StatusCode() == http.StatusNotFound {
		return &fftypes.RecordVerification{
			Details: map[string]string{ledger.DetailExists: "false"},
		}, nil
	}
	if err != nil || !res.IsSuccess() {
		return nil, restclient.WrapRestErr(ctx, res, err, i18n.MsgLedgerRESTErr)
	}
	if verification.Details == nil {
		verification.Details = map[string]string{}
	}
	return &verification, nil
}

func (l *LedgerREST) GetTransactionStatus(ctx context.Context, txID string) (*fftypes.LedgerTransaction, error) {
	var ltx fftypes.LedgerTransaction
	res, err := l.client.R().
		SetContext(ctx).
		SetResult(&ltx).
		Get("/transactions/" + txID)
	if err == nil && res.StatusCode() == http.StatusNotFound {
		return nil, i18n.NewError(ctx, i18n.MsgTransactionNotFound, txID)
	}
	if err != nil || !res.IsSuccess() {
		return nil, restclient.WrapRestErr(ctx, res, err, i18n.MsgLedgerRESTErr)
	}
	return &ltx, nil
}

func (l *LedgerREST) pendingTxIDs() []string {
	l.pendingMux.Lock()
	defer l.pendingMux.Unlock()
	txIDs := make([]string, 0, len(l.pending))
	for txID := range l.pending {
		txIDs = append(txIDs, txID)
	}
	return txIDs
}

// checkPending polls each pending transaction once, and notifies any change of status
func (l *LedgerREST) checkPending() {
	for _, txID := range l.pendingTxIDs() {
		ltx, err := l.GetTransactionStatus(l.ctx, txID)
		if err != nil {
			log.L(l.ctx).Warnf("Failed to poll tx %s: %s", txID, err)
			continue
		}
		l.pendingMux.Lock()
		previous := l.pending[txID]
		final := ltx.Status == fftypes.TransactionStatusConfirmed || ltx.Status == fftypes.TransactionStatusFailed
		if final {
			delete(l.pending, txID)
		} else {
			l.pending[txID] = ltx.Status
		}
		l.pendingMux.Unlock()
		if ltx.Status != previous {
			if err := l.callbacks.TransactionUpdate(ltx); err != nil {
				log.L(l.ctx).Errorf("Transaction update for %s failed: %s", txID, err)
			}
		}
	}
}

func (l *LedgerREST) pollLoop() {
	defer close(l.closed)
	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.ctx.Done():
			log.L(l.ctx).Debugf("Exiting poll loop")
			return
		case <-ticker.C:
			l.checkPending()
		}
	}
}
