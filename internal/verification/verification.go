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

package verification

import (
	"context"
	"sync"
	"time"

	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/database"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/identity"
	"github.com/kaleido-io/emissionsledger/internal/ledger"
	"github.com/kaleido-io/emissionsledger/internal/log"
	"github.com/kaleido-io/emissionsledger/internal/metrics"
	"github.com/kaleido-io/emissionsledger/internal/retry"
	"github.com/kaleido-io/emissionsledger/internal/rules"
)

// Manager runs files through validation, and turns a successful validation into
// a signed verification record anchored on the ledger
type Manager interface {
	ledger.Callbacks

	VerifyFile(ctx context.Context, fileID *fftypes.UUID, req *fftypes.VerifyRequest) (*fftypes.VerifyResult, error)
	GetVerificationRecord(ctx context.Context, recordID string, verifyOnBlockchain bool) (*fftypes.RecordResponse, error)
	ResetFile(ctx context.Context, fileID *fftypes.UUID) (*fftypes.File, error)
	GetTransactionStatus(ctx context.Context, txID string) (*fftypes.LedgerTransaction, error)
}

// Detail added to a record verification, for the check of the signature against the identifier
const DetailSignatureVerified = "signatureVerified"

const maxFreeTextLength = 256

type verificationManager struct {
	ctx               context.Context
	database          database.Plugin
	identity          identity.Manager
	ledger            ledger.Plugin
	rules             rules.Evaluator
	metrics           metrics.Manager
	signingTimeout    time.Duration
	ledgerTimeout     time.Duration
	defaultController string
	updateRetry       *retry.Retry
	pendingMux        sync.Mutex
	pendingTxs        map[string]*fftypes.UUID
}

func NewVerificationManager(ctx context.Context, di database.Plugin, im identity.Manager, li ledger.Plugin, re rules.Evaluator, mm metrics.Manager) (Manager, error) {
	if di == nil || im == nil || li == nil || re == nil || mm == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitNilDependency)
	}
	return &verificationManager{
		ctx:               ctx,
		database:          di,
		identity:          im,
		ledger:            li,
		rules:             re,
		metrics:           mm,
		signingTimeout:    config.GetDuration(config.VerificationSigningTimeout),
		ledgerTimeout:     config.GetDuration(config.VerificationLedgerTimeout),
		defaultController: config.GetString(config.VerificationDefaultController),
		updateRetry: &retry.Retry{
			InitialDelay: config.GetDuration(config.VerificationUpdateRetryInitial),
			MaximumDelay: config.GetDuration(config.VerificationUpdateRetryMax),
			Factor:       config.GetFloat64(config.VerificationUpdateRetryFactor),
			MaxAttempts:  config.GetInt(config.VerificationUpdateRetryCount),
		},
		pendingTxs: make(map[string]*fftypes.UUID),
	}, nil
}

// withTimeout runs fn with a deadline, returning as soon as the deadline
// passes even if fn does not honor its context
func withTimeout(ctx context.Context, timeout time.Duration, name string, fn func(ctx context.Context) error) error {
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- fn(tctx)
	}()
	select {
	case err := <-done:
		return err
	case <-tctx.Done():
		if ctx.Err() != nil {
			return i18n.NewError(ctx, i18n.MsgContextCanceled)
		}
		return i18n.NewError(ctx, i18n.MsgOperationTimeout, name, timeout)
	}
}

// updateOutcome writes the outcome of a step onto the file, retrying so the
// file is never left in validating. Outcomes are written even if the caller
// has gone away.
func (vm *verificationManager) updateOutcome(ctx context.Context, fileID *fftypes.UUID, outcome *database.FileOutcome) error {
	ctx = context.WithoutCancel(ctx)
	return vm.updateRetry.Do(ctx, "file outcome update", func(attempt int) (bool, error) {
		err := vm.database.UpdateFileOutcome(ctx, fileID, outcome)
		return err != nil, err
	})
}

func (vm *verificationManager) ResetFile(ctx context.Context, fileID *fftypes.UUID) (*fftypes.File, error) {
	file, err := vm.database.GetFileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, i18n.NewError(ctx, i18n.MsgFileNotFound, fileID)
	}
	reset, err := vm.database.ResetRetryableFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if !reset {
		return nil, i18n.NewError(ctx, i18n.MsgFileNotRetryable, fileID, file.Status)
	}
	log.L(ctx).Infof("File %s reset for retry after: %s", fileID, file.LastError)
	return vm.database.GetFileByID(ctx, fileID)
}

func (vm *verificationManager) GetTransactionStatus(ctx context.Context, txID string) (*fftypes.LedgerTransaction, error) {
	vm.metrics.LedgerQuery(vm.ledger.Name(), "GetTransactionStatus")
	return vm.ledger.GetTransactionStatus(ctx, txID)
}

func (vm *verificationManager) GetVerificationRecord(ctx context.Context, recordID string, verifyOnBlockchain bool) (*fftypes.RecordResponse, error) {
	vm.metrics.LedgerQuery(vm.ledger.Name(), "GetRecord")
	record, err := vm.ledger.GetRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	res := &fftypes.RecordResponse{VerificationRecord: record}
	if !verifyOnBlockchain {
		return res, nil
	}

	vm.metrics.LedgerQuery(vm.ledger.Name(), "VerifyRecord")
	verification, err := vm.ledger.VerifyRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if verification.Details == nil {
		verification.Details = map[string]string{}
	}

	// The ledger only checks a signature is present, so check it belongs to the identifier
	signatureVerified := false
	if record.Signature != nil {
		signatureVerified, err = vm.identity.Verify(ctx, record.CreatedBy, record.SigningPayload(), record.Signature)
		if err != nil {
			log.L(ctx).Warnf("Signature of record %s could not be verified: %s", recordID, err)
			signatureVerified = false
		}
	}
	verification.Details[DetailSignatureVerified] = "false"
	if signatureVerified {
		verification.Details[DetailSignatureVerified] = "true"
	}
	verification.IsAuthentic = verification.IsAuthentic && signatureVerified
	res.BlockchainVerification = verification
	return res, nil
}

// TransactionUpdate receives status changes for transactions the ledger
// confirms asynchronously. A failed transaction puts the file back into error.
func (vm *verificationManager) TransactionUpdate(tx *fftypes.LedgerTransaction) error {
	vm.metrics.LedgerSubmission(vm.ledger.Name(), tx.Status)
	vm.pendingMux.Lock()
	fileID, tracked := vm.pendingTxs[tx.TxID]
	if tracked && tx.Status != fftypes.TransactionStatusPending {
		delete(vm.pendingTxs, tx.TxID)
	}
	vm.pendingMux.Unlock()

	log.L(vm.ctx).Infof("Ledger tx %s for record %s is %s (confirmations=%d)", tx.TxID, tx.RecordID, tx.Status, tx.Confirmations)
	if !tracked || tx.Status != fftypes.TransactionStatusFailed {
		return nil
	}
	return vm.updateOutcome(vm.ctx, fileID, &database.FileOutcome{
		Status:    fftypes.FileStatusError,
		Retryable: true,
		LastError: i18n.NewError(vm.ctx, i18n.MsgLedgerSubmissionFailed, tx.RecordID).Error(),
	})
}

func (vm *verificationManager) trackPending(txID string, fileID *fftypes.UUID) {
	vm.pendingMux.Lock()
	defer vm.pendingMux.Unlock()
	vm.pendingTxs[txID] = fileID
}
