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

	"github.com/kaleido-io/emissionsledger/internal/database"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/log"
)

func (vm *verificationManager) VerifyFile(ctx context.Context, fileID *fftypes.UUID, req *fftypes.VerifyRequest) (*fftypes.VerifyResult, error) {
	if req == nil {
		req = &fftypes.VerifyRequest{}
	}
	file, err := vm.database.GetFileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, i18n.NewError(ctx, i18n.MsgFileNotFound, fileID)
	}
	if file.Status == fftypes.FileStatusMapped && len(file.MappedData) == 0 {
		return nil, i18n.NewError(ctx, i18n.MsgNoRowsToVerify, fileID)
	}

	// Only one verification can win the move out of mapped
	gated, err := vm.database.UpdateFileStatus(ctx, fileID, fftypes.FileStatusMapped, fftypes.FileStatusValidating)
	if err != nil {
		return nil, err
	}
	if !gated {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidFileState, fileID, file.Status)
	}
	log.L(ctx).Infof("Verifying file %s version %d", fileID, file.Version)
	vm.metrics.VerificationStarted(fileID)

	result, err := vm.verifyValidating(ctx, file, req)
	if result != nil {
		vm.metrics.VerificationCompleted(fileID, result.Status)
	} else {
		vm.metrics.VerificationCompleted(fileID, fftypes.FileStatusError)
	}
	return result, err
}

// verifyValidating runs everything after the gate. Every return leaves the file
// in validated, verified or error.
func (vm *verificationManager) verifyValidating(ctx context.Context, file *fftypes.File, req *fftypes.VerifyRequest) (*fftypes.VerifyResult, error) {
	rules, err := vm.database.GetValidationRules(ctx, file.SchemaID, true)
	if err != nil {
		return nil, vm.failRetryable(ctx, file.ID, nil, err)
	}

	results := vm.rules.Evaluate(ctx, rules, file.MappedData)
	result := &fftypes.VerifyResult{
		FileID:            file.ID,
		ValidationResults: results,
	}
	if !results.IsValid {
		result.Status = fftypes.FileStatusError
		if err := vm.updateOutcome(ctx, file.ID, &database.FileOutcome{
			Status:            fftypes.FileStatusError,
			ValidationResults: results,
			LastError:         i18n.NewError(ctx, i18n.MsgValidationFailed, results.ErrorCount).Error(),
		}); err != nil {
			return nil, err
		}
		log.L(ctx).Infof("File %s failed validation with %d errors", file.ID, results.ErrorCount)
		return result, nil
	}

	if err := vm.updateOutcome(ctx, file.ID, &database.FileOutcome{
		Status:            fftypes.FileStatusValidated,
		ValidationResults: results,
	}); err != nil {
		return nil, err
	}
	result.Success = true
	result.Status = fftypes.FileStatusValidated
	if !req.CreateBlockchainRecord {
		return result, nil
	}

	record, err := vm.anchorRecord(ctx, file, req, results)
	if err != nil {
		return nil, vm.failRetryable(ctx, file.ID, record, err)
	}
	if err := vm.updateOutcome(ctx, file.ID, &database.FileOutcome{
		Status:               fftypes.FileStatusVerified,
		VerificationRecordID: record.RecordID,
		BlockchainTxID:       record.BlockchainTxID,
	}); err != nil {
		return nil, vm.failRetryable(ctx, file.ID, record, err)
	}
	log.L(ctx).Infof("File %s verified with record %s in tx %s", file.ID, record.RecordID, record.BlockchainTxID)
	result.Status = fftypes.FileStatusVerified
	result.VerificationRecord = record
	return result, nil
}

// failRetryable puts the file into error, flagged for retry, and returns the cause
func (vm *verificationManager) failRetryable(ctx context.Context, fileID *fftypes.UUID, record *fftypes.VerificationRecord, cause error) error {
	outcome := &database.FileOutcome{
		Status:    fftypes.FileStatusError,
		Retryable: true,
		LastError: cause.Error(),
	}
	if record != nil && record.BlockchainTxID != "" {
		outcome.VerificationRecordID = record.RecordID
		outcome.BlockchainTxID = record.BlockchainTxID
	}
	if err := vm.updateOutcome(ctx, fileID, outcome); err != nil {
		log.L(ctx).Errorf("Failed to record error on file %s: %s", fileID, err)
	}
	return cause
}

func (vm *verificationManager) ancestry(ctx context.Context, previousRecordID string) []string {
	if previousRecordID == "" {
		return []string{}
	}
	previous, err := vm.ledger.GetRecord(ctx, previousRecordID)
	if err != nil {
		log.L(ctx).Warnf("Previous record %s could not be read, ancestry is truncated: %s", previousRecordID, err)
		return []string{previousRecordID}
	}
	return append(append([]string{}, previous.Ancestry...), previous.RecordID)
}

func sanitizeStrings(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = i18n.SanitizeLimit(s, maxFreeTextLength)
	}
	return out
}

func sanitizeCompliance(cd *fftypes.ComplianceData) *fftypes.ComplianceData {
	if cd == nil {
		return nil
	}
	return &fftypes.ComplianceData{
		ContractID:             i18n.SanitizeLimit(cd.ContractID, maxFreeTextLength),
		ExpirationDate:         i18n.SanitizeLimit(cd.ExpirationDate, maxFreeTextLength),
		SecurityClassification: i18n.SanitizeLimit(cd.SecurityClassification, maxFreeTextLength),
		AccessControlList:      sanitizeStrings(cd.AccessControlList),
	}
}

// buildRecord assembles the unsigned record. Free text from the request is
// stripped of markup, as it is signed and kept forever.
func (vm *verificationManager) buildRecord(ctx context.Context, file *fftypes.File, req *fftypes.VerifyRequest, results *fftypes.ValidationResults) *fftypes.VerificationRecord {
	return &fftypes.VerificationRecord{
		RecordID:              fftypes.NewRecordID(),
		FileID:                file.ID,
		Version:               file.Version,
		Timestamp:             fftypes.Now(),
		ValidationStatus:      fftypes.ValidationStatusValid,
		Ancestry:              vm.ancestry(ctx, file.VerificationRecordID),
		FileChecksum:          file.Checksum,
		EmissionInventoryType: i18n.SanitizeLimit(req.EmissionInventoryType, maxFreeTextLength),
		EmissionCategory:      i18n.SanitizeLimit(req.EmissionCategory, maxFreeTextLength),
		ComplianceData:        sanitizeCompliance(req.ComplianceData),
		ValidationResults: &fftypes.RecordValidationResults{
			IsValid:            results.IsValid,
			RuleResults:        results.RuleResults,
			VerificationStatus: fftypes.VerificationStatusVerified,
		},
		ReferenceMatches: sanitizeStrings(req.ReferenceMatches),
	}
}

// anchorRecord signs a new record, and stores it on the ledger, each under its own timeout.
// The record is returned with any error, once it has been submitted.
func (vm *verificationManager) anchorRecord(ctx context.Context, file *fftypes.File, req *fftypes.VerifyRequest, results *fftypes.ValidationResults) (*fftypes.VerificationRecord, error) {
	record := vm.buildRecord(ctx, file, req, results)

	err := withTimeout(ctx, vm.signingTimeout, "Signing", func(ctx context.Context) error {
		identifierID := req.IdentifierID
		if identifierID == "" {
			identifier, err := vm.identity.CreateIdentifier(ctx, vm.defaultController, nil)
			if err != nil {
				return err
			}
			identifierID = identifier.ID
		}
		record.CreatedBy = identifierID
		sig, err := vm.identity.Sign(ctx, identifierID, record.SigningPayload())
		if err != nil {
			return err
		}
		record.Signature = sig
		return nil
	})
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgSigningFailed, record.RecordID)
	}

	var storeResult *fftypes.StoreResult
	err = withTimeout(ctx, vm.ledgerTimeout, "Ledger submission", func(ctx context.Context) (err error) {
		storeResult, err = vm.ledger.StoreRecord(ctx, record)
		return err
	})
	if err != nil {
		vm.metrics.LedgerSubmission(vm.ledger.Name(), fftypes.TransactionStatusFailed)
		return nil, i18n.WrapError(ctx, err, i18n.MsgLedgerSubmissionFailed, record.RecordID)
	}
	vm.metrics.LedgerSubmission(vm.ledger.Name(), storeResult.Status)
	if storeResult.Status == fftypes.TransactionStatusPending {
		vm.trackPending(storeResult.TxID, file.ID)
	}
	record.BlockchainTxID = storeResult.TxID
	record.BlockchainStatus = (&fftypes.LedgerTransaction{Status: storeResult.Status}).BlockchainStatus()
	return record, nil
}
