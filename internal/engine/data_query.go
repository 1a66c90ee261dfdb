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

	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
)

func (e *engine) getFile(ctx context.Context, id string) (*fftypes.File, error) {
	u, err := fftypes.ParseUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	file, err := e.database.GetFileByID(ctx, u)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, i18n.NewError(ctx, i18n.MsgFileNotFound, id)
	}
	return file, nil
}

func (e *engine) GetFileByID(ctx context.Context, id string) (*fftypes.File, error) {
	return e.getFile(ctx, id)
}

// GetFileRecord returns the record anchored by the most recent verification of a file
func (e *engine) GetFileRecord(ctx context.Context, id string, verifyOnBlockchain bool) (*fftypes.RecordResponse, error) {
	file, err := e.getFile(ctx, id)
	if err != nil {
		return nil, err
	}
	if file.VerificationRecordID == "" {
		return nil, i18n.NewError(ctx, i18n.MsgFileHasNoRecord, id)
	}
	return e.verification.GetVerificationRecord(ctx, file.VerificationRecordID, verifyOnBlockchain)
}

func (e *engine) GetRules(ctx context.Context, schemaID string, activeOnly bool) ([]*fftypes.ValidationRule, error) {
	return e.database.GetValidationRules(ctx, schemaID, activeOnly)
}

func (e *engine) GetIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error) {
	return e.identity.GetIdentifier(ctx, id)
}

func (e *engine) GetIdentifierEvents(ctx context.Context, id string) ([]*fftypes.IdentifierEvent, error) {
	return e.identity.GetEventLog(ctx, id)
}

func (e *engine) VerifyIdentifierEvents(ctx context.Context, id string) (*fftypes.EventLogVerification, error) {
	return e.identity.VerifyEventLog(ctx, id)
}

func (e *engine) GetRecord(ctx context.Context, recordID string, verifyOnBlockchain bool) (*fftypes.RecordResponse, error) {
	return e.verification.GetVerificationRecord(ctx, recordID, verifyOnBlockchain)
}

func (e *engine) GetTransaction(ctx context.Context, txID string) (*fftypes.LedgerTransaction, error) {
	return e.verification.GetTransactionStatus(ctx, txID)
}
