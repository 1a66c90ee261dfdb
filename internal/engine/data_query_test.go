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

	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/stretchr/testify/assert"
)

func TestGetFileByIDBadID(t *testing.T) {
	te := newTestEngine()
	_, err := te.GetFileByID(context.Background(), "bad")
	assert.Regexp(t, "EV10123", err)
}

func TestGetFileByIDNotFound(t *testing.T) {
	te := newTestEngine()
	id := fftypes.NewUUID()
	te.mdi.On("GetFileByID", context.Background(), id).Return(nil, nil)
	_, err := te.GetFileByID(context.Background(), id.String())
	assert.Regexp(t, "EV10200", err)
}

func TestGetFileByIDFail(t *testing.T) {
	te := newTestEngine()
	id := fftypes.NewUUID()
	te.mdi.On("GetFileByID", context.Background(), id).Return(nil, fmt.Errorf("pop"))
	_, err := te.GetFileByID(context.Background(), id.String())
	assert.Regexp(t, "pop", err)
}

func TestGetFileByIDOk(t *testing.T) {
	te := newTestEngine()
	file := &fftypes.File{ID: fftypes.NewUUID()}
	te.mdi.On("GetFileByID", context.Background(), file.ID).Return(file, nil)
	res, err := te.GetFileByID(context.Background(), file.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, file, res)
}

func TestGetFileRecordNone(t *testing.T) {
	te := newTestEngine()
	file := &fftypes.File{ID: fftypes.NewUUID(), Status: fftypes.FileStatusValidated}
	te.mdi.On("GetFileByID", context.Background(), file.ID).Return(file, nil)
	_, err := te.GetFileRecord(context.Background(), file.ID.String(), false)
	assert.Regexp(t, "EV10228", err)
}

func TestGetFileRecordBadID(t *testing.T) {
	te := newTestEngine()
	_, err := te.GetFileRecord(context.Background(), "bad", false)
	assert.Regexp(t, "EV10123", err)
}

func TestGetFileRecordOk(t *testing.T) {
	te := newTestEngine()
	file := &fftypes.File{ID: fftypes.NewUUID(), VerificationRecordID: "vr-1"}
	rr := &fftypes.RecordResponse{VerificationRecord: &fftypes.VerificationRecord{RecordID: "vr-1"}}
	te.mdi.On("GetFileByID", context.Background(), file.ID).Return(file, nil)
	te.mvm.On("GetVerificationRecord", context.Background(), "vr-1", true).Return(rr, nil)
	res, err := te.GetFileRecord(context.Background(), file.ID.String(), true)
	assert.NoError(t, err)
	assert.Equal(t, rr, res)
}

func TestGetRules(t *testing.T) {
	te := newTestEngine()
	rules := []*fftypes.ValidationRule{{Name: "r1"}}
	te.mdi.On("GetValidationRules", context.Background(), "s1", true).Return(rules, nil)
	res, err := te.GetRules(context.Background(), "s1", true)
	assert.NoError(t, err)
	assert.Equal(t, rules, res)
}

func TestIdentifierQueries(t *testing.T) {
	te := newTestEngine()
	ctx := context.Background()
	te.mim.On("GetIdentifier", ctx, "Eabc").Return(&fftypes.Identifier{ID: "Eabc"}, nil)
	te.mim.On("GetEventLog", ctx, "Eabc").Return([]*fftypes.IdentifierEvent{{Seq: 0}}, nil)
	te.mim.On("VerifyEventLog", ctx, "Eabc").Return(&fftypes.EventLogVerification{Valid: true}, nil)

	identifier, err := te.GetIdentifier(ctx, "Eabc")
	assert.NoError(t, err)
	assert.Equal(t, "Eabc", identifier.ID)
	events, err := te.GetIdentifierEvents(ctx, "Eabc")
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	v, err := te.VerifyIdentifierEvents(ctx, "Eabc")
	assert.NoError(t, err)
	assert.True(t, v.Valid)
}

func TestGetRecordAndTransaction(t *testing.T) {
	te := newTestEngine()
	ctx := context.Background()
	te.mvm.On("GetVerificationRecord", ctx, "vr-1", false).Return(&fftypes.RecordResponse{}, nil)
	te.mvm.On("GetTransactionStatus", ctx, "tx-1").Return(&fftypes.LedgerTransaction{TxID: "tx-1"}, nil)
	_, err := te.GetRecord(ctx, "vr-1", false)
	assert.NoError(t, err)
	ltx, err := te.GetTransaction(ctx, "tx-1")
	assert.NoError(t, err)
	assert.Equal(t, "tx-1", ltx.TxID)
}
