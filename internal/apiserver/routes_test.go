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

package apiserver

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPostNewFile(t *testing.T) {
	e, r := newTestAPIServer()
	req := httptest.NewRequest("POST", "/api/v1/files", bytes.NewBufferString(`{"name":"q1.csv","schemaId":"emissions","rows":[{"id":"001"}]}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	e.On("CreateFile", mock.Anything, mock.MatchedBy(func(fi *fftypes.FileInput) bool {
		return fi.Name == "q1.csv" && fi.SchemaID == "emissions" && len(fi.Rows) == 1
	})).Return(&fftypes.File{ID: fftypes.NewUUID()}, nil)
	r.ServeHTTP(res, req)
	assert.Equal(t, 201, res.Result().StatusCode)
}

func TestGetFileByID(t *testing.T) {
	e, r := newTestAPIServer()
	req := httptest.NewRequest("GET", "/api/v1/files/abc", nil)
	res := httptest.NewRecorder()
	e.On("GetFileByID", mock.Anything, "abc").Return(&fftypes.File{}, nil)
	r.ServeHTTP(res, req)
	assert.Equal(t, 200, res.Result().StatusCode)
}

func TestPostFileMapping(t *testing.T) {
	e, r := newTestAPIServer()
	req := httptest.NewRequest("POST", "/api/v1/files/abc/mapping", bytes.NewBufferString(`{"mapping":{"emissionId":"id"}}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	e.On("MapFile", mock.Anything, "abc", &fftypes.MappingInput{
		Mapping: fftypes.FieldMapping{"emissionId": "id"},
	}).Return(&fftypes.File{Version: 1}, nil)
	r.ServeHTTP(res, req)
	assert.Equal(t, 200, res.Result().StatusCode)
}

func TestPostFileReset(t *testing.T) {
	e, r := newTestAPIServer()
	req := httptest.NewRequest("POST", "/api/v1/files/abc/reset", nil)
	res := httptest.NewRecorder()
	e.On("ResetFile", mock.Anything, "abc").Return(&fftypes.File{Status: fftypes.FileStatusMapped}, nil)
	r.ServeHTTP(res, req)
	assert.Equal(t, 200, res.Result().StatusCode)
}

func TestGetFileRecord(t *testing.T) {
	e, r := newTestAPIServer()
	req := httptest.NewRequest("GET", "/api/v1/files/abc/record?verifyOnBlockchain=true", nil)
	res := httptest.NewRecorder()
	e.On("GetFileRecord", mock.Anything, "abc", true).Return(&fftypes.RecordResponse{}, nil)
	r.ServeHTTP(res, req)
	assert.Equal(t, 200, res.Result().StatusCode)
}

func TestPostNewRuleDefaultsActive(t *testing.T) {
	e, r := newTestAPIServer()
	req := httptest.NewRequest("POST", "/api/v1/rules", bytes.NewBufferString(`{"schemaId":"emissions","ruleType":"required","field":"emissionId"}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	e.On("CreateRule", mock.Anything, mock.MatchedBy(func(vr *fftypes.ValidationRule) bool {
		return vr.Active && vr.RuleType == fftypes.RuleTypeRequired
	})).Return(&fftypes.ValidationRule{}, nil)
	r.ServeHTTP(res, req)
	assert.Equal(t, 201, res.Result().StatusCode)
	e.AssertExpectations(t)
}

func TestPostNewRuleInactive(t *testing.T) {
	e, r := newTestAPIServer()
	req := httptest.NewRequest("POST", "/api/v1/rules", bytes.NewBufferString(`{"schemaId":"emissions","ruleType":"required","field":"emissionId","active":false}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	e.On("CreateRule", mock.Anything, mock.MatchedBy(func(vr *fftypes.ValidationRule) bool {
		return !vr.Active
	})).Return(&fftypes.ValidationRule{}, nil)
	r.ServeHTTP(res, req)
	assert.Equal(t, 201, res.Result().StatusCode)
	e.AssertExpectations(t)
}

func TestGetSchemaRules(t *testing.T) {
	e, r := newTestAPIServer()
	req := httptest.NewRequest("GET", "/api/v1/schemas/emissions/rules?activeOnly", nil)
	res := httptest.NewRecorder()
	e.On("GetRules", mock.Anything, "emissions", true).Return([]*fftypes.ValidationRule{}, nil)
	r.ServeHTTP(res, req)
	assert.Equal(t, 200, res.Result().StatusCode)
	assert.Equal(t, "[]", res.Body.String())
}

func TestPostReferenceData(t *testing.T) {
	e, r := newTestAPIServer()
	req := httptest.NewRequest("POST", "/api/v1/referencedata", bytes.NewBufferString(`{"type":"gas","code":"CO2"}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	e.On("UpsertReferenceData", mock.Anything, mock.MatchedBy(func(rd *fftypes.ReferenceData) bool {
		return rd.Type == "gas" && rd.Code == "CO2"
	})).Return(&fftypes.ReferenceData{}, nil)
	r.ServeHTTP(res, req)
	assert.Equal(t, 200, res.Result().StatusCode)
}

func TestIdentifierRoutes(t *testing.T) {
	e, r := newTestAPIServer()
	e.On("CreateIdentifier", mock.Anything, &fftypes.IdentifierInput{Controller: "acme"}).Return(&fftypes.Identifier{ID: "Eabc"}, nil)
	e.On("GetIdentifier", mock.Anything, "Eabc").Return(&fftypes.Identifier{ID: "Eabc"}, nil)
	e.On("RotateIdentifier", mock.Anything, "Eabc").Return(&fftypes.RotationResult{}, nil)
	e.On("EraseIdentifier", mock.Anything, "Eabc").Return(&fftypes.Identifier{Status: fftypes.IdentifierStatusErased}, nil)
	e.On("RevokeIdentifier", mock.Anything, "Eabc").Return(&fftypes.Identifier{Status: fftypes.IdentifierStatusRevoked}, nil)
	e.On("GetIdentifierEvents", mock.Anything, "Eabc").Return([]*fftypes.IdentifierEvent{}, nil)
	e.On("VerifyIdentifierEvents", mock.Anything, "Eabc").Return(&fftypes.EventLogVerification{Valid: true}, nil)

	calls := []struct {
		method, path, body string
		status             int
	}{
		{"POST", "/api/v1/identifiers", `{"controller":"acme"}`, 201},
		{"GET", "/api/v1/identifiers/Eabc", "", 200},
		{"POST", "/api/v1/identifiers/Eabc/rotate", "", 200},
		{"POST", "/api/v1/identifiers/Eabc/erase", "", 200},
		{"POST", "/api/v1/identifiers/Eabc/revoke", "", 200},
		{"GET", "/api/v1/identifiers/Eabc/events", "", 200},
		{"GET", "/api/v1/identifiers/Eabc/events/verify", "", 200},
	}
	for _, c := range calls {
		req := httptest.NewRequest(c.method, c.path, bytes.NewBufferString(c.body))
		req.Header.Set("Content-Type", "application/json")
		res := httptest.NewRecorder()
		r.ServeHTTP(res, req)
		assert.Equal(t, c.status, res.Result().StatusCode, c.path)
	}
	e.AssertExpectations(t)
}

func TestGetTransactionByID(t *testing.T) {
	e, r := newTestAPIServer()
	req := httptest.NewRequest("GET", "/api/v1/transactions/tx1", nil)
	res := httptest.NewRecorder()
	e.On("GetTransaction", mock.Anything, "tx1").Return(&fftypes.LedgerTransaction{
		TxID:   "tx1",
		Status: fftypes.TransactionStatusConfirmed,
	}, nil)
	r.ServeHTTP(res, req)
	assert.Equal(t, 200, res.Result().StatusCode)
	assert.Contains(t, res.Body.String(), `"status":"Confirmed"`)
}
