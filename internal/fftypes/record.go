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

package fftypes

import (
	"context"

	"github.com/kaleido-io/emissionsledger/internal/i18n"
)

type ValidationStatus string

const (
	ValidationStatusValid   ValidationStatus = "Valid"
	ValidationStatusInvalid ValidationStatus = "Invalid"
	ValidationStatusPending ValidationStatus = "Pending"
)

type VerificationStatus string

const (
	VerificationStatusPending    VerificationStatus = "Pending"
	VerificationStatusVerified   VerificationStatus = "Verified"
	VerificationStatusRejected   VerificationStatus = "Rejected"
	VerificationStatusInProgress VerificationStatus = "InProgress"
)

type BlockchainStatus string

const (
	BlockchainStatusPending   BlockchainStatus = "Pending"
	BlockchainStatusConfirmed BlockchainStatus = "Confirmed"
	BlockchainStatusFailed    BlockchainStatus = "Failed"
)

// ComplianceData is informational, and not enforced
type ComplianceData struct {
	ContractID             string   `json:"contractId"`
	ExpirationDate         string   `json:"expirationDate"`
	SecurityClassification string   `json:"securityClassification"`
	AccessControlList      []string `json:"accessControlList"`
}

type RecordValidationResults struct {
	IsValid            bool               `json:"isValid"`
	RuleResults        []*RuleResult      `json:"ruleResults"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
}

type Signature struct {
	IdentifierID string  `json:"identifierId"`
	KeyID        string  `json:"keyId"`
	Timestamp    *FFTime `json:"timestamp"`
	Signature    string  `json:"signature"`
}

// VerificationRecord is a signed assertion that one version of a file passed validation.
// Every field other than the ledger anchoring metadata is covered by the signature,
// so a record is never modified after it is signed.
type VerificationRecord struct {
	RecordID              string                   `json:"recordId"`
	FileID                *UUID                    `json:"fileId"`
	Version               int64                    `json:"version"`
	Timestamp             *FFTime                  `json:"timestamp"`
	ValidationStatus      ValidationStatus         `json:"validationStatus"`
	Ancestry              []string                 `json:"ancestry"`
	FileChecksum          *Bytes32                 `json:"fileChecksum"`
	EmissionInventoryType string                   `json:"emissionInventoryType,omitempty"`
	EmissionCategory      string                   `json:"emissionCategory,omitempty"`
	ComplianceData        *ComplianceData          `json:"complianceData,omitempty"`
	ValidationResults     *RecordValidationResults `json:"validationResults"`
	ReferenceMatches      []string                 `json:"referenceMatches"`
	CreatedBy             string                   `json:"createdBy"`
	Signature             *Signature               `json:"signature,omitempty"`
	BlockchainTxID        string                   `json:"blockchainTxId,omitempty"`
	BlockchainStatus      BlockchainStatus         `json:"blockchainStatus,omitempty"`
}

type signedRuleResult struct {
	RuleID  string `json:"ruleId"`
	Result  string `json:"result"`
	Message string `json:"message"`
}

type signedValidationResults struct {
	IsValid            bool               `json:"isValid"`
	RuleResults        []signedRuleResult `json:"ruleResults"`
	VerificationStatus string             `json:"verificationStatus"`
}

type signedComplianceData struct {
	ContractID             string   `json:"contractId"`
	ExpirationDate         string   `json:"expirationDate"`
	SecurityClassification string   `json:"securityClassification"`
	AccessControlList      []string `json:"accessControlList"`
}

// RecordSigningPayload is the exact content covered by the signature of a record.
// It holds only primitive values, with empty rather than nil collections, so
// that the canonical encoding is stable across storage round trips.
type RecordSigningPayload struct {
	RecordID              string                  `json:"recordId"`
	FileID                string                  `json:"fileId"`
	Version               int64                   `json:"version"`
	Timestamp             string                  `json:"timestamp"`
	ValidationStatus      string                  `json:"validationStatus"`
	Ancestry              []string                `json:"ancestry"`
	FileChecksum          string                  `json:"fileChecksum"`
	EmissionInventoryType string                  `json:"emissionInventoryType"`
	EmissionCategory      string                  `json:"emissionCategory"`
	ComplianceData        signedComplianceData    `json:"complianceData"`
	ValidationResults     signedValidationResults `json:"validationResults"`
	ReferenceMatches      []string                `json:"referenceMatches"`
	CreatedBy             string                  `json:"createdBy"`
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// SigningPayload returns everything in the record except the signature and the
// ledger anchoring metadata, which are assigned after signing
func (r *VerificationRecord) SigningPayload() *RecordSigningPayload {
	p := &RecordSigningPayload{
		RecordID:              r.RecordID,
		FileID:                r.FileID.String(),
		Version:               r.Version,
		Timestamp:             r.Timestamp.String(),
		ValidationStatus:      string(r.ValidationStatus),
		Ancestry:              nonNilStrings(r.Ancestry),
		FileChecksum:          r.FileChecksum.String(),
		EmissionInventoryType: r.EmissionInventoryType,
		EmissionCategory:      r.EmissionCategory,
		ReferenceMatches:      nonNilStrings(r.ReferenceMatches),
		CreatedBy:             r.CreatedBy,
		ComplianceData: signedComplianceData{
			AccessControlList: []string{},
		},
		ValidationResults: signedValidationResults{
			RuleResults: []signedRuleResult{},
		},
	}
	if cd := r.ComplianceData; cd != nil {
		p.ComplianceData.ContractID = cd.ContractID
		p.ComplianceData.ExpirationDate = cd.ExpirationDate
		p.ComplianceData.SecurityClassification = cd.SecurityClassification
		p.ComplianceData.AccessControlList = nonNilStrings(cd.AccessControlList)
	}
	if vr := r.ValidationResults; vr != nil {
		p.ValidationResults.IsValid = vr.IsValid
		p.ValidationResults.VerificationStatus = string(vr.VerificationStatus)
		for _, rr := range vr.RuleResults {
			if rr != nil {
				p.ValidationResults.RuleResults = append(p.ValidationResults.RuleResults, signedRuleResult{
					RuleID:  rr.RuleID,
					Result:  string(rr.Result),
					Message: rr.Message,
				})
			}
		}
	}
	return p
}

// Validate checks the record is structurally complete, and signed
func (r *VerificationRecord) Validate(ctx context.Context) error {
	missing := ""
	switch {
	case r == nil:
		missing = "record"
	case r.RecordID == "":
		missing = "recordId"
	case r.FileID == nil:
		missing = "fileId"
	case r.Version < 1:
		missing = "version"
	case r.Timestamp == nil || r.Timestamp.Time().IsZero():
		missing = "timestamp"
	case r.FileChecksum == nil:
		missing = "fileChecksum"
	case r.ValidationResults == nil:
		missing = "validationResults"
	case r.CreatedBy == "":
		missing = "createdBy"
	case r.Signature == nil || r.Signature.Signature == "" || r.Signature.KeyID == "":
		missing = "signature"
	}
	if missing != "" {
		return i18n.NewError(ctx, i18n.MsgInvalidRecord, missing)
	}
	switch r.ValidationStatus {
	case ValidationStatusValid, ValidationStatusInvalid, ValidationStatusPending:
	default:
		return i18n.NewError(ctx, i18n.MsgInvalidRecord, "validationStatus")
	}
	if r.Signature.IdentifierID != r.CreatedBy {
		return i18n.NewError(ctx, i18n.MsgInvalidRecord, "signature.identifierId")
	}
	return nil
}

func (r *VerificationRecord) IsValid() bool {
	return r.Validate(context.Background()) == nil
}

// VerifyRequest is the input to verifying a file
type VerifyRequest struct {
	CreateBlockchainRecord bool            `json:"createBlockchainRecord"`
	EmissionInventoryType  string          `json:"emissionInventoryType,omitempty"`
	EmissionCategory       string          `json:"emissionCategory,omitempty"`
	IdentifierID           string          `json:"identifierId,omitempty"`
	ComplianceData         *ComplianceData `json:"complianceData,omitempty"`
	ReferenceMatches       []string        `json:"referenceMatches,omitempty"`
}

// VerifyResult is the outcome of verifying a file
type VerifyResult struct {
	Success            bool                `json:"success"`
	FileID             *UUID               `json:"fileId"`
	Status             FileStatus          `json:"status"`
	ValidationResults  *ValidationResults  `json:"validationResults"`
	VerificationRecord *VerificationRecord `json:"verificationRecord,omitempty"`
}

// RecordVerification is the outcome of re-verifying a stored record
type RecordVerification struct {
	IsAuthentic bool              `json:"isAuthentic"`
	Details     map[string]string `json:"details"`
}

// RecordResponse is a stored record, with its optional re-verification
type RecordResponse struct {
	VerificationRecord     *VerificationRecord `json:"verificationRecord"`
	BlockchainVerification *RecordVerification `json:"blockchainVerification,omitempty"`
}
