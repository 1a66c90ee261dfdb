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

package ledger

import (
	"context"

	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/keys"
)

// Plugin is the interface implemented by each ledger plugin
type Plugin interface {
	Name() string

	// InitPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix, callbacks Callbacks) error

	// Start starts any background processing, such as block production or event streams
	Start() error

	// Close releases all resources held by the plugin
	Close()

	// Capabilities returns capabilities - not called until after Init
	Capabilities() *Capabilities

	// StoreRecord anchors a signed verification record on the ledger. A record id
	// can only be stored once, and a stored record is never modified.
	StoreRecord(ctx context.Context, record *fftypes.VerificationRecord) (*fftypes.StoreResult, error)

	// GetRecord returns a copy of a stored record, with its anchoring transaction id and status
	GetRecord(ctx context.Context, recordID string) (*fftypes.VerificationRecord, error)

	// VerifyRecord checks a stored record is present, signed, and matches the hash
	// anchored in a confirmed transaction. It does not check the signature cryptographically.
	VerifyRecord(ctx context.Context, recordID string) (*fftypes.RecordVerification, error)

	// GetTransactionStatus returns the current state of a transaction, including its confirmations
	GetTransactionStatus(ctx context.Context, txID string) (*fftypes.LedgerTransaction, error)
}

// Callbacks is the interface provided to the ledger plugin, to allow it to pass events back
type Callbacks interface {
	// TransactionUpdate notifies of a change in the state of a transaction submitted by this node
	TransactionUpdate(tx *fftypes.LedgerTransaction) error
}

// Capabilities the supported featureset of the ledger
type Capabilities struct {
	// ImmediateConfirmation means stored records are confirmed before StoreRecord returns
	ImmediateConfirmation bool
}

// Keys used in the details of a RecordVerification
const (
	DetailExists    = "exists"
	DetailSignature = "signature"
	DetailInclusion = "inclusion"
	DetailStatus    = "status"
	DetailTxID      = "txId"
)

type anchoredSignature struct {
	IdentifierID string `json:"identifierId"`
	KeyID        string `json:"keyId"`
	Timestamp    string `json:"timestamp"`
	Signature    string `json:"signature"`
}

type anchoredRecord struct {
	Payload   *fftypes.RecordSigningPayload `json:"payload"`
	Signature anchoredSignature             `json:"signature"`
}

// RecordHash is the digest anchored on the ledger for a record. It covers the
// signed content and the signature, but not the anchoring metadata itself.
func RecordHash(ctx context.Context, record *fftypes.VerificationRecord) (*fftypes.Bytes32, error) {
	ar := &anchoredRecord{
		Payload: record.SigningPayload(),
	}
	if sig := record.Signature; sig != nil {
		ar.Signature = anchoredSignature{
			IdentifierID: sig.IdentifierID,
			KeyID:        sig.KeyID,
			Timestamp:    sig.Timestamp.String(),
			Signature:    sig.Signature,
		}
	}
	return keys.Digest(ctx, ar)
}

// CopyRecord returns a deep copy of the record, so callers can never mutate stored state
func CopyRecord(record *fftypes.VerificationRecord) *fftypes.VerificationRecord {
	if record == nil {
		return nil
	}
	cp := *record
	if record.FileID != nil {
		id := *record.FileID
		cp.FileID = &id
	}
	if record.FileChecksum != nil {
		checksum := *record.FileChecksum
		cp.FileChecksum = &checksum
	}
	if record.Timestamp != nil {
		ts := *record.Timestamp
		cp.Timestamp = &ts
	}
	cp.Ancestry = append([]string(nil), record.Ancestry...)
	cp.ReferenceMatches = append([]string(nil), record.ReferenceMatches...)
	if record.ComplianceData != nil {
		cd := *record.ComplianceData
		cd.AccessControlList = append([]string(nil), record.ComplianceData.AccessControlList...)
		cp.ComplianceData = &cd
	}
	if record.ValidationResults != nil {
		vr := *record.ValidationResults
		vr.RuleResults = make([]*fftypes.RuleResult, len(record.ValidationResults.RuleResults))
		for i, rr := range record.ValidationResults.RuleResults {
			if rr != nil {
				rrCopy := *rr
				vr.RuleResults[i] = &rrCopy
			}
		}
		cp.ValidationResults = &vr
	}
	if record.Signature != nil {
		sig := *record.Signature
		if record.Signature.Timestamp != nil {
			ts := *record.Signature.Timestamp
			sig.Timestamp = &ts
		}
		cp.Signature = &sig
	}
	return &cp
}
