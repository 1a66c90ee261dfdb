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

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "Pending"
	TransactionStatusConfirmed TransactionStatus = "Confirmed"
	TransactionStatusFailed    TransactionStatus = "Failed"
)

const TransactionTypeVerificationRecord = "verification_record"

// LedgerTransaction anchors one verification record to the ledger
type LedgerTransaction struct {
	TxID          string            `json:"txId"`
	Type          string            `json:"type"`
	RecordID      string            `json:"recordId"`
	RecordHash    *Bytes32          `json:"recordHash"`
	Timestamp     *FFTime           `json:"timestamp"`
	Status        TransactionStatus `json:"status"`
	BlockHeight   int64             `json:"blockHeight"`
	BlockHash     *Bytes32          `json:"blockHash,omitempty"`
	Confirmations int64             `json:"confirmations"`
}

// BlockchainStatus maps the status of a transaction onto the status carried in a record
func (tx *LedgerTransaction) BlockchainStatus() BlockchainStatus {
	switch tx.Status {
	case TransactionStatusConfirmed:
		return BlockchainStatusConfirmed
	case TransactionStatusFailed:
		return BlockchainStatusFailed
	default:
		return BlockchainStatusPending
	}
}

// StoreResult is returned when a record is submitted to the ledger
type StoreResult struct {
	TxID        string            `json:"txId"`
	BlockHeight int64             `json:"blockHeight"`
	Timestamp   *FFTime           `json:"timestamp"`
	Status      TransactionStatus `json:"status"`
}
