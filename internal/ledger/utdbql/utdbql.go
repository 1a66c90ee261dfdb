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

package utdbql

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/keys"
	"github.com/kaleido-io/emissionsledger/internal/ledger"
	"github.com/kaleido-io/emissionsledger/internal/log"

	// Import the QL driver
	_ "modernc.org/ql/driver"
)

// UTDBQL is a single node ledger simulation. Every stored record is mined into
// its own hash-chained block straight away, and an optional block timer mines
// empty blocks so that confirmations grow over time.
type UTDBQL struct {
	ctx           context.Context
	cancelCtx     context.CancelFunc
	capabilities  *ledger.Capabilities
	callbacks     ledger.Callbacks
	db            *sql.DB
	blockInterval time.Duration
	eventStream   chan *fftypes.LedgerTransaction
	chainMux      sync.Mutex
	head          *block
	closed        bool
}

const (
	eventQueueLength = 50
)

var schema = []string{
	"CREATE TABLE IF NOT EXISTS utblocks ( height int64, hash string, prev_hash string, tx_id string, record_hash string, timestamp int64 );",
	"CREATE UNIQUE INDEX IF NOT EXISTS utblocks_height ON utblocks(height);",
	"CREATE TABLE IF NOT EXISTS uttxs ( tx_id string, record_id string, record_hash string, block_height int64, timestamp int64, status string );",
	"CREATE UNIQUE INDEX IF NOT EXISTS uttxs_txid ON uttxs(tx_id);",
	"CREATE TABLE IF NOT EXISTS utrecords ( record_id string, tx_id string, data string );",
	"CREATE UNIQUE INDEX IF NOT EXISTS utrecords_recordid ON utrecords(record_id);",
}

type block struct {
	Height     int64  `json:"height"`
	PrevHash   string `json:"prevHash"`
	TxID       string `json:"txId"`
	RecordHash string `json:"recordHash"`
	Timestamp  int64  `json:"timestamp"`
	hash       *fftypes.Bytes32
}

type txIDPayload struct {
	RecordID   string `json:"recordId"`
	RecordHash string `json:"recordHash"`
	Height     int64  `json:"height"`
}

func (u *UTDBQL) Name() string {
	return "utdbql"
}

func (u *UTDBQL) Init(ctx context.Context, prefix config.Prefix, callbacks ledger.Callbacks) (err error) {

	u.ctx, u.cancelCtx = context.WithCancel(ctx)
	u.capabilities = &ledger.Capabilities{
		ImmediateConfirmation: true,
	}
	u.callbacks = callbacks
	u.blockInterval = prefix.GetDuration(UTDBQLConfBlockInterval)
	u.eventStream = make(chan *fftypes.LedgerTransaction, eventQueueLength)

	u.db, err = sql.Open("ql", prefix.GetString(UTDBQLConfURL))
	var tx *sql.Tx
	if err == nil {
		tx, err = u.db.Begin()
	}
	if err == nil {
		defer func() { _ = tx.Rollback() }()
		for _, stmt := range schema {
			if _, err = tx.Exec(stmt); err != nil {
				break
			}
		}
	}
	if err == nil {
		err = tx.Commit()
	}
	if err == nil {
		err = u.loadHead(ctx)
	}
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgDBInitFailed)
	}
	log.L(ctx).Infof("Ledger simulation initialized at block height %d", u.head.Height)
	return nil
}

func (u *UTDBQL) Capabilities() *ledger.Capabilities {
	return u.capabilities
}

func (u *UTDBQL) Start() error {
	go u.eventLoop()
	return nil
}

func (u *UTDBQL) Close() {
	u.chainMux.Lock()
	defer u.chainMux.Unlock()
	if !u.closed {
		u.closed = true
		u.cancelCtx()
		_ = u.db.Close()
	}
}

func (u *UTDBQL) sealBlock(ctx context.Context, b *block) error {
	hash, err := keys.Digest(ctx, b)
	if err != nil {
		return err
	}
	b.hash = hash
	return nil
}

// loadHead reads the highest block, mining the genesis block for a new chain
func (u *UTDBQL) loadHead(ctx context.Context) error {
	head, err := u.getBlock(ctx, -1)
	if err != nil {
		return err
	}
	if head == nil {
		genesis := &block{Height: 0, Timestamp: time.Now().UnixNano()}
		if err := u.sealBlock(ctx, genesis); err != nil {
			return err
		}
		if err := u.writeBlock(ctx, genesis, nil, ""); err != nil {
			return err
		}
		head = genesis
	}
	u.head = head
	return nil
}

// getBlock returns the block at a height, or the highest block for a negative height
func (u *UTDBQL) getBlock(ctx context.Context, height int64) (*block, error) {
	var row *sql.Row
	if height < 0 {
		row = u.db.QueryRowContext(ctx, "SELECT height, hash, prev_hash, tx_id, record_hash, timestamp FROM utblocks ORDER BY height DESC LIMIT 1;")
	} else {
		row = u.db.QueryRowContext(ctx, "SELECT height, hash, prev_hash, tx_id, record_hash, timestamp FROM utblocks WHERE height == $1;", height)
	}
	var b block
	var hash string
	err := row.Scan(&b.Height, &hash, &b.PrevHash, &b.TxID, &b.RecordHash, &b.Timestamp)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBQueryFailed)
	}
	if b.hash, err = fftypes.ParseBytes32(ctx, hash); err != nil {
		return nil, err
	}
	return &b, nil
}

// writeBlock stores a block, with the transaction and record it carries (if any), in one database transaction
func (u *UTDBQL) writeBlock(ctx context.Context, b *block, ltx *fftypes.LedgerTransaction, recordData string) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgDBBeginFailed)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err = tx.ExecContext(ctx, "INSERT INTO utblocks (height, hash, prev_hash, tx_id, record_hash, timestamp) VALUES ($1, $2, $3, $4, $5, $6);",
		b.Height, b.hash.String(), b.PrevHash, b.TxID, b.RecordHash, b.Timestamp); err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgDBInsertFailed)
	}
	if ltx != nil {
		if _, err = tx.ExecContext(ctx, "INSERT INTO uttxs (tx_id, record_id, record_hash, block_height, timestamp, status) VALUES ($1, $2, $3, $4, $5, $6);",
			ltx.TxID, ltx.RecordID, ltx.RecordHash.String(), ltx.BlockHeight, ltx.Timestamp.UnixNano(), string(ltx.Status)); err != nil {
			return i18n.WrapError(ctx, err, i18n.MsgDBInsertFailed)
		}
		if _, err = tx.ExecContext(ctx, "INSERT INTO utrecords (record_id, tx_id, data) VALUES ($1, $2, $3);",
			ltx.RecordID, ltx.TxID, recordData); err != nil {
			return i18n.WrapError(ctx, err, i18n.MsgDBInsertFailed)
		}
	}
	if err = tx.Commit(); err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgDBCommitFailed)
	}
	return nil
}

// mineBlock appends a block to the chain. Must be called holding the chain lock.
func (u *UTDBQL) mineBlock(ctx context.Context, ltx *fftypes.LedgerTransaction, recordData string) (*block, error) {
	b := &block{
		Height:    u.head.Height + 1,
		PrevHash:  u.head.hash.String(),
		Timestamp: time.Now().UnixNano(),
	}
	if ltx != nil {
		b.TxID = ltx.TxID
		b.RecordHash = ltx.RecordHash.String()
		ltx.BlockHeight = b.Height
	}
	if err := u.sealBlock(ctx, b); err != nil {
		return nil, err
	}
	if ltx != nil {
		ltx.BlockHash = b.hash
	}
	if err := u.writeBlock(ctx, b, ltx, recordData); err != nil {
		return nil, err
	}
	u.head = b
	return b, nil
}

func (u *UTDBQL) recordExists(ctx context.Context, recordID string) (bool, error) {
	var count int64
	err := u.db.QueryRowContext(ctx, "SELECT count(*) FROM utrecords WHERE record_id == $1;", recordID).Scan(&count)
	if err != nil {
		return false, i18n.WrapError(ctx, err, i18n.MsgDBQueryFailed)
	}
	return count > 0, nil
}

func (u *UTDBQL) StoreRecord(ctx context.Context, record *fftypes.VerificationRecord) (*fftypes.StoreResult, error) {
	if err := record.Validate(ctx); err != nil {
		return nil, err
	}
	stored := ledger.CopyRecord(record)
	stored.BlockchainTxID = ""
	stored.BlockchainStatus = ""
	recordHash, err := ledger.RecordHash(ctx, stored)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgSerializationFailed)
	}

	u.chainMux.Lock()
	defer u.chainMux.Unlock()
	if u.closed {
		return nil, i18n.NewError(ctx, i18n.MsgLedgerSubmissionFailed, record.RecordID)
	}

	exists, err := u.recordExists(ctx, record.RecordID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, i18n.NewError(ctx, i18n.MsgDuplicateRecord, record.RecordID)
	}

	txIDDigest, err := keys.Digest(ctx, &txIDPayload{
		RecordID:   record.RecordID,
		RecordHash: recordHash.String(),
		Height:     u.head.Height + 1,
	})
	if err != nil {
		return nil, err
	}
	ltx := &fftypes.LedgerTransaction{
		TxID:       fftypes.TxIDPrefix + txIDDigest.String(),
		Type:       fftypes.TransactionTypeVerificationRecord,
		RecordID:   record.RecordID,
		RecordHash: recordHash,
		Timestamp:  fftypes.Now(),
		Status:     fftypes.TransactionStatusConfirmed,
	}
	if _, err := u.mineBlock(ctx, ltx, string(data)); err != nil {
		return nil, err
	}
	ltx.Confirmations = 1
	log.L(ctx).Infof("Record %s stored in tx %s at block %d", record.RecordID, ltx.TxID, ltx.BlockHeight)
	u.dispatch(ltx)

	return &fftypes.StoreResult{
		TxID:        ltx.TxID,
		BlockHeight: ltx.BlockHeight,
		Timestamp:   ltx.Timestamp,
		Status:      ltx.Status,
	}, nil
}

// dispatch queues a transaction update for the event loop, dropping it if the queue is full
func (u *UTDBQL) dispatch(ltx *fftypes.LedgerTransaction) {
	select {
	case u.eventStream <- ltx:
	default:
		log.L(u.ctx).Warnf("Event queue full, dropping update for tx %s", ltx.TxID)
	}
}

func (u *UTDBQL) getTransaction(ctx context.Context, txID string) (*fftypes.LedgerTransaction, error) {
	ltx := &fftypes.LedgerTransaction{Type: fftypes.TransactionTypeVerificationRecord}
	var recordHash, status string
	var timestamp int64
	err := u.db.QueryRowContext(ctx, "SELECT tx_id, record_id, record_hash, block_height, timestamp, status FROM uttxs WHERE tx_id == $1;", txID).
		Scan(&ltx.TxID, &ltx.RecordID, &recordHash, &ltx.BlockHeight, &timestamp, &status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBQueryFailed)
	}
	if ltx.RecordHash, err = fftypes.ParseBytes32(ctx, recordHash); err != nil {
		return nil, err
	}
	ltx.Timestamp = fftypes.UnixTime(timestamp)
	ltx.Status = fftypes.TransactionStatus(status)
	return ltx, nil
}

func (u *UTDBQL) chainHeight() int64 {
	u.chainMux.Lock()
	defer u.chainMux.Unlock()
	return u.head.Height
}

func (u *UTDBQL) GetTransactionStatus(ctx context.Context, txID string) (*fftypes.LedgerTransaction, error) {
	ltx, err := u.getTransaction(ctx, txID)
	if err != nil {
		return nil, err
	}
	if ltx == nil {
		return nil, i18n.NewError(ctx, i18n.MsgTransactionNotFound, txID)
	}
	b, err := u.getBlock(ctx, ltx.BlockHeight)
	if err != nil {
		return nil, err
	}
	if b != nil {
		ltx.BlockHash = b.hash
	}
	if ltx.Status == fftypes.TransactionStatusConfirmed {
		ltx.Confirmations = u.chainHeight() - ltx.BlockHeight + 1
	}
	return ltx, nil
}

func (u *UTDBQL) getStoredRecord(ctx context.Context, recordID string) (*fftypes.VerificationRecord, string, error) {
	var txID, data string
	err := u.db.QueryRowContext(ctx, "SELECT tx_id, data FROM utrecords WHERE record_id == $1;", recordID).Scan(&txID, &data)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", i18n.WrapError(ctx, err, i18n.MsgDBQueryFailed)
	}
	var record fftypes.VerificationRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, "", i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "utrecords")
	}
	return &record, txID, nil
}

func (u *UTDBQL) GetRecord(ctx context.Context, recordID string) (*fftypes.VerificationRecord, error) {
	record, txID, err := u.getStoredRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, i18n.NewError(ctx, i18n.MsgRecordNotFound, recordID)
	}
	ltx, err := u.getTransaction(ctx, txID)
	if err != nil {
		return nil, err
	}
	record.BlockchainTxID = txID
	record.BlockchainStatus = fftypes.BlockchainStatusPending
	if ltx != nil {
		record.BlockchainStatus = ltx.BlockchainStatus()
	}
	return record, nil
}

func (u *UTDBQL) VerifyRecord(ctx context.Context, recordID string) (*fftypes.RecordVerification, error) {
	res := &fftypes.RecordVerification{
		Details: map[string]string{ledger.DetailExists: "false"},
	}
	record, txID, err := u.getStoredRecord(ctx, recordID)
	if err != nil || record == nil {
		return res, err
	}
	res.Details[ledger.DetailExists] = "true"
	res.Details[ledger.DetailTxID] = txID

	signed := record.Signature != nil && record.Signature.Signature != ""
	res.Details[ledger.DetailSignature] = "missing"
	if signed {
		res.Details[ledger.DetailSignature] = "present"
	}

	ltx, err := u.getTransaction(ctx, txID)
	if err != nil {
		return nil, err
	}
	included := false
	if ltx != nil {
		res.Details[ledger.DetailStatus] = string(ltx.Status)
		if included, err = u.checkInclusion(ctx, record, ltx); err != nil {
			return nil, err
		}
	}
	res.Details[ledger.DetailInclusion] = "failed"
	if included {
		res.Details[ledger.DetailInclusion] = "verified"
	}

	res.IsAuthentic = signed && included && ltx.Status == fftypes.TransactionStatusConfirmed
	return res, nil
}

// checkInclusion recomputes the hash of the record, and checks it against the
// transaction and against the sealed block that carries the transaction
func (u *UTDBQL) checkInclusion(ctx context.Context, record *fftypes.VerificationRecord, ltx *fftypes.LedgerTransaction) (bool, error) {
	recordHash, err := ledger.RecordHash(ctx, record)
	if err != nil {
		return false, err
	}
	if !recordHash.Equals(ltx.RecordHash) {
		log.L(ctx).Warnf("Record %s hash %s does not match tx %s hash %s", record.RecordID, recordHash, ltx.TxID, ltx.RecordHash)
		return false, nil
	}
	b, err := u.getBlock(ctx, ltx.BlockHeight)
	if err != nil || b == nil {
		return false, err
	}
	if b.TxID != ltx.TxID || b.RecordHash != recordHash.String() {
		return false, nil
	}
	sealed := *b
	if err := u.sealBlock(ctx, &sealed); err != nil {
		return false, err
	}
	return sealed.hash.Equals(b.hash), nil
}

func (u *UTDBQL) mineEmptyBlock() {
	u.chainMux.Lock()
	defer u.chainMux.Unlock()
	if u.closed {
		return
	}
	b, err := u.mineBlock(u.ctx, nil, "")
	if err != nil {
		log.L(u.ctx).Errorf("Failed to mine block: %s", err)
		return
	}
	log.L(u.ctx).Debugf("Mined empty block %d", b.Height)
}

func (u *UTDBQL) eventLoop() {
	var blockTimer <-chan time.Time
	if u.blockInterval > 0 {
		ticker := time.NewTicker(u.blockInterval)
		defer ticker.Stop()
		blockTimer = ticker.C
	}
	for {
		select {
		case <-u.ctx.Done():
			log.L(u.ctx).Debugf("Exiting event loop")
			return
		case <-blockTimer:
			u.mineEmptyBlock()
		case ltx := <-u.eventStream:
			log.L(u.ctx).Debugf("Dispatching update for tx %s: %s", ltx.TxID, ltx.Status)
			if err := u.callbacks.TransactionUpdate(ltx); err != nil {
				log.L(u.ctx).Errorf("Transaction update for %s failed: %s", ltx.TxID, err)
			}
		}
	}
}
