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

package sqlcommon

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/kaleido-io/emissionsledger/internal/database"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/log"
)

var (
	fileColumns = []string{
		"id",
		"name",
		"schema_id",
		"status",
		"checksum",
		"version",
		"raw_data",
		"mapping",
		"mapped_data",
		"validation_results",
		"verification_record_id",
		"blockchain_tx_id",
		"retryable",
		"last_error",
		"created",
		"updated",
	}
)

func (s *SQLCommon) InsertFile(ctx context.Context, file *fftypes.File) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	if _, err = s.insertTx(ctx, tx,
		sq.Insert("files").
			Columns(fileColumns...).
			Values(
				file.ID,
				file.Name,
				file.SchemaID,
				string(file.Status),
				file.Checksum,
				file.Version,
				file.RawData,
				file.Mapping,
				file.MappedData,
				file.ValidationResults,
				file.VerificationRecordID,
				file.BlockchainTxID,
				file.Retryable,
				file.LastError,
				file.Created,
				file.Updated,
			),
	); err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) fileResult(ctx context.Context, row *sql.Rows) (*fftypes.File, error) {
	var file fftypes.File
	var validationResults fftypes.ValidationResults
	var validationResultsSet sql.NullString
	err := row.Scan(
		&file.ID,
		&file.Name,
		&file.SchemaID,
		&file.Status,
		&file.Checksum,
		&file.Version,
		&file.RawData,
		&file.Mapping,
		&file.MappedData,
		&validationResultsSet,
		&file.VerificationRecordID,
		&file.BlockchainTxID,
		&file.Retryable,
		&file.LastError,
		&file.Created,
		&file.Updated,
	)
	if err == nil && validationResultsSet.Valid && validationResultsSet.String != "" {
		if err = validationResults.Scan(validationResultsSet.String); err == nil {
			file.ValidationResults = &validationResults
		}
	}
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "files")
	}
	return &file, nil
}

func (s *SQLCommon) GetFileByID(ctx context.Context, id *fftypes.UUID) (*fftypes.File, error) {
	rows, err := s.query(ctx,
		sq.Select(fileColumns...).
			From("files").
			Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		log.L(ctx).Debugf("File '%s' not found", id)
		return nil, nil
	}

	return s.fileResult(ctx, rows)
}

// mappableStatuses excludes validating, so a mapping can never undo the verification gate
var mappableStatuses = []string{
	string(fftypes.FileStatusUploaded),
	string(fftypes.FileStatusMapped),
	string(fftypes.FileStatusValidated),
	string(fftypes.FileStatusError),
	string(fftypes.FileStatusVerified),
}

func (s *SQLCommon) UpdateFileMapping(ctx context.Context, id *fftypes.UUID, version int64, mapping fftypes.FieldMapping, mappedData fftypes.JSONObjectArray) (bool, error) {
	return s.conditionalFileUpdate(ctx,
		sq.Update("files").
			Set("mapping", mapping).
			Set("mapped_data", mappedData).
			Set("version", version).
			Set("status", string(fftypes.FileStatusMapped)).
			Set("retryable", false).
			Set("last_error", "").
			Set("updated", fftypes.Now()).
			Where(sq.Eq{"id": id}).
			Where(sq.Eq{"status": mappableStatuses}),
	)
}

func (s *SQLCommon) conditionalFileUpdate(ctx context.Context, update sq.UpdateBuilder) (bool, error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return false, err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	affected, err := s.updateTx(ctx, tx, update)
	if err != nil {
		return false, err
	}
	if err = s.commitTx(ctx, tx, autoCommit); err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQLCommon) UpdateFileStatus(ctx context.Context, id *fftypes.UUID, from, to fftypes.FileStatus) (bool, error) {
	return s.conditionalFileUpdate(ctx,
		sq.Update("files").
			Set("status", string(to)).
			Set("updated", fftypes.Now()).
			Where(sq.Eq{"id": id}).
			Where(sq.Eq{"status": string(from)}),
	)
}

func (s *SQLCommon) ResetRetryableFile(ctx context.Context, id *fftypes.UUID) (bool, error) {
	return s.conditionalFileUpdate(ctx,
		sq.Update("files").
			Set("status", string(fftypes.FileStatusMapped)).
			Set("retryable", false).
			Set("last_error", "").
			Set("updated", fftypes.Now()).
			Where(sq.Eq{"id": id}).
			Where(sq.Eq{"status": string(fftypes.FileStatusError)}).
			Where(sq.Eq{"retryable": true}),
	)
}

// UpdateFileOutcome leaves the validation results, record id and tx id
// unchanged when they are not set on the outcome
func (s *SQLCommon) UpdateFileOutcome(ctx context.Context, id *fftypes.UUID, outcome *database.FileOutcome) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	update := sq.Update("files").
		Set("status", string(outcome.Status)).
		Set("retryable", outcome.Retryable).
		Set("last_error", outcome.LastError).
		Set("updated", fftypes.Now())
	if outcome.ValidationResults != nil {
		update = update.Set("validation_results", outcome.ValidationResults)
	}
	if outcome.VerificationRecordID != "" {
		update = update.Set("verification_record_id", outcome.VerificationRecordID)
	}
	if outcome.BlockchainTxID != "" {
		update = update.Set("blockchain_tx_id", outcome.BlockchainTxID)
	}
	if _, err = s.updateTx(ctx, tx, update.Where(sq.Eq{"id": id})); err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}
