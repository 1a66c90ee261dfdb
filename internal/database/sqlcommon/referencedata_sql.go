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
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/log"
)

var (
	referenceDataColumns = []string{
		"id",
		"ref_type",
		"code",
		"name",
		"value",
		"created",
	}
)

func (s *SQLCommon) UpsertReferenceData(ctx context.Context, rd *fftypes.ReferenceData) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	// Do a select within the transaction to detemine if the (type, code) pair already exists
	rdRows, err := s.queryTx(ctx, tx,
		sq.Select("id").
			From("reference_data").
			Where(sq.Eq{"ref_type": rd.Type, "code": rd.Code}),
	)
	if err != nil {
		return err
	}
	existing := rdRows.Next()
	if existing {
		var id fftypes.UUID
		_ = rdRows.Scan(&id)
		rd.ID = &id // Update on returned object
	}
	rdRows.Close()

	if existing {
		if _, err = s.updateTx(ctx, tx,
			sq.Update("reference_data").
				// Note we do not update ID
				Set("name", rd.Name).
				Set("value", rd.Value).
				Where(sq.Eq{"ref_type": rd.Type, "code": rd.Code}),
		); err != nil {
			return err
		}
	} else {
		if rd.ID == nil {
			rd.ID = fftypes.NewUUID()
		}
		if _, err = s.insertTx(ctx, tx,
			sq.Insert("reference_data").
				Columns(referenceDataColumns...).
				Values(
					rd.ID,
					rd.Type,
					rd.Code,
					rd.Name,
					rd.Value,
					rd.Created,
				),
		); err != nil {
			return err
		}
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) referenceDataResult(ctx context.Context, row *sql.Rows) (*fftypes.ReferenceData, error) {
	var rd fftypes.ReferenceData
	err := row.Scan(
		&rd.ID,
		&rd.Type,
		&rd.Code,
		&rd.Name,
		&rd.Value,
		&rd.Created,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "reference_data")
	}
	return &rd, nil
}

func (s *SQLCommon) GetReferenceData(ctx context.Context, refType, code string) (*fftypes.ReferenceData, error) {
	rows, err := s.query(ctx,
		sq.Select(referenceDataColumns...).
			From("reference_data").
			Where(sq.Eq{"ref_type": refType, "code": code}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		log.L(ctx).Debugf("Reference data '%s/%s' not found", refType, code)
		return nil, nil
	}

	return s.referenceDataResult(ctx, rows)
}

func (s *SQLCommon) GetReferenceCodes(ctx context.Context, refType string) ([]string, error) {
	rows, err := s.query(ctx,
		sq.Select("code").
			From("reference_data").
			Where(sq.Eq{"ref_type": refType}).
			OrderBy("code"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "reference_data")
		}
		codes = append(codes, code)
	}
	return codes, nil
}
