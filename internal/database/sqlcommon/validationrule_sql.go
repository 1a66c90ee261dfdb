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
)

var (
	validationRuleColumns = []string{
		"id",
		"schema_id",
		"name",
		"rule_type",
		"field",
		"parameters",
		"severity",
		"active",
		"message",
		"created",
	}
)

func (s *SQLCommon) InsertValidationRule(ctx context.Context, rule *fftypes.ValidationRule) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	if _, err = s.insertTx(ctx, tx,
		sq.Insert("validation_rules").
			Columns(validationRuleColumns...).
			Values(
				rule.ID,
				rule.SchemaID,
				rule.Name,
				string(rule.RuleType),
				rule.Field,
				rule.Parameters,
				string(rule.Severity),
				rule.Active,
				rule.Message,
				rule.Created,
			),
	); err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) validationRuleResult(ctx context.Context, row *sql.Rows) (*fftypes.ValidationRule, error) {
	var rule fftypes.ValidationRule
	err := row.Scan(
		&rule.ID,
		&rule.SchemaID,
		&rule.Name,
		&rule.RuleType,
		&rule.Field,
		&rule.Parameters,
		&rule.Severity,
		&rule.Active,
		&rule.Message,
		&rule.Created,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "validation_rules")
	}
	return &rule, nil
}

func (s *SQLCommon) GetValidationRules(ctx context.Context, schemaID string, activeOnly bool) ([]*fftypes.ValidationRule, error) {
	query := sq.Select(validationRuleColumns...).
		From("validation_rules").
		Where(sq.Eq{"schema_id": schemaID})
	if activeOnly {
		query = query.Where(sq.Eq{"active": true})
	}
	rows, err := s.query(ctx, query.OrderBy("created"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := []*fftypes.ValidationRule{}
	for rows.Next() {
		rule, err := s.validationRuleResult(ctx, rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
