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
	identifierColumns = []string{
		"id",
		"controller",
		"status",
		"key_pair_id",
		"current_key",
		"next_key",
		"previous_key",
		"metadata",
		"event_seq",
		"head_digest",
		"created",
		"updated",
	}
	keyPairColumns = []string{
		"id",
		"identifier",
		"suite",
		"public_key",
		"private_key",
		"created",
	}
	identifierEventColumns = []string{
		"identifier",
		"event_seq",
		"event_type",
		"key_id",
		"next_key_digest",
		"data_digest",
		"prior_digest",
		"digest",
		"timestamp",
	}
)

func identifierKeys(identifier *fftypes.Identifier) *fftypes.KeyPairSet {
	if identifier.Keys == nil {
		return &fftypes.KeyPairSet{}
	}
	return identifier.Keys
}

func (s *SQLCommon) InsertIdentifier(ctx context.Context, identifier *fftypes.Identifier) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	keys := identifierKeys(identifier)
	if _, err = s.insertTx(ctx, tx,
		sq.Insert("identifiers").
			Columns(identifierColumns...).
			Values(
				identifier.ID,
				identifier.Controller,
				string(identifier.Status),
				identifier.KeyPairID,
				keys.Current,
				keys.Next,
				keys.Previous,
				identifier.Metadata,
				identifier.Sequence,
				identifier.HeadDigest,
				identifier.Created,
				identifier.Updated,
			),
	); err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) UpdateIdentifier(ctx context.Context, identifier *fftypes.Identifier) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	keys := identifierKeys(identifier)
	if _, err = s.updateTx(ctx, tx,
		sq.Update("identifiers").
			Set("status", string(identifier.Status)).
			Set("key_pair_id", identifier.KeyPairID).
			Set("current_key", keys.Current).
			Set("next_key", keys.Next).
			Set("previous_key", keys.Previous).
			Set("metadata", identifier.Metadata).
			Set("event_seq", identifier.Sequence).
			Set("head_digest", identifier.HeadDigest).
			Set("updated", identifier.Updated).
			Where(sq.Eq{"id": identifier.ID}),
	); err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) identifierResult(ctx context.Context, row *sql.Rows) (*fftypes.Identifier, error) {
	identifier := fftypes.Identifier{
		Keys: &fftypes.KeyPairSet{},
	}
	err := row.Scan(
		&identifier.ID,
		&identifier.Controller,
		&identifier.Status,
		&identifier.KeyPairID,
		&identifier.Keys.Current,
		&identifier.Keys.Next,
		&identifier.Keys.Previous,
		&identifier.Metadata,
		&identifier.Sequence,
		&identifier.HeadDigest,
		&identifier.Created,
		&identifier.Updated,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "identifiers")
	}
	return &identifier, nil
}

func (s *SQLCommon) GetIdentifierByID(ctx context.Context, id string) (*fftypes.Identifier, error) {
	rows, err := s.query(ctx,
		sq.Select(identifierColumns...).
			From("identifiers").
			Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		log.L(ctx).Debugf("Identifier '%s' not found", id)
		return nil, nil
	}

	return s.identifierResult(ctx, rows)
}

func (s *SQLCommon) InsertKeyPair(ctx context.Context, kp *fftypes.KeyPair) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	if _, err = s.insertTx(ctx, tx,
		sq.Insert("keypairs").
			Columns(keyPairColumns...).
			Values(
				kp.ID,
				kp.Identifier,
				kp.Suite,
				kp.PublicKey,
				kp.PrivateKey,
				kp.Created,
			),
	); err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) GetKeyPairByID(ctx context.Context, id string) (*fftypes.KeyPair, error) {
	rows, err := s.query(ctx,
		sq.Select(keyPairColumns...).
			From("keypairs").
			Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		log.L(ctx).Debugf("Key pair '%s' not found", id)
		return nil, nil
	}

	var kp fftypes.KeyPair
	err = rows.Scan(
		&kp.ID,
		&kp.Identifier,
		&kp.Suite,
		&kp.PublicKey,
		&kp.PrivateKey,
		&kp.Created,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "keypairs")
	}
	return &kp, nil
}

func (s *SQLCommon) InsertIdentifierEvent(ctx context.Context, event *fftypes.IdentifierEvent) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	if _, err = s.insertTx(ctx, tx,
		sq.Insert("identifier_events").
			Columns(identifierEventColumns...).
			Values(
				event.Identifier,
				event.Seq,
				string(event.Type),
				event.KeyID,
				event.NextKeyDigest,
				event.DataDigest,
				event.PriorDigest,
				event.Digest,
				event.Timestamp,
			),
	); err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) identifierEventResult(ctx context.Context, row *sql.Rows) (*fftypes.IdentifierEvent, error) {
	var event fftypes.IdentifierEvent
	err := row.Scan(
		&event.Identifier,
		&event.Seq,
		&event.Type,
		&event.KeyID,
		&event.NextKeyDigest,
		&event.DataDigest,
		&event.PriorDigest,
		&event.Digest,
		&event.Timestamp,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "identifier_events")
	}
	return &event, nil
}

func (s *SQLCommon) GetIdentifierEvents(ctx context.Context, identifier string) ([]*fftypes.IdentifierEvent, error) {
	rows, err := s.query(ctx,
		sq.Select(identifierEventColumns...).
			From("identifier_events").
			Where(sq.Eq{"identifier": identifier}).
			OrderBy("event_seq"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*fftypes.IdentifierEvent{}
	for rows.Next() {
		event, err := s.identifierEventResult(ctx, rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
