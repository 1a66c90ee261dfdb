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
	"encoding/json"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/stretchr/testify/assert"
)

func TestIdentifiersE2EWithDB(t *testing.T) {

	s := newQLTestProvider(t)
	defer s.Close()
	ctx := context.Background()

	identifier := &fftypes.Identifier{
		ID:         "Eabc",
		Controller: "acme",
		Status:     fftypes.IdentifierStatusActive,
		KeyPairID:  "Dkey1",
		Keys: &fftypes.KeyPairSet{
			Current: "Dkey1",
			Next:    "Dkey2",
		},
		Metadata: fftypes.JSONObject{"org": "acme"},
		Sequence: 0,
		Created:  fftypes.Now(),
		Updated:  fftypes.Now(),
	}
	err := s.InsertIdentifier(ctx, identifier)
	assert.NoError(t, err)

	identifierRead, err := s.GetIdentifierByID(ctx, "Eabc")
	assert.NoError(t, err)
	identifierJson, _ := json.Marshal(identifier)
	identifierReadJson, _ := json.Marshal(identifierRead)
	assert.Equal(t, string(identifierJson), string(identifierReadJson))

	identifier.Keys = &fftypes.KeyPairSet{
		Previous: "Dkey1",
		Current:  "Dkey2",
		Next:     "Dkey3",
	}
	identifier.KeyPairID = "Dkey2"
	identifier.Sequence = 1
	identifier.Updated = fftypes.Now()
	err = s.UpdateIdentifier(ctx, identifier)
	assert.NoError(t, err)

	identifierRead, err = s.GetIdentifierByID(ctx, "Eabc")
	assert.NoError(t, err)
	assert.Equal(t, "Dkey1", identifierRead.Keys.Previous)
	assert.Equal(t, "Dkey3", identifierRead.Keys.Next)
	assert.Equal(t, int64(1), identifierRead.Sequence)

	identifierRead, err = s.GetIdentifierByID(ctx, "Enope")
	assert.NoError(t, err)
	assert.Nil(t, identifierRead)
}

func TestKeyPairsE2EWithDB(t *testing.T) {

	s := newQLTestProvider(t)
	defer s.Close()
	ctx := context.Background()

	kp := &fftypes.KeyPair{
		ID:         "Dkey1",
		Identifier: "Eabc",
		Suite:      "ed25519",
		PublicKey:  []byte{0x01, 0x02},
		PrivateKey: []byte{0x03, 0x04},
		Created:    fftypes.Now(),
	}
	err := s.InsertKeyPair(ctx, kp)
	assert.NoError(t, err)

	kpRead, err := s.GetKeyPairByID(ctx, "Dkey1")
	assert.NoError(t, err)
	assert.Equal(t, kp.PublicKey, kpRead.PublicKey)
	assert.Equal(t, kp.PrivateKey, kpRead.PrivateKey)
	assert.Equal(t, "ed25519", kpRead.Suite)

	kpRead, err = s.GetKeyPairByID(ctx, "Dnope")
	assert.NoError(t, err)
	assert.Nil(t, kpRead)
}

func TestIdentifierEventsE2EWithDB(t *testing.T) {

	s := newQLTestProvider(t)
	defer s.Close()
	ctx := context.Background()

	d0 := fftypes.SHA256Bytes([]byte("event0"))
	d1 := fftypes.SHA256Bytes([]byte("event1"))
	events := []*fftypes.IdentifierEvent{
		{
			Seq:           0,
			Identifier:    "Eabc",
			Type:          fftypes.IdentifierEventInception,
			KeyID:         "Dkey1",
			NextKeyDigest: fftypes.SHA256Bytes([]byte("next")),
			Digest:        d0,
			Timestamp:     fftypes.Now(),
		},
		{
			Seq:         1,
			Identifier:  "Eabc",
			Type:        fftypes.IdentifierEventSignature,
			KeyID:       "Dkey1",
			DataDigest:  fftypes.SHA256Bytes([]byte("data")),
			PriorDigest: d0,
			Digest:      d1,
			Timestamp:   fftypes.Now(),
		},
	}
	// Insert out of order within a group, to check the read ordering
	err := s.RunAsGroup(ctx, func(ctx context.Context) error {
		if err := s.InsertIdentifierEvent(ctx, events[1]); err != nil {
			return err
		}
		return s.InsertIdentifierEvent(ctx, events[0])
	})
	assert.NoError(t, err)

	eventsRead, err := s.GetIdentifierEvents(ctx, "Eabc")
	assert.NoError(t, err)
	eventsJson, _ := json.Marshal(events)
	eventsReadJson, _ := json.Marshal(eventsRead)
	assert.Equal(t, string(eventsJson), string(eventsReadJson))

	eventsRead, err = s.GetIdentifierEvents(ctx, "Enope")
	assert.NoError(t, err)
	assert.Empty(t, eventsRead)
}

func TestInsertIdentifierFailBegin(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin().WillReturnError(fmt.Errorf("pop"))
	err := s.InsertIdentifier(context.Background(), &fftypes.Identifier{})
	assert.Regexp(t, "EV10113", err)
}

func TestInsertIdentifierFailInsert(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.InsertIdentifier(context.Background(), &fftypes.Identifier{})
	assert.Regexp(t, "EV10116", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateIdentifierFailBegin(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin().WillReturnError(fmt.Errorf("pop"))
	err := s.UpdateIdentifier(context.Background(), &fftypes.Identifier{})
	assert.Regexp(t, "EV10113", err)
}

func TestUpdateIdentifierFailUpdate(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.UpdateIdentifier(context.Background(), &fftypes.Identifier{})
	assert.Regexp(t, "EV10117", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetIdentifierByIDQueryFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnError(fmt.Errorf("pop"))
	_, err := s.GetIdentifierByID(context.Background(), "Eabc")
	assert.Regexp(t, "EV10115", err)
}

func TestGetIdentifierByIDReadFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only one"))
	_, err := s.GetIdentifierByID(context.Background(), "Eabc")
	assert.Regexp(t, "EV10119", err)
}

func TestInsertKeyPairFailBegin(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin().WillReturnError(fmt.Errorf("pop"))
	err := s.InsertKeyPair(context.Background(), &fftypes.KeyPair{})
	assert.Regexp(t, "EV10113", err)
}

func TestInsertKeyPairFailInsert(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.InsertKeyPair(context.Background(), &fftypes.KeyPair{})
	assert.Regexp(t, "EV10116", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetKeyPairByIDQueryFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnError(fmt.Errorf("pop"))
	_, err := s.GetKeyPairByID(context.Background(), "Dkey1")
	assert.Regexp(t, "EV10115", err)
}

func TestGetKeyPairByIDReadFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only one"))
	_, err := s.GetKeyPairByID(context.Background(), "Dkey1")
	assert.Regexp(t, "EV10119", err)
}

func TestInsertIdentifierEventFailBegin(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin().WillReturnError(fmt.Errorf("pop"))
	err := s.InsertIdentifierEvent(context.Background(), &fftypes.IdentifierEvent{})
	assert.Regexp(t, "EV10113", err)
}

func TestInsertIdentifierEventFailInsert(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.InsertIdentifierEvent(context.Background(), &fftypes.IdentifierEvent{})
	assert.Regexp(t, "EV10116", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetIdentifierEventsQueryFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnError(fmt.Errorf("pop"))
	_, err := s.GetIdentifierEvents(context.Background(), "Eabc")
	assert.Regexp(t, "EV10115", err)
}

func TestGetIdentifierEventsReadFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only one"))
	_, err := s.GetIdentifierEvents(context.Background(), "Eabc")
	assert.Regexp(t, "EV10119", err)
}
