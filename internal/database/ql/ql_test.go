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

package ql

import (
	"context"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/database/sqlcommon"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/stretchr/testify/assert"
)

func TestQLProvider(t *testing.T) {
	config.Reset()
	ql := &QL{}
	prefix := config.NewPluginConfig("unittest")
	ql.InitPrefix(prefix)
	prefix.Set(sqlcommon.SQLConfDatasourceURL, "memory://")
	err := ql.Init(context.Background(), prefix)
	assert.NoError(t, err)
	defer ql.Close()
	_, err = ql.GetMigrationDriver(ql.DB())
	assert.NoError(t, err)

	assert.Equal(t, "ql", ql.Name())
	assert.Equal(t, sq.Dollar, ql.PlaceholderFormat())
	assert.True(t, ql.Capabilities().ConditionalUpdates)

	insert := sq.Insert("test").Columns("col1").Values("val1")
	insert, query := ql.UpdateInsertForSequenceReturn(insert)
	sql, _, err := insert.ToSql()
	assert.NoError(t, err)
	assert.Equal(t, "INSERT INTO test (col1) VALUES (?)", sql)
	assert.False(t, query)
}

func TestQLProviderMigrations(t *testing.T) {
	config.Reset()
	ql := &QL{}
	prefix := config.NewPluginConfig("unittest")
	ql.InitPrefix(prefix)
	prefix.Set(sqlcommon.SQLConfDatasourceURL, "memory://")
	prefix.Set(sqlcommon.SQLConfMigrationsAuto, true)
	prefix.Set(sqlcommon.SQLConfMigrationsDirectory, "../../../db/migrations/ql")
	err := ql.Init(context.Background(), prefix)
	assert.NoError(t, err)
	defer ql.Close()

	f, err := ql.GetFileByID(context.Background(), fftypes.NewUUID())
	assert.NoError(t, err)
	assert.Nil(t, f)
}
