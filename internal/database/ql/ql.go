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

	"database/sql"

	sq "github.com/Masterminds/squirrel"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migrateql "github.com/golang-migrate/migrate/v4/database/ql"
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/database"
	"github.com/kaleido-io/emissionsledger/internal/database/sqlcommon"

	// Import the QL driver
	_ "modernc.org/ql/driver"
)

// QL is the embedded database, used for development and in-memory ("memory://") deployments
type QL struct {
	sqlcommon.SQLCommon
}

func (e *QL) InitPrefix(prefix config.Prefix) {
	e.SQLCommon.InitPrefix(e, prefix)
}

func (e *QL) Init(ctx context.Context, prefix config.Prefix) error {
	capabilities := &database.Capabilities{
		ConditionalUpdates: true,
	}
	return e.SQLCommon.Init(ctx, e, prefix, capabilities)
}

func (e *QL) Name() string {
	return "ql"
}

func (e *QL) PlaceholderFormat() sq.PlaceholderFormat {
	return sq.Dollar
}

func (e *QL) UpdateInsertForSequenceReturn(insert sq.InsertBuilder) (sq.InsertBuilder, bool) {
	return insert, false
}

func (e *QL) Open(url string) (*sql.DB, error) {
	return sql.Open(e.Name(), url)
}

func (e *QL) GetMigrationDriver(db *sql.DB) (migratedb.Driver, error) {
	return migrateql.WithInstance(db, &migrateql.Config{})
}
