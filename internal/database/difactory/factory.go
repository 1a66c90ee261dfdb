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

package difactory

import (
	"context"

	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/database"
	"github.com/kaleido-io/emissionsledger/internal/database/postgres"
	"github.com/kaleido-io/emissionsledger/internal/database/ql"
	"github.com/kaleido-io/emissionsledger/internal/database/sqlite"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
)

var plugins = []database.Plugin{
	&ql.QL{},
	&sqlite.SQLite{},
	&postgres.Postgres{},
}

var pluginsByName = make(map[string]database.Plugin)

func init() {
	for _, p := range plugins {
		pluginsByName[p.Name()] = p
	}
}

func GetPlugin(ctx context.Context, pluginType string) (database.Plugin, error) {
	plugin, ok := pluginsByName[pluginType]
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgUnknownDatabasePlugin, pluginType)
	}
	return plugin, nil
}

// InitPrefix registers the config of every provider, each under its own name
func InitPrefix(prefix config.Prefix) {
	for name, plugin := range pluginsByName {
		plugin.InitPrefix(prefix.SubPrefix(name))
	}
}
