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

package config

import (
	"context"

	"github.com/kaleido-io/emissionsledger/internal/log"
)

// SetupLogging applies the log level and formatting from config
func SetupLogging(ctx context.Context) {
	log.SetLevel(GetString(LogLevel))
	log.SetFormatting(log.Formatting{
		DisableColor:    !GetBool(LogColor),
		TimestampFormat: GetString(LogTimeFormat),
		UTC:             GetBool(LogUTC),
	})
	log.L(ctx).Debugf("Log level: %s", GetString(LogLevel))
}
