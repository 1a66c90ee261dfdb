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

package ledgerrest

import (
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/restclient"
)

const (
	defaultPollInterval = "1s"
	defaultCacheTTL     = "5m"
	defaultCacheSize    = 100
)

const (
	// LedgerRESTConfPollInterval is how often pending transactions are polled for a status change
	LedgerRESTConfPollInterval = "pollInterval"
	// LedgerRESTConfCacheTTL is how long confirmed records are cached for
	LedgerRESTConfCacheTTL = "cache.ttl"
	// LedgerRESTConfCacheSize is the maximum number of confirmed records cached
	LedgerRESTConfCacheSize = "cache.size"
)

func (l *LedgerREST) InitPrefix(prefix config.Prefix) {
	restclient.InitPrefix(prefix)
	prefix.AddKnownKey(LedgerRESTConfPollInterval, defaultPollInterval)
	prefix.AddKnownKey(LedgerRESTConfCacheTTL, defaultCacheTTL)
	prefix.AddKnownKey(LedgerRESTConfCacheSize, defaultCacheSize)
}
