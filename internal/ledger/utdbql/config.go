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

package utdbql

import (
	"github.com/kaleido-io/emissionsledger/internal/config"
)

const (
	// UTDBQLConfURL is the url of the QL database holding the chain, such as "memory://"
	UTDBQLConfURL = "url"
	// UTDBQLConfBlockInterval is the interval at which empty blocks are mined. Zero disables the block timer.
	UTDBQLConfBlockInterval = "blockInterval"
)

func (u *UTDBQL) InitPrefix(prefix config.Prefix) {
	prefix.AddKnownKey(UTDBQLConfURL, "memory://")
	prefix.AddKnownKey(UTDBQLConfBlockInterval, "0s")
}
