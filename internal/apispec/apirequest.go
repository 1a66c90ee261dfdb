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

package apispec

import (
	"context"
	"net/http"

	"github.com/kaleido-io/emissionsledger/internal/engine"
)

// APIRequest is the context of a single request passed to each route handler
type APIRequest struct {
	Ctx           context.Context
	E             engine.Engine
	Req           *http.Request
	QP            map[string]string
	PP            map[string]string
	Input         interface{}
	SuccessStatus int
}

// BoolQuery returns a boolean query parameter, which has been normalized to "true" or "false"
func (r *APIRequest) BoolQuery(name string) bool {
	return r.QP[name] == "true"
}
