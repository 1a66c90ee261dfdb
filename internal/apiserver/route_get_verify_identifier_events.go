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

package apiserver

import (
	"net/http"

	"github.com/kaleido-io/emissionsledger/internal/apispec"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
)

var getVerifyIdentifierEvents = &apispec.Route{
	Name:   "getVerifyIdentifierEvents",
	Path:   "identifiers/{id}/events/verify",
	Method: http.MethodGet,
	PathParams: []apispec.PathParam{
		{Name: "id", Description: i18n.MsgPathParamIdentifierID},
	},
	Description:     i18n.MsgRouteDescVerifyIdentifierLog,
	JSONInputValue:  func() interface{} { return nil },
	JSONOutputValue: func() interface{} { return &fftypes.EventLogVerification{} },
	JSONOutputCode:  http.StatusOK,
	JSONHandler: func(r *apispec.APIRequest) (output interface{}, err error) {
		return r.E.VerifyIdentifierEvents(r.Ctx, r.PP["id"])
	},
}
