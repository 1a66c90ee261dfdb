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

var getRecordByID = &apispec.Route{
	Name:   "getRecordByID",
	Path:   "records/{recordId}",
	Method: http.MethodGet,
	PathParams: []apispec.PathParam{
		{Name: "recordId", Description: i18n.MsgPathParamRecordID},
	},
	QueryParams: []apispec.QueryParam{
		{Name: "verifyOnBlockchain", IsBool: true, Description: i18n.MsgQueryParamVerifyOnBlockchain},
	},
	Description:     i18n.MsgRouteDescGetRecord,
	JSONInputValue:  func() interface{} { return nil },
	JSONOutputValue: func() interface{} { return &fftypes.RecordResponse{} },
	JSONOutputCode:  http.StatusOK,
	JSONHandler: func(r *apispec.APIRequest) (output interface{}, err error) {
		return r.E.GetRecord(r.Ctx, r.PP["recordId"], r.BoolQuery("verifyOnBlockchain"))
	},
}
