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

var postFileMapping = &apispec.Route{
	Name:   "postFileMapping",
	Path:   "files/{fileId}/mapping",
	Method: http.MethodPost,
	PathParams: []apispec.PathParam{
		{Name: "fileId", Description: i18n.MsgPathParamFileID},
	},
	Description:     i18n.MsgRouteDescPostMapping,
	JSONInputValue:  func() interface{} { return &fftypes.MappingInput{} },
	JSONOutputValue: func() interface{} { return &fftypes.File{} },
	JSONOutputCode:  http.StatusOK,
	JSONHandler: func(r *apispec.APIRequest) (output interface{}, err error) {
		return r.E.MapFile(r.Ctx, r.PP["fileId"], r.Input.(*fftypes.MappingInput))
	},
}
