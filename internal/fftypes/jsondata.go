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

package fftypes

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/kaleido-io/emissionsledger/internal/i18n"
)

// JSONObject is a holder of a hash map of JSON data, that can be stored in a single
// string column in the database
type JSONObject map[string]interface{}

// JSONObjectArray is an array of JSON objects, such as the rows of a file
type JSONObjectArray []JSONObject

func scanJSON(src interface{}, target interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil

	case string:
		if src == "" {
			return nil
		}
		return json.Unmarshal([]byte(src), target)

	case []byte:
		if len(src) == 0 {
			return nil
		}
		return json.Unmarshal(src, target)

	default:
		return i18n.NewError(context.Background(), i18n.MsgScanFailed, src, target)
	}
}

func valueJSON(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (jd *JSONObject) Scan(src interface{}) error {
	return scanJSON(src, jd)
}

func (jd JSONObject) Value() (driver.Value, error) {
	if jd == nil {
		return nil, nil
	}
	return valueJSON(map[string]interface{}(jd))
}

// GetString returns a string representation of the value of a key, or "" if not set
func (jd JSONObject) GetString(key string) string {
	switch v := jd[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (jd JSONObject) String() string {
	b, _ := json.Marshal(map[string]interface{}(jd))
	return string(b)
}

func (ja *JSONObjectArray) Scan(src interface{}) error {
	return scanJSON(src, ja)
}

func (ja JSONObjectArray) Value() (driver.Value, error) {
	if ja == nil {
		return nil, nil
	}
	return valueJSON([]JSONObject(ja))
}
