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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldMappingApply(t *testing.T) {
	fm := FieldMapping{
		"emissionId":    "id",
		"emissionValue": "value",
		"missing":       "nope",
	}
	mapped := fm.Apply(JSONObjectArray{
		{"id": "001", "type": "CO2", "value": 100},
	})
	assert.Equal(t, JSONObjectArray{
		{"emissionId": "001", "emissionValue": 100},
	}, mapped)
}

func TestFieldMappingDB(t *testing.T) {
	fm := FieldMapping{"a": "b"}
	v, err := fm.Value()
	assert.NoError(t, err)
	assert.Equal(t, `{"a":"b"}`, v)
	var fm2 FieldMapping
	assert.NoError(t, fm2.Scan(v))
	assert.Equal(t, fm, fm2)

	var nilMapping FieldMapping
	v, err = nilMapping.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestRuleParametersDB(t *testing.T) {
	min := 0.0
	rp := &RuleParameters{Min: &min, Pattern: "^[A-Z]+$"}
	v, err := rp.Value()
	assert.NoError(t, err)
	var rp2 RuleParameters
	assert.NoError(t, rp2.Scan(v))
	assert.Equal(t, float64(0), *rp2.Min)
	assert.Nil(t, rp2.Max)
	assert.Equal(t, "^[A-Z]+$", rp2.Pattern)

	var nilParams *RuleParameters
	v, err = nilParams.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestSeverityValid(t *testing.T) {
	assert.True(t, SeverityWarning.Valid())
	assert.False(t, Severity("fatal").Valid())
}

func TestValidationResultsDB(t *testing.T) {
	vr := &ValidationResults{IsValid: true, RowCount: 2}
	v, err := vr.Value()
	assert.NoError(t, err)
	var vr2 ValidationResults
	assert.NoError(t, vr2.Scan(v))
	assert.True(t, vr2.IsValid)
	assert.Equal(t, 2, vr2.RowCount)
}
