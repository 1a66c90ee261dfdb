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

package rules

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/kaleido-io/emissionsledger/internal/cache"
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/mocks/databasemocks"
	"github.com/kaleido-io/emissionsledger/mocks/metricsmocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEvaluator(t *testing.T) (*evaluator, *databasemocks.Plugin) {
	config.Reset()
	mdi := &databasemocks.Plugin{}
	mmi := &metricsmocks.Manager{}
	mmi.On("RuleEvaluated", mock.Anything, mock.Anything).Maybe()
	e, err := NewEvaluator(context.Background(), mdi, cache.NewCacheManager(context.Background()), mmi)
	assert.NoError(t, err)
	return e.(*evaluator), mdi
}

func newRule(ruleType fftypes.RuleType, field string, severity fftypes.Severity, params *fftypes.RuleParameters) *fftypes.ValidationRule {
	return &fftypes.ValidationRule{
		ID:         fftypes.NewUUID(),
		SchemaID:   "emissions",
		Name:       fmt.Sprintf("%s-%s", ruleType, field),
		RuleType:   ruleType,
		Field:      field,
		Parameters: params,
		Severity:   severity,
		Active:     true,
	}
}

func float(f float64) *float64 {
	return &f
}

func TestNewEvaluatorMissingDeps(t *testing.T) {
	_, err := NewEvaluator(context.Background(), nil, nil, nil)
	assert.Regexp(t, "EV10135", err)
}

func TestNewEvaluatorBadPatternCacheSize(t *testing.T) {
	config.Reset()
	config.Set(config.RulesPatternCacheSize, 0)
	_, err := NewEvaluator(context.Background(), &databasemocks.Plugin{}, cache.NewCacheManager(context.Background()), &metricsmocks.Manager{})
	assert.Regexp(t, "EV10212", err)
}

func TestRequired(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeRequired, "field", fftypes.SeverityError, nil)

	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"field": ""}})
	assert.False(t, res.IsValid)
	assert.Equal(t, 1, res.ErrorCount)
	assert.Equal(t, fftypes.RuleOutcomeFail, res.RuleResults[0].Result)

	res = e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"field": "x"}})
	assert.True(t, res.IsValid)
	assert.Equal(t, fftypes.RuleOutcomePass, res.RuleResults[0].Result)
}

func TestRequiredEmptyForms(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeRequired, "field", fftypes.SeverityError, nil)
	rows := fftypes.JSONObjectArray{
		{},
		{"field": nil},
		{"field": []interface{}{}},
		{"field": map[string]interface{}{}},
		{"field": 0},
		{"field": false},
	}
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, rows)
	assert.Equal(t, 4, res.ErrorCount)
	for i, issue := range res.Errors {
		assert.Equal(t, i, issue.RowIndex)
		assert.Equal(t, "field", issue.Field)
	}
}

func TestRange(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeRange, "value", fftypes.SeverityError, &fftypes.RuleParameters{
		Min: float(0),
		Max: float(100),
	})
	rows := fftypes.JSONObjectArray{
		{"value": float64(50)},
		{"value": float64(150)},
		{"value": "75.5"},
		{"value": "abc"},
		{"value": float64(0)},
		{"value": float64(100)},
		{"value": float64(-1)},
		{"value": true},
		{},
	}
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, rows)
	assert.False(t, res.IsValid)
	assert.Equal(t, 4, res.ErrorCount)
	assert.Equal(t, 1, res.Errors[0].RowIndex)
	assert.Regexp(t, "greater than the maximum", res.Errors[0].Message)
	assert.Equal(t, 3, res.Errors[1].RowIndex)
	assert.Regexp(t, "not numeric", res.Errors[1].Message)
	assert.Equal(t, 6, res.Errors[2].RowIndex)
	assert.Regexp(t, "less than the minimum", res.Errors[2].Message)
	assert.Equal(t, 7, res.Errors[3].RowIndex)
}

func TestRangeMinOnly(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeRange, "value", fftypes.SeverityError, &fftypes.RuleParameters{Min: float(0)})
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"value": 1e12}})
	assert.True(t, res.IsValid)
}

func TestRangeMinGreaterThanMax(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeRange, "value", fftypes.SeverityError, &fftypes.RuleParameters{Min: float(10), Max: float(1)})
	err := e.ValidateRule(context.Background(), rule)
	assert.Regexp(t, "EV10212.*min", err)
}

func TestPattern(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypePattern, "id", fftypes.SeverityError, &fftypes.RuleParameters{Pattern: "^[0-9]{3}$"})
	rows := fftypes.JSONObjectArray{{"id": "001"}, {"id": "1"}, {"id": float64(123)}}
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, rows)
	assert.Equal(t, 1, res.ErrorCount)
	assert.Equal(t, 1, res.Errors[0].RowIndex)

	_, ok := e.patternCache.Get("^[0-9]{3}$")
	assert.True(t, ok)
}

func TestPatternInvalidIsConfigurationError(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypePattern, "id", fftypes.SeverityError, &fftypes.RuleParameters{Pattern: "[unclosed"})
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"id": "a"}, {"id": "b"}})
	assert.Equal(t, fftypes.RuleOutcomeFail, res.RuleResults[0].Result)
	assert.Regexp(t, "EV10212", res.RuleResults[0].Message)
	assert.Equal(t, 1, res.ErrorCount)
	assert.Equal(t, -1, res.Errors[0].RowIndex)
}

func TestPatternMissing(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypePattern, "id", fftypes.SeverityError, nil)
	err := e.ValidateRule(context.Background(), rule)
	assert.Regexp(t, "EV10212.*pattern is required", err)
}

func TestUniqueness(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeUniqueness, "id", fftypes.SeverityError, nil)
	rows := fftypes.JSONObjectArray{{"id": "a"}, {"id": "b"}, {"id": "a"}, {"id": "a"}, {}, {}}
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, rows)
	assert.Equal(t, 2, res.ErrorCount)
	assert.Equal(t, 2, res.Errors[0].RowIndex)
	assert.Equal(t, 0, *res.Errors[0].RelatedRowIndex)
	assert.Equal(t, 3, res.Errors[1].RowIndex)
	assert.Equal(t, 0, *res.Errors[1].RelatedRowIndex)
}

func TestUniquenessMixedTypes(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeUniqueness, "id", fftypes.SeverityError, nil)
	rows := fftypes.JSONObjectArray{{"id": float64(1)}, {"id": "1"}, {"id": true}, {"id": "true"}}
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, rows)
	assert.Equal(t, 0, res.ErrorCount)
	assert.True(t, res.IsValid)

	rows = fftypes.JSONObjectArray{{"id": float64(1)}, {"id": 1}, {"id": json.Number("1.0")}, {"id": true}, {"id": true}}
	res = e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, rows)
	assert.Equal(t, 3, res.ErrorCount)
	assert.Equal(t, 1, res.Errors[0].RowIndex)
	assert.Equal(t, 0, *res.Errors[0].RelatedRowIndex)
	assert.Equal(t, 2, res.Errors[1].RowIndex)
	assert.Equal(t, 4, res.Errors[2].RowIndex)
	assert.Equal(t, 3, *res.Errors[2].RelatedRowIndex)
}

func TestReference(t *testing.T) {
	e, mdi := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeReference, "fuel", fftypes.SeverityError, &fftypes.RuleParameters{ReferenceType: "fuelType"})
	mdi.On("GetReferenceData", mock.Anything, "fuelType", "diesel").Return(&fftypes.ReferenceData{Type: "fuelType", Code: "diesel"}, nil).Once()
	mdi.On("GetReferenceData", mock.Anything, "fuelType", "coal").Return(nil, nil).Once()
	mdi.On("GetReferenceCodes", mock.Anything, "fuelType").Return([]string{"diesel", "petrol"}, nil).Once()

	rows := fftypes.JSONObjectArray{{"fuel": "diesel"}, {"fuel": "coal"}, {"fuel": "diesel"}, {"fuel": "coal"}}
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, rows)
	assert.Equal(t, 2, res.ErrorCount)
	assert.Regexp(t, "'coal'.*fuelType.*diesel,petrol", res.Errors[0].Message)

	// Hits are served from the cache
	res = e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"fuel": "diesel"}})
	assert.True(t, res.IsValid)
	mdi.AssertExpectations(t)

	e.InvalidateReference("fuelType", "diesel")
	assert.Nil(t, e.referenceCache.Get(referenceCacheKey("fuelType", "diesel")))
}

func TestReferenceManyCodes(t *testing.T) {
	e, mdi := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeReference, "fuel", fftypes.SeverityError, &fftypes.RuleParameters{ReferenceType: "fuelType"})
	codes := make([]string, 20)
	for i := range codes {
		codes[i] = fmt.Sprintf("c%d", i)
	}
	mdi.On("GetReferenceData", mock.Anything, "fuelType", "x").Return(nil, nil)
	mdi.On("GetReferenceCodes", mock.Anything, "fuelType").Return(codes, nil)
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"fuel": "x"}})
	assert.Regexp(t, `c9,\.\.\.\]`, res.Errors[0].Message)
}

func TestReferenceEmptySet(t *testing.T) {
	e, mdi := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeReference, "fuel", fftypes.SeverityError, &fftypes.RuleParameters{ReferenceType: "fuelType"})
	mdi.On("GetReferenceData", mock.Anything, "fuelType", "x").Return(nil, nil)
	mdi.On("GetReferenceCodes", mock.Anything, "fuelType").Return([]string{}, nil)
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"fuel": "x"}})
	assert.Regexp(t, "empty", res.Errors[0].Message)
}

func TestReferenceCodesFail(t *testing.T) {
	e, mdi := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeReference, "fuel", fftypes.SeverityError, &fftypes.RuleParameters{ReferenceType: "fuelType"})
	mdi.On("GetReferenceData", mock.Anything, "fuelType", "x").Return(nil, nil)
	mdi.On("GetReferenceCodes", mock.Anything, "fuelType").Return(nil, fmt.Errorf("pop"))
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"fuel": "x"}})
	assert.Regexp(t, "reference set 'fuelType'$", res.Errors[0].Message)
}

func TestReferenceLookupFail(t *testing.T) {
	e, mdi := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeReference, "fuel", fftypes.SeverityError, &fftypes.RuleParameters{ReferenceType: "fuelType"})
	mdi.On("GetReferenceData", mock.Anything, "fuelType", "x").Return(nil, fmt.Errorf("pop"))
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"fuel": "x"}})
	assert.False(t, res.IsValid)
	assert.Equal(t, fftypes.RuleOutcomeFail, res.RuleResults[0].Result)
	assert.Regexp(t, "pop", res.RuleResults[0].Message)
}

func TestReferenceMissingType(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeReference, "fuel", fftypes.SeverityError, nil)
	err := e.ValidateRule(context.Background(), rule)
	assert.Regexp(t, "EV10212.*referenceType", err)
}

func TestDataType(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rules := []*fftypes.ValidationRule{
		newRule(fftypes.RuleTypeDataType, "n", fftypes.SeverityError, &fftypes.RuleParameters{DataType: "integer"}),
		newRule(fftypes.RuleTypeDataType, "ts", fftypes.SeverityError, &fftypes.RuleParameters{DataType: "date-time"}),
		newRule(fftypes.RuleTypeDataType, "b", fftypes.SeverityError, &fftypes.RuleParameters{DataType: "boolean"}),
	}
	rows := fftypes.JSONObjectArray{
		{"n": float64(100), "ts": "2021-05-01T10:00:00Z", "b": true},
		{"n": 1.5, "ts": "yesterday", "b": "true"},
	}
	res := e.Evaluate(context.Background(), rules, rows)
	assert.Equal(t, 3, res.ErrorCount)
	for _, issue := range res.Errors {
		assert.Equal(t, 1, issue.RowIndex)
	}
}

func TestDataTypeUnsupported(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeDataType, "n", fftypes.SeverityError, &fftypes.RuleParameters{DataType: "complex"})
	err := e.ValidateRule(context.Background(), rule)
	assert.Regexp(t, "EV10212.*complex", err)
}

func TestCustomBuiltins(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rules := []*fftypes.ValidationRule{
		newRule(fftypes.RuleTypeCustom, "value", fftypes.SeverityError, &fftypes.RuleParameters{Validator: "positive"}),
		newRule(fftypes.RuleTypeCustom, "date", fftypes.SeverityError, &fftypes.RuleParameters{Validator: "isoDate"}),
		newRule(fftypes.RuleTypeCustom, "type", fftypes.SeverityError, &fftypes.RuleParameters{
			Validator: "oneOf",
			Options:   fftypes.JSONObject{"values": "CO2,CH4,N2O"},
		}),
		newRule(fftypes.RuleTypeCustom, "total", fftypes.SeverityError, &fftypes.RuleParameters{
			Validator: "sumEquals",
			Options:   fftypes.JSONObject{"fields": []interface{}{"a", "b"}},
		}),
	}
	rows := fftypes.JSONObjectArray{
		{"value": float64(10), "date": "2021-01-01", "type": "CO2", "total": float64(3), "a": float64(1), "b": float64(2)},
		{"value": float64(-1), "date": "01/01/2021", "type": "H2O", "total": float64(4), "a": float64(1), "b": float64(2)},
	}
	res := e.Evaluate(context.Background(), rules, rows)
	assert.Equal(t, 4, res.ErrorCount)
	for _, issue := range res.Errors {
		assert.Equal(t, 1, issue.RowIndex)
	}
}

func TestCustomRegisteredErrorsAndPanics(t *testing.T) {
	e, _ := newTestEvaluator(t)
	e.RegisterValidator("explodes", func(ctx context.Context, value interface{}, row fftypes.JSONObject, options fftypes.JSONObject) (bool, string, error) {
		if value == "panic" {
			panic("boom")
		}
		if value == "error" {
			return false, "", fmt.Errorf("pop")
		}
		return value == "ok", "", nil
	})
	rule := newRule(fftypes.RuleTypeCustom, "f", fftypes.SeverityError, &fftypes.RuleParameters{Validator: "explodes"})
	rows := fftypes.JSONObjectArray{{"f": "ok"}, {"f": "panic"}, {"f": "error"}, {"f": "bad"}}
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, rows)
	assert.Equal(t, 3, res.ErrorCount)
	assert.Regexp(t, "boom", res.Errors[0].Message)
	assert.Regexp(t, "pop", res.Errors[1].Message)
	assert.Regexp(t, "rejected", res.Errors[2].Message)
}

func TestCustomSkipsEmptyValues(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeCustom, "value", fftypes.SeverityError, &fftypes.RuleParameters{Validator: "positive"})
	rows := fftypes.JSONObjectArray{{"value": ""}, {}, {"value": nil}, {"value": float64(-2)}}
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, rows)
	assert.Equal(t, 1, res.ErrorCount)
	assert.Equal(t, 3, res.Errors[0].RowIndex)
}

func TestCustomNotRegistered(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeCustom, "f", fftypes.SeverityError, &fftypes.RuleParameters{Validator: "eval"})
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"f": "x"}})
	assert.Equal(t, fftypes.RuleOutcomeFail, res.RuleResults[0].Result)
	assert.Regexp(t, "EV10222.*isoDate,nonNegative,oneOf,positive,sumEquals", res.RuleResults[0].Message)

	err := e.ValidateRule(context.Background(), rule)
	assert.Regexp(t, "EV10222.*'eval'.*positive", err)
}

func TestUnknownRuleTypeAndSeverity(t *testing.T) {
	e, _ := newTestEvaluator(t)
	err := e.ValidateRule(context.Background(), newRule("bogus", "f", fftypes.SeverityError, nil))
	assert.Regexp(t, "EV10219", err)
	err = e.ValidateRule(context.Background(), newRule(fftypes.RuleTypeRequired, "f", "fatal", nil))
	assert.Regexp(t, "EV10225", err)
	err = e.ValidateRule(context.Background(), newRule(fftypes.RuleTypeRequired, "", fftypes.SeverityError, nil))
	assert.Regexp(t, "EV10212.*field", err)
}

func TestSeverityGroupingAndOutcomes(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rules := []*fftypes.ValidationRule{
		newRule(fftypes.RuleTypeRequired, "info", fftypes.SeverityInfo, nil),
		newRule(fftypes.RuleTypeRequired, "warn", fftypes.SeverityWarning, nil),
		newRule(fftypes.RuleTypeRequired, "err", fftypes.SeverityError, nil),
		nil,
	}
	res := e.Evaluate(context.Background(), rules, fftypes.JSONObjectArray{{"err": "present"}})
	assert.True(t, res.IsValid)
	assert.Equal(t, 0, res.ErrorCount)
	assert.Equal(t, 1, res.WarningCount)
	assert.Equal(t, 1, res.InfoCount)
	assert.Len(t, res.RuleResults, 3)
	assert.Equal(t, fftypes.SeverityError, res.RuleResults[0].Severity)
	assert.Equal(t, fftypes.RuleOutcomePass, res.RuleResults[0].Result)
	assert.Equal(t, fftypes.SeverityWarning, res.RuleResults[1].Severity)
	assert.Equal(t, fftypes.RuleOutcomeWarning, res.RuleResults[1].Result)
	assert.Equal(t, fftypes.SeverityInfo, res.RuleResults[2].Severity)
	assert.Equal(t, fftypes.RuleOutcomeWarning, res.RuleResults[2].Result)
}

func TestNoRowsNotApplicable(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeRequired, "f", fftypes.SeverityError, nil)
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{})
	assert.True(t, res.IsValid)
	assert.Equal(t, fftypes.RuleOutcomeNotApplicable, res.RuleResults[0].Result)
}

func TestRuleMessageOverride(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeRequired, "f", fftypes.SeverityError, nil)
	rule.Message = "Emission id must be supplied"
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{}})
	assert.Equal(t, "Emission id must be supplied", res.Errors[0].Message)
}

func TestRulePanicRecovered(t *testing.T) {
	e, _ := newTestEvaluator(t)
	e.dataTypes["string"] = nil // a nil schema panics on use
	rule := newRule(fftypes.RuleTypeDataType, "f", fftypes.SeverityError, &fftypes.RuleParameters{DataType: "string"})
	other := newRule(fftypes.RuleTypeRequired, "f", fftypes.SeverityError, nil)
	res := e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule, other}, fftypes.JSONObjectArray{{"f": "x"}})
	assert.False(t, res.IsValid)
	assert.Equal(t, fftypes.RuleOutcomeFail, res.RuleResults[0].Result)
	assert.Regexp(t, "rule evaluation failed", res.RuleResults[0].Message)
	assert.Equal(t, fftypes.RuleOutcomePass, res.RuleResults[1].Result)
}

func TestDeterministic(t *testing.T) {
	e, _ := newTestEvaluator(t)
	rule := newRule(fftypes.RuleTypeRange, "v", fftypes.SeverityError, &fftypes.RuleParameters{Min: float(0), Max: float(100)})
	for i := 0; i < 20; i++ {
		assert.False(t, e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"v": float64(150)}}).IsValid)
		assert.True(t, e.Evaluate(context.Background(), []*fftypes.ValidationRule{rule}, fftypes.JSONObjectArray{{"v": float64(50)}}).IsValid)
	}
}
