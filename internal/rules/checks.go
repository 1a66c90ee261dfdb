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
	"math"
	"strconv"
	"strings"

	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/xeipuuv/gojsonschema"
)

// maxExpectedCodes limits the reference codes listed in a miss message
const maxExpectedCodes = 10

var dataTypeSchemas = map[string]string{
	"string":    `{"type":"string"}`,
	"number":    `{"type":"number"}`,
	"integer":   `{"type":"integer"}`,
	"boolean":   `{"type":"boolean"}`,
	"date-time": `{"type":"string","format":"date-time"}`,
	"date":      `{"type":"string","format":"date"}`,
}

func compileDataTypes(ctx context.Context) (map[string]*gojsonschema.Schema, error) {
	schemas := make(map[string]*gojsonschema.Schema, len(dataTypeSchemas))
	for name, s := range dataTypeSchemas {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
		if err != nil {
			return nil, i18n.WrapError(ctx, err, i18n.MsgRuleConfigError, name, err)
		}
		schemas[name] = schema
	}
	return schemas, nil
}

func parameters(rule *fftypes.ValidationRule) *fftypes.RuleParameters {
	if rule.Parameters == nil {
		return &fftypes.RuleParameters{}
	}
	return rule.Parameters
}

// isEmpty is true for a missing, nil or empty value
func isEmpty(v interface{}) bool {
	switch vt := v.(type) {
	case nil:
		return true
	case string:
		return vt == ""
	case []interface{}:
		return len(vt) == 0
	case map[string]interface{}:
		return len(vt) == 0
	case fftypes.JSONObject:
		return len(vt) == 0
	default:
		return false
	}
}

// toFloat converts numbers, and strings holding a number, to a float
func toFloat(v interface{}) (float64, bool) {
	switch vt := v.(type) {
	case float64:
		return vt, !math.IsNaN(vt)
	case float32:
		return float64(vt), true
	case int:
		return float64(vt), true
	case int64:
		return float64(vt), true
	case int32:
		return float64(vt), true
	case uint:
		return float64(vt), true
	case uint64:
		return float64(vt), true
	case json.Number:
		f, err := vt.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(vt), 64)
		return f, err == nil && !math.IsNaN(f)
	default:
		return 0, false
	}
}

func displayValue(v interface{}) string {
	switch vt := v.(type) {
	case string:
		return vt
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// uniqueKey distinguishes values by JSON kind as well as content, so the
// number 1 and the string "1" are different values. Numbers compare by value.
func uniqueKey(v interface{}) string {
	switch vt := v.(type) {
	case string:
		return "s:" + vt
	case bool:
		return "b:" + strconv.FormatBool(vt)
	case float64, float32, int, int64, int32, uint, uint64, json.Number:
		if f, ok := toFloat(v); ok {
			return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
		}
	}
	return fmt.Sprintf("%T:%s", v, displayValue(v))
}

func checkRequired(ctx context.Context, rule *fftypes.ValidationRule, rows fftypes.JSONObjectArray) ([]*fftypes.RowIssue, error) {
	var issues []*fftypes.RowIssue
	for i, row := range rows {
		if isEmpty(row[rule.Field]) {
			issues = append(issues, rowIssue(rule, i, fmt.Sprintf("field '%s' is required", rule.Field)))
		}
	}
	return issues, nil
}

// checkRange applies inclusive bounds. Empty values are left to required rules.
func checkRange(ctx context.Context, rule *fftypes.ValidationRule, rows fftypes.JSONObjectArray) ([]*fftypes.RowIssue, error) {
	params := parameters(rule)
	var issues []*fftypes.RowIssue
	for i, row := range rows {
		v := row[rule.Field]
		if isEmpty(v) {
			continue
		}
		f, ok := toFloat(v)
		switch {
		case !ok:
			issues = append(issues, rowIssue(rule, i, fmt.Sprintf("value '%s' of field '%s' is not numeric", displayValue(v), rule.Field)))
		case params.Min != nil && f < *params.Min:
			issues = append(issues, rowIssue(rule, i, fmt.Sprintf("value %v of field '%s' is less than the minimum %v", f, rule.Field, *params.Min)))
		case params.Max != nil && f > *params.Max:
			issues = append(issues, rowIssue(rule, i, fmt.Sprintf("value %v of field '%s' is greater than the maximum %v", f, rule.Field, *params.Max)))
		}
	}
	return issues, nil
}

func (e *evaluator) checkPattern(ctx context.Context, rule *fftypes.ValidationRule, rows fftypes.JSONObjectArray) ([]*fftypes.RowIssue, error) {
	re, err := e.compilePattern(parameters(rule).Pattern)
	if err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgRuleConfigError, ruleName(rule), err)
	}
	var issues []*fftypes.RowIssue
	for i, row := range rows {
		v := row[rule.Field]
		if isEmpty(v) {
			continue
		}
		s := displayValue(v)
		if !re.MatchString(s) {
			issues = append(issues, rowIssue(rule, i, fmt.Sprintf("value '%s' of field '%s' does not match pattern '%s'", s, rule.Field, re)))
		}
	}
	return issues, nil
}

// checkUniqueness flags every repeat of a value after its first occurrence
func checkUniqueness(ctx context.Context, rule *fftypes.ValidationRule, rows fftypes.JSONObjectArray) ([]*fftypes.RowIssue, error) {
	firstSeen := make(map[string]int)
	var issues []*fftypes.RowIssue
	for i, row := range rows {
		v := row[rule.Field]
		if isEmpty(v) {
			continue
		}
		key := uniqueKey(v)
		if first, ok := firstSeen[key]; ok {
			issue := rowIssue(rule, i, fmt.Sprintf("value '%s' of field '%s' duplicates row %d", displayValue(v), rule.Field, first))
			related := first
			issue.RelatedRowIndex = &related
			issues = append(issues, issue)
			continue
		}
		firstSeen[key] = i
	}
	return issues, nil
}

func (e *evaluator) checkDataType(ctx context.Context, rule *fftypes.ValidationRule, rows fftypes.JSONObjectArray) ([]*fftypes.RowIssue, error) {
	dataType := parameters(rule).DataType
	schema := e.dataTypes[dataType]
	var issues []*fftypes.RowIssue
	for i, row := range rows {
		v := row[rule.Field]
		if v == nil {
			continue
		}
		res, err := schema.Validate(gojsonschema.NewGoLoader(v))
		if err != nil {
			issues = append(issues, rowIssue(rule, i, fmt.Sprintf("value of field '%s' cannot be checked: %s", rule.Field, err)))
			continue
		}
		if !res.Valid() {
			errStrings := make([]string, len(res.Errors()))
			for j, re := range res.Errors() {
				errStrings[j] = re.Description()
			}
			issues = append(issues, rowIssue(rule, i, fmt.Sprintf("value '%s' of field '%s' is not of type %s: %s",
				displayValue(v), rule.Field, dataType, strings.Join(errStrings, ","))))
		}
	}
	return issues, nil
}

// checkCustom runs a registered validator against each row with a value. Errors
// and panics inside the validator fail the row, and never escape the rule.
func (e *evaluator) checkCustom(ctx context.Context, rule *fftypes.ValidationRule, rows fftypes.JSONObjectArray) ([]*fftypes.RowIssue, error) {
	params := parameters(rule)
	validator, ok := e.validators.get(params.Validator)
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgValidatorNotRegistered, params.Validator, strings.Join(e.validators.names(), ","))
	}
	var issues []*fftypes.RowIssue
	for i, row := range rows {
		v := row[rule.Field]
		if isEmpty(v) {
			continue
		}
		if ok, message := runValidator(ctx, validator, params, v, row); !ok {
			issues = append(issues, rowIssue(rule, i, message))
		}
	}
	return issues, nil
}

func runValidator(ctx context.Context, validator Validator, params *fftypes.RuleParameters, value interface{}, row fftypes.JSONObject) (ok bool, message string) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			message = fmt.Sprintf("validator '%s' failed: %v", params.Validator, r)
		}
	}()
	ok, message, err := validator(ctx, value, row, params.Options)
	if err != nil {
		return false, fmt.Sprintf("validator '%s' failed: %s", params.Validator, err)
	}
	if !ok && message == "" {
		message = fmt.Sprintf("validator '%s' rejected the value", params.Validator)
	}
	return ok, message
}
