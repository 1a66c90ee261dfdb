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
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kaleido-io/emissionsledger/internal/fftypes"
)

// Validator is a named predicate used by custom rules. A false result fails the
// row with the returned message. An error or a panic also fails the row.
type Validator func(ctx context.Context, value interface{}, row fftypes.JSONObject, options fftypes.JSONObject) (bool, string, error)

type validatorRegistry struct {
	mux        sync.RWMutex
	validators map[string]Validator
}

func newValidatorRegistry() *validatorRegistry {
	vr := &validatorRegistry{
		validators: make(map[string]Validator),
	}
	for name, v := range builtinValidators {
		vr.validators[name] = v
	}
	return vr
}

func (vr *validatorRegistry) register(name string, v Validator) {
	vr.mux.Lock()
	defer vr.mux.Unlock()
	vr.validators[name] = v
}

func (vr *validatorRegistry) get(name string) (Validator, bool) {
	vr.mux.RLock()
	defer vr.mux.RUnlock()
	v, ok := vr.validators[name]
	return v, ok
}

// names lists the registered validators, sorted
func (vr *validatorRegistry) names() []string {
	vr.mux.RLock()
	defer vr.mux.RUnlock()
	names := make([]string, 0, len(vr.validators))
	for name := range vr.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builtinValidators = map[string]Validator{
	"positive":    positiveValidator,
	"nonNegative": nonNegativeValidator,
	"isoDate":     isoDateValidator,
	"oneOf":       oneOfValidator,
	"sumEquals":   sumEqualsValidator,
}

func positiveValidator(ctx context.Context, value interface{}, row fftypes.JSONObject, options fftypes.JSONObject) (bool, string, error) {
	f, ok := toFloat(value)
	if !ok {
		return false, fmt.Sprintf("value '%v' is not numeric", value), nil
	}
	return f > 0, fmt.Sprintf("value %v is not positive", value), nil
}

func nonNegativeValidator(ctx context.Context, value interface{}, row fftypes.JSONObject, options fftypes.JSONObject) (bool, string, error) {
	f, ok := toFloat(value)
	if !ok {
		return false, fmt.Sprintf("value '%v' is not numeric", value), nil
	}
	return f >= 0, fmt.Sprintf("value %v is negative", value), nil
}

func isoDateValidator(ctx context.Context, value interface{}, row fftypes.JSONObject, options fftypes.JSONObject) (bool, string, error) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Sprintf("value '%v' is not a string", value), nil
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true, "", nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true, "", nil
	}
	return false, fmt.Sprintf("value '%s' is not an ISO 8601 date", s), nil
}

// oneOfValidator accepts values listed in the "values" option, as a comma separated string or an array
func oneOfValidator(ctx context.Context, value interface{}, row fftypes.JSONObject, options fftypes.JSONObject) (bool, string, error) {
	var allowed []string
	switch v := options["values"].(type) {
	case string:
		allowed = strings.Split(v, ",")
	case []interface{}:
		for _, a := range v {
			allowed = append(allowed, fmt.Sprintf("%v", a))
		}
	default:
		return false, "", fmt.Errorf("option 'values' is required")
	}
	s := fmt.Sprintf("%v", value)
	for _, a := range allowed {
		if strings.TrimSpace(a) == s {
			return true, "", nil
		}
	}
	return false, fmt.Sprintf("value '%s' is not one of [%s]", s, strings.Join(allowed, ",")), nil
}

// sumEqualsValidator checks the value equals the sum of the row fields named in the "fields" option
func sumEqualsValidator(ctx context.Context, value interface{}, row fftypes.JSONObject, options fftypes.JSONObject) (bool, string, error) {
	fields, ok := options["fields"].([]interface{})
	if !ok || len(fields) == 0 {
		return false, "", fmt.Errorf("option 'fields' is required")
	}
	total, ok := toFloat(value)
	if !ok {
		return false, fmt.Sprintf("value '%v' is not numeric", value), nil
	}
	sum := 0.0
	for _, f := range fields {
		name := fmt.Sprintf("%v", f)
		part, ok := toFloat(row[name])
		if !ok {
			return false, fmt.Sprintf("field '%s' is not numeric", name), nil
		}
		sum += part
	}
	tolerance := 1e-9
	if t, ok := toFloat(options["tolerance"]); ok {
		tolerance = t
	}
	diff := total - sum
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance, fmt.Sprintf("value %v does not equal the sum %v", value, sum), nil
}
