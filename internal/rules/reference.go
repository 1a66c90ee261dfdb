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
	"strings"

	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/log"
)

func referenceCacheKey(refType, code string) string {
	return refType + "/" + code
}

// InvalidateReference drops a cached lookup, after the reference data has changed
func (e *evaluator) InvalidateReference(refType, code string) {
	e.referenceCache.Delete(referenceCacheKey(refType, code))
}

// referenceExists looks up a (type, code) pair. Only hits are cached, so new
// reference data is seen as soon as it is written.
func (e *evaluator) referenceExists(ctx context.Context, refType, code string) (bool, error) {
	key := referenceCacheKey(refType, code)
	if cached := e.referenceCache.Get(key); cached != nil {
		return true, nil
	}
	rd, err := e.database.GetReferenceData(ctx, refType, code)
	if err != nil {
		return false, err
	}
	if rd == nil {
		return false, nil
	}
	e.referenceCache.Set(key, rd)
	return true, nil
}

// expectedSet describes the codes of a reference type, for miss messages
func (e *evaluator) expectedSet(ctx context.Context, refType string) string {
	codes, err := e.database.GetReferenceCodes(ctx, refType)
	if err != nil {
		log.L(ctx).Warnf("Failed to list reference codes for '%s': %s", refType, err)
		return fmt.Sprintf("reference set '%s'", refType)
	}
	if len(codes) == 0 {
		return fmt.Sprintf("reference set '%s' (empty)", refType)
	}
	if len(codes) > maxExpectedCodes {
		codes = append(codes[0:maxExpectedCodes:maxExpectedCodes], "...")
	}
	return fmt.Sprintf("reference set '%s' [%s]", refType, strings.Join(codes, ","))
}

func (e *evaluator) checkReference(ctx context.Context, rule *fftypes.ValidationRule, rows fftypes.JSONObjectArray) ([]*fftypes.RowIssue, error) {
	refType := parameters(rule).ReferenceType
	expected := ""
	misses := make(map[string]bool)
	var issues []*fftypes.RowIssue
	for i, row := range rows {
		v := row[rule.Field]
		if isEmpty(v) {
			continue
		}
		code := displayValue(v)
		missed, seen := misses[code]
		if !seen {
			found, err := e.referenceExists(ctx, refType, code)
			if err != nil {
				return nil, err
			}
			missed = !found
			misses[code] = missed
		}
		if missed {
			if expected == "" {
				expected = e.expectedSet(ctx, refType)
			}
			issues = append(issues, rowIssue(rule, i, fmt.Sprintf("value '%s' of field '%s' is not in %s", code, rule.Field, expected)))
		}
	}
	return issues, nil
}
