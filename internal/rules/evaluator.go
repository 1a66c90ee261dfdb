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
	"regexp"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/kaleido-io/emissionsledger/internal/cache"
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/database"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/log"
	"github.com/kaleido-io/emissionsledger/internal/metrics"
	"github.com/xeipuuv/gojsonschema"
)

// Evaluator applies typed validation rules to the mapped rows of a file.
// Evaluation is deterministic, and a failing rule never aborts the others.
type Evaluator interface {
	Evaluate(ctx context.Context, rules []*fftypes.ValidationRule, rows fftypes.JSONObjectArray) *fftypes.ValidationResults
	ValidateRule(ctx context.Context, rule *fftypes.ValidationRule) error
	RegisterValidator(name string, v Validator)
	InvalidateReference(refType, code string)
}

type evaluator struct {
	database       database.PersistenceInterface
	metrics        metrics.Manager
	referenceCache cache.CInterface
	patternCache   *lru.Cache
	dataTypes      map[string]*gojsonschema.Schema
	validators     *validatorRegistry
}

// ruleOutcome is the result of one rule across every row
type ruleOutcome struct {
	rule   *fftypes.ValidationRule
	result *fftypes.RuleResult
	issues []*fftypes.RowIssue
}

func NewEvaluator(ctx context.Context, di database.PersistenceInterface, cm cache.Manager, mm metrics.Manager) (Evaluator, error) {
	if di == nil || cm == nil || mm == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitNilDependency)
	}
	referenceCache, err := cm.GetCache(cache.NewCacheConfig(ctx, config.RulesReferenceCacheLimit, config.RulesReferenceCacheTTL))
	if err != nil {
		return nil, err
	}
	patternCache, err := lru.New(config.GetInt(config.RulesPatternCacheSize))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgRuleConfigError, "pattern", config.RulesPatternCacheSize)
	}
	dataTypes, err := compileDataTypes(ctx)
	if err != nil {
		return nil, err
	}
	return &evaluator{
		database:       di,
		metrics:        mm,
		referenceCache: referenceCache,
		patternCache:   patternCache,
		dataTypes:      dataTypes,
		validators:     newValidatorRegistry(),
	}, nil
}

func (e *evaluator) RegisterValidator(name string, v Validator) {
	e.validators.register(name, v)
}

func ruleName(rule *fftypes.ValidationRule) string {
	if rule.Name != "" {
		return rule.Name
	}
	return rule.ID.String()
}

func (e *evaluator) Evaluate(ctx context.Context, rules []*fftypes.ValidationRule, rows fftypes.JSONObjectArray) *fftypes.ValidationResults {
	active := make([]*fftypes.ValidationRule, 0, len(rules))
	for _, rule := range rules {
		if rule != nil {
			active = append(active, rule)
		}
	}
	outcomes := make([]*ruleOutcome, len(active))
	var wg sync.WaitGroup
	for i, rule := range active {
		wg.Add(1)
		go func(i int, rule *fftypes.ValidationRule) {
			defer wg.Done()
			outcomes[i] = e.evaluateRule(ctx, rule, rows)
		}(i, rule)
	}
	wg.Wait()

	// Group for presentation, errors first. The stable sort keeps the declared order within a severity.
	sort.SliceStable(outcomes, func(i, j int) bool {
		return severityRank(outcomes[i].rule.Severity) < severityRank(outcomes[j].rule.Severity)
	})

	results := &fftypes.ValidationResults{
		RowCount:    len(rows),
		RuleResults: make([]*fftypes.RuleResult, 0, len(outcomes)),
		Errors:      []*fftypes.RowIssue{},
		Warnings:    []*fftypes.RowIssue{},
		Info:        []*fftypes.RowIssue{},
	}
	for _, o := range outcomes {
		results.RuleResults = append(results.RuleResults, o.result)
		for _, issue := range o.issues {
			switch issue.Severity {
			case fftypes.SeverityWarning:
				results.Warnings = append(results.Warnings, issue)
			case fftypes.SeverityInfo:
				results.Info = append(results.Info, issue)
			default:
				results.Errors = append(results.Errors, issue)
			}
		}
		e.metrics.RuleEvaluated(o.rule.RuleType, o.result.Result)
	}
	results.ErrorCount = len(results.Errors)
	results.WarningCount = len(results.Warnings)
	results.InfoCount = len(results.Info)
	results.IsValid = results.ErrorCount == 0
	results.Validated = fftypes.Now()
	log.L(ctx).Infof("Evaluated %d rules against %d rows: valid=%t errors=%d warnings=%d info=%d",
		len(active), len(rows), results.IsValid, results.ErrorCount, results.WarningCount, results.InfoCount)
	return results
}

// severityRank orders severities for presentation, with unknown severities treated as errors
func severityRank(s fftypes.Severity) int {
	for i, o := range fftypes.SeverityOrder {
		if s == o {
			return i
		}
	}
	return 0
}

func effectiveSeverity(s fftypes.Severity) fftypes.Severity {
	if s.Valid() {
		return s
	}
	return fftypes.SeverityError
}

// evaluateRule runs one rule against all rows. A panic anywhere in the rule is
// recovered into a failed outcome carrying a single rule level issue.
func (e *evaluator) evaluateRule(ctx context.Context, rule *fftypes.ValidationRule, rows fftypes.JSONObjectArray) (o *ruleOutcome) {
	o = &ruleOutcome{rule: rule}
	defer func() {
		if r := recover(); r != nil {
			log.L(ctx).Errorf("Rule '%s' panicked: %v", ruleName(rule), r)
			o.issues = []*fftypes.RowIssue{e.ruleIssue(rule, fmt.Sprintf("rule evaluation failed: %v", r))}
			o.result = e.ruleResult(rule, fftypes.RuleOutcomeFail, fmt.Sprintf("rule evaluation failed: %v", r))
		}
	}()

	if len(rows) == 0 {
		o.result = e.ruleResult(rule, fftypes.RuleOutcomeNotApplicable, "no rows to evaluate")
		return o
	}

	check, err := e.checkFor(ctx, rule)
	if err == nil {
		o.issues, err = check(ctx, rule, rows)
	}
	if err != nil {
		log.L(ctx).Warnf("Rule '%s' could not be evaluated: %s", ruleName(rule), err)
		o.issues = []*fftypes.RowIssue{e.ruleIssue(rule, err.Error())}
		o.result = e.ruleResult(rule, fftypes.RuleOutcomeFail, err.Error())
		return o
	}

	switch {
	case len(o.issues) == 0:
		o.result = e.ruleResult(rule, fftypes.RuleOutcomePass, "")
	case effectiveSeverity(rule.Severity) == fftypes.SeverityError:
		o.result = e.ruleResult(rule, fftypes.RuleOutcomeFail, fmt.Sprintf("%d of %d rows failed", len(o.issues), len(rows)))
	default:
		o.result = e.ruleResult(rule, fftypes.RuleOutcomeWarning, fmt.Sprintf("%d of %d rows failed", len(o.issues), len(rows)))
	}
	return o
}

func (e *evaluator) ruleResult(rule *fftypes.ValidationRule, outcome fftypes.RuleOutcome, message string) *fftypes.RuleResult {
	return &fftypes.RuleResult{
		RuleID:   rule.ID.String(),
		RuleName: rule.Name,
		RuleType: rule.RuleType,
		Severity: effectiveSeverity(rule.Severity),
		Result:   outcome,
		Message:  message,
	}
}

// ruleIssue is an issue that applies to the rule as a whole, rather than to a row
func (e *evaluator) ruleIssue(rule *fftypes.ValidationRule, message string) *fftypes.RowIssue {
	return &fftypes.RowIssue{
		RuleID:   rule.ID.String(),
		RuleName: rule.Name,
		Field:    rule.Field,
		RowIndex: -1,
		Severity: effectiveSeverity(rule.Severity),
		Message:  message,
	}
}

func rowIssue(rule *fftypes.ValidationRule, rowIndex int, message string) *fftypes.RowIssue {
	if rule.Message != "" {
		message = rule.Message
	}
	return &fftypes.RowIssue{
		RuleID:   rule.ID.String(),
		RuleName: rule.Name,
		Field:    rule.Field,
		RowIndex: rowIndex,
		Severity: effectiveSeverity(rule.Severity),
		Message:  message,
	}
}

type ruleCheck func(ctx context.Context, rule *fftypes.ValidationRule, rows fftypes.JSONObjectArray) ([]*fftypes.RowIssue, error)

// checkFor resolves the check for a rule, failing with a configuration error
// if the rule cannot be evaluated as configured
func (e *evaluator) checkFor(ctx context.Context, rule *fftypes.ValidationRule) (ruleCheck, error) {
	if err := e.ValidateRule(ctx, rule); err != nil {
		return nil, err
	}
	switch rule.RuleType {
	case fftypes.RuleTypeRequired:
		return checkRequired, nil
	case fftypes.RuleTypeRange:
		return checkRange, nil
	case fftypes.RuleTypePattern:
		return e.checkPattern, nil
	case fftypes.RuleTypeUniqueness:
		return checkUniqueness, nil
	case fftypes.RuleTypeReference:
		return e.checkReference, nil
	case fftypes.RuleTypeDataType:
		return e.checkDataType, nil
	default:
		return e.checkCustom, nil
	}
}

// ValidateRule checks a rule is complete and evaluable, so misconfigured rules can be rejected when they are defined
func (e *evaluator) ValidateRule(ctx context.Context, rule *fftypes.ValidationRule) error {
	if rule.Field == "" {
		return i18n.NewError(ctx, i18n.MsgRuleConfigError, ruleName(rule), "field is required")
	}
	if rule.Severity != "" && !rule.Severity.Valid() {
		return i18n.NewError(ctx, i18n.MsgInvalidSeverity, rule.Severity)
	}
	params := rule.Parameters
	if params == nil {
		params = &fftypes.RuleParameters{}
	}
	switch rule.RuleType {
	case fftypes.RuleTypeRequired, fftypes.RuleTypeUniqueness:
	case fftypes.RuleTypeRange:
		if params.Min != nil && params.Max != nil && *params.Min > *params.Max {
			return i18n.NewError(ctx, i18n.MsgRuleConfigError, ruleName(rule), "min is greater than max")
		}
	case fftypes.RuleTypePattern:
		if _, err := e.compilePattern(params.Pattern); err != nil {
			return i18n.NewError(ctx, i18n.MsgRuleConfigError, ruleName(rule), err)
		}
	case fftypes.RuleTypeReference:
		if params.ReferenceType == "" {
			return i18n.NewError(ctx, i18n.MsgRuleConfigError, ruleName(rule), "referenceType is required")
		}
	case fftypes.RuleTypeDataType:
		if _, ok := e.dataTypes[params.DataType]; !ok {
			return i18n.NewError(ctx, i18n.MsgRuleConfigError, ruleName(rule), fmt.Sprintf("unsupported dataType '%s'", params.DataType))
		}
	case fftypes.RuleTypeCustom:
		if _, ok := e.validators.get(params.Validator); !ok {
			return i18n.NewError(ctx, i18n.MsgValidatorNotRegistered, params.Validator, strings.Join(e.validators.names(), ","))
		}
	default:
		return i18n.NewError(ctx, i18n.MsgInvalidRuleType, rule.RuleType)
	}
	return nil
}

func (e *evaluator) compilePattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := e.patternCache.Get(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	if pattern == "" {
		return nil, fmt.Errorf("pattern is required")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	e.patternCache.Add(pattern, re)
	return re, nil
}
