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
	"database/sql/driver"
)

type RuleOutcome string

const (
	RuleOutcomePass          RuleOutcome = "Pass"
	RuleOutcomeFail          RuleOutcome = "Fail"
	RuleOutcomeWarning       RuleOutcome = "Warning"
	RuleOutcomeNotApplicable RuleOutcome = "NotApplicable"
)

// RuleResult is the aggregated outcome of one rule across all rows
type RuleResult struct {
	RuleID   string      `json:"ruleId"`
	RuleName string      `json:"ruleName,omitempty"`
	RuleType RuleType    `json:"ruleType,omitempty"`
	Severity Severity    `json:"severity,omitempty"`
	Result   RuleOutcome `json:"result"`
	Message  string      `json:"message,omitempty"`
}

// RowIssue is a single failure of a rule against a row
type RowIssue struct {
	RuleID          string   `json:"ruleId"`
	RuleName        string   `json:"ruleName,omitempty"`
	Field           string   `json:"field,omitempty"`
	RowIndex        int      `json:"rowIndex"`
	RelatedRowIndex *int     `json:"relatedRowIndex,omitempty"`
	Severity        Severity `json:"severity"`
	Message         string   `json:"message"`
}

// ValidationResults is the outcome of evaluating the rules of a schema against a file
type ValidationResults struct {
	IsValid      bool          `json:"isValid"`
	RowCount     int           `json:"rowCount"`
	ErrorCount   int           `json:"errorCount"`
	WarningCount int           `json:"warningCount"`
	InfoCount    int           `json:"infoCount"`
	RuleResults  []*RuleResult `json:"ruleResults"`
	Errors       []*RowIssue   `json:"errors"`
	Warnings     []*RowIssue   `json:"warnings"`
	Info         []*RowIssue   `json:"info"`
	Validated    *FFTime       `json:"validated,omitempty"`
}

func (vr *ValidationResults) Scan(src interface{}) error {
	return scanJSON(src, vr)
}

func (vr *ValidationResults) Value() (driver.Value, error) {
	if vr == nil {
		return nil, nil
	}
	return valueJSON(vr)
}
