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

type RuleType string

const (
	RuleTypeRequired   RuleType = "required"
	RuleTypeRange      RuleType = "range"
	RuleTypePattern    RuleType = "pattern"
	RuleTypeUniqueness RuleType = "uniqueness"
	RuleTypeReference  RuleType = "reference"
	RuleTypeDataType   RuleType = "dataType"
	RuleTypeCustom     RuleType = "custom"
)

var RuleTypes = []RuleType{
	RuleTypeRequired,
	RuleTypeRange,
	RuleTypePattern,
	RuleTypeUniqueness,
	RuleTypeReference,
	RuleTypeDataType,
	RuleTypeCustom,
}

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// SeverityOrder is the presentation order of severities
var SeverityOrder = []Severity{SeverityError, SeverityWarning, SeverityInfo}

func (s Severity) Valid() bool {
	for _, o := range SeverityOrder {
		if s == o {
			return true
		}
	}
	return false
}

// RuleParameters are the type specific parameters of a rule
type RuleParameters struct {
	Min           *float64   `json:"min,omitempty"`
	Max           *float64   `json:"max,omitempty"`
	Pattern       string     `json:"pattern,omitempty"`
	ReferenceType string     `json:"referenceType,omitempty"`
	DataType      string     `json:"dataType,omitempty"`
	Validator     string     `json:"validator,omitempty"`
	Options       JSONObject `json:"options,omitempty"`
}

func (rp *RuleParameters) Scan(src interface{}) error {
	return scanJSON(src, rp)
}

func (rp *RuleParameters) Value() (driver.Value, error) {
	if rp == nil {
		return nil, nil
	}
	return valueJSON(rp)
}

type ValidationRule struct {
	ID         *UUID           `json:"id"`
	SchemaID   string          `json:"schemaId"`
	Name       string          `json:"name"`
	RuleType   RuleType        `json:"ruleType"`
	Field      string          `json:"field"`
	Parameters *RuleParameters `json:"parameters,omitempty"`
	Severity   Severity        `json:"severity"`
	Active     bool            `json:"active"`
	Message    string          `json:"message,omitempty"`
	Created    *FFTime         `json:"created,omitempty"`
}

type ReferenceData struct {
	ID      *UUID      `json:"id"`
	Type    string     `json:"type"`
	Code    string     `json:"code"`
	Name    string     `json:"name,omitempty"`
	Value   JSONObject `json:"value,omitempty"`
	Created *FFTime    `json:"created,omitempty"`
}
