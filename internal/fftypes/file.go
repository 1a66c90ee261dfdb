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

type FileStatus string

const (
	FileStatusUploaded   FileStatus = "uploaded"
	FileStatusMapped     FileStatus = "mapped"
	FileStatusValidating FileStatus = "validating"
	FileStatusValidated  FileStatus = "validated"
	FileStatusError      FileStatus = "error"
	FileStatusVerified   FileStatus = "verified"
)

// FieldMapping maps each target schema field to the source column it is populated from
type FieldMapping map[string]string

func (fm *FieldMapping) Scan(src interface{}) error {
	return scanJSON(src, fm)
}

func (fm FieldMapping) Value() (driver.Value, error) {
	if fm == nil {
		return nil, nil
	}
	return valueJSON(map[string]string(fm))
}

// Apply produces the mapped rows, keyed by target field. Source columns that
// are not mapped are dropped, and missing source columns are left unset.
func (fm FieldMapping) Apply(rows JSONObjectArray) JSONObjectArray {
	mapped := make(JSONObjectArray, len(rows))
	for i, row := range rows {
		mappedRow := JSONObject{}
		for target, source := range fm {
			if v, ok := row[source]; ok {
				mappedRow[target] = v
			}
		}
		mapped[i] = mappedRow
	}
	return mapped
}

// File is an uploaded emissions data file, as held in the file store
type File struct {
	ID                   *UUID              `json:"id"`
	Name                 string             `json:"name"`
	SchemaID             string             `json:"schemaId"`
	Status               FileStatus         `json:"status"`
	Checksum             *Bytes32           `json:"checksum"`
	Version              int64              `json:"version"`
	RawData              JSONObjectArray    `json:"rawData,omitempty"`
	Mapping              FieldMapping       `json:"mapping,omitempty"`
	MappedData           JSONObjectArray    `json:"mappedData,omitempty"`
	ValidationResults    *ValidationResults `json:"validationResults,omitempty"`
	VerificationRecordID string             `json:"verificationRecordId,omitempty"`
	BlockchainTxID       string             `json:"blockchainTxId,omitempty"`
	Retryable            bool               `json:"retryable"`
	LastError            string             `json:"lastError,omitempty"`
	Created              *FFTime            `json:"created,omitempty"`
	Updated              *FFTime            `json:"updated,omitempty"`
}

// FileInput is the body used to register a file
type FileInput struct {
	Name     string          `json:"name"`
	SchemaID string          `json:"schemaId"`
	Rows     JSONObjectArray `json:"rows"`
}

// MappingInput is the body used to map a file onto its schema
type MappingInput struct {
	Mapping FieldMapping `json:"mapping"`
}
