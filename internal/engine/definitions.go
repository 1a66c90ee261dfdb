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

package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/log"
)

// CreateFile registers the rows of a file. The checksum covers the canonical
// JSON of the rows, which has sorted object keys.
func (e *engine) CreateFile(ctx context.Context, input *fftypes.FileInput) (*fftypes.File, error) {
	if input == nil || input.Name == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingField, "name")
	}
	if input.SchemaID == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingField, "schemaId")
	}
	rows := input.Rows
	if rows == nil {
		rows = fftypes.JSONObjectArray{}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgSerializationFailed)
	}
	file := &fftypes.File{
		ID:       fftypes.NewUUID(),
		Name:     i18n.SanitizeLimit(input.Name, 256),
		SchemaID: input.SchemaID,
		Status:   fftypes.FileStatusUploaded,
		Checksum: fftypes.SHA256Bytes(b),
		RawData:  rows,
		Created:  fftypes.Now(),
	}
	if err := e.database.InsertFile(ctx, file); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Registered file %s '%s' with %d rows checksum=%s", file.ID, file.Name, len(rows), file.Checksum)
	return file, nil
}

func (e *engine) checkMapping(ctx context.Context, file *fftypes.File, mapping fftypes.FieldMapping) error {
	if len(mapping) == 0 {
		return i18n.NewError(ctx, i18n.MsgInvalidMapping, file.ID, "no fields are mapped")
	}
	columns := map[string]bool{}
	for _, row := range file.RawData {
		for column := range row {
			columns[column] = true
		}
	}
	for target, source := range mapping {
		if strings.TrimSpace(target) == "" || strings.TrimSpace(source) == "" {
			return i18n.NewError(ctx, i18n.MsgInvalidMapping, file.ID, "field names cannot be empty")
		}
		if len(file.RawData) > 0 && !columns[source] {
			return i18n.NewError(ctx, i18n.MsgInvalidMapping, file.ID, fmt.Sprintf("column '%s' is not in the file", source))
		}
	}
	return nil
}

// MapFile applies a mapping to the raw rows. Each mapping is a new version of
// the file, so a later verification record links back to the earlier ones.
func (e *engine) MapFile(ctx context.Context, id string, input *fftypes.MappingInput) (*fftypes.File, error) {
	file, err := e.getFile(ctx, id)
	if err != nil {
		return nil, err
	}
	if file.Status == fftypes.FileStatusValidating {
		return nil, i18n.NewError(ctx, i18n.MsgFileStateConflict, id)
	}
	var mapping fftypes.FieldMapping
	if input != nil {
		mapping = input.Mapping
	}
	if err := e.checkMapping(ctx, file, mapping); err != nil {
		return nil, err
	}
	version := file.Version + 1
	updated, err := e.database.UpdateFileMapping(ctx, file.ID, version, mapping, mapping.Apply(file.RawData))
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, i18n.NewError(ctx, i18n.MsgFileStateConflict, id)
	}
	log.L(ctx).Infof("Mapped file %s to version %d", file.ID, version)
	return e.getFile(ctx, id)
}

func (e *engine) ResetFile(ctx context.Context, id string) (*fftypes.File, error) {
	u, err := fftypes.ParseUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.verification.ResetFile(ctx, u)
}

func (e *engine) CreateRule(ctx context.Context, rule *fftypes.ValidationRule) (*fftypes.ValidationRule, error) {
	if rule == nil {
		return nil, i18n.NewError(ctx, i18n.MsgMissingField, "ruleType")
	}
	if rule.SchemaID == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingField, "schemaId")
	}
	if rule.Severity == "" {
		rule.Severity = fftypes.SeverityError
	}
	if err := e.rules.ValidateRule(ctx, rule); err != nil {
		return nil, err
	}
	if rule.Name == "" {
		rule.Name = fmt.Sprintf("%s %s", rule.RuleType, rule.Field)
	}
	rule.Name = i18n.SanitizeLimit(rule.Name, 256)
	rule.Message = i18n.SanitizeLimit(rule.Message, 1024)
	rule.ID = fftypes.NewUUID()
	rule.Created = fftypes.Now()
	if err := e.database.InsertValidationRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (e *engine) UpsertReferenceData(ctx context.Context, rd *fftypes.ReferenceData) (*fftypes.ReferenceData, error) {
	if rd == nil || rd.Type == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingField, "type")
	}
	if rd.Code == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingField, "code")
	}
	if rd.ID == nil {
		rd.ID = fftypes.NewUUID()
	}
	rd.Created = fftypes.Now()
	if err := e.database.UpsertReferenceData(ctx, rd); err != nil {
		return nil, err
	}
	e.rules.InvalidateReference(rd.Type, rd.Code)
	return rd, nil
}

func (e *engine) CreateIdentifier(ctx context.Context, input *fftypes.IdentifierInput) (*fftypes.Identifier, error) {
	if input == nil {
		input = &fftypes.IdentifierInput{}
	}
	return e.identity.CreateIdentifier(ctx, input.Controller, input.Metadata)
}

func (e *engine) RotateIdentifier(ctx context.Context, id string) (*fftypes.RotationResult, error) {
	return e.identity.RotateKeys(ctx, id)
}

func (e *engine) EraseIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error) {
	return e.identity.ImplementErasure(ctx, id)
}

func (e *engine) RevokeIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error) {
	return e.identity.RevokeIdentifier(ctx, id)
}

func (e *engine) VerifyFile(ctx context.Context, id string, req *fftypes.VerifyRequest) (*fftypes.VerifyResult, error) {
	u, err := fftypes.ParseUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.verification.VerifyFile(ctx, u, req)
}
