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

package database

import (
	"context"

	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
)

type Plugin interface {
	PersistenceInterface // Split out to aid pluggability the next level down (SQL provider etc.)

	// InitPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// Capabilities returns capabilities - not called until after Init
	Capabilities() *Capabilities
}

type PersistenceInterface interface {
	// Name is the name of the database plugin
	Name() string

	// RunAsGroup instructs the database plugin that all database operations performed within the context
	// function can be grouped into a single transaction (if supported).
	// Note, the caller is responsible for passing the context back to all database operations performed within the supplied function.
	RunAsGroup(ctx context.Context, fn func(ctx context.Context) error) error

	// InsertFile registers a new file in the file store
	InsertFile(ctx context.Context, file *fftypes.File) error

	// GetFileByID returns the file, or nil if not found
	GetFileByID(ctx context.Context, id *fftypes.UUID) (*fftypes.File, error)

	// UpdateFileMapping sets the mapping and mapped data of a file, moves it to mapped, and clears any prior error.
	// Returns false, leaving the file untouched, when the file is being validated.
	UpdateFileMapping(ctx context.Context, id *fftypes.UUID, version int64, mapping fftypes.FieldMapping, mappedData fftypes.JSONObjectArray) (bool, error)

	// UpdateFileStatus atomically moves the file from one status to another.
	// Returns false if the file was not in the expected status.
	UpdateFileStatus(ctx context.Context, id *fftypes.UUID, from, to fftypes.FileStatus) (bool, error)

	// ResetRetryableFile atomically moves a file in error, flagged retryable, back to mapped.
	// Returns false if the file was not in that state.
	ResetRetryableFile(ctx context.Context, id *fftypes.UUID) (bool, error)

	// UpdateFileOutcome records the outcome of a verification attempt on the file
	UpdateFileOutcome(ctx context.Context, id *fftypes.UUID, outcome *FileOutcome) error

	// InsertValidationRule creates a rule
	InsertValidationRule(ctx context.Context, rule *fftypes.ValidationRule) error

	// GetValidationRules returns the rules for a schema, optionally only the active ones
	GetValidationRules(ctx context.Context, schemaID string, activeOnly bool) ([]*fftypes.ValidationRule, error)

	// UpsertReferenceData creates or replaces the entry for the (type, code) pair
	UpsertReferenceData(ctx context.Context, rd *fftypes.ReferenceData) error

	// GetReferenceData returns the entry for the (type, code) pair, or nil if not found
	GetReferenceData(ctx context.Context, refType, code string) (*fftypes.ReferenceData, error)

	// GetReferenceCodes returns the codes registered under a reference type
	GetReferenceCodes(ctx context.Context, refType string) ([]string, error)

	// InsertIdentifier creates an identifier
	InsertIdentifier(ctx context.Context, identifier *fftypes.Identifier) error

	// UpdateIdentifier replaces the mutable state of an identifier (status, keys, metadata, sequence, head digest)
	UpdateIdentifier(ctx context.Context, identifier *fftypes.Identifier) error

	// GetIdentifierByID returns the identifier, or nil if not found
	GetIdentifierByID(ctx context.Context, id string) (*fftypes.Identifier, error)

	// InsertKeyPair stores a newly generated key pair. Key pairs are never updated.
	InsertKeyPair(ctx context.Context, kp *fftypes.KeyPair) error

	// GetKeyPairByID returns the key pair, or nil if not found
	GetKeyPairByID(ctx context.Context, id string) (*fftypes.KeyPair, error)

	// InsertIdentifierEvent appends to the event log of an identifier. Events are never updated.
	InsertIdentifierEvent(ctx context.Context, event *fftypes.IdentifierEvent) error

	// GetIdentifierEvents returns the event log of an identifier in sequence order
	GetIdentifierEvents(ctx context.Context, identifier string) ([]*fftypes.IdentifierEvent, error)
}

// FileOutcome is the set of fields written on a file at the end of a verification step
type FileOutcome struct {
	Status               fftypes.FileStatus
	ValidationResults    *fftypes.ValidationResults
	VerificationRecordID string
	BlockchainTxID       string
	Retryable            bool
	LastError            string
}

// Capabilities defines the capabilities a plugin can report as implementing or not
type Capabilities struct {
	ConditionalUpdates bool
}
