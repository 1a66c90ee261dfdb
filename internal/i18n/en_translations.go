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

package i18n

import "net/http"

//revive:disable
var (
	MsgConfigFailed           = ffm("EV10101", "Failed to read config: %s")
	MsgJSONDecodeFailed       = ffm("EV10102", "Failed to decode input JSON", http.StatusBadRequest)
	MsgAPIServerStartFailed   = ffm("EV10103", "Unable to start listener on %s: %s")
	MsgResponseMarshalError   = ffm("EV10104", "Failed to serialize response data", http.StatusInternalServerError)
	Msg404NotFound            = ffm("EV10105", "Not found", http.StatusNotFound)
	MsgRequestTimeout         = ffm("EV10106", "The request with id '%s' timed out after %.2fms", http.StatusRequestTimeout)
	MsgRequestTimeoutDesc     = ffm("EV10107", "Server-side request timeout (millseconds, or set a custom suffix like 10s)")
	MsgUnknownDatabasePlugin  = ffm("EV10108", "Unknown database plugin '%s'", http.StatusBadRequest)
	MsgUnknownLedgerPlugin    = ffm("EV10109", "Unknown ledger plugin '%s'", http.StatusBadRequest)
	MsgUnknownKeySuite        = ffm("EV10110", "Unknown signing suite '%s'", http.StatusBadRequest)
	MsgDBInitFailed           = ffm("EV10111", "Database initialization failed")
	MsgDBMigrationFailed      = ffm("EV10112", "Database migration failed")
	MsgDBBeginFailed          = ffm("EV10113", "Database begin transaction failed")
	MsgDBQueryBuildFailed     = ffm("EV10114", "Database query builder failed")
	MsgDBQueryFailed          = ffm("EV10115", "Database query failed")
	MsgDBInsertFailed         = ffm("EV10116", "Database insert failed")
	MsgDBUpdateFailed         = ffm("EV10117", "Database update failed")
	MsgDBCommitFailed         = ffm("EV10118", "Database commit failed")
	MsgDBReadErr              = ffm("EV10119", "Database resultset read error from table '%s'")
	MsgMissingPluginConfig    = ffm("EV10120", "Missing configuration '%s' for %s")
	MsgLedgerRESTErr          = ffm("EV10121", "Error from ledger gateway: %s", http.StatusBadGateway)
	MsgTimeParseFail          = ffm("EV10122", "Cannot parse time as RFC3339Nano: '%s'", http.StatusBadRequest)
	MsgInvalidUUID            = ffm("EV10123", "Invalid UUID supplied", http.StatusBadRequest)
	MsgInvalidWrongLenB32     = ffm("EV10124", "Byte length must be 32 (64 hex characters)", http.StatusBadRequest)
	MsgScanFailed             = ffm("EV10125", "Restore failed: '%s' into '%T'")
	MsgSerializationFailed    = ffm("EV10126", "Failed to produce canonical encoding", http.StatusInternalServerError)
	MsgInvalidRequestTimeout  = ffm("EV10127", "Invalid request timeout value '%s'", http.StatusBadRequest)
	MsgInvalidCAFile          = ffm("EV10128", "Invalid CA certificates file")
	MsgTLSConfigFailed        = ffm("EV10129", "Failed to initialize TLS configuration")
	MsgInvalidBoolParam       = ffm("EV10130", "Invalid boolean value for query parameter '%s'", http.StatusBadRequest)
	MsgCacheMissSizeLimitKey  = ffm("EV10131", "Could not initialize cache - size limit config key is not provided")
	MsgCacheMissTTLKey        = ffm("EV10132", "Could not initialize cache - ttl config key is not provided")
	MsgCacheConfigKeyMismatch = ffm("EV10133", "Could not initialize cache - '%s' and '%s' do not have identical prefix, mismatching prefixes are: '%s','%s'")
	MsgCacheUnexpectedSizeKey = ffm("EV10134", "Could not initialize cache - '%s' is not an expected size configuration key suffix. Expected values are: 'size', 'limit'")
	MsgInitNilDependency      = ffm("EV10135", "Initialization error due to unmet dependency")
	MsgContextCanceled        = ffm("EV10136", "Context cancelled")
	MsgInvalidOutputOption    = ffm("EV10137", "Invalid output option '%s'")
	MsgInvalidTLSVersion      = ffm("EV10138", "Invalid TLS minimum version '%s', supported values are '1.2' and '1.3'", http.StatusBadRequest)
	MsgFileNotFound           = ffm("EV10200", "File '%s' not found", http.StatusNotFound)
	MsgRecordNotFound         = ffm("EV10201", "Verification record '%s' not found", http.StatusNotFound)
	MsgIdentifierNotFound     = ffm("EV10202", "Identifier '%s' not found", http.StatusNotFound)
	MsgTransactionNotFound    = ffm("EV10203", "Ledger transaction '%s' not found", http.StatusNotFound)
	MsgInvalidFileState       = ffm("EV10204", "File '%s' is in state '%s' and cannot be verified, a mapped file is required", http.StatusConflict)
	MsgIdentifierNotActive    = ffm("EV10205", "Identifier '%s' is in state '%s'", http.StatusConflict)
	MsgErasedIdentifier       = ffm("EV10206", "Identifier '%s' has been erased", http.StatusConflict)
	MsgKeyGenerationFailed    = ffm("EV10207", "Key generation failed for suite '%s'", http.StatusInternalServerError)
	MsgSigningFailed          = ffm("EV10208", "Signing of verification record '%s' failed", http.StatusInternalServerError)
	MsgLedgerSubmissionFailed = ffm("EV10209", "Submission of verification record '%s' to the ledger failed", http.StatusBadGateway)
	MsgDuplicateRecord        = ffm("EV10210", "Verification record '%s' already exists on the ledger", http.StatusConflict)
	MsgInvalidRecord          = ffm("EV10211", "Verification record is invalid: %s", http.StatusBadRequest)
	MsgRuleConfigError        = ffm("EV10212", "Rule '%s' has an invalid configuration: %s", http.StatusBadRequest)
	MsgValidationFailed       = ffm("EV10213", "Validation failed with %d error(s)", http.StatusUnprocessableEntity)
	MsgKeyNotFound            = ffm("EV10214", "Key '%s' not found", http.StatusNotFound)
	MsgLockTimeout            = ffm("EV10215", "Timed out waiting for lock on '%s'", http.StatusRequestTimeout)
	MsgEventLogTampered       = ffm("EV10216", "Event log for identifier '%s' failed verification at sequence %d", http.StatusInternalServerError)
	MsgFileNotRetryable       = ffm("EV10217", "File '%s' is in state '%s' and cannot be reset", http.StatusConflict)
	MsgInvalidMapping         = ffm("EV10218", "Invalid mapping for file '%s': %s", http.StatusBadRequest)
	MsgInvalidRuleType        = ffm("EV10219", "Unknown rule type '%s'", http.StatusBadRequest)
	MsgMissingField           = ffm("EV10220", "Missing required field '%s'", http.StatusBadRequest)
	MsgInvalidSignature       = ffm("EV10221", "Signature is malformed: %s", http.StatusBadRequest)
	MsgValidatorNotRegistered = ffm("EV10222", "Custom validator '%s' is not registered, available validators: %s", http.StatusBadRequest)
	MsgOperationTimeout       = ffm("EV10223", "%s did not complete within %s", http.StatusGatewayTimeout)
	MsgFileStateConflict      = ffm("EV10224", "File '%s' is being verified and cannot be changed", http.StatusConflict)
	MsgInvalidSeverity        = ffm("EV10225", "Unknown rule severity '%s'", http.StatusBadRequest)
	MsgNoRowsToVerify         = ffm("EV10226", "File '%s' has no mapped data", http.StatusConflict)
	MsgInvalidIdentifierEvent = ffm("EV10227", "Invalid event '%s' for identifier '%s'", http.StatusInternalServerError)
	MsgFileHasNoRecord        = ffm("EV10228", "File '%s' has no verification record", http.StatusNotFound)
	MsgInvalidContentType     = ffm("EV10229", "Invalid content type", http.StatusUnsupportedMediaType)
	Msg404NoResult            = ffm("EV10230", "No result found", http.StatusNotFound)
	MsgRequestTooLarge        = ffm("EV10231", "Request body exceeds the limit of %s", http.StatusRequestEntityTooLarge)
)
