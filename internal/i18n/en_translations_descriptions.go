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

//revive:disable
var (
	MsgRouteDescVerifyFile          = ffm("EV10300", "Validate a mapped file against the rules of its schema, and optionally sign and anchor a verification record to the ledger")
	MsgRouteDescGetRecord           = ffm("EV10301", "Get a verification record from the ledger, optionally re-verifying its signature and ledger inclusion")
	MsgRouteDescPostFile            = ffm("EV10302", "Register a file with its rows, computing its checksum")
	MsgRouteDescGetFile             = ffm("EV10303", "Get a file by ID")
	MsgRouteDescPostMapping         = ffm("EV10304", "Apply a column mapping to a file, moving it to the mapped state")
	MsgRouteDescResetFile           = ffm("EV10305", "Reset a file that failed verification with a retryable error back to the mapped state")
	MsgRouteDescPostRule            = ffm("EV10306", "Create a validation rule for a schema")
	MsgRouteDescGetSchemaRules      = ffm("EV10307", "List the validation rules for a schema")
	MsgRouteDescPostReferenceData   = ffm("EV10308", "Create or update a reference data entry")
	MsgRouteDescPostIdentifier      = ffm("EV10309", "Create a new self-certifying identifier")
	MsgRouteDescGetIdentifier       = ffm("EV10310", "Get an identifier by ID")
	MsgRouteDescRotateIdentifier    = ffm("EV10311", "Rotate the keys of an identifier to its pre-committed next key")
	MsgRouteDescEraseIdentifier     = ffm("EV10312", "Erase the personal data of an identifier")
	MsgRouteDescGetIdentifierEvents = ffm("EV10313", "Get the event log of an identifier")
	MsgRouteDescGetTransaction      = ffm("EV10314", "Get the status of a ledger transaction")
	MsgRouteDescRevokeIdentifier    = ffm("EV10315", "Revoke an identifier, so it can no longer sign")
	MsgRouteDescVerifyIdentifierLog = ffm("EV10316", "Recompute the digest chain of the event log of an identifier")
	MsgRouteDescGetFileRecord       = ffm("EV10317", "Get the latest verification record of a file")
	MsgSuccessResponse              = ffm("EV10318", "Success")
	MsgPathParamFileID              = ffm("EV10319", "The file ID")
	MsgPathParamRecordID            = ffm("EV10320", "The verification record ID")
	MsgPathParamSchemaID            = ffm("EV10321", "The schema ID")
	MsgPathParamIdentifierID        = ffm("EV10322", "The identifier ID")
	MsgPathParamTxID                = ffm("EV10323", "The ledger transaction ID")
	MsgQueryParamVerifyOnBlockchain = ffm("EV10324", "Re-verify the record signature and its inclusion on the ledger")
	MsgQueryParamActiveOnly         = ffm("EV10325", "Only return active rules")
)
