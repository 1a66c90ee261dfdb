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

type IdentifierStatus string

const (
	IdentifierStatusActive  IdentifierStatus = "Active"
	IdentifierStatusRevoked IdentifierStatus = "Revoked"
	IdentifierStatusErased  IdentifierStatus = "Erased"
)

// IdentifierPrefix is the derivation code prefixed to self-addressing identifiers
const IdentifierPrefix = "E"

// KeyIDPrefix is the derivation code prefixed to the encoded public key in a key id
const KeyIDPrefix = "D"

// KeyPairSet holds the key ids of an identifier. The next key is generated
// at the same time as the current one, so an identifier can always rotate.
type KeyPairSet struct {
	Current  string `json:"current"`
	Next     string `json:"next"`
	Previous string `json:"previous,omitempty"`
}

// Identifier is a self-certifying signing identity
type Identifier struct {
	ID         string           `json:"id"`
	Controller string           `json:"controller"`
	Status     IdentifierStatus `json:"status"`
	KeyPairID  string           `json:"keyPairId"`
	Keys       *KeyPairSet      `json:"keys"`
	Metadata   JSONObject       `json:"metadata,omitempty"`
	Sequence   int64            `json:"sequence"`
	HeadDigest *Bytes32         `json:"headDigest,omitempty"`
	Created    *FFTime          `json:"created"`
	Updated    *FFTime          `json:"updated"`
}

// KeyPair is stored once when generated, and never changed
type KeyPair struct {
	ID         string  `json:"id"`
	Identifier string  `json:"identifier"`
	Suite      string  `json:"suite"`
	PublicKey  []byte  `json:"publicKey"`
	PrivateKey []byte  `json:"-"`
	Created    *FFTime `json:"created"`
}

type IdentifierEventType string

const (
	IdentifierEventInception            IdentifierEventType = "inception"
	IdentifierEventRotation             IdentifierEventType = "rotation"
	IdentifierEventSignature            IdentifierEventType = "signature"
	IdentifierEventErasure              IdentifierEventType = "erasure"
	IdentifierEventRevocation           IdentifierEventType = "revocation"
	IdentifierEventAmbientVerifiability IdentifierEventType = "ambient-verifiability"
)

// IdentifierEvent is one entry in the append-only event log of an identifier.
// Each digest covers the event content and the digest of the prior event.
type IdentifierEvent struct {
	Seq           int64               `json:"seq"`
	Identifier    string              `json:"identifier"`
	Type          IdentifierEventType `json:"type"`
	KeyID         string              `json:"keyId,omitempty"`
	NextKeyDigest *Bytes32            `json:"nextKeyDigest,omitempty"`
	DataDigest    *Bytes32            `json:"dataDigest,omitempty"`
	PriorDigest   *Bytes32            `json:"priorDigest,omitempty"`
	Digest        *Bytes32            `json:"digest"`
	Timestamp     *FFTime             `json:"timestamp"`
}

type identifierEventDigestPayload struct {
	Seq           int64  `json:"seq"`
	Identifier    string `json:"identifier"`
	Type          string `json:"type"`
	KeyID         string `json:"keyId"`
	NextKeyDigest string `json:"nextKeyDigest"`
	DataDigest    string `json:"dataDigest"`
	PriorDigest   string `json:"priorDigest"`
	Timestamp     string `json:"timestamp"`
}

// DigestPayload is the content of the event covered by its digest
func (e *IdentifierEvent) DigestPayload() interface{} {
	return &identifierEventDigestPayload{
		Seq:           e.Seq,
		Identifier:    e.Identifier,
		Type:          string(e.Type),
		KeyID:         e.KeyID,
		NextKeyDigest: e.NextKeyDigest.String(),
		DataDigest:    e.DataDigest.String(),
		PriorDigest:   e.PriorDigest.String(),
		Timestamp:     e.Timestamp.String(),
	}
}

// RotationResult is returned from a key rotation
type RotationResult struct {
	Identifier *Identifier      `json:"identifier"`
	Previous   string           `json:"previous"`
	Current    string           `json:"current"`
	Next       string           `json:"next"`
	Event      *IdentifierEvent `json:"event"`
}

// EventLogVerification is the outcome of recomputing the digest chain of an event log
type EventLogVerification struct {
	Identifier string           `json:"identifier"`
	Valid      bool             `json:"valid"`
	EventCount int              `json:"eventCount"`
	HeadDigest *Bytes32         `json:"headDigest,omitempty"`
	Event      *IdentifierEvent `json:"event,omitempty"`
}

// IdentifierInput is the body used to create an identifier
type IdentifierInput struct {
	Controller string     `json:"controller"`
	Metadata   JSONObject `json:"metadata,omitempty"`
}
