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

package identity

import (
	"context"
	"io"

	"github.com/akamensky/base58"
	"github.com/kaleido-io/emissionsledger/internal/cache"
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/database"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/keys"
	"github.com/kaleido-io/emissionsledger/internal/log"
	"github.com/kaleido-io/emissionsledger/internal/metrics"
)

// Manager owns self-certifying identifiers: their keys, the pre-rotation of
// those keys, and the tamper-evident event log recording every change
type Manager interface {
	CreateIdentifier(ctx context.Context, controller string, metadata fftypes.JSONObject) (*fftypes.Identifier, error)
	RotateKeys(ctx context.Context, id string) (*fftypes.RotationResult, error)
	Sign(ctx context.Context, id string, data interface{}) (*fftypes.Signature, error)
	Verify(ctx context.Context, id string, data interface{}, sig *fftypes.Signature) (bool, error)
	ImplementErasure(ctx context.Context, id string) (*fftypes.Identifier, error)
	RevokeIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error)
	GetIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error)
	GetEventLog(ctx context.Context, id string) ([]*fftypes.IdentifierEvent, error)
	VerifyEventLog(ctx context.Context, id string) (*fftypes.EventLogVerification, error)
}

type identityManager struct {
	database        database.Plugin
	metrics         metrics.Manager
	entropy         io.Reader
	suite           keys.Suite
	suites          map[string]keys.Suite
	identifierCache cache.CInterface
	locks           *identifierLocks
}

// inceptionPayload is the content digested to derive the id of a new identifier
type inceptionPayload struct {
	Controller    string `json:"controller"`
	KeyID         string `json:"keyId"`
	NextKeyDigest string `json:"nextKeyDigest"`
	Timestamp     string `json:"timestamp"`
}

// NewIdentityManager creates the manager. Key material is drawn from the
// entropy source, which defaults to crypto/rand when nil.
func NewIdentityManager(ctx context.Context, di database.Plugin, cm cache.Manager, mm metrics.Manager, entropy io.Reader) (Manager, error) {
	if di == nil || cm == nil || mm == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitNilDependency)
	}
	suite, err := keys.GetSuite(ctx, config.GetString(config.IdentitySuite), entropy)
	if err != nil {
		return nil, err
	}
	identifierCache, err := cm.GetCache(cache.NewCacheConfig(ctx, config.IdentityCacheLimit, config.IdentityCacheTTL))
	if err != nil {
		return nil, err
	}
	im := &identityManager{
		database:        di,
		metrics:         mm,
		entropy:         entropy,
		suite:           suite,
		suites:          map[string]keys.Suite{suite.Name(): suite},
		identifierCache: identifierCache,
		locks:           newIdentifierLocks(config.GetDuration(config.IdentityLockTimeout)),
	}
	return im, nil
}

func (im *identityManager) getSuite(ctx context.Context, name string) (keys.Suite, error) {
	if s, ok := im.suites[name]; ok {
		return s, nil
	}
	return keys.GetSuite(ctx, name, im.entropy)
}

func (im *identityManager) generateKeyPair(ctx context.Context, identifier string) (*fftypes.KeyPair, error) {
	pub, priv, err := im.suite.GenerateKeyPair(ctx)
	if err != nil {
		return nil, err
	}
	return &fftypes.KeyPair{
		ID:         keys.KeyID(pub),
		Identifier: identifier,
		Suite:      im.suite.Name(),
		PublicKey:  pub,
		PrivateKey: priv,
		Created:    fftypes.Now(),
	}, nil
}

// copyIdentifier returns a copy that can be changed without affecting readers of the cached entry
func copyIdentifier(identifier *fftypes.Identifier) *fftypes.Identifier {
	cp := *identifier
	if identifier.Keys != nil {
		keysCopy := *identifier.Keys
		cp.Keys = &keysCopy
	}
	return &cp
}

func (im *identityManager) getIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error) {
	if cached := im.identifierCache.Get(id); cached != nil {
		return cached.(*fftypes.Identifier), nil
	}
	identifier, err := im.database.GetIdentifierByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if identifier == nil {
		return nil, i18n.NewError(ctx, i18n.MsgIdentifierNotFound, id)
	}
	im.identifierCache.Set(id, identifier)
	return identifier, nil
}

func (im *identityManager) GetIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error) {
	identifier, err := im.getIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyIdentifier(identifier), nil
}

func (im *identityManager) getKeyPair(ctx context.Context, keyID string) (*fftypes.KeyPair, error) {
	kp, err := im.database.GetKeyPairByID(ctx, keyID)
	if err != nil {
		return nil, err
	}
	if kp == nil {
		return nil, i18n.NewError(ctx, i18n.MsgKeyNotFound, keyID)
	}
	return kp, nil
}

// sealEvent chains the event onto the head of the log of the identifier, and
// advances the identifier to the new head
func sealEvent(ctx context.Context, identifier *fftypes.Identifier, event *fftypes.IdentifierEvent) error {
	event.Identifier = identifier.ID
	event.PriorDigest = identifier.HeadDigest
	if event.Type == fftypes.IdentifierEventInception {
		event.Seq = 0
	} else {
		event.Seq = identifier.Sequence + 1
	}
	if event.Timestamp == nil {
		event.Timestamp = fftypes.Now()
	}
	digest, err := keys.Digest(ctx, event.DigestPayload())
	if err != nil {
		return err
	}
	event.Digest = digest
	identifier.Sequence = event.Seq
	identifier.HeadDigest = digest
	identifier.Updated = event.Timestamp
	return nil
}

// commitEvent writes the changed identifier together with the event that
// records the change, in one database transaction
func (im *identityManager) commitEvent(ctx context.Context, identifier *fftypes.Identifier, event *fftypes.IdentifierEvent, newKeys ...*fftypes.KeyPair) error {
	err := im.database.RunAsGroup(ctx, func(ctx context.Context) error {
		for _, kp := range newKeys {
			if err := im.database.InsertKeyPair(ctx, kp); err != nil {
				return err
			}
		}
		var err error
		if event.Type == fftypes.IdentifierEventInception {
			err = im.database.InsertIdentifier(ctx, identifier)
		} else {
			err = im.database.UpdateIdentifier(ctx, identifier)
		}
		if err != nil {
			return err
		}
		return im.database.InsertIdentifierEvent(ctx, event)
	})
	im.identifierCache.Delete(identifier.ID)
	if err == nil {
		log.L(ctx).Infof("Identifier %s event %d: %s", identifier.ID, event.Seq, event.Type)
		im.metrics.CountIdentifierEvent(event.Type)
	}
	return err
}

func (im *identityManager) CreateIdentifier(ctx context.Context, controller string, metadata fftypes.JSONObject) (*fftypes.Identifier, error) {
	if controller == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingField, "controller")
	}

	current, err := im.generateKeyPair(ctx, "")
	if err != nil {
		return nil, err
	}
	next, err := im.generateKeyPair(ctx, "")
	if err != nil {
		return nil, err
	}

	now := fftypes.Now()
	nextKeyDigest := keys.DigestBytes(next.PublicKey)
	inceptionDigest, err := keys.Digest(ctx, &inceptionPayload{
		Controller:    controller,
		KeyID:         current.ID,
		NextKeyDigest: nextKeyDigest.String(),
		Timestamp:     now.String(),
	})
	if err != nil {
		return nil, err
	}

	identifier := &fftypes.Identifier{
		ID:         fftypes.IdentifierPrefix + base58.Encode(inceptionDigest[:]),
		Controller: controller,
		Status:     fftypes.IdentifierStatusActive,
		KeyPairID:  current.ID,
		Keys: &fftypes.KeyPairSet{
			Current: current.ID,
			Next:    next.ID,
		},
		Metadata: metadata,
		Created:  now,
	}
	current.Identifier = identifier.ID
	next.Identifier = identifier.ID

	event := &fftypes.IdentifierEvent{
		Type:          fftypes.IdentifierEventInception,
		KeyID:         current.ID,
		NextKeyDigest: nextKeyDigest,
		Timestamp:     now,
	}
	if err := sealEvent(ctx, identifier, event); err != nil {
		return nil, err
	}
	if err := im.commitEvent(ctx, identifier, event, current, next); err != nil {
		return nil, err
	}
	return identifier, nil
}

// lastNextKeyCommitment finds the digest of the next key committed to by the
// most recent establishment event (inception or rotation) in the log
func (im *identityManager) lastNextKeyCommitment(ctx context.Context, id string) (*fftypes.Bytes32, error) {
	events, err := im.database.GetIdentifierEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := len(events) - 1; i >= 0; i-- {
		switch events[i].Type {
		case fftypes.IdentifierEventInception, fftypes.IdentifierEventRotation:
			return events[i].NextKeyDigest, nil
		}
	}
	return nil, i18n.NewError(ctx, i18n.MsgInvalidIdentifierEvent, fftypes.IdentifierEventRotation, id)
}

func (im *identityManager) RotateKeys(ctx context.Context, id string) (*fftypes.RotationResult, error) {
	unlock, err := im.locks.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	identifier, err := im.getIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	if identifier.Status != fftypes.IdentifierStatusActive {
		return nil, i18n.NewError(ctx, i18n.MsgIdentifierNotActive, id, identifier.Status)
	}

	// The pre-rotated key must match the digest committed to when it was generated
	promoted, err := im.getKeyPair(ctx, identifier.Keys.Next)
	if err != nil {
		return nil, err
	}
	commitment, err := im.lastNextKeyCommitment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !commitment.Equals(keys.DigestBytes(promoted.PublicKey)) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidIdentifierEvent, fftypes.IdentifierEventRotation, id)
	}

	next, err := im.generateKeyPair(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := copyIdentifier(identifier)
	updated.Keys = &fftypes.KeyPairSet{
		Previous: identifier.Keys.Current,
		Current:  promoted.ID,
		Next:     next.ID,
	}
	updated.KeyPairID = promoted.ID

	event := &fftypes.IdentifierEvent{
		Type:          fftypes.IdentifierEventRotation,
		KeyID:         promoted.ID,
		NextKeyDigest: keys.DigestBytes(next.PublicKey),
	}
	if err := sealEvent(ctx, updated, event); err != nil {
		return nil, err
	}
	if err := im.commitEvent(ctx, updated, event, next); err != nil {
		return nil, err
	}
	return &fftypes.RotationResult{
		Identifier: updated,
		Previous:   updated.Keys.Previous,
		Current:    updated.Keys.Current,
		Next:       updated.Keys.Next,
		Event:      event,
	}, nil
}

func (im *identityManager) Sign(ctx context.Context, id string, data interface{}) (*fftypes.Signature, error) {
	unlock, err := im.locks.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	identifier, err := im.getIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	switch identifier.Status {
	case fftypes.IdentifierStatusActive:
	case fftypes.IdentifierStatusErased:
		return nil, i18n.NewError(ctx, i18n.MsgErasedIdentifier, id)
	default:
		return nil, i18n.NewError(ctx, i18n.MsgIdentifierNotActive, id, identifier.Status)
	}

	kp, err := im.getKeyPair(ctx, identifier.Keys.Current)
	if err != nil {
		return nil, err
	}
	suite, err := im.getSuite(ctx, kp.Suite)
	if err != nil {
		return nil, err
	}
	payload, err := keys.Canonical(ctx, data)
	if err != nil {
		return nil, err
	}
	sigBytes, err := suite.Sign(ctx, kp.PrivateKey, payload)
	if err != nil {
		im.metrics.CountSigningFailure()
		return nil, err
	}

	// The log holds only a digest of what was signed
	updated := copyIdentifier(identifier)
	event := &fftypes.IdentifierEvent{
		Type:       fftypes.IdentifierEventSignature,
		KeyID:      kp.ID,
		DataDigest: keys.DigestBytes(payload),
	}
	if err := sealEvent(ctx, updated, event); err != nil {
		return nil, err
	}
	if err := im.commitEvent(ctx, updated, event); err != nil {
		return nil, err
	}
	im.metrics.CountSignature()
	return &fftypes.Signature{
		IdentifierID: id,
		KeyID:        kp.ID,
		Timestamp:    event.Timestamp,
		Signature:    keys.EncodeSignature(sigBytes),
	}, nil
}

// Verify checks the signature with the key it names, provided that key
// belongs to the identifier. Signatures made before a rotation, or before
// the identifier was revoked or erased, still verify.
func (im *identityManager) Verify(ctx context.Context, id string, data interface{}, sig *fftypes.Signature) (bool, error) {
	identifier, err := im.getIdentifier(ctx, id)
	if err != nil {
		return false, err
	}
	if sig == nil || sig.Signature == "" {
		return false, nil
	}
	if sig.IdentifierID != "" && sig.IdentifierID != id {
		log.L(ctx).Warnf("Signature by '%s' presented for identifier '%s'", sig.IdentifierID, id)
		return false, nil
	}

	keyID := sig.KeyID
	if keyID == "" {
		keyID = identifier.Keys.Current
	}
	kp, err := im.database.GetKeyPairByID(ctx, keyID)
	if err != nil {
		return false, err
	}
	if kp == nil || kp.Identifier != id {
		log.L(ctx).Warnf("Key '%s' does not belong to identifier '%s'", keyID, id)
		return false, nil
	}
	suite, err := im.getSuite(ctx, kp.Suite)
	if err != nil {
		return false, err
	}
	sigBytes, err := keys.DecodeSignature(ctx, sig.Signature)
	if err != nil {
		return false, nil
	}
	payload, err := keys.Canonical(ctx, data)
	if err != nil {
		return false, err
	}
	return suite.Verify(kp.PublicKey, payload, sigBytes), nil
}

// ImplementErasure strips the personal data held against an identifier, and
// stops it signing. The event log, which holds no personal data, is kept.
func (im *identityManager) ImplementErasure(ctx context.Context, id string) (*fftypes.Identifier, error) {
	unlock, err := im.locks.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	identifier, err := im.getIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	if identifier.Status == fftypes.IdentifierStatusErased {
		return nil, i18n.NewError(ctx, i18n.MsgErasedIdentifier, id)
	}

	updated := copyIdentifier(identifier)
	updated.Status = fftypes.IdentifierStatusErased
	updated.Metadata = nil
	event := &fftypes.IdentifierEvent{
		Type: fftypes.IdentifierEventErasure,
	}
	if err := sealEvent(ctx, updated, event); err != nil {
		return nil, err
	}
	if err := im.commitEvent(ctx, updated, event); err != nil {
		return nil, err
	}
	return updated, nil
}

func (im *identityManager) RevokeIdentifier(ctx context.Context, id string) (*fftypes.Identifier, error) {
	unlock, err := im.locks.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	identifier, err := im.getIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	switch identifier.Status {
	case fftypes.IdentifierStatusActive:
	case fftypes.IdentifierStatusErased:
		return nil, i18n.NewError(ctx, i18n.MsgErasedIdentifier, id)
	default:
		return nil, i18n.NewError(ctx, i18n.MsgIdentifierNotActive, id, identifier.Status)
	}

	updated := copyIdentifier(identifier)
	updated.Status = fftypes.IdentifierStatusRevoked
	event := &fftypes.IdentifierEvent{
		Type:  fftypes.IdentifierEventRevocation,
		KeyID: identifier.Keys.Current,
	}
	if err := sealEvent(ctx, updated, event); err != nil {
		return nil, err
	}
	if err := im.commitEvent(ctx, updated, event); err != nil {
		return nil, err
	}
	return updated, nil
}

func (im *identityManager) GetEventLog(ctx context.Context, id string) ([]*fftypes.IdentifierEvent, error) {
	if _, err := im.getIdentifier(ctx, id); err != nil {
		return nil, err
	}
	return im.database.GetIdentifierEvents(ctx, id)
}

// checkEventLog recomputes the digest chain, returning the first event that
// does not verify, or nil if the whole log is intact
func checkEventLog(ctx context.Context, identifier *fftypes.Identifier, events []*fftypes.IdentifierEvent) (*fftypes.IdentifierEvent, error) {
	var prior *fftypes.Bytes32
	for i, event := range events {
		if event.Seq != int64(i) || event.Identifier != identifier.ID || !event.PriorDigest.Equals(prior) {
			return event, nil
		}
		if (i == 0) != (event.Type == fftypes.IdentifierEventInception) {
			return event, nil
		}
		digest, err := keys.Digest(ctx, event.DigestPayload())
		if err != nil {
			return nil, err
		}
		if !digest.Equals(event.Digest) {
			return event, nil
		}
		prior = event.Digest
	}
	return nil, nil
}

// VerifyEventLog recomputes the digest chain of the log. When the log is
// intact, an event recording the verified head is appended to it.
func (im *identityManager) VerifyEventLog(ctx context.Context, id string) (*fftypes.EventLogVerification, error) {
	unlock, err := im.locks.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	identifier, err := im.getIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	events, err := im.database.GetIdentifierEvents(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &fftypes.EventLogVerification{
		Identifier: id,
		EventCount: len(events),
	}
	failed, err := checkEventLog(ctx, identifier, events)
	if err != nil {
		return nil, err
	}
	if failed == nil && (len(events) == 0 || !events[len(events)-1].Digest.Equals(identifier.HeadDigest)) {
		// Log truncated, or the identifier has moved on without it
		if len(events) > 0 {
			failed = events[len(events)-1]
		} else {
			failed = &fftypes.IdentifierEvent{Identifier: id, Seq: 0}
		}
	}
	if failed != nil {
		log.L(ctx).Errorf("%s", i18n.NewError(ctx, i18n.MsgEventLogTampered, id, failed.Seq))
		result.Event = failed
		return result, nil
	}

	updated := copyIdentifier(identifier)
	event := &fftypes.IdentifierEvent{
		Type:       fftypes.IdentifierEventAmbientVerifiability,
		DataDigest: identifier.HeadDigest,
	}
	if err := sealEvent(ctx, updated, event); err != nil {
		return nil, err
	}
	if err := im.commitEvent(ctx, updated, event); err != nil {
		return nil, err
	}
	result.Valid = true
	result.HeadDigest = event.DataDigest
	result.Event = event
	return result, nil
}
