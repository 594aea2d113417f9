/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package attestationstore is the durable copy of resolved trust chains. One
// document per entity, replaced wholesale on every successful resolution.
package attestationstore

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eudi-wallet/openid4vp-rp/pkg/service/federation"
	"github.com/eudi-wallet/openid4vp-rp/pkg/storage/mongodb"
)

const attestationCollection = "federation_attestation"

type attestationDocument struct {
	EntityID    string                 `bson:"_id"`
	Attestation map[string]interface{} `bson:"attestation"`
	ExpireAt    time.Time              `bson:"expireAt"`
}

// Store keeps trust attestations in mongo, keyed by entity id. A TTL index on
// expireAt drops attestations once their chain validity lapses.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates the store and its TTL index.
func New(mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{mongoClient: mongoClient}

	if err := s.migrate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate() error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	_, err := s.mongoClient.Database().Collection(attestationCollection).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "expireAt", Value: 1}},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		})

	return err
}

// Put stores or replaces the attestation for its entity.
func (s *Store) Put(attestation *federation.TrustAttestation) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	content, err := mongodb.StructureToMap(attestation)
	if err != nil {
		return fmt.Errorf("serialize attestation: %w", err)
	}

	doc := &attestationDocument{
		EntityID:    attestation.EntityID,
		Attestation: content,
		ExpireAt:    attestation.ValidUntil,
	}

	_, err = s.mongoClient.Database().Collection(attestationCollection).
		ReplaceOne(ctxWithTimeout,
			bson.M{"_id": attestation.EntityID}, doc,
			options.Replace().SetUpsert(true))

	return err
}

// Get returns the stored attestation for an entity. Attestations past their
// validity are reported as absent even before the TTL sweep runs.
func (s *Store) Get(entityID string) (*federation.TrustAttestation, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	doc := &attestationDocument{}

	err := s.mongoClient.Database().Collection(attestationCollection).
		FindOne(ctxWithTimeout, bson.M{"_id": entityID}).Decode(doc)

	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && doc.ExpireAt.Before(time.Now().UTC())) {
		return nil, federation.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find attestation: %w", err)
	}

	attestation := &federation.TrustAttestation{}
	if err = mongodb.MapToStructure(doc.Attestation, attestation); err != nil {
		return nil, fmt.Errorf("deserialize attestation: %w", err)
	}

	return attestation, nil
}
