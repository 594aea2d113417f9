/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package anchorstore holds the federation trust anchors. Anchors are seeded
// at process start from operator configuration and are read-only afterwards.
package anchorstore

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eudi-wallet/openid4vp-rp/pkg/service/federation"
	"github.com/eudi-wallet/openid4vp-rp/pkg/storage/mongodb"
)

const anchorCollection = "federation_trust_anchor"

type anchorDocument struct {
	EntityID string                 `bson:"_id"`
	Anchor   map[string]interface{} `bson:"anchor"`
}

// Store keeps configured trust anchors in mongo.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates the store.
func New(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Seed replaces the anchor set with the configured one.
func (s *Store) Seed(anchors []*federation.TrustAnchor) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	collection := s.mongoClient.Database().Collection(anchorCollection)

	for _, anchor := range anchors {
		content, err := mongodb.StructureToMap(anchor)
		if err != nil {
			return fmt.Errorf("serialize trust anchor: %w", err)
		}

		doc := &anchorDocument{
			EntityID: anchor.EntityID,
			Anchor:   content,
		}

		if _, err = collection.ReplaceOne(ctxWithTimeout,
			bson.M{"_id": anchor.EntityID}, doc,
			options.Replace().SetUpsert(true)); err != nil {
			return fmt.Errorf("seed trust anchor %s: %w", anchor.EntityID, err)
		}
	}

	return nil
}

// Get returns one anchor by entity id.
func (s *Store) Get(entityID string) (*federation.TrustAnchor, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	doc := &anchorDocument{}

	err := s.mongoClient.Database().Collection(anchorCollection).
		FindOne(ctxWithTimeout, bson.M{"_id": entityID}).Decode(doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, federation.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find trust anchor: %w", err)
	}

	return anchorFromDocument(doc)
}

// GetAll returns every configured anchor.
func (s *Store) GetAll() ([]*federation.TrustAnchor, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	cursor, err := s.mongoClient.Database().Collection(anchorCollection).
		Find(ctxWithTimeout, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list trust anchors: %w", err)
	}

	defer cursor.Close(ctxWithTimeout) //nolint: errcheck

	var anchors []*federation.TrustAnchor

	for cursor.Next(ctxWithTimeout) {
		doc := &anchorDocument{}
		if err = cursor.Decode(doc); err != nil {
			return nil, fmt.Errorf("decode trust anchor: %w", err)
		}

		anchor, err := anchorFromDocument(doc)
		if err != nil {
			return nil, err
		}

		anchors = append(anchors, anchor)
	}

	return anchors, cursor.Err()
}

func anchorFromDocument(doc *anchorDocument) (*federation.TrustAnchor, error) {
	anchor := &federation.TrustAnchor{}

	if err := mongodb.MapToStructure(doc.Anchor, anchor); err != nil {
		return nil, fmt.Errorf("deserialize trust anchor: %w", err)
	}

	return anchor, nil
}
