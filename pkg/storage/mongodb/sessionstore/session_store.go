/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sessionstore persists authentication sessions. State changes go
// through a compare-and-swap primitive so concurrent writers cannot skip or
// repeat a lifecycle step.
package sessionstore

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eudi-wallet/openid4vp-rp/pkg/doc/presexch"
	"github.com/eudi-wallet/openid4vp-rp/pkg/service/openid4vp"
	"github.com/eudi-wallet/openid4vp-rp/pkg/storage/mongodb"
)

const sessionCollection = "openid4vp_session"

type sessionDocument struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty"`
	State          string                 `bson:"state"`
	PolicyID       string                 `bson:"policyID"`
	Policy         map[string]interface{} `bson:"policy"`
	Nonce          string                 `bson:"nonce"`
	RequestToken   string                 `bson:"requestToken"`
	ResponseMode   string                 `bson:"responseMode"`
	WalletEntityID string                 `bson:"walletEntityID,omitempty"`
	TrustAnchor    string                 `bson:"trustAnchor,omitempty"`
	Result         map[string]interface{} `bson:"result,omitempty"`
	FailureReason  string                 `bson:"failureReason,omitempty"`
	CreatedAt      time.Time              `bson:"createdAt"`
	ExpiresAt      time.Time              `bson:"expiresAt"`
	PurgeAt        time.Time              `bson:"purgeAt"`
}

// Store keeps sessions in mongo. A TTL index on purgeAt removes records some
// time after logical expiry so terminal results stay retrievable; logical
// expiry itself is the caller's concern on every access.
type Store struct {
	mongoClient *mongodb.Client
	retention   time.Duration
}

// New creates the store and its indexes. retention is how long a session
// document outlives its logical expires_at before physical cleanup.
func New(mongoClient *mongodb.Client, retention time.Duration) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
		retention:   retention,
	}

	if err := s.migrate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate() error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	_, err := s.mongoClient.Database().Collection(sessionCollection).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "nonce", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "requestToken", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "purgeAt", Value: 1}},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		})

	return err
}

// Create inserts a new session. A nonce or request token collision surfaces
// as a duplicate key error from the unique indexes.
func (s *Store) Create(session *openid4vp.Session) (openid4vp.SessionID, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	doc, err := documentFromSession(session)
	if err != nil {
		return "", err
	}

	doc.PurgeAt = session.ExpiresAt.Add(s.retention)

	result, err := s.mongoClient.Database().Collection(sessionCollection).
		InsertOne(ctxWithTimeout, doc)

	if mongo.IsDuplicateKeyError(err) {
		return "", openid4vp.ErrDuplicateSession
	}

	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}

	return openid4vp.SessionID(result.InsertedID.(primitive.ObjectID).Hex()), nil //nolint: errcheck
}

// Get returns a session by id.
func (s *Store) Get(id openid4vp.SessionID) (*openid4vp.Session, error) {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, fmt.Errorf("invalid session id(%s): %w", id, err)
	}

	return s.findOne(bson.M{"_id": objectID})
}

// GetByRequestToken returns the session that issued the given request-uri
// token.
func (s *Store) GetByRequestToken(token string) (*openid4vp.Session, error) {
	return s.findOne(bson.M{"requestToken": token})
}

func (s *Store) findOne(filter bson.M) (*openid4vp.Session, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	doc := &sessionDocument{}

	err := s.mongoClient.Database().Collection(sessionCollection).
		FindOne(ctxWithTimeout, filter).Decode(doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, openid4vp.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	return sessionFromDocument(doc)
}

// UpdateState applies update only if the stored state still equals
// update.FromState. On a conflict it returns openid4vp.ErrStateConflict
// together with the current session so the caller can tell a replay from a
// lost race.
func (s *Store) UpdateState(update *openid4vp.SessionUpdate) (*openid4vp.Session, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(string(update.ID))
	if err != nil {
		return nil, fmt.Errorf("invalid session id(%s): %w", update.ID, err)
	}

	set := bson.M{"state": string(update.ToState)}

	if update.WalletEntityID != nil {
		set["walletEntityID"] = *update.WalletEntityID
	}

	if update.TrustAnchor != nil {
		set["trustAnchor"] = *update.TrustAnchor
	}

	if update.Result != nil {
		set["result"] = map[string]interface{}(update.Result)
	}

	if update.FailureReason != nil {
		set["failureReason"] = string(*update.FailureReason)
	}

	collection := s.mongoClient.Database().Collection(sessionCollection)

	doc := &sessionDocument{}

	err = collection.FindOneAndUpdate(ctxWithTimeout,
		bson.M{"_id": objectID, "state": string(update.FromState)},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		current, findErr := s.findOne(bson.M{"_id": objectID})
		if findErr != nil {
			return nil, findErr
		}

		return current, openid4vp.ErrStateConflict
	}

	if err != nil {
		return nil, fmt.Errorf("update session state: %w", err)
	}

	return sessionFromDocument(doc)
}

// Delete removes a session, making a served terminal result one-shot.
func (s *Store) Delete(id openid4vp.SessionID) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return fmt.Errorf("invalid session id(%s): %w", id, err)
	}

	result, err := s.mongoClient.Database().Collection(sessionCollection).
		DeleteOne(ctxWithTimeout, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if result.DeletedCount == 0 {
		return openid4vp.ErrDataNotFound
	}

	return nil
}

func documentFromSession(session *openid4vp.Session) (*sessionDocument, error) {
	var policy map[string]interface{}

	if session.Policy != nil {
		var err error

		policy, err = mongodb.StructureToMap(session.Policy)
		if err != nil {
			return nil, fmt.Errorf("serialize session policy: %w", err)
		}
	}

	return &sessionDocument{
		State:          string(session.State),
		PolicyID:       session.PolicyID,
		Policy:         policy,
		Nonce:          session.Nonce,
		RequestToken:   session.RequestToken,
		ResponseMode:   session.ResponseMode,
		WalletEntityID: session.WalletEntityID,
		TrustAnchor:    session.TrustAnchor,
		Result:         session.Result,
		FailureReason:  string(session.FailureReason),
		CreatedAt:      session.CreatedAt,
		ExpiresAt:      session.ExpiresAt,
	}, nil
}

func sessionFromDocument(doc *sessionDocument) (*openid4vp.Session, error) {
	var policy *presexch.PresentationDefinition

	if doc.Policy != nil {
		policy = &presexch.PresentationDefinition{}

		if err := mongodb.MapToStructure(doc.Policy, policy); err != nil {
			return nil, fmt.Errorf("deserialize session policy: %w", err)
		}
	}

	return &openid4vp.Session{
		ID:             openid4vp.SessionID(doc.ID.Hex()),
		State:          openid4vp.State(doc.State),
		PolicyID:       doc.PolicyID,
		Policy:         policy,
		Nonce:          doc.Nonce,
		RequestToken:   doc.RequestToken,
		ResponseMode:   doc.ResponseMode,
		WalletEntityID: doc.WalletEntityID,
		TrustAnchor:    doc.TrustAnchor,
		Result:         doc.Result,
		FailureReason:  openid4vp.FailureReason(doc.FailureReason),
		CreatedAt:      doc.CreatedAt,
		ExpiresAt:      doc.ExpiresAt,
	}, nil
}
