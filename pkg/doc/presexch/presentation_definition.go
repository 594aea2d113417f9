/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package presexch implements the subset of the DIF Presentation Exchange
// model used by the relying party's presentation policy: input descriptors
// with JSON-path field constraints, filter predicates and the
// limit_disclosure mode.
package presexch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/xeipuuv/gojsonschema"
)

const (
	// LimitDisclosureRequired rejects any disclosed claim that the policy did
	// not ask for.
	LimitDisclosureRequired = "required"
	// LimitDisclosurePreferred asks the holder to limit disclosure but does
	// not reject over-disclosed claims.
	LimitDisclosurePreferred = "preferred"
)

var (
	ErrFieldNotFound  = errors.New("required field not found")
	ErrFilterMismatch = errors.New("field filter not satisfied")
	ErrOverDisclosure = errors.New("disclosed claim not requested by policy")
)

// PresentationDefinition describes the credentials and claims the relying
// party requires. Immutable per deployment, loaded at startup.
type PresentationDefinition struct {
	ID               string             `json:"id"`
	Name             string             `json:"name,omitempty"`
	Purpose          string             `json:"purpose,omitempty"`
	InputDescriptors []*InputDescriptor `json:"input_descriptors"`
}

// InputDescriptor describes one required credential.
type InputDescriptor struct {
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	Purpose     string       `json:"purpose,omitempty"`
	Format      *Format      `json:"format,omitempty"`
	Constraints *Constraints `json:"constraints"`
}

// Format lists the credential formats acceptable for an input descriptor.
type Format struct {
	SDJWTVC *SDJWTType `json:"vc+sd-jwt,omitempty"`
}

// SDJWTType holds the acceptable algorithms for sd-jwt credentials.
type SDJWTType struct {
	SDJWTAlgorithms []string `json:"sd-jwt_alg_values,omitempty"`
	KBJWTAlgorithms []string `json:"kb-jwt_alg_values,omitempty"`
}

// Constraints hold the field constraints and the disclosure-limitation mode.
type Constraints struct {
	LimitDisclosure string   `json:"limit_disclosure,omitempty"`
	Fields          []*Field `json:"fields,omitempty"`
}

// Field is one JSON-path + filter predicate pair. All paths are alternatives:
// the first one that resolves is matched against the filter.
type Field struct {
	ID       string   `json:"id,omitempty"`
	Path     []string `json:"path"`
	Purpose  string   `json:"purpose,omitempty"`
	Optional bool     `json:"optional,omitempty"`
	Filter   *Filter  `json:"filter,omitempty"`
}

// Filter is a JSON-Schema-style predicate over a single field value.
type Filter struct {
	Type      string        `json:"type,omitempty"`
	Const     interface{}   `json:"const,omitempty"`
	Enum      []interface{} `json:"enum,omitempty"`
	Pattern   string        `json:"pattern,omitempty"`
	MinLength int           `json:"minLength,omitempty"`
	MaxLength int           `json:"maxLength,omitempty"`
}

// Parse unmarshals and validates a presentation definition.
func Parse(raw []byte) (*PresentationDefinition, error) {
	pd := &PresentationDefinition{}

	if err := json.Unmarshal(raw, pd); err != nil {
		return nil, fmt.Errorf("parse presentation definition: %w", err)
	}

	if err := pd.Validate(); err != nil {
		return nil, err
	}

	return pd, nil
}

// Validate checks the structural invariants of the definition.
func (pd *PresentationDefinition) Validate() error {
	if pd.ID == "" {
		return errors.New("presentation definition: id is required")
	}

	if len(pd.InputDescriptors) == 0 {
		return errors.New("presentation definition: at least one input descriptor is required")
	}

	for _, desc := range pd.InputDescriptors {
		if desc.ID == "" {
			return errors.New("input descriptor: id is required")
		}

		if desc.Constraints == nil {
			return fmt.Errorf("input descriptor %s: constraints are required", desc.ID)
		}

		for _, field := range desc.Constraints.Fields {
			if len(field.Path) == 0 {
				return fmt.Errorf("input descriptor %s: field without path", desc.ID)
			}
		}
	}

	return nil
}

// EvaluateClaims checks the disclosed claim set of a single credential against
// every field constraint of the input descriptor. All constraints must hold.
func (desc *InputDescriptor) EvaluateClaims(claims map[string]interface{}) error {
	doc := toJSONDocument(claims)

	for _, field := range desc.Constraints.Fields {
		value, found := resolveFirstPath(doc, field.Path)
		if !found {
			if field.Optional {
				continue
			}

			return fmt.Errorf("%w: %s", ErrFieldNotFound, strings.Join(field.Path, "|"))
		}

		if field.Filter != nil {
			if err := field.Filter.Match(value); err != nil {
				return fmt.Errorf("field %s: %w", strings.Join(field.Path, "|"), err)
			}
		}
	}

	if desc.Constraints.LimitDisclosure == LimitDisclosureRequired {
		if err := checkOverDisclosure(desc.Constraints.Fields, claims); err != nil {
			return err
		}
	}

	return nil
}

// RequestedClaimNames returns the top-level claim names the descriptor's field
// paths refer to.
func (desc *InputDescriptor) RequestedClaimNames() []string {
	names := make([]string, 0, len(desc.Constraints.Fields))

	for _, field := range desc.Constraints.Fields {
		for _, path := range field.Path {
			if name := leafClaimName(path); name != "" {
				names = append(names, name)
			}
		}
	}

	return names
}

// Match applies the filter predicate to a resolved field value.
func (f *Filter) Match(value interface{}) error {
	schemaBytes, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal filter: %w", err)
	}

	valueBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal field value: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(valueBytes),
	)
	if err != nil {
		return fmt.Errorf("evaluate filter: %w", err)
	}

	if !result.Valid() {
		return ErrFilterMismatch
	}

	return nil
}

// structuralClaims are always allowed through the limit_disclosure check:
// they belong to the credential envelope, not to the disclosed subject data.
var structuralClaims = map[string]struct{}{
	"iss": {}, "sub": {}, "iat": {}, "nbf": {}, "exp": {}, "jti": {}, "aud": {},
	"cnf": {}, "vct": {}, "status": {}, "_sd_alg": {},
}

func checkOverDisclosure(fields []*Field, claims map[string]interface{}) error {
	requested := map[string]struct{}{}

	for _, field := range fields {
		for _, path := range field.Path {
			if name := leafClaimName(path); name != "" {
				requested[name] = struct{}{}
			}
		}
	}

	for name := range claims {
		if _, ok := structuralClaims[name]; ok {
			continue
		}

		if _, ok := requested[name]; !ok {
			return fmt.Errorf("%w: %s", ErrOverDisclosure, name)
		}
	}

	return nil
}

func resolveFirstPath(doc interface{}, paths []string) (interface{}, bool) {
	for _, path := range paths {
		value, err := jsonpath.Get(path, doc)
		if err != nil || value == nil {
			continue
		}

		return value, true
	}

	return nil, false
}

// leafClaimName maps a field path to the claim name it discloses,
// e.g. "$.family_name" -> "family_name".
func leafClaimName(path string) string {
	trimmed := strings.TrimPrefix(path, "$")
	trimmed = strings.TrimPrefix(trimmed, ".")

	if trimmed == "" {
		return ""
	}

	segments := strings.Split(trimmed, ".")

	leaf := segments[len(segments)-1]
	leaf = strings.TrimSuffix(leaf, "]")
	leaf = strings.Trim(leaf, "'[\"")

	return leaf
}

// toJSONDocument normalizes a claims map through JSON marshaling so jsonpath
// sees plain map[string]interface{} / []interface{} values.
func toJSONDocument(claims map[string]interface{}) interface{} {
	raw, err := json.Marshal(claims)
	if err != nil {
		return claims
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return claims
	}

	return doc
}
