/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package openid4vp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eudi-wallet/openid4vp-rp/pkg/doc/presexch"
)

// FilePolicyRegistry serves presentation policies from a JSON file loaded at
// startup. The registry is read-only after construction.
type FilePolicyRegistry struct {
	policies map[string]*presexch.PresentationDefinition
}

type policyFile struct {
	Policies []*policyEntry `json:"policies"`
}

type policyEntry struct {
	ID                     string          `json:"id"`
	PresentationDefinition json.RawMessage `json:"presentation_definition"`
}

// NewFilePolicyRegistry loads and validates every policy in the file. A file
// with no policies is a configuration error.
func NewFilePolicyRegistry(path string) (*FilePolicyRegistry, error) {
	jsonBytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	var pf policyFile

	if err = json.Unmarshal(jsonBytes, &pf); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}

	if len(pf.Policies) == 0 {
		return nil, fmt.Errorf("policy file %s defines no policies", path)
	}

	r := &FilePolicyRegistry{policies: make(map[string]*presexch.PresentationDefinition)}

	for _, entry := range pf.Policies {
		if entry.ID == "" {
			return nil, fmt.Errorf("policy file %s contains a policy without an id", path)
		}

		if _, ok := r.policies[entry.ID]; ok {
			return nil, fmt.Errorf("duplicate policy id %q", entry.ID)
		}

		pd, err := presexch.Parse(entry.PresentationDefinition)
		if err != nil {
			return nil, fmt.Errorf("policy %q: %w", entry.ID, err)
		}

		r.policies[entry.ID] = pd
	}

	return r, nil
}

// Get returns the policy registered under the given id.
func (r *FilePolicyRegistry) Get(policyID string) (*presexch.PresentationDefinition, error) {
	pd, ok := r.policies[policyID]
	if !ok {
		return nil, ErrDataNotFound
	}

	return pd, nil
}

// IDs lists the registered policy ids.
func (r *FilePolicyRegistry) IDs() []string {
	ids := make([]string, 0, len(r.policies))

	for id := range r.policies {
		ids = append(ids, id)
	}

	return ids
}
