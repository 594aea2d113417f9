/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongodb

import "encoding/json"

// StructureToMap converts a struct to the generic document shape stored in
// mongo, going through its JSON representation.
func StructureToMap(obj interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}

	if err = json.Unmarshal(b, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// MapToStructure is the inverse of StructureToMap.
func MapToStructure(in map[string]interface{}, out interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, out)
}
