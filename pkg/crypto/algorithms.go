/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"github.com/go-jose/go-jose/v3"
	"github.com/samber/lo"
)

// DefaultSupportedSigAlgs is the signature algorithm allow-list applied when
// the deployment does not configure its own.
var DefaultSupportedSigAlgs = []jose.SignatureAlgorithm{
	jose.ES256, jose.ES384, jose.ES512, jose.RS256, jose.PS256, jose.EdDSA,
}

// DefaultSupportedKeyEncAlgs is the JWE key-management allow-list applied when
// the deployment does not configure its own.
var DefaultSupportedKeyEncAlgs = []jose.KeyAlgorithm{
	jose.ECDH_ES, jose.ECDH_ES_A256KW, jose.RSA_OAEP_256,
}

// DefaultSupportedContentEncs is the JWE content-encryption allow-list applied
// when the deployment does not configure its own.
var DefaultSupportedContentEncs = []jose.ContentEncryption{
	jose.A128CBC_HS256, jose.A256GCM,
}

func sigAlgSupported(supported []jose.SignatureAlgorithm, alg jose.SignatureAlgorithm) bool {
	return lo.Contains(supported, alg)
}

func keyEncAlgSupported(supported []jose.KeyAlgorithm, alg jose.KeyAlgorithm) bool {
	return lo.Contains(supported, alg)
}

func contentEncSupported(supported []jose.ContentEncryption, enc jose.ContentEncryption) bool {
	return lo.Contains(supported, enc)
}
