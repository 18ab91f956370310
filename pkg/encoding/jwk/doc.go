// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-keymaterial.
//
// go-keymaterial is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package jwk models and (de)serializes cryptographic key material in a
// JSON-based key-representation format. Three key families are supported,
// each selected by a fixed kty tag:
//
//   - EC: elliptic curve keys over the P-256, P-384 and P-521 curves
//   - RSA: RSA keys, optionally with CRT (multi-prime) parameters
//   - Oct: symmetric octet keys
//
// No cryptography happens here: the package is a pure value codec. Its
// central mechanism is shape-matching decode — a single flat JSON object
// is classified against structurally distinct interpretations in a fixed
// order (private shape before public shape, EC before RSA before Oct),
// and the first interpretation that validates wins. Encoding is the
// inverse flat merge: a variant's own fields plus the kty discriminant,
// with no nesting.
//
// Decoding a key:
//
//	m, err := jwk.Unmarshal([]byte(`{"kty":"EC","crv":"P-256","x":"...","y":"..."}`))
//	if err != nil {
//	    return err
//	}
//	pub, err := jwk.PublicKey(m)
//
// Building key material from a standard library key:
//
//	m, err := jwk.FromPublicKey(&ecdsaKey.PublicKey)
//	data, err := jwk.Marshal(m)
//
// All values are immutable once constructed; every function is safe for
// concurrent use. Integer fields travel through the
// base64url package, which preserves context-derived byte widths for
// curve coordinates.
package jwk
