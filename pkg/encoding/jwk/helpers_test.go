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

package jwk

import (
	"encoding/base64"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/jeremyhahn/go-keymaterial/pkg/encoding/base64url"
)

// b64 encodes raw bytes the way every integer field travels on the wire.
func b64(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// sized builds a SizedInteger test value, failing the test on overflow.
func sized(t *testing.T, value int64, width int) base64url.SizedInteger {
	t.Helper()
	si, err := base64url.NewSizedInteger(big.NewInt(value), width)
	if err != nil {
		t.Fatalf("NewSizedInteger failed: %v", err)
	}
	return si
}

// jsonKeys returns the sorted-irrelevant key set of a JSON object.
func jsonKeys(t *testing.T, data []byte) map[string]bool {
	t.Helper()
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("Output is not a JSON object: %v", err)
	}
	keys := make(map[string]bool, len(obj))
	for k := range obj {
		keys[k] = true
	}
	return keys
}
