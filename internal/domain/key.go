package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// KeyKind classifies the syntactic form of a caller-supplied market
// identifier. Classification narrows the query strategy per adapter, not a
// single universal key type: a Slug key may still be sent as a condition id
// by adapters whose catalog is keyed that way.
type KeyKind string

const (
	KeyNumericID   KeyKind = "numeric_id"   // Gamma/Strapi catalog id, all ASCII digits
	KeySlug        KeyKind = "slug"         // URL slug or other free-form identifier
	KeyConditionID KeyKind = "condition_id" // 32-byte hex condition id
	KeyAddress     KeyKind = "address"      // 20-byte hex on-chain address
)

// MarketKey is a classified market identifier. Immutable once constructed.
type MarketKey struct {
	Kind  KeyKind
	Value string
}

// ClassifyKey inspects a raw identifier and determines its key form. It is
// total: any string matching no structural pattern becomes a Slug, so
// classification never fails. Checksum casing is not required on addresses;
// adapters re-derive the EIP-55 form before querying.
func ClassifyKey(raw string) MarketKey {
	if raw != "" && isAllDigits(raw) {
		return MarketKey{Kind: KeyNumericID, Value: raw}
	}
	if common.IsHexAddress(raw) {
		return MarketKey{Kind: KeyAddress, Value: raw}
	}
	if isConditionID(raw) {
		return MarketKey{Kind: KeyConditionID, Value: raw}
	}
	return MarketKey{Kind: KeySlug, Value: raw}
}

// ChecksumAddress re-derives the EIP-55 checksum form of an address key.
// Callers must not assume the original input carried correct casing.
func (k MarketKey) ChecksumAddress() string {
	return common.HexToAddress(k.Value).Hex()
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isConditionID reports whether s is a 0x-prefixed 32-byte hex string, the
// form condition ids take on-chain.
func isConditionID(s string) bool {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return false
	}
	hex := s[2:]
	if len(hex) != 64 {
		return false
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
