package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/require"
)

func TestCanonicalBytesDeterministic(t *testing.T) {
	request := MintRequest{
		To:                     "inj1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqpuuv6g",
		PrimarySaleRecipient:   "inj1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqpuuv6g",
		URI:                    "https://example.com/meta/1.json",
		Price:                  uint128.From64(1000),
		Currency:               "uinj",
		ValidityStartTimestamp: 1700000000,
		ValidityEndTimestamp:   1700003600,
		UUID:                   "4b5f2b46-9a1c-4a5e-9e42-9f2f37a2c111",
		Collection:             "inj1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqpuuv6g",
	}

	first := request.CanonicalBytes()
	second := request.CanonicalBytes()
	require.Equal(t, first, second)

	// field order is fixed; the serialization is still valid JSON
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(first, &decoded))
	require.Equal(t, "1000", decoded["price"])
	require.Equal(t, "1700000000", decoded["validity_start_timestamp"])
	require.Equal(t, request.UUID, decoded["uuid"])
}

func TestCanonicalBytesFieldOrder(t *testing.T) {
	request := MintRequest{UUID: "u", Currency: "uinj"}
	raw := string(request.CanonicalBytes())
	require.True(t, raw[0] == '{')

	// the signing contract requires this exact order
	order := []string{
		`"to"`, `"primary_sale_recipient"`, `"uri"`, `"price"`, `"currency"`,
		`"validity_start_timestamp"`, `"validity_end_timestamp"`, `"uuid"`, `"collection"`,
	}
	last := -1
	for _, key := range order {
		idx := strings.Index(raw, key)
		require.Greater(t, idx, last, "field %s out of order", key)
		last = idx
	}
}
