package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// CanonicalBytes returns the wire serialization of the request: a JSON
// object with fields in declaration order and all numeric fields rendered as
// decimal strings. The off-chain signer must reproduce these bytes exactly,
// so the field order here is part of the signing contract and must never
// change.
func (r MintRequest) CanonicalBytes() []byte {
	var b bytes.Buffer
	b.WriteByte('{')
	writeStringField(&b, "to", r.To)
	b.WriteByte(',')
	writeStringField(&b, "primary_sale_recipient", r.PrimarySaleRecipient)
	b.WriteByte(',')
	writeStringField(&b, "uri", r.URI)
	b.WriteByte(',')
	writeStringField(&b, "price", r.Price.String())
	b.WriteByte(',')
	writeStringField(&b, "currency", r.Currency)
	b.WriteByte(',')
	writeStringField(&b, "validity_start_timestamp", strconv.FormatUint(r.ValidityStartTimestamp, 10))
	b.WriteByte(',')
	writeStringField(&b, "validity_end_timestamp", strconv.FormatUint(r.ValidityEndTimestamp, 10))
	b.WriteByte(',')
	writeStringField(&b, "uuid", r.UUID)
	b.WriteByte(',')
	writeStringField(&b, "collection", r.Collection)
	b.WriteByte('}')
	return b.Bytes()
}

func writeStringField(b *bytes.Buffer, key, value string) {
	b.WriteByte('"')
	b.WriteString(key)
	b.WriteString(`":`)
	// json.Marshal of a string cannot fail and yields correct JSON escaping.
	encoded, _ := json.Marshal(value)
	b.Write(encoded)
}
