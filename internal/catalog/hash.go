package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/eridehero/ridescore/schema"
)

// SpecHash returns the content hash of a specification record, used as the
// score cache key. encoding/json sorts map keys, so two records with the same
// content hash identically regardless of construction order.
func SpecHash(specs schema.SpecRecord) string {
	data, err := json.Marshal(specs)
	if err != nil {
		// SpecRecord values come from JSON decoding, so this only triggers on
		// hand-built records holding unmarshalable types. The Go-syntax dump
		// still reflects the content, so distinct records stay distinct.
		data = fmt.Appendf(nil, "%#v", specs)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
