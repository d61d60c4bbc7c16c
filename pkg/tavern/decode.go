package tavern

import (
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"

	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

// CharaKey is the metadata key card producers store the payload under.
const CharaKey = "chara"

// decodePayload turns the raw metadata map into a generic JSON value tree.
// The payload must be standard-alphabet base64 over UTF-8 JSON text; an
// absent or empty chara value counts as missing.
func decodePayload(meta map[string]string) (any, error) {
	encoded := meta[CharaKey]
	if encoded == "" {
		return nil, &types.MissingFieldError{Field: CharaKey}
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &types.EncodingError{Reason: "invalid base64", Err: err}
	}
	if !utf8.Valid(raw) {
		return nil, &types.EncodingError{Reason: "not UTF-8"}
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, &types.PayloadError{Err: err}
	}
	return value, nil
}

// rawPayload decodes the chara value to its JSON text without parsing it.
func rawPayload(meta map[string]string) ([]byte, error) {
	encoded := meta[CharaKey]
	if encoded == "" {
		return nil, &types.MissingFieldError{Field: CharaKey}
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &types.EncodingError{Reason: "invalid base64", Err: err}
	}
	if !utf8.Valid(raw) {
		return nil, &types.EncodingError{Reason: "not UTF-8"}
	}
	return raw, nil
}
