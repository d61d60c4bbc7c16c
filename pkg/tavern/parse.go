package tavern

import (
	"bytes"
	"fmt"

	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/internal/pngmeta"
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

// Version is the parser release version.
const Version = "0.2.0"

// Parse reads the card embedded in the PNG at path. It returns a *CardV2
// or *CardV1 behind the Card interface, or a terminal error: the metadata
// read failure, the transport decode failure, or the final schema mapping
// failure after fallback. The image file is closed before any parsing runs.
func Parse(path string) (types.Card, error) {
	meta, err := pngmeta.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("read card image: %w", err)
	}
	return ParseMetadata(meta)
}

// ParseBytes parses a card from a PNG image already held in memory.
func ParseBytes(data []byte) (types.Card, error) {
	meta, err := pngmeta.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read card image: %w", err)
	}
	return ParseMetadata(meta)
}

// ParseMetadata parses a card from already-extracted image metadata, for
// callers that run their own metadata source.
func ParseMetadata(meta map[string]string) (types.Card, error) {
	raw, err := decodePayload(meta)
	if err != nil {
		return nil, err
	}
	return mapCard(raw)
}

// Payload returns the decoded JSON text of the card embedded at path,
// without mapping it to an entity. Useful for exporting or inspecting the
// raw document.
func Payload(path string) ([]byte, error) {
	meta, err := pngmeta.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("read card image: %w", err)
	}
	return rawPayload(meta)
}
