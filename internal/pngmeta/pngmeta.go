// Package pngmeta extracts text metadata from PNG images. Card producers
// smuggle the card payload into a tEXt chunk keyed "chara"; this package
// surfaces all textual chunks (tEXt, zTXt, iTXt) as a flat key/value map
// and leaves interpretation of the values to the caller.
package pngmeta

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

var (
	// ErrNotPNG reports input that does not start with the PNG signature.
	ErrNotPNG = errors.New("not a PNG image")
	// ErrCorrupt reports a structurally damaged chunk stream.
	ErrCorrupt = errors.New("corrupt PNG chunk")
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// maxChunkLen bounds a single chunk; the PNG spec caps lengths at 2^31-1
// but no sane text chunk approaches that.
const maxChunkLen = 1 << 28

// Extract opens the file at path and returns its text metadata. The file
// handle is closed before Extract returns, so callers can parse the
// returned map without holding the file open. Open failures surface as
// *os.PathError, distinct from a merely absent metadata key.
func Extract(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a PNG stream and returns its text metadata. Non-text chunks
// are skipped without inspection; reading stops at IEND.
func Decode(r io.Reader) (map[string]string, error) {
	sig := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(r, sig); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPNG, err)
	}
	if !bytes.Equal(sig, pngSignature) {
		return nil, ErrNotPNG
	}

	info := make(map[string]string)
	header := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, header); err != nil {
			if err == io.EOF {
				// Truncated after the last complete chunk; keep what we have.
				return info, nil
			}
			return nil, fmt.Errorf("%w: read chunk header: %v", ErrCorrupt, err)
		}
		length := binary.BigEndian.Uint32(header[:4])
		chunkType := string(header[4:8])
		if length > maxChunkLen {
			return nil, fmt.Errorf("%w: %s chunk of %d bytes", ErrCorrupt, chunkType, length)
		}

		switch chunkType {
		case "tEXt", "zTXt", "iTXt":
			data := make([]byte, length+4)
			if _, err := io.ReadFull(r, data); err != nil {
				return nil, fmt.Errorf("%w: read %s chunk: %v", ErrCorrupt, chunkType, err)
			}
			payload, crc := data[:length], binary.BigEndian.Uint32(data[length:])
			sum := crc32.Update(crc32.ChecksumIEEE(header[4:8]), crc32.IEEETable, payload)
			if sum != crc {
				return nil, fmt.Errorf("%w: %s chunk crc mismatch", ErrCorrupt, chunkType)
			}
			key, value, ok := parseText(chunkType, payload)
			if ok {
				info[key] = value
			}
		case "IEND":
			return info, nil
		default:
			if err := skip(r, int64(length)+4); err != nil {
				return nil, fmt.Errorf("%w: skip %s chunk: %v", ErrCorrupt, chunkType, err)
			}
		}
	}
}

// parseText decodes one text chunk payload into a key/value pair. Chunks
// that are internally malformed (missing separators, bad compression) are
// dropped rather than failing the whole read: a damaged ancillary chunk
// must not make the image unreadable.
func parseText(chunkType string, payload []byte) (key, value string, ok bool) {
	keyEnd := bytes.IndexByte(payload, 0)
	if keyEnd <= 0 {
		return "", "", false
	}
	key = string(payload[:keyEnd])
	rest := payload[keyEnd+1:]

	switch chunkType {
	case "tEXt":
		return key, string(rest), true

	case "zTXt":
		// One byte of compression method (0 = zlib) precedes the data.
		if len(rest) < 1 || rest[0] != 0 {
			return "", "", false
		}
		text, err := inflate(rest[1:])
		if err != nil {
			return "", "", false
		}
		return key, text, true

	case "iTXt":
		// compression flag, compression method, language tag NUL,
		// translated keyword NUL, then the text.
		if len(rest) < 2 {
			return "", "", false
		}
		compressed := rest[0] == 1
		rest = rest[2:]
		for range 2 {
			sep := bytes.IndexByte(rest, 0)
			if sep < 0 {
				return "", "", false
			}
			rest = rest[sep+1:]
		}
		if compressed {
			// Compressed iTXt is vanishingly rare in card images.
			return "", "", false
		}
		return key, string(rest), true
	}
	return "", "", false
}

func inflate(data []byte) (string, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer zr.Close()
	text, err := io.ReadAll(zr)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

func skip(r io.Reader, n int64) error {
	if s, ok := r.(io.Seeker); ok {
		_, err := s.Seek(n, io.SeekCurrent)
		return err
	}
	_, err := io.CopyN(io.Discard, r, n)
	return err
}
