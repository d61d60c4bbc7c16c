// Package integration provides CLI integration tests for tavern.
package integration

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// tavernBin is the path to the built tavern binary.
	tavernBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with its compiler output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// Result holds the outcome of one CLI invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runTavern executes the built binary in dir with the given arguments.
func runTavern(t *testing.T, dir string, args ...string) Result {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("failed to build tavern: %v", buildErr)
	}
	if tavernBin == "" {
		t.Fatal("tavern binary not built")
	}

	cmd := exec.Command(tavernBin, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("run tavern %v: %v", args, err)
		}
		code = exitErr.ExitCode()
	}
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

// writeChunk appends one PNG chunk with a valid CRC.
func writeChunk(buf *bytes.Buffer, chunkType string, payload []byte) {
	binary.Write(buf, binary.BigEndian, uint32(len(payload)))
	buf.WriteString(chunkType)
	buf.Write(payload)
	binary.Write(buf, binary.BigEndian, crc32.Update(crc32.ChecksumIEEE([]byte(chunkType)), crc32.IEEETable, payload))
}

// writeCardPNG writes a minimal card PNG whose chara chunk holds value
// verbatim, and returns its path.
func writeCardPNG(t *testing.T, dir, name, value string) string {
	t.Helper()

	var buf bytes.Buffer
	buf.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], 1)
	binary.BigEndian.PutUint32(ihdr[4:], 1)
	ihdr[8] = 8
	writeChunk(&buf, "IHDR", ihdr)
	text := append([]byte("chara"), 0)
	text = append(text, []byte(value)...)
	writeChunk(&buf, "tEXt", text)
	writeChunk(&buf, "IEND", nil)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write card fixture: %v", err)
	}
	return path
}

// encodePayload wraps a JSON document the way card producers do.
func encodePayload(doc string) string {
	return base64.StdEncoding.EncodeToString([]byte(doc))
}
