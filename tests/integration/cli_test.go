// CLI integration tests for tavern.
package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const v2Doc = `{"spec":"chara_card_v2","spec_version":"2.0","data":{"name":"Aria","description":"A wandering bard.","tags":["bard"]}}`

// TestMain builds the tavern binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}

	tmpDir, err := os.MkdirTemp("", "tavern-test-*")
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}
	defer os.RemoveAll(tmpDir)

	binPath := filepath.Join(tmpDir, "tavern")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/tavern")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
	} else {
		tavernBin = binPath
	}

	os.Exit(m.Run())
}

func TestShowCard(t *testing.T) {
	dir := t.TempDir()
	path := writeCardPNG(t, dir, "aria.png", encodePayload(v2Doc))

	result := runTavern(t, dir, "show", path)
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stdout, "v2")
	assert.Contains(t, result.Stdout, "Aria")
	assert.Contains(t, result.Stdout, "A wandering bard.")
}

func TestShowCardJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeCardPNG(t, dir, "aria.png", encodePayload(v2Doc))

	result := runTavern(t, dir, "show", "--json", path)
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)

	var card struct {
		Spec string `json:"spec"`
		Data struct {
			Name string   `json:"name"`
			Tags []string `json:"tags"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &card))
	assert.Equal(t, "chara_card_v2", card.Spec)
	assert.Equal(t, "Aria", card.Data.Name)
	assert.Equal(t, []string{"bard"}, card.Data.Tags)
}

func TestShowLegacyCard(t *testing.T) {
	dir := t.TempDir()
	path := writeCardPNG(t, dir, "old.png", encodePayload(`{"name":"Old Bot","first_mes":"Hi"}`))

	result := runTavern(t, dir, "show", path)
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stdout, "v1")
	assert.Contains(t, result.Stdout, "Old Bot")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid card", func(t *testing.T) {
		path := writeCardPNG(t, dir, "good.png", encodePayload(v2Doc))
		result := runTavern(t, dir, "validate", path)
		assert.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
		assert.Contains(t, result.Stdout, "valid")
	})

	t.Run("invalid base64 payload", func(t *testing.T) {
		path := writeCardPNG(t, dir, "bad.png", "not-base64!!")
		result := runTavern(t, dir, "validate", path)
		assert.Equal(t, 1, result.ExitCode)
	})

	t.Run("missing file", func(t *testing.T) {
		result := runTavern(t, dir, "validate", filepath.Join(dir, "absent.png"))
		assert.Equal(t, 2, result.ExitCode)
	})

	t.Run("strict findings reported", func(t *testing.T) {
		doc := `{"spec":"chara_card_v2","spec_version":"2.0","data":{"name":"Aria"},"stray":1}`
		path := writeCardPNG(t, dir, "stray.png", encodePayload(doc))
		result := runTavern(t, dir, "validate", "--strict", path)
		assert.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
		assert.Contains(t, result.Stdout, "strict v2:")
		assert.Contains(t, result.Stdout, "stray")
	})
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	path := writeCardPNG(t, dir, "aria.png", encodePayload(v2Doc))

	result := runTavern(t, dir, "export", path)
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)

	// Round-trip: the exported document equals the embedded one.
	var got, want any
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &got))
	require.NoError(t, json.Unmarshal([]byte(v2Doc), &want))
	assert.Equal(t, want, got)
}

func TestConfigFileDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tavern.yaml"), []byte("output: json\n"), 0o644))
	path := writeCardPNG(t, dir, "aria.png", encodePayload(v2Doc))

	// No --json flag, but the config file selects JSON output.
	result := runTavern(t, dir, "show", path)
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.True(t, json.Valid([]byte(result.Stdout)), "expected JSON output, got: %s", result.Stdout)
}

func TestVersion(t *testing.T) {
	result := runTavern(t, t.TempDir(), "version")
	require.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Stdout, "tavern v")
}
