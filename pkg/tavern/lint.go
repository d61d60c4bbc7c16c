package tavern

import (
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/internal/mapping"
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/internal/pngmeta"
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

// Finding is one strict-mode mapping failure discovered by Lint.
type Finding struct {
	Version types.SchemaVersion
	Err     error
}

// Report is the diagnostic result for one card payload. The production
// (lenient) outcome is in Card/Err; Findings holds strict-mode failures
// that the lenient pipeline tolerates, such as unrecognized keys or a
// mislabeled V2 wrapper.
type Report struct {
	// Resolved is the schema generation the document advertises.
	Resolved types.SchemaVersion
	// Card is the lenient pipeline's result; nil when Err is set.
	Card types.Card
	// Err is the lenient pipeline's terminal error, if any.
	Err error
	// Findings are strict-mode failures against the advertised schema.
	Findings []Finding
}

// Clean reports whether the payload parsed and produced no strict findings.
func (r *Report) Clean() bool {
	return r.Err == nil && len(r.Findings) == 0
}

// Lint inspects the card at path with both the production pipeline and the
// strict mapper. Strict results never change parse outcomes; they exist so
// producers can see what a pedantic reader would reject. Transport-level
// failures (unreadable image, bad base64, malformed JSON) are returned as
// the error, since no mapping diagnostics exist for them.
func Lint(path string) (*Report, error) {
	meta, err := pngmeta.Extract(path)
	if err != nil {
		return nil, err
	}
	return LintMetadata(meta)
}

// LintMetadata is Lint over already-extracted image metadata.
func LintMetadata(meta map[string]string) (*Report, error) {
	raw, err := decodePayload(meta)
	if err != nil {
		return nil, err
	}

	report := &Report{Resolved: resolveSchema(raw)}
	report.Card, report.Err = mapCard(raw)

	// Strict mapping only makes sense against the schema the document
	// claims to follow: a V2 document always has keys V1 never declared.
	if _, err := mapSchema(raw, report.Resolved, mapping.Strict); err != nil {
		report.Findings = append(report.Findings, Finding{Version: report.Resolved, Err: err})
	}
	return report, nil
}
