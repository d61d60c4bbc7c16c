package tavern

import (
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/internal/mapping"
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

// attemptPlan returns the schema generations to try for a document that
// advertises the given version. Fallback runs strictly downward: V1 is a
// structural subset of V2's core fields and therefore always a safe last
// resort, while trying V1 first would silently discard V2-only data from
// well-formed V2 documents.
func attemptPlan(advertised types.SchemaVersion) []types.SchemaVersion {
	if advertised == types.SchemaV2 {
		return []types.SchemaVersion{types.SchemaV2, types.SchemaV1}
	}
	return []types.SchemaVersion{types.SchemaV1}
}

// mapSchema runs the structural mapper for one schema generation.
func mapSchema(raw any, version types.SchemaVersion, mode mapping.Mode) (types.Card, error) {
	if version == types.SchemaV2 {
		return mapV2(raw, mode)
	}
	return mapV1(raw, mode)
}

// mapCard walks the attempt plan in lenient mode until a schema accepts the
// document. A document that claims V2 but fails its shape is assumed to be
// a mislabeled or hand-edited legacy card and retried as V1 on the same
// decoded tree. When every attempt fails, the returned FallbackError keeps
// each attempt's error for diagnostics and unwraps to the final V1 failure.
func mapCard(raw any) (types.Card, error) {
	plan := attemptPlan(resolveSchema(raw))
	attempts := make([]types.SchemaAttempt, 0, len(plan))
	for _, version := range plan {
		card, err := mapSchema(raw, version, mapping.Lenient)
		if err == nil {
			return card, nil
		}
		attempts = append(attempts, types.SchemaAttempt{Version: version, Err: err})
	}
	return nil, &types.FallbackError{Attempts: attempts}
}
