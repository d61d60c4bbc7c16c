package tavern

import "github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"

// resolveSchema inspects the discriminator of a decoded document and
// reports which schema generation it advertises. This is a pure structural
// check: only a top-level object whose "spec" is exactly the V2 literal
// resolves to V2, everything else resolves to V1. It never fails; full
// validation is the mapper's job.
func resolveSchema(value any) types.SchemaVersion {
	obj, ok := value.(map[string]any)
	if !ok {
		return types.SchemaV1
	}
	if spec, ok := obj["spec"].(string); ok && spec == types.SpecV2 {
		return types.SchemaV2
	}
	return types.SchemaV1
}
