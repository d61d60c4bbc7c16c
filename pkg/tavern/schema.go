package tavern

import (
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/internal/mapping"
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

// positionZero is the coercion hook for the entry position field: buggy
// producers write the integer 0 where the format means "no position", so a
// literal 0 is rewritten to absent before enum validation. Every other
// non-token value still fails.
func positionZero(raw any) (any, bool) {
	if n, ok := raw.(float64); ok && n == 0 {
		return nil, false
	}
	return raw, true
}

// legacyExtensionFields are the optional producer extras of the flat V1
// format, also carried inside V2 data for backward interoperability.
var legacyExtensionFields = []mapping.Field{
	{Key: "fav", Kind: mapping.Bool, Optional: true},
	{Key: "chat", Kind: mapping.String, Optional: true},
	{Key: "creator_comment", Kind: mapping.String, Optional: true},
	{Key: "avatar", Kind: mapping.String, Optional: true},
	{Key: "create_date", Kind: mapping.String, Optional: true},
	{Key: "talkativeness", Kind: mapping.Float, Optional: true},
}

// coreTextFields are the six required-with-default strings shared by every
// schema generation.
var coreTextFields = []mapping.Field{
	{Key: "name", Kind: mapping.String, Default: ""},
	{Key: "description", Kind: mapping.String, Default: ""},
	{Key: "personality", Kind: mapping.String, Default: ""},
	{Key: "scenario", Kind: mapping.String, Default: ""},
	{Key: "first_mes", Kind: mapping.String, Default: ""},
	{Key: "mes_example", Kind: mapping.String, Default: ""},
}

var entrySchema = &mapping.Schema{
	Name: "character_book_entry",
	Fields: []mapping.Field{
		{Key: "keys", Kind: mapping.StringList},
		{Key: "content", Kind: mapping.String, Default: ""},
		{Key: "extensions", Kind: mapping.Extensions},
		{Key: "enabled", Kind: mapping.Bool, Default: true},
		{Key: "insertion_order", Kind: mapping.Float, Default: float64(0)},
		{Key: "case_sensitive", Kind: mapping.Bool, Optional: true},
		{Key: "name", Kind: mapping.String, Optional: true},
		{Key: "priority", Kind: mapping.Float, Optional: true},
		{Key: "id", Kind: mapping.Float, Optional: true},
		{Key: "comment", Kind: mapping.String, Optional: true},
		{Key: "selective", Kind: mapping.Bool, Optional: true},
		{Key: "secondary_keys", Kind: mapping.StringList, Optional: true},
		{Key: "constant", Kind: mapping.Bool, Optional: true},
		{
			Key:      "position",
			Kind:     mapping.Enum,
			Optional: true,
			Tokens:   []string{types.PositionBeforeChar, types.PositionAfterChar},
			Coerce:   positionZero,
		},
	},
}

var bookSchema = &mapping.Schema{
	Name: "character_book",
	Fields: []mapping.Field{
		{Key: "name", Kind: mapping.String, Optional: true},
		{Key: "description", Kind: mapping.String, Optional: true},
		{Key: "scan_depth", Kind: mapping.Int, Optional: true},
		{Key: "token_budget", Kind: mapping.Float, Optional: true},
		{Key: "recursive_scanning", Kind: mapping.Bool, Optional: true},
		{Key: "extensions", Kind: mapping.Extensions},
		{Key: "entries", Kind: mapping.ObjectList, Schema: entrySchema},
	},
}

var v2DataSchema = &mapping.Schema{
	Name: "card_v2_data",
	Fields: concat(coreTextFields, []mapping.Field{
		{Key: "creator_notes", Kind: mapping.String, Default: ""},
		{Key: "system_prompt", Kind: mapping.String, Default: ""},
		{Key: "post_history_instructions", Kind: mapping.String, Default: ""},
		{Key: "alternate_greetings", Kind: mapping.StringList},
		{Key: "character_book", Kind: mapping.Object, Optional: true, Schema: bookSchema},
		{Key: "tags", Kind: mapping.StringList},
		{Key: "creator", Kind: mapping.String, Default: ""},
		{Key: "character_version", Kind: mapping.String, Default: ""},
	}, legacyExtensionFields),
}

var v2Schema = &mapping.Schema{
	Name: "card_v2",
	Fields: []mapping.Field{
		{Key: "spec", Kind: mapping.Enum, Required: true, Tokens: []string{types.SpecV2}},
		{Key: "spec_version", Kind: mapping.Enum, Required: true, Tokens: []string{types.SpecVersionV2}},
		{Key: "data", Kind: mapping.Object, Required: true, Schema: v2DataSchema},
	},
}

var v1Schema = &mapping.Schema{
	Name:   "card_v1",
	Fields: concat(coreTextFields, legacyExtensionFields),
}

func concat(groups ...[]mapping.Field) []mapping.Field {
	var out []mapping.Field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
