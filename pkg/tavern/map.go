package tavern

import (
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/internal/mapping"
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

// mapV1 maps a decoded document against the legacy flat schema.
func mapV1(raw any, mode mapping.Mode) (*types.CardV1, error) {
	v, err := mapping.Apply(raw, v1Schema, mode)
	if err != nil {
		return nil, err
	}
	return &types.CardV1{
		Name:        v.String("name"),
		Description: v.String("description"),
		Personality: v.String("personality"),
		Scenario:    v.String("scenario"),
		FirstMes:    v.String("first_mes"),
		MesExample:  v.String("mes_example"),

		Fav:            v.OptBool("fav"),
		Chat:           v.OptString("chat"),
		CreatorComment: v.OptString("creator_comment"),
		Avatar:         v.OptString("avatar"),
		CreateDate:     v.OptString("create_date"),
		Talkativeness:  v.OptFloat("talkativeness"),
	}, nil
}

// mapV2 maps a decoded document against the V2 wrapper schema.
func mapV2(raw any, mode mapping.Mode) (*types.CardV2, error) {
	v, err := mapping.Apply(raw, v2Schema, mode)
	if err != nil {
		return nil, err
	}
	return &types.CardV2{
		Spec:        v.String("spec"),
		SpecVersion: v.String("spec_version"),
		Data:        buildV2Data(v.Object("data")),
	}, nil
}

func buildV2Data(v mapping.Values) types.CardV2Data {
	data := types.CardV2Data{
		Name:        v.String("name"),
		Description: v.String("description"),
		Personality: v.String("personality"),
		Scenario:    v.String("scenario"),
		FirstMes:    v.String("first_mes"),
		MesExample:  v.String("mes_example"),

		CreatorNotes:            v.String("creator_notes"),
		SystemPrompt:            v.String("system_prompt"),
		PostHistoryInstructions: v.String("post_history_instructions"),
		AlternateGreetings:      v.StringList("alternate_greetings"),

		Tags:             v.StringList("tags"),
		Creator:          v.String("creator"),
		CharacterVersion: v.String("character_version"),

		Fav:            v.OptBool("fav"),
		Chat:           v.OptString("chat"),
		CreatorComment: v.OptString("creator_comment"),
		Avatar:         v.OptString("avatar"),
		CreateDate:     v.OptString("create_date"),
		Talkativeness:  v.OptFloat("talkativeness"),
	}
	if book := v.Object("character_book"); book != nil {
		data.CharacterBook = buildBook(book)
	}
	return data
}

func buildBook(v mapping.Values) *types.CharacterBook {
	raw := v.ObjectList("entries")
	entries := make([]types.CharacterBookEntry, len(raw))
	for i, e := range raw {
		entries[i] = buildEntry(e)
	}
	return &types.CharacterBook{
		Name:              v.OptString("name"),
		Description:       v.OptString("description"),
		ScanDepth:         v.OptInt("scan_depth"),
		TokenBudget:       v.OptFloat("token_budget"),
		RecursiveScanning: v.OptBool("recursive_scanning"),
		Extensions:        v.Extensions("extensions"),
		Entries:           entries,
	}
}

func buildEntry(v mapping.Values) types.CharacterBookEntry {
	return types.CharacterBookEntry{
		Keys:           v.StringList("keys"),
		Content:        v.String("content"),
		Extensions:     v.Extensions("extensions"),
		Enabled:        v.Bool("enabled"),
		InsertionOrder: v.Float("insertion_order"),
		CaseSensitive:  v.OptBool("case_sensitive"),

		Name:     v.OptString("name"),
		Priority: v.OptFloat("priority"),

		ID:            v.OptFloat("id"),
		Comment:       v.OptString("comment"),
		Selective:     v.OptBool("selective"),
		SecondaryKeys: v.StringList("secondary_keys"),
		Constant:      v.OptBool("constant"),
		Position:      v.OptString("position"),
	}
}
