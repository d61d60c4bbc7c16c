package tavern

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/internal/mapping"
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

func decodeJSON(t *testing.T, src string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(src), &v))
	return v
}

func TestMapV1(t *testing.T) {
	t.Run("full card", func(t *testing.T) {
		raw := decodeJSON(t, `{
			"name": "Old Bot",
			"description": "desc",
			"personality": "dry",
			"scenario": "a tavern",
			"first_mes": "Hi",
			"mes_example": "<START>",
			"fav": true,
			"chat": "chat-id",
			"talkativeness": 0.5
		}`)

		card, err := mapV1(raw, mapping.Lenient)
		require.NoError(t, err)
		assert.Equal(t, "Old Bot", card.Name)
		assert.Equal(t, "Hi", card.FirstMes)
		assert.Equal(t, "<START>", card.MesExample)
		require.NotNil(t, card.Fav)
		assert.True(t, *card.Fav)
		require.NotNil(t, card.Talkativeness)
		assert.Equal(t, 0.5, *card.Talkativeness)
		assert.Nil(t, card.Avatar)
	})

	t.Run("missing core fields take empty defaults", func(t *testing.T) {
		card, err := mapV1(decodeJSON(t, `{"name":"Minimal"}`), mapping.Lenient)
		require.NoError(t, err)
		assert.Equal(t, "Minimal", card.Name)
		assert.Equal(t, "", card.Description)
		assert.Equal(t, "", card.MesExample)
	})

	t.Run("core field with wrong type fails", func(t *testing.T) {
		_, err := mapV1(decodeJSON(t, `{"name":42}`), mapping.Lenient)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrMapping)
	})
}

func TestMapV2(t *testing.T) {
	t.Run("minimal wrapper", func(t *testing.T) {
		raw := decodeJSON(t, `{"spec":"chara_card_v2","spec_version":"2.0","data":{"name":"Aria"}}`)

		card, err := mapV2(raw, mapping.Lenient)
		require.NoError(t, err)
		assert.Equal(t, types.SpecV2, card.Spec)
		assert.Equal(t, types.SpecVersionV2, card.SpecVersion)
		assert.Equal(t, "Aria", card.Data.Name)
		assert.Equal(t, "", card.Data.SystemPrompt)
		assert.Empty(t, card.Data.AlternateGreetings)
		assert.Empty(t, card.Data.Tags)
		assert.Nil(t, card.Data.CharacterBook)
	})

	t.Run("wrong spec_version fails", func(t *testing.T) {
		raw := decodeJSON(t, `{"spec":"chara_card_v2","spec_version":"3.0","data":{}}`)
		_, err := mapV2(raw, mapping.Lenient)
		assert.ErrorIs(t, err, types.ErrMapping)
	})

	t.Run("missing data fails", func(t *testing.T) {
		raw := decodeJSON(t, `{"spec":"chara_card_v2","spec_version":"2.0"}`)
		_, err := mapV2(raw, mapping.Lenient)
		require.Error(t, err)

		var mismatch *types.TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "data", mismatch.Path)
	})

	t.Run("character book", func(t *testing.T) {
		raw := decodeJSON(t, `{
			"spec": "chara_card_v2",
			"spec_version": "2.0",
			"data": {
				"name": "Aria",
				"character_book": {
					"name": "Lore",
					"scan_depth": 5,
					"token_budget": 512.5,
					"extensions": {"producer": "tester"},
					"entries": [
						{
							"keys": ["tavern", "inn"],
							"content": "The tavern is ancient.",
							"insertion_order": 2,
							"position": "before_char",
							"secondary_keys": ["ale"]
						},
						{
							"keys": ["castle"],
							"content": "ruined"
						}
					]
				}
			}
		}`)

		card, err := mapV2(raw, mapping.Lenient)
		require.NoError(t, err)

		book := card.Data.CharacterBook
		require.NotNil(t, book)
		require.NotNil(t, book.Name)
		assert.Equal(t, "Lore", *book.Name)
		require.NotNil(t, book.ScanDepth)
		assert.Equal(t, 5, *book.ScanDepth)
		require.NotNil(t, book.TokenBudget)
		assert.Equal(t, 512.5, *book.TokenBudget)
		assert.Equal(t, map[string]any{"producer": "tester"}, book.Extensions)

		require.Len(t, book.Entries, 2)
		first := book.Entries[0]
		assert.Equal(t, []string{"tavern", "inn"}, first.Keys)
		assert.Equal(t, "The tavern is ancient.", first.Content)
		assert.Equal(t, float64(2), first.InsertionOrder)
		require.NotNil(t, first.Position)
		assert.Equal(t, types.PositionBeforeChar, *first.Position)
		assert.Equal(t, []string{"ale"}, first.SecondaryKeys)

		second := book.Entries[1]
		assert.True(t, second.Enabled)
		assert.Equal(t, float64(0), second.InsertionOrder)
		assert.Nil(t, second.Position)
		assert.NotNil(t, second.Extensions)
	})

	t.Run("entry position integer zero maps to absent", func(t *testing.T) {
		raw := decodeJSON(t, `{
			"spec": "chara_card_v2",
			"spec_version": "2.0",
			"data": {"character_book": {"entries": [{"keys": ["k"], "position": 0}]}}
		}`)

		card, err := mapV2(raw, mapping.Lenient)
		require.NoError(t, err)
		require.Len(t, card.Data.CharacterBook.Entries, 1)
		assert.Nil(t, card.Data.CharacterBook.Entries[0].Position)
	})

	t.Run("entry position outside the enum fails", func(t *testing.T) {
		for _, src := range []string{
			`{"spec":"chara_card_v2","spec_version":"2.0","data":{"character_book":{"entries":[{"position":1}]}}}`,
			`{"spec":"chara_card_v2","spec_version":"2.0","data":{"character_book":{"entries":[{"position":"middle"}]}}}`,
		} {
			_, err := mapV2(decodeJSON(t, src), mapping.Lenient)
			require.Error(t, err)

			var mismatch *types.TypeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, "data.character_book.entries[0].position", mismatch.Path)
		}
	})

	t.Run("nested failure carries the dotted path", func(t *testing.T) {
		raw := decodeJSON(t, `{
			"spec": "chara_card_v2",
			"spec_version": "2.0",
			"data": {"character_book": {"entries": [{"keys": ["ok"]}, {"keys": [7]}]}}
		}`)

		_, err := mapV2(raw, mapping.Lenient)
		require.Error(t, err)

		var mismatch *types.TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "data.character_book.entries[1].keys[0]", mismatch.Path)
	})

	t.Run("strict mode rejects unknown wrapper keys", func(t *testing.T) {
		raw := decodeJSON(t, `{"spec":"chara_card_v2","spec_version":"2.0","data":{},"unknown":1}`)

		_, err := mapV2(raw, mapping.Strict)
		var unexpected *types.UnexpectedFieldError
		require.ErrorAs(t, err, &unexpected)
		assert.Equal(t, "unknown", unexpected.Path)

		_, err = mapV2(raw, mapping.Lenient)
		assert.NoError(t, err)
	})
}
