package tavern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

func TestResolveSchema(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  types.SchemaVersion
	}{
		{
			name:  "v2 discriminator",
			value: map[string]any{"spec": "chara_card_v2"},
			want:  types.SchemaV2,
		},
		{
			name:  "no spec field",
			value: map[string]any{"name": "Old Bot"},
			want:  types.SchemaV1,
		},
		{
			name:  "wrong spec value",
			value: map[string]any{"spec": "chara_card_v3"},
			want:  types.SchemaV1,
		},
		{
			name:  "spec is not a string",
			value: map[string]any{"spec": float64(2)},
			want:  types.SchemaV1,
		},
		{
			name:  "root is an array",
			value: []any{"spec"},
			want:  types.SchemaV1,
		},
		{
			name:  "root is a string",
			value: "chara_card_v2",
			want:  types.SchemaV1,
		},
		{
			name:  "nil value",
			value: nil,
			want:  types.SchemaV1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveSchema(tt.value))
		})
	}
}
