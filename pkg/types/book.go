package types

// Character book entry positions. An entry's Position is either one of
// these tokens or absent (nil); no other value is legal.
const (
	PositionBeforeChar = "before_char"
	PositionAfterChar  = "after_char"
)

// validPositions is the set of recognized entry position tokens.
var validPositions = map[string]bool{
	PositionBeforeChar: true,
	PositionAfterChar:  true,
}

// ValidPosition reports whether the given token is a legal entry position.
func ValidPosition(position string) bool {
	return validPositions[position]
}

// CharacterBook is the optional lorebook attached to a V2 card: keyed lore
// entries plus producer-specific metadata.
type CharacterBook struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	ScanDepth         *int     `json:"scan_depth,omitempty"`
	TokenBudget       *float64 `json:"token_budget,omitempty"`
	RecursiveScanning *bool    `json:"recursive_scanning,omitempty"`

	// Extensions is an open producer-specific payload, passed through
	// unvalidated and unmodified.
	Extensions map[string]any       `json:"extensions"`
	Entries    []CharacterBookEntry `json:"entries"`
}

// CharacterBookEntry is a single keyed lore entry.
type CharacterBookEntry struct {
	Keys           []string       `json:"keys"`
	Content        string         `json:"content"`
	Extensions     map[string]any `json:"extensions"`
	Enabled        bool           `json:"enabled"`
	InsertionOrder float64        `json:"insertion_order"`
	CaseSensitive  *bool          `json:"case_sensitive,omitempty"`

	Name     *string  `json:"name,omitempty"`
	Priority *float64 `json:"priority,omitempty"`

	ID            *float64 `json:"id,omitempty"`
	Comment       *string  `json:"comment,omitempty"`
	Selective     *bool    `json:"selective,omitempty"`
	SecondaryKeys []string `json:"secondary_keys,omitempty"`
	Constant      *bool    `json:"constant,omitempty"`
	// Position is PositionBeforeChar, PositionAfterChar, or nil.
	Position *string `json:"position,omitempty"`
}
