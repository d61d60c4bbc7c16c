package types

// Card is the common surface of every parsed card, regardless of which
// schema generation produced it. Callers that need version-specific fields
// type-switch on the concrete *CardV1 / *CardV2.
type Card interface {
	// SchemaVersion reports which schema generation the card was mapped with.
	SchemaVersion() SchemaVersion
	// CharacterName returns the card's display name.
	CharacterName() string
}

// CardV1 is the legacy flat card format: six core text fields at the top
// level, with no wrapper and no discriminator.
type CardV1 struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Personality string `json:"personality"`
	Scenario    string `json:"scenario"`
	FirstMes    string `json:"first_mes"`
	MesExample  string `json:"mes_example"`

	// Extension fields emitted by some legacy producers. All optional.
	Fav            *bool    `json:"fav,omitempty"`
	Chat           *string  `json:"chat,omitempty"`
	CreatorComment *string  `json:"creator_comment,omitempty"`
	Avatar         *string  `json:"avatar,omitempty"`
	CreateDate     *string  `json:"create_date,omitempty"`
	Talkativeness  *float64 `json:"talkativeness,omitempty"`
}

// SchemaVersion implements Card.
func (c *CardV1) SchemaVersion() SchemaVersion { return SchemaV1 }

// CharacterName implements Card.
func (c *CardV1) CharacterName() string { return c.Name }
