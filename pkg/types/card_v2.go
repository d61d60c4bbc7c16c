package types

// Discriminator literals a valid V2 wrapper must carry.
const (
	SpecV2        = "chara_card_v2"
	SpecVersionV2 = "2.0"
)

// CardV2 is the V2 wrapper record. Spec and SpecVersion must equal the
// literals above for the document to count as V2; anything else is treated
// as a mislabeled legacy card.
type CardV2 struct {
	Spec        string     `json:"spec"`
	SpecVersion string     `json:"spec_version"`
	Data        CardV2Data `json:"data"`
}

// CardV2Data is the nested payload of a V2 card. It is a superset of the
// CardV1 core fields and carries the legacy extension fields forward for
// interoperability with older consumers.
type CardV2Data struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Personality string `json:"personality"`
	Scenario    string `json:"scenario"`
	FirstMes    string `json:"first_mes"`
	MesExample  string `json:"mes_example"`

	CreatorNotes            string         `json:"creator_notes"`
	SystemPrompt            string         `json:"system_prompt"`
	PostHistoryInstructions string         `json:"post_history_instructions"`
	AlternateGreetings      []string       `json:"alternate_greetings"`
	CharacterBook           *CharacterBook `json:"character_book,omitempty"`

	Tags             []string `json:"tags"`
	Creator          string   `json:"creator"`
	CharacterVersion string   `json:"character_version"`

	// Legacy extension fields carried forward from V1.
	Fav            *bool    `json:"fav,omitempty"`
	Chat           *string  `json:"chat,omitempty"`
	CreatorComment *string  `json:"creator_comment,omitempty"`
	Avatar         *string  `json:"avatar,omitempty"`
	CreateDate     *string  `json:"create_date,omitempty"`
	Talkativeness  *float64 `json:"talkativeness,omitempty"`
}

// NewCardV2 returns an empty V2 card with the discriminator literals
// populated and sequence fields initialized to empty.
func NewCardV2() CardV2 {
	return CardV2{
		Spec:        SpecV2,
		SpecVersion: SpecVersionV2,
		Data: CardV2Data{
			AlternateGreetings: []string{},
			Tags:               []string{},
		},
	}
}

// SchemaVersion implements Card.
func (c *CardV2) SchemaVersion() SchemaVersion { return SchemaV2 }

// CharacterName implements Card.
func (c *CardV2) CharacterName() string { return c.Data.Name }
