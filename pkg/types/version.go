package types

// SchemaVersion identifies which card schema generation a document follows.
type SchemaVersion int

// Known schema generations, oldest first.
const (
	SchemaV1 SchemaVersion = iota + 1
	SchemaV2
)

// String returns the conventional short name of the schema version.
func (v SchemaVersion) String() string {
	switch v {
	case SchemaV1:
		return "v1"
	case SchemaV2:
		return "v2"
	default:
		return "unknown"
	}
}
