// Package types defines the versioned character card entities, the schema
// version discriminator, and the standard error taxonomy for the card
// parsing pipeline. Entities are plain value records: they are constructed
// once by the mapper and never mutated afterwards.
package types
