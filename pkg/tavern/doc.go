// Package tavern parses character cards embedded in PNG image metadata.
//
// A card travels as base64-encoded JSON in the image's "chara" text chunk.
// Parse runs the full pipeline: extract metadata, decode the payload,
// resolve the advertised schema generation, and map the document into a
// typed card, falling back from V2 to the legacy V1 shape when a document
// claims V2 but does not satisfy it. Transport failures (bad base64,
// non-UTF-8 bytes, invalid JSON) are terminal and never fall back.
//
// The pipeline is pure and stateless; concurrent calls need no coordination.
package tavern
