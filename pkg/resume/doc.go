// Package resume defines the read-only resume record every template renders,
// the built-in sample used by the gallery, and helpers to decode externally
// supplied records from JSON or YAML documents.
//
// Records are values: renderers receive copies and never write back. Records
// that come from outside the binary are validated once, when they are parsed,
// and rejected if a required field is missing.
package resume
