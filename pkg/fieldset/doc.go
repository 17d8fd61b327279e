// Package fieldset loads form schemas from declarative documents. Field sets
// are described in JSON or YAML files, or derived from an OpenAPI component
// schema.
package fieldset
