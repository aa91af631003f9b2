package llmutils

import "github.com/invopop/jsonschema"

// GenerateSchema returns the JSON Schema of T, with every definition inlined
// and no additional properties allowed.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}
