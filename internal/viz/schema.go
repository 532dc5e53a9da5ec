package viz

import (
	"github.com/invopop/jsonschema"
)

// Schema documents the Frame wire format.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(&Frame{})
	schema.Version = jsonschema.Version
	schema.Title = "tilepath step frame"
	schema.Description = "One search observation streamed per tick. The grid is present on the first frame only."
	return schema
}
