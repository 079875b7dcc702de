package abbrev

import "github.com/invopop/jsonschema"

// Schema returns the JSON Schema describing a table file.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.Reflect(&File{})
	s.Title = "Abbreviation table"
	s.Description = "Word to abbreviation mappings for label shortening"
	return s
}
