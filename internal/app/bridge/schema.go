package bridge

import (
	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the bridge wire envelope.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	r.ExpandedStruct = true

	schema := r.Reflect(&Request{})
	schema.ID = "https://github.com/bnema/formbridge/bridge.schema.json"
	schema.Title = "formbridge bridge request"
	schema.Description = "A page to host call. Args is an object; see the args definition for the fields each op reads."

	argsSchema := r.Reflect(&Args{})
	if schema.Definitions == nil {
		schema.Definitions = jsonschema.Definitions{}
	}
	argsSchema.Version = ""
	schema.Definitions["Args"] = argsSchema

	respSchema := r.Reflect(&Response{})
	respSchema.Version = ""
	schema.Definitions["Response"] = respSchema
	return schema
}
