package mcpserver

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/arrmcp/arrmcp/internal/endpoints"
)

// connectionArgNames returns the names of the three connection-override
// properties injected into every tool of a service.
func connectionArgNames(svc *endpoints.Service) (baseURL, apiKey, verify string) {
	return svc.Slug + "_base_url", svc.Slug + "_api_key", svc.Slug + "_verify"
}

// connectionProperties returns the schema properties for the injected
// connection overrides. They are always optional; unset values fall back to
// the service's environment variables.
func connectionProperties(svc *endpoints.Service) map[string]*jsonschema.Schema {
	baseURL, apiKey, verify := connectionArgNames(svc)
	return map[string]*jsonschema.Schema{
		baseURL: {Type: "string", Description: "Base URL"},
		apiKey:  {Type: "string", Description: "API Key"},
		verify:  {Type: "boolean", Description: "Verify SSL"},
	}
}

// InputSchema builds the JSON schema for one endpoint's tool: every table
// parameter plus the three connection overrides. Parameter descriptions are
// the parameter names, the same surface the generated servers have always
// exposed.
func InputSchema(svc *endpoints.Service, ep endpoints.Endpoint) *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(ep.Params)+3)
	var required []string

	for _, p := range ep.Params {
		props[p.Name] = &jsonschema.Schema{Type: p.Type, Description: p.Name}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	for name, s := range connectionProperties(svc) {
		props[name] = s
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

// extraToolSchema builds the schema for a hand-written tool from its own
// property map, appending the connection overrides like InputSchema does.
func extraToolSchema(svc *endpoints.Service, props map[string]*jsonschema.Schema, required []string) *jsonschema.Schema {
	all := make(map[string]*jsonschema.Schema, len(props)+3)
	for name, s := range props {
		all[name] = s
	}
	for name, s := range connectionProperties(svc) {
		all[name] = s
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: all,
		Required:   required,
	}
}
