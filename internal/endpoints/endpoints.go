// Package endpoints holds the generated REST endpoint tables for the
// supported *arr services.
//
// Each [Service] is a flat, data-only description of one service's API
// surface: one [Endpoint] per REST operation, carrying everything the tool
// binder needs to expose it — HTTP method, templated path, parameters with
// their wire location, and the resource category used to scope sub-agents.
// The tables themselves live in chaptarr.go and radarr.go and are derived
// mechanically from the services' OpenAPI contracts; nothing in them is
// hand-tuned.
package endpoints

import (
	"slices"
	"strings"
)

// Location says where a parameter travels in the HTTP request.
type Location string

const (
	// InPath parameters replace a {placeholder} segment in Endpoint.Path.
	InPath Location = "path"
	// InQuery parameters are URL-encoded into the query string.
	InQuery Location = "query"
	// InBody marks the single JSON request body parameter, always named
	// "data" in the tables.
	InBody Location = "body"
)

// Param describes one endpoint parameter. Type is a JSON Schema type name:
// string, integer, number, boolean, array or object.
type Param struct {
	Name     string
	Type     string
	In       Location
	Required bool
}

// Endpoint describes one REST operation exposed as an MCP tool. Name doubles
// as the tool name and is unique within a service.
type Endpoint struct {
	Name    string
	Method  string
	Path    string
	Summary string
	Tag     string
	Params  []Param
}

// Service bundles an endpoint table with the connection metadata tools need:
// Slug names the injected connection parameters (<slug>_base_url and
// friends) and EnvPrefix names the environment variables holding the
// defaults (<PREFIX>_BASE_URL, <PREFIX>_API_KEY, <PREFIX>_VERIFY).
type Service struct {
	Name      string
	Slug      string
	EnvPrefix string
	Endpoints []Endpoint
}

// Categories returns the sorted distinct resource categories appearing in
// the service's endpoint table. The supervisor agent spawns one sub-agent
// per category.
func (s *Service) Categories() []string {
	seen := make(map[string]struct{}, 16)
	var cats []string
	for _, e := range s.Endpoints {
		if _, ok := seen[e.Tag]; ok {
			continue
		}
		seen[e.Tag] = struct{}{}
		cats = append(cats, e.Tag)
	}
	slices.Sort(cats)
	return cats
}

// ByCategory returns the endpoints tagged with the given category, in table
// order.
func (s *Service) ByCategory(category string) []Endpoint {
	var out []Endpoint
	for _, e := range s.Endpoints {
		if e.Tag == category {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the endpoint with the given tool name.
func (s *Service) Find(name string) (Endpoint, bool) {
	for _, e := range s.Endpoints {
		if e.Name == name {
			return e, true
		}
	}
	return Endpoint{}, false
}

// BodyParam returns the endpoint's JSON body parameter, if any.
func (e Endpoint) BodyParam() (Param, bool) {
	for _, p := range e.Params {
		if p.In == InBody {
			return p, true
		}
	}
	return Param{}, false
}

// FillPath substitutes {placeholder} segments in the endpoint path with the
// given values. Placeholders without a value are left intact; the binder
// treats that as a missing required parameter before ever building a URL.
func (e Endpoint) FillPath(values map[string]string) string {
	path := e.Path
	for name, v := range values {
		path = strings.ReplaceAll(path, "{"+name+"}", v)
	}
	return path
}
