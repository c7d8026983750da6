// Package policy implements optional tool-call authorization for the MCP
// servers, selected with -eunomia-type.
//
// Two engines exist: [Embedded] evaluates glob rules loaded from a local
// JSONC policy file, and [Remote] defers each decision to an external policy
// server. Both answer the same question: may this principal call this tool?
// No engine configured means every call is allowed.
package policy

import "context"

// Input describes one tool call to authorize. Principal is the verified
// caller identity and is empty for unauthenticated transports.
type Input struct {
	Principal string `json:"principal"`
	Action    string `json:"action"`
	Resource  string `json:"resource"`
}

// Decision is the outcome of a policy check. Reason is for logs; callers
// present a fixed denial message to tools.
type Decision struct {
	Allow  bool
	Reason string
}

// Engine decides whether a tool call is allowed. Implementations must be
// safe for concurrent use.
type Engine interface {
	Check(ctx context.Context, in Input) (Decision, error)
}

// ActionCallTool is the action name used for MCP tool invocations.
const ActionCallTool = "call_tool"
