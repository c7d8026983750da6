package policy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/tidwall/jsonc"
)

// Rule is one entry in an embedded policy file. Resource is a glob matched
// against tool names; Principal is an exact client id, or "*" (or empty) for
// any caller.
type Rule struct {
	Principal string `json:"principal"`
	Resource  string `json:"resource"`
	Effect    string `json:"effect"`
}

// File is the on-disk policy document. The format tolerates // comments and
// trailing commas.
type File struct {
	Version string `json:"version"`
	Rules   []Rule `json:"rules"`
}

// Embedded evaluates policy rules locally. Deny rules are checked before
// allow rules, and a call nothing matches is allowed.
type Embedded struct {
	rules []Rule
}

// LoadEmbedded reads and validates a JSONC policy file. Any problem — an
// unreadable file, malformed JSON, an unknown effect, a bad glob — is a
// startup error.
func LoadEmbedded(filePath string) (*Embedded, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read policy file %s: %w", filePath, err)
	}

	// Strip comments and trailing commas before parsing as standard JSON.
	stripped := jsonc.ToJSON(data)

	var doc File
	if err := json.Unmarshal(stripped, &doc); err != nil {
		return nil, fmt.Errorf("parse policy file %s: %w", filePath, err)
	}

	for i, r := range doc.Rules {
		if r.Effect != "allow" && r.Effect != "deny" {
			return nil, fmt.Errorf("policy rule %d: unknown effect %q (want allow or deny)", i, r.Effect)
		}
		if r.Resource == "" {
			return nil, fmt.Errorf("policy rule %d: empty resource", i)
		}
		if _, err := path.Match(r.Resource, "probe"); err != nil {
			return nil, fmt.Errorf("policy rule %d: bad resource pattern %q: %w", i, r.Resource, err)
		}
	}
	return &Embedded{rules: doc.Rules}, nil
}

func (e *Embedded) Check(_ context.Context, in Input) (Decision, error) {
	// Deny rules win over allow rules regardless of file order.
	for _, r := range e.rules {
		if r.Effect == "deny" && e.matches(r, in) {
			return Decision{Allow: false, Reason: fmt.Sprintf("deny rule %q matched", r.Resource)}, nil
		}
	}
	for _, r := range e.rules {
		if r.Effect == "allow" && e.matches(r, in) {
			return Decision{Allow: true, Reason: fmt.Sprintf("allow rule %q matched", r.Resource)}, nil
		}
	}
	return Decision{Allow: true, Reason: "no rule matched"}, nil
}

func (e *Embedded) matches(r Rule, in Input) bool {
	if r.Principal != "" && r.Principal != "*" && r.Principal != in.Principal {
		return false
	}
	ok, err := path.Match(r.Resource, in.Resource)
	return err == nil && ok
}
