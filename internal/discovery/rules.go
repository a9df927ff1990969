package discovery

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Role names for the auxiliary file kinds an OCEAN run produces.
const (
	RoleSpectra = "spectra"
	RolePhoton  = "photon"
	RoleLanczos = "lanczos"
)

// knownRoles is the controlled vocabulary a rules manifest may configure.
var knownRoles = map[string]struct{}{
	RoleSpectra: {},
	RolePhoton:  {},
	RoleLanczos: {},
}

// Rule describes how filenames of one role are recognized.
type Rule struct {
	// Prefix is the mandatory filename prefix, e.g. "absspct".
	Prefix string
	// SuffixChars is how many trailing characters of the polarization key
	// the filename must end with. Zero disables suffix filtering.
	SuffixChars int
	// SuffixExpr, when set, overrides SuffixChars: the expression is
	// evaluated with the polarization key bound to `pol` (and its one- and
	// two-character tails to `pol1`, `pol2`) and must yield a string.
	SuffixExpr hcl.Expression
}

// Rules maps a role name to its matching rule.
type Rules map[string]*Rule

// DefaultRules returns the built-in OCEAN naming convention: spectra results
// in absspct* files, photon descriptors matched on the last character of the
// polarization key, lanczos dumps on the last two.
func DefaultRules() Rules {
	return Rules{
		RoleSpectra: {Prefix: "absspct"},
		RolePhoton:  {Prefix: "photon", SuffixChars: 1},
		RoleLanczos: {Prefix: "abslanc", SuffixChars: 2},
	}
}

// Validate checks the integrity of a rule set: only known roles, every role
// present, every prefix non-empty.
func (r Rules) Validate() error {
	for role := range r {
		if _, ok := knownRoles[role]; !ok {
			return fmt.Errorf("unknown file role %q in discovery rules", role)
		}
	}
	for role := range knownRoles {
		rule, ok := r[role]
		if !ok {
			return fmt.Errorf("discovery rules missing role %q", role)
		}
		if rule.Prefix == "" {
			return fmt.Errorf("discovery rule for role %q has an empty prefix", role)
		}
		if rule.SuffixChars < 0 {
			return fmt.Errorf("discovery rule for role %q has a negative suffix length", role)
		}
	}
	return nil
}

// suffixFor computes the filename suffix a file of this rule's role must
// carry to belong to the given polarization key.
func (rule *Rule) suffixFor(key string) (string, error) {
	if rule.SuffixExpr != nil {
		evalCtx := &hcl.EvalContext{
			Variables: map[string]cty.Value{
				"pol":  cty.StringVal(key),
				"pol1": cty.StringVal(tail(key, 1)),
				"pol2": cty.StringVal(tail(key, 2)),
			},
		}
		val, diags := rule.SuffixExpr.Value(evalCtx)
		if diags.HasErrors() {
			return "", fmt.Errorf("failed to evaluate suffix expression: %s", diags.Error())
		}
		val, err := convert.Convert(val, cty.String)
		if err != nil {
			return "", fmt.Errorf("suffix expression must yield a string: %w", err)
		}
		return val.AsString(), nil
	}
	return tail(key, rule.SuffixChars), nil
}

// tail returns the last n characters of s, or all of s when it is shorter.
func tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
