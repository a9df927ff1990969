package discovery

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/oceanparse/internal/ctxlog"
)

// ruleSchema is the HCL shape of a single `role` block.
type ruleSchema struct {
	Role        string         `hcl:"role,label"`
	Prefix      string         `hcl:"prefix"`
	SuffixChars *int           `hcl:"suffix_chars,optional"`
	Suffix      hcl.Expression `hcl:"suffix,optional"`
}

// manifestSchema is the top-level structure of a rules manifest file.
type manifestSchema struct {
	Roles  []*ruleSchema `hcl:"role,block"`
	Remain hcl.Body      `hcl:",remain"`
}

// LoadRules parses a rules manifest and overlays it on the default
// convention, so a manifest only has to name the roles it changes. The
// merged rule set is validated before being returned.
func LoadRules(ctx context.Context, path string) (Rules, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding discovery rules manifest.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rules manifest %s: %s", path, diags.Error())
	}

	var manifest manifestSchema
	diags = gohcl.DecodeBody(file.Body, nil, &manifest)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rules manifest %s: %s", path, diags.Error())
	}

	rules := DefaultRules()
	for _, block := range manifest.Roles {
		rule := &Rule{Prefix: block.Prefix}
		if block.SuffixChars != nil {
			rule.SuffixChars = *block.SuffixChars
		}
		// gohcl leaves optional expressions non-nil; only keep ones with content.
		if block.Suffix != nil {
			if vars := block.Suffix.Variables(); len(vars) > 0 || !exprIsNull(block.Suffix) {
				rule.SuffixExpr = block.Suffix
			}
		}
		rules[block.Role] = rule
	}

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules manifest %s: %w", path, err)
	}
	logger.Debug("Discovery rules manifest applied.", "roles_overridden", len(manifest.Roles))
	return rules, nil
}

// exprIsNull reports whether an omitted optional expression decoded to null.
func exprIsNull(expr hcl.Expression) bool {
	val, diags := expr.Value(nil)
	return !diags.HasErrors() && val.IsNull()
}
