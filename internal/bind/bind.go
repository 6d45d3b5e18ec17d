package bind

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/cligram/internal/ctxlog"
	"github.com/vk/cligram/internal/cvec"
)

// EvalContext builds an HCL evaluation scope from vv. Every named record
// with a value becomes a variable; on duplicate names the first record
// wins, matching the vector's Find semantics. Keyword records are skipped
// while the keyword-exclusion mode is on.
func EvalContext(vv *cvec.Vec) *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for cv := vv.Each(nil); cv != nil; cv = vv.Each(cv) {
		if cv.Name() == "" {
			continue
		}
		if cv.IsConst() && cvec.ExcludeKeywords() {
			continue
		}
		val := cv.Value()
		if val == cty.NilVal || val.IsNull() {
			continue
		}
		if _, ok := vars[cv.Name()]; ok {
			continue
		}
		vars[cv.Name()] = val
	}
	return &hcl.EvalContext{Variables: vars}
}

// Eval parses src as a single HCL expression and evaluates it against the
// scope EvalContext builds from vv.
func Eval(ctx context.Context, src string, vv *cvec.Vec) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)

	expr, diags := hclsyntax.ParseExpression([]byte(src), "<arg>", hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("parsing argument expression %q: %w", src, diags)
	}
	val, diags := expr.Value(EvalContext(vv))
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("evaluating argument expression %q: %w", src, diags)
	}
	logger.Debug("Argument expression evaluated.", "expr", src, "type", val.Type().FriendlyName())
	return val, nil
}

// References parses src as an HCL expression and returns the sorted, unique
// root names of the variables it refers to, so callers can check an
// expression against a vector before matching has bound any values.
func References(src string) ([]string, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<arg>", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing argument expression %q: %w", src, diags)
	}
	seen := make(map[string]struct{})
	for _, traversal := range expr.Variables() {
		seen[traversal.RootName()] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
