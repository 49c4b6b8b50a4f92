// Package cond evaluates breakpoint condition expressions against the
// variables visible at a stop.
package cond

import (
	"context"
	"strconv"
	"strings"

	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/risor-io/risor"
	"github.com/risor-io/risor/object"
)

// Risor evaluates conditions as risor expressions. The stop's variables
// are exposed as globals; the condition holds when the result is truthy.
type Risor struct{}

// NewRisor returns a risor-backed evaluator.
func NewRisor() *Risor {
	return &Risor{}
}

// Evaluate reports whether expr holds for vars.
func (r *Risor) Evaluate(ctx context.Context, expr string, vars map[string]any) (bool, error) {
	if strings.TrimSpace(expr) == "" {
		return true, nil
	}
	globals := make(map[string]any, len(vars))
	for k, v := range vars {
		globals[k] = v
	}
	result, err := risor.Eval(ctx, expr, risor.WithGlobals(globals))
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrCondition, "cannot evaluate \"%s\"", expr)
	}
	return truthy(result), nil
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case object.Object:
		return val.IsTruthy()
	case bool:
		return val
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}

// ParseValue converts the text of a `NAME=VALUE` assignment into the most
// specific Go value: integer (any base prefix), float, bool, or string.
// Quoted values are always strings.
func ParseValue(s string) any {
	if unq, err := strconv.Unquote(s); err == nil {
		return unq
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
