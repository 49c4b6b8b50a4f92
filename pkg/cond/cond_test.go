package cond

import (
	"context"
	"testing"

	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRisorEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		vars map[string]any
		want bool
	}{
		{"greater than holds", "x > 3", map[string]any{"x": int64(5)}, true},
		{"greater than fails", "x > 3", map[string]any{"x": int64(2)}, false},
		{"boolean and", "x > 3 && ok", map[string]any{"x": int64(4), "ok": true}, true},
		{"string equality", `name == "oops"`, map[string]any{"name": "oops"}, true},
		{"empty is true", "   ", nil, true},
	}

	eval := NewRisor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval.Evaluate(context.Background(), tt.expr, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRisorEvaluateError(t *testing.T) {
	_, err := NewRisor().Evaluate(context.Background(), "x >", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCondition))
}

func TestTruthy(t *testing.T) {
	assert.False(t, truthy(nil))
	assert.True(t, truthy(true))
	assert.False(t, truthy(int64(0)))
	assert.True(t, truthy(1.5))
	assert.False(t, truthy(""))
	assert.True(t, truthy([]int{1}))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, int64(42), ParseValue("42"))
	assert.Equal(t, int64(16), ParseValue("0x10"))
	assert.Equal(t, 2.5, ParseValue("2.5"))
	assert.Equal(t, true, ParseValue("true"))
	assert.Equal(t, "42", ParseValue(`"42"`))
	assert.Equal(t, "oops", ParseValue("oops"))
}
