package ir

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestInvalidFunctionBodyMessageAndDetection(t *testing.T) {
	err := NewInvalidFunctionBody(FuncID(4), 12, "unexpected opcode 0x%02x", 0xfc)
	require.EqualError(t, err, "invalid function body (func 4, offset 12): unexpected opcode 0xfc")
	require.True(t, IsInvalidFunctionBody(err))
	require.False(t, IsUnsupportedFeature(err))
}

func TestInvalidFunctionBodySurvivesWrap(t *testing.T) {
	err := NewInvalidFunctionBody(FuncID(1), 0, "truncated")
	wrapped := pkgerrors.Wrap(err, "parsing code section")
	require.True(t, IsInvalidFunctionBody(wrapped))
}

func TestUnsupportedFeatureMessage(t *testing.T) {
	err := NewUnsupportedFeature("multi-value block results")
	require.EqualError(t, err, "unsupported feature: multi-value block results")
	require.True(t, IsUnsupportedFeature(err))
}

func TestInvalidTransformationMessage(t *testing.T) {
	err := NewInvalidTransformation(FuncID(2), ExprID(5), "target is tombstoned")
	require.EqualError(t, err, "invalid transformation (func 2, expr 5): target is tombstoned")
}
