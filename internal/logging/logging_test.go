package logging

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
    assert.Equal(t, zap.DebugLevel, parseLevel("DEBUG"))
    assert.Equal(t, zap.WarnLevel, parseLevel(" warn "))
    assert.Equal(t, zap.ErrorLevel, parseLevel("error"))
    assert.Equal(t, zap.InfoLevel, parseLevel("verbose"))
}

func TestNew(t *testing.T) {
    l, err := New("debug")
    require.NoError(t, err)
    assert.True(t, l.Core().Enabled(zap.DebugLevel))
}
