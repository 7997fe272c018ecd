// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, "items-client")

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "items-client", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Error().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestWithLevel_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, "test").WithLevel(zerolog.ErrorLevel)

	l.Info().Msg("skipped")
	assert.Zero(t, buf.Len())

	l.Error().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestGetChildLogger_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerWithWriter(&buf, "test")
	child := parent.GetChildLogger("adapter")

	parent.Info().Msg("parent")
	assert.NotContains(t, buf.String(), `"component"`)

	buf.Reset()
	child.Info().Msg("child")
	assert.Contains(t, buf.String(), `"component":"adapter"`)
	assert.Contains(t, buf.String(), `"role":"test"`)
}
