package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer

	w := Logger{Format: "json"}.writer(&buf)
	assert.Same(t, &buf, w)

	cw, ok := Logger{Format: "console", NoColor: true}.writer(&buf).(zerolog.ConsoleWriter)
	assert.True(t, ok)
	assert.True(t, cw.NoColor)
}

func TestSetup_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Logger{Level: "debug", Format: "json"}.Setup()
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Logger{Level: "bogus", Format: "json"}.Setup()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
