package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	buf := &bytes.Buffer{}
	Setup(buf, false)
	log.Debug().Msg("hidden")
	log.Info().Int("nodes", 42).Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "| INFO  |")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "nodes:")

	buf.Reset()
	Setup(buf, true)
	log.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "| DEBUG |")
	assert.Contains(t, buf.String(), "shown")
}
