package xlog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, Get().GetLevel())
}

func TestSetRoutesEvents(t *testing.T) {
	prev := *Get()
	t.Cleanup(func() { Set(prev) })

	var buf bytes.Buffer
	Set(zerolog.New(&buf).Level(zerolog.DebugLevel))

	Debug("lazy", "forced")
	Error("rop", errors.New("boom"), "unwrap failed")

	out := buf.String()
	assert.Contains(t, out, `"component":"lazy"`)
	assert.Contains(t, out, `"message":"forced"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"level":"error"`)
}
