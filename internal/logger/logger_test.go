package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebug_SuppressedWithoutVerbose(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(false)
	defer SetVerbose(false)

	Debug("hidden %s", "message")
	assert.Empty(t, buf.String())
}

func TestDebug_PrintedWithVerbose(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)
	defer SetVerbose(false)

	Debug("refresh in %ds", 30)
	assert.Contains(t, buf.String(), "[DEBUG] refresh in 30s")
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(false)

	Warn("drive name sync failed: %s", "403")
	assert.Contains(t, buf.String(), "[WARN] drive name sync failed: 403")
}

func TestIsVerbose(t *testing.T) {
	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}
