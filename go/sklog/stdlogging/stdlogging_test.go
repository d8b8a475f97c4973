package stdlogging

import (
	"bytes"
	"os"
	"testing"

	"github.com/formatshift/formatshift/go/sklog/sklogimpl"
	"github.com/stretchr/testify/assert"
)

type fauxSyncWriter struct {
	bytes.Buffer
}

func (f *fauxSyncWriter) Sync() error {
	return nil
}

func TestLog_WritesMessagesAtEachSeverity(t *testing.T) {
	var buf fauxSyncWriter
	l := New(&buf, true)

	l.Log(0, sklogimpl.Debug, "debug %d", 1)
	l.Log(0, sklogimpl.Info, "", "info line")
	l.Log(0, sklogimpl.Warning, "warning %s", "two")
	l.Log(0, sklogimpl.Error, "error %s", "three")

	out := buf.String()
	assert.Contains(t, out, "debug 1")
	assert.Contains(t, out, "info line")
	assert.Contains(t, out, "warning two")
	assert.Contains(t, out, "error three")
}

func TestLog_DebugDisabled_DropsDebugLines(t *testing.T) {
	var buf fauxSyncWriter
	l := New(&buf, false)

	l.Log(0, sklogimpl.Debug, "hidden")
	l.Log(0, sklogimpl.Info, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSyncWriter_PlainWriter_GetsNoopSync(t *testing.T) {
	var buf bytes.Buffer
	sw := SyncWriter(&buf)
	assert.NoError(t, sw.Sync())

	New(sw, false).Log(0, sklogimpl.Info, "via %s", "buffer")
	assert.Contains(t, buf.String(), "via buffer")
}

func TestSyncWriter_File_IsReturnedAsIs(t *testing.T) {
	assert.Equal(t, os.Stderr, SyncWriter(os.Stderr))
}
