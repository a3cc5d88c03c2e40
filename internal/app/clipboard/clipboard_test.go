package clipboard

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evtxview/internal/app/errors"
	"evtxview/internal/config"
	"evtxview/internal/config/logger"
)

func newTestCopier(native func(string) error, hasNative, terminal bool) (*copier, *bytes.Buffer) {
	var out bytes.Buffer

	return &copier{
		native:    native,
		hasNative: hasNative,
		out:       &out,
		terminal:  terminal,
		log:       logger.NewSilentLogger(config.DefaultConfig()),
	}, &out
}

func Test_Copy_Native(t *testing.T) {
	var copied string

	c, out := newTestCopier(func(s string) error {
		copied = s
		return nil
	}, true, true)

	method, err := c.Copy("EventID: 4624")
	require.NoError(t, err)

	assert.Equal(t, MethodNative, method)
	assert.Equal(t, "EventID: 4624", copied)
	assert.Empty(t, out.String())
}

func Test_Copy_FallbackToOSC52(t *testing.T) {
	c, out := newTestCopier(func(string) error { return assert.AnError }, true, true)

	method, err := c.Copy("hello")
	require.NoError(t, err)

	assert.Equal(t, MethodOSC52, method)
	assert.Contains(t, out.String(), base64.StdEncoding.EncodeToString([]byte("hello")))
	assert.Contains(t, out.String(), "\x1b]52;c;")
}

func Test_Copy_Unavailable(t *testing.T) {
	c, _ := newTestCopier(nil, false, false)

	_, err := c.Copy("hello")
	assert.ErrorIs(t, err, errors.ErrClipboardUnavailable)
}

func Test_osc52Term(t *testing.T) {
	assert.True(t, osc52Term("xterm-256color"))
	assert.False(t, osc52Term("dumb"))
	assert.False(t, osc52Term("DUMB"))
	assert.False(t, osc52Term(""))
}
