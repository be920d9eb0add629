package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger(t *testing.T) {
	require := require.New(t)

	prev := GetLogger()
	t.Cleanup(func() { SetDefault(prev) })

	t.Run("Package functions", func(t *testing.T) {
		var buf bytes.Buffer
		SetDefault(NewSlogWithWriter(&buf, InfoLevel, false, false))

		Debug("hidden")
		require.Zero(buf.Len())

		SetLevel(DebugLevel)
		require.Equal(DebugLevel, GetLogger().Level())
		Debug("compaction")
		Warn("slow")
		Error("failed")
		Info("ready", "len", 1)

		out := buf.String()
		require.Contains(out, `"msg":"compaction"`)
		require.Contains(out, `"msg":"slow"`)
		require.Contains(out, `"msg":"failed"`)
		require.Contains(out, `"len":1`)
	})

	t.Run("With", func(t *testing.T) {
		var buf bytes.Buffer
		SetDefault(NewSlogWithWriter(&buf, InfoLevel, false, false))

		With("component", "queue").Info("enqueue", "size", 2)
		require.Contains(buf.String(), `"component":"queue"`)
		require.Contains(buf.String(), `"size":2`)
	})

	t.Run("Nil ignored", func(t *testing.T) {
		ml := NewMockLogger()
		ml.On("Info", "routed", mock.Anything).Return()

		SetDefault(ml)
		SetDefault(nil)
		require.Same(ml, GetLogger())

		Info("routed")
		ml.AssertCalled(t, "Info", "routed", []any(nil))
	})
}
