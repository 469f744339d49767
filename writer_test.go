package taglog

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Logger_Lvl(t *testing.T) {
	out := &FakeWriter{}
	l := InitWithParams(LVL_DEBUG, out)
	assert.Equal(t, l, l.Lvl(LVL_WARN), "result is another logger")

	t.Run("for_255", func(t *testing.T) {
		for level := range LogLevel(255) {
			assert.Equal(t, normLevel(level), l.Lvl(level).curLvl, fmt.Sprintf("Fail on %d", level))
		}
	})
}

func Test_Logger_Write(t *testing.T) {
	out := &FakeWriter{}
	l := InitWithParams(LVL_DEBUG, out)

	t.Run("nil_message", func(t *testing.T) {
		out.Clear()
		n, err := l.Lvl(LVL_INFO).Write(nil)
		assert.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, out.buffer)
	})
	t.Run("reports_full_length", func(t *testing.T) {
		out.Clear()
		n, err := fmt.Fprint(l.Lvl(LVL_INFO), "payload")
		assert.NoError(t, err)
		assert.Equal(t, len("payload"), n, "wrong reported length")
		assert.Contains(t, out.String(), " LOG ", "wrong level badge")
	})
	t.Run("trailing_newline_trimmed", func(t *testing.T) {
		out.Clear()
		_, err := fmt.Fprintln(l.Lvl(LVL_INFO), "one line")
		assert.NoError(t, err)
		assert.Contains(t, out.String(), "one line \x1b[0m\n", "message mangled")
		assert.Equal(t, 1, bytes.Count(out.buffer, []byte{'\n'}), "wrong line count")
	})
	t.Run("filtered_write_still_reports_length", func(t *testing.T) {
		quiet := InitWithParams(LVL_ERROR, out)
		out.Clear()
		n, err := fmt.Fprint(quiet.Lvl(LVL_DEBUG), "dropped")
		assert.NoError(t, err)
		assert.Equal(t, len("dropped"), n, "wrong reported length")
		assert.Empty(t, out.buffer, "filtered message was written")
	})
}

func Test_Logger_StdlibLogAdapter(t *testing.T) {
	out := &FakeWriter{}
	l := InitWithParams(LVL_DEBUG, out)

	lg := log.New(l.Lvl(LVL_ERROR), "", 0)
	lg.Println("from stdlib")
	assert.Contains(t, out.String(), "from stdlib", "message lost")
	assert.Contains(t, out.String(), " ERR ", "wrong level badge")
	assert.Equal(t, 1, bytes.Count(out.buffer, []byte{'\n'}), "wrong line count")
}
