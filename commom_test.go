package taglog

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_normLevel(t *testing.T) {
	for level := range LogLevel(255) {
		expect := level
		if level >= _LVL_MAX_for_checks_only {
			expect = DEFAULT_LOG_LEVEL
		}
		assert.Equal(t, expect, normLevel(level), fmt.Sprintf("Fail on %d", level))
	}
}

func Test_LogLevel_String(t *testing.T) {
	tests := []struct {
		name   string // description of this test case
		level  LogLevel
		expect string
	}{
		{"debug", LVL_DEBUG, "DEBUG"},
		{"info", LVL_INFO, "INFO"},
		{"warn", LVL_WARN, "WARN"},
		{"error", LVL_ERROR, "ERROR"},
		{"none", LVL_NONE, "NONE"},
		{"out of range", LogLevel(200), "DEBUG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.level.String(), "wrong name")
		})
	}
}

func Test_LevelTables_Aligned(t *testing.T) {
	for level := LVL_DEBUG; level < _LVL_MAX_for_checks_only; level++ {
		assert.NotEmpty(t, LevelNames[level], "no name for level %d", level)
		assert.NotEmpty(t, LevelBackColors[level], "no badge background for level %d", level)
	}
	for level := LVL_DEBUG; level <= LVL_ERROR; level++ {
		assert.NotEmpty(t, LevelLabels[level], "no label for printable level %d", level)
		assert.NotEmpty(t, LevelDateColors[level], "no date color for printable level %d", level)
		assert.NotEmpty(t, LevelTextColors[level], "no text color for printable level %d", level)
	}
	assert.Empty(t, LevelLabels[LVL_NONE], "silent level has a label")
}

func Test_Parallel_Multithreading(t *testing.T) {
	const (
		_DATACOUNT_  = 200 // Number of messages every goroutine has to log
		_GOROUTINES_ = 100 // Number of simultaneous goroutines logging
	)
	var wg sync.WaitGroup
	hold := make(chan int)

	// Plain lines look like "LOG [<stamp>] <id>:<seq>\n", under 48 bytes each
	out := &FakeWriter{make([]byte, 0, _GOROUTINES_*_DATACOUNT_*48)}
	l := InitWithParams(LVL_DEBUG, out).SetColors(false)

	goWorker := func(n int) {
		defer wg.Done()
		for range hold { // wait until channel is closed (to start all together)
		}
		// hammer the alias registry alongside the log path
		l.Alias("w"+strconv.Itoa(n), "bold")
		for seq := range _DATACOUNT_ {
			l.Infof("%d:%d", n, seq)
		}
	}
	for i := range _GOROUTINES_ {
		go goWorker(i)
		wg.Add(1)
	}
	close(hold) // unhold all goroutines
	wg.Wait()

	// Check results: every line is intact and per-goroutine order is kept
	lines := bytes.Split(bytes.TrimSuffix(out.buffer, []byte{'\n'}), []byte{'\n'})
	assert.Equal(t, _GOROUTINES_*_DATACOUNT_, len(lines), "wrong line count")

	var next [_GOROUTINES_]int
	var err error
	for i, line := range lines {
		s := string(line)
		if !strings.HasPrefix(s, "LOG [") {
			err = fmt.Errorf("Line %d: mangled prefix (%q)", i, s)
			break
		}
		closing := strings.Index(s, "] ")
		if closing < 0 {
			err = fmt.Errorf("Line %d: no stamp terminator (%q)", i, s)
			break
		}
		var id, seq int
		if cnt, serr := fmt.Sscanf(s[closing+2:], "%d:%d", &id, &seq); serr != nil || cnt != 2 {
			err = fmt.Errorf("Line %d: payload not parsable (%q, error %v)", i, s, serr)
			break
		}
		if id < 0 || id >= _GOROUTINES_ {
			err = fmt.Errorf("Line %d: worker %d out of range", i, id)
			break
		}
		if seq != next[id] {
			err = fmt.Errorf("Line %d: worker %d wrote %d, wanted %d", i, id, seq, next[id])
			break
		}
		next[id]++
	}
	assert.NoError(t, err, "error parsing output")

	for id := range _GOROUTINES_ {
		assert.Equal(t, _DATACOUNT_, next[id], "worker %d lost messages", id)
	}
	assert.Equal(t, _GOROUTINES_, l.Aliases().Len(), "wrong alias count")
}
