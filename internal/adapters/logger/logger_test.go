package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rpn/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestNew_WritesToStderr(t *testing.T) {
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("some message")
	})
	require.NoError(t, err)

	assert.Contains(t, output, "some message")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *logger.Logger)
		level string
		text  string
	}{
		{"Info", func(l *logger.Logger) { l.Info("computed", "index", 5) }, "INFO", "index=5"},
		{"Warn", func(l *logger.Logger) { l.Warn("slow pass") }, "WARN", "slow pass"},
		{"Error", func(l *logger.Logger) { l.Error(os.ErrPermission) }, "ERROR", "permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := logger.NewWithWriter(&buf)
			tt.log(lg)

			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), tt.text)
		})
	}
}

func TestLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetDebug(true)
	lg.Debug("rpn cache populated", "count", 2209)
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "count=2209")

	buf.Reset()
	lg.SetDebug(false)
	lg.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_Error_FlattensZerrChain(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	root := zerr.New("invalid RPN index")
	err := zerr.With(zerr.Wrap(root, "index 0 out of range"), "index", 0)
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "index 0 out of range: invalid RPN index")
	assert.Contains(t, out, "index=0")
}

func TestLogger_Error_Nil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.SetJSON(true)

	lg.Error(zerr.With(errors.New("boom"), "value", 11))

	line := strings.TrimSpace(buf.String())
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["msg"])
	assert.EqualValues(t, 11, record["value"])
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)
	lg.Info("one")

	lg.SetOutput(&second)
	lg.Info("two")

	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
}
