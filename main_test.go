package main

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(&stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "Watch Prices (USD to INR Conversion):\n"+
		"Rolex Submariner: $10000.00 USD = ₹830000.00 INR\n"+
		"Omega Seamaster: $5000.00 USD = ₹415000.00 INR\n"+
		"Casio G-Shock: $150.00 USD = ₹12450.00 INR\n"+
		"Apple Watch Ultra: $800.00 USD = ₹66400.00 INR\n", stdout.String())
	assert.Empty(t, stderr.String(), "debug logs must be filtered at info level")
}

type failingWriter struct{}

var errFull = errors.New("no space left on device")

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errFull
}

func TestRun_StdoutFailure(t *testing.T) {
	var stderr bytes.Buffer

	err := run(failingWriter{}, &stderr)

	assert.ErrorIs(t, err, errFull)

	line := stderr.String()
	assert.Contains(t, line, "level=error")
	assert.Contains(t, line, `msg="report failed"`)
	assert.Contains(t, line, "caller=main.go:")
	assert.Equal(t, 1, strings.Count(line, "writing report"))
}
