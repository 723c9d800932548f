package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportError_WrittenOnce(t *testing.T) {
	var stderr bytes.Buffer
	// -v routes log output to the same stream
	log.SetOutput(&stderr)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	reportError(&stderr, errors.New("open trips for boston: no such file"))
	assert.Equal(t, 1, strings.Count(stderr.String(), "no such file"))
	assert.Equal(t, "bikeshare: open trips for boston: no such file\n", stderr.String())
}

func TestEnvOr(t *testing.T) {
	t.Setenv("BIKESHARE_CONFIG", "")
	assert.Equal(t, "config.yml", envOr("BIKESHARE_CONFIG", "config.yml"))
	t.Setenv("BIKESHARE_CONFIG", "/etc/bikeshare.yml")
	assert.Equal(t, "/etc/bikeshare.yml", envOr("BIKESHARE_CONFIG", "config.yml"))
}
