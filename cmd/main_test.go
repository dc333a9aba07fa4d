package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	assert.Equal(t, "config.env", configPath)
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "custom.env"}
	configPath := parseFlags()
	assert.Equal(t, "custom.env", configPath)
}

func TestParseConfig_Defaults(t *testing.T) {
	os.Clearenv()

	host, port, level := parseConfig("nonexistent.env")
	assert.Equal(t, "localhost", host)
	assert.Equal(t, "8080", port)
	assert.Equal(t, "info", level)
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")

	host, port, level := parseConfig("nonexistent.env")
	assert.Equal(t, "0.0.0.0", host)
	assert.Equal(t, "9090", port)
	assert.Equal(t, "debug", level)
}
