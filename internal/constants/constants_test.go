package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "jsonsettings", AppName)
}

func TestLogFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "jsonsettings.log", LogFilename)
}

func TestConfigFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "config.yml", ConfigFilename)
}
