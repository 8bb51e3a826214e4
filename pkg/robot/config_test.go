package robot

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progressrobotics/mycobot-go/pkg/transport"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mycobot.json")

	cfg := &Config{Port: "/dev/ttyAMA0", BaudRate: 115200, TimeoutMS: 200}
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{Port: "/dev/ttyAMA0"}
	assert.Equal(t, transport.DefaultBaudRate, cfg.Baud())
	assert.Equal(t, DefaultTimeout, cfg.Timeout())

	cfg = &Config{Port: "/dev/ttyAMA0", BaudRate: 115200, TimeoutMS: 200}
	assert.Equal(t, 115200, cfg.Baud())
	assert.Equal(t, 200*time.Millisecond, cfg.Timeout())
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
