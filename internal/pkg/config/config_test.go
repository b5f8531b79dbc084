package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	configs := InitConfig("")

	assert.Equal(t, "urbancabz-console", configs.App.Name)
	assert.Equal(t, 8080, configs.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, configs.Server.AllowedOrigins)
	assert.Equal(t, 60*time.Second, configs.Cache.IdentityTTL)
	assert.Equal(t, 10*time.Second, configs.Dashboard.ResyncInterval)
	assert.Equal(t, "console.booking_actions", configs.NSQ.Topic)
	assert.False(t, configs.Redis.Enabled())
	assert.False(t, configs.Database.Enabled())
}

func TestInitConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_BASE_URL", "https://api.urbancabz.in/api/")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://console.urbancabz.in, https://ops.urbancabz.in")
	t.Setenv("DASHBOARD_RESYNC_INTERVAL", "0s")
	t.Setenv("TELEGRAM_DISPATCH_CHAT_ID", "-100123")

	configs := InitConfig("")

	assert.Equal(t, "https://api.urbancabz.in/api", configs.API.BaseURL)
	assert.True(t, configs.Redis.Enabled())
	assert.Equal(t, []string{"https://console.urbancabz.in", "https://ops.urbancabz.in"}, configs.Server.AllowedOrigins)
	assert.Zero(t, configs.Dashboard.ResyncInterval)
	assert.Equal(t, int64(-100123), configs.Outreach.TelegramChatID)
}

func TestInitConfig_YAMLFileUnderEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nats:\n  url: nats://file:4222\nupi:\n  payee_vpa: file@upi\n"), 0o600))

	t.Setenv("APP_ENV", "production")
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("UPI_PAYEE_VPA", "env@upi")

	configs := InitConfig("")

	assert.Equal(t, "nats://file:4222", configs.NATS.URL)
	assert.Equal(t, "env@upi", configs.Outreach.UPIPayeeVPA)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CONSOLE_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("CONSOLE_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CONSOLE_TEST_MISSING", "fallback"))
}
