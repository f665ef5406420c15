package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		val      string
		def      string
		expected string
	}{
		{
			name:     "returns existing env",
			key:      "TEST_ENV_EXIST",
			val:      "value",
			def:      "default",
			expected: "value",
		},
		{
			name:     "returns default when env missing",
			key:      "TEST_ENV_MISSING",
			val:      "",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv(tt.key, tt.val)
			} else {
				os.Unsetenv(tt.key)
			}
			assert.Equal(t, tt.expected, getenv(tt.key, tt.def))
		})
	}
}

func TestGetenvBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		val      string
		def      bool
		expected bool
	}{
		{"returns true when env is true", "TEST_BOOL_TRUE", "true", false, true},
		{"returns false when env is false", "TEST_BOOL_FALSE", "false", true, false},
		{"returns default when env missing", "TEST_BOOL_MISSING", "", true, true},
		{"returns false when env is not true", "TEST_BOOL_INVALID", "yes", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv(tt.key, tt.val)
			} else {
				os.Unsetenv(tt.key)
			}
			assert.Equal(t, tt.expected, getenvBool(tt.key, tt.def))
		})
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		name      string
		val       string
		expect    string
		expectErr bool
	}{
		{"valid", "8080", "8080", false},
		{"zero", "0", "0", false},
		{"default", "", "8000", false},
		{"not a number", "abc", "", true},
		{"out of range", "70000", "", true},
		{"negative", "-1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("PORT", tt.val)
			} else {
				os.Unsetenv("PORT")
			}
			port, err := parsePort("PORT", "8000")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid PORT value")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expect, port)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		envs      map[string]string
		expectErr bool
	}{
		{
			name:      "defaults",
			envs:      map[string]string{},
			expectErr: false,
		},
		{
			name:      "invalid port",
			envs:      map[string]string{"PORT": "http"},
			expectErr: true,
		},
		{
			name:      "invalid pprof port",
			envs:      map[string]string{"PPROF_ENABLED": "true", "PPROF_PORT": "99999"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			cfg, err := parse()
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := parse()
	assert.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host())
	assert.Equal(t, "8000", cfg.Port())
	assert.True(t, cfg.BadRequestResponse())
	assert.False(t, cfg.PprofEnabled())
	assert.Equal(t, "6060", cfg.PprofPort())
}

func TestGetters(t *testing.T) {
	envs := map[string]string{
		"HOST":                 "::1",
		"PORT":                 "9090",
		"BAD_REQUEST_RESPONSE": "false",
		"PPROF_ENABLED":        "true",
		"PPROF_PORT":           "7070",
	}

	os.Clearenv()
	for k, v := range envs {
		t.Setenv(k, v)
	}

	cfg, err := parse()
	assert.NoError(t, err)

	assert.Equal(t, "::1", cfg.Host())
	assert.Equal(t, "9090", cfg.Port())
	assert.False(t, cfg.BadRequestResponse())
	assert.True(t, cfg.PprofEnabled())
	assert.Equal(t, "7070", cfg.PprofPort())
}

func TestMustLoad(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		os.Clearenv()
		cfg, err := MustLoad()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
	})

	t.Run("loadEnvFile error", func(t *testing.T) {
		err := os.Mkdir(".env", 0755)
		assert.NoError(t, err)
		defer os.Remove(".env")

		cfg, err := MustLoad()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("parse error", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("PORT", "invalid")
		cfg, err := MustLoad()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("file exists", func(t *testing.T) {
		err := os.WriteFile(".env", []byte("TEST_ENV_FILE=true"), 0644)
		assert.NoError(t, err)
		defer os.Remove(".env")

		err = loadEnvFile()
		assert.NoError(t, err)
		assert.Equal(t, "true", os.Getenv("TEST_ENV_FILE"))
	})

	t.Run("file missing", func(t *testing.T) {
		_ = os.Remove(".env")
		err := loadEnvFile()
		assert.NoError(t, err)
	})
}
