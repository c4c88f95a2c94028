package config_test

import (
	"testing"

	"github.com/sgaunet/gohead/pkg/config"
	"github.com/sgaunet/gohead/pkg/copier"
	"github.com/sgaunet/gohead/pkg/sizespec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromFile(t *testing.T) {
	t.Run("normal case", func(t *testing.T) {
		cfg, err := config.NewConfigFromFile("testdata/good-cfg.yaml")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.Equal(t, "-n 5 -q", cfg.Options)
		require.Equal(t, "info", cfg.DebugLevel)
		require.True(t, cfg.NoLogTime)
		require.Equal(t, "http://localhost:9000", cfg.S3cfg.Endpoint)
		require.Equal(t, "us-east-1", cfg.S3cfg.Region)
		require.InDelta(t, 5.0, cfg.S3cfg.RequestsPerSecond, 0)
		require.Equal(t, 2, cfg.S3cfg.RequestBurst)
		require.NoError(t, cfg.Validate())
	})
	t.Run("file not found", func(t *testing.T) {
		_, err := config.NewConfigFromFile("testdata/unknown.yaml")
		require.Error(t, err)
	})
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.NewConfigFromFile("testdata/invalid-cfg.yaml")
		require.Error(t, err)
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("valid environment variables", func(t *testing.T) {
		t.Setenv("GOHEAD_OPTIONS", "-c 1K")
		t.Setenv("GOHEAD_DEBUGLEVEL", "debug")
		t.Setenv("GOHEAD_NOLOGTIME", "true")
		t.Setenv("S3ENDPOINT", "myendpoint")
		t.Setenv("S3REGION", "myregion")
		t.Setenv("AWS_ACCESS_KEY_ID", "myaccesskey")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "mysecretkey")
		t.Setenv("S3_REQUESTS_PER_SECOND", "2.5")
		t.Setenv("S3_REQUEST_BURST", "3")

		cfg, err := config.NewConfigFromEnv()
		require.NoError(t, err)
		require.Equal(t, "-c 1K", cfg.Options)
		require.Equal(t, "debug", cfg.DebugLevel)
		require.True(t, cfg.NoLogTime)
		require.Equal(t, "myendpoint", cfg.S3cfg.Endpoint)
		require.Equal(t, "myregion", cfg.S3cfg.Region)
		require.Equal(t, "myaccesskey", cfg.S3cfg.AccessKey)
		require.Equal(t, "mysecretkey", cfg.S3cfg.SecretKey)
		require.InDelta(t, 2.5, cfg.S3cfg.RequestsPerSecond, 0)
		require.Equal(t, 3, cfg.S3cfg.RequestBurst)
		require.True(t, cfg.IsS3ConfigValid())
	})
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("GOHEAD_DEBUGLEVEL", "warn")
		cfg, err := config.NewConfigFromEnv()
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr error
	}{
		{"default", func(*config.Config) {}, nil},
		{"unknown level", func(c *config.Config) { c.DebugLevel = "trace" }, config.ErrInvalidDebugLevel},
		{"zero rate", func(c *config.Config) { c.S3cfg.RequestsPerSecond = 0 }, config.ErrInvalidS3Config},
		{"zero burst", func(c *config.Config) { c.S3cfg.RequestBurst = 0 }, config.ErrInvalidS3Config},
		{"half credentials", func(c *config.Config) { c.S3cfg.AccessKey = "ak" }, config.ErrInvalidS3Config},
		{"full credentials", func(c *config.Config) {
			c.S3cfg.AccessKey = "ak"
			c.S3cfg.SecretKey = "sk"
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSplitOptions(t *testing.T) {
	tests := []struct {
		name    string
		options string
		want    []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"simple", "-n 5 -q", []string{"-n", "5", "-q"}},
		{"double quoted", `-n "5"`, []string{"-n", "5"}},
		{"single quoted path", `'my file'`, []string{"my file"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Options = tt.options
			got, err := cfg.SplitOptions()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unterminated quote", func(t *testing.T) {
		cfg := config.Default()
		cfg.Options = `-n "5`
		_, err := cfg.SplitOptions()
		require.Error(t, err)
	})
}

func TestRedacted(t *testing.T) {
	cfg := config.Default()
	cfg.S3cfg.AccessKey = "myaccesskey"
	cfg.S3cfg.SecretKey = "mysecretkey"

	out := cfg.Redacted()
	assert.NotContains(t, out, "myaccesskey")
	assert.NotContains(t, out, "mysecretkey")
	assert.Contains(t, out, "***REDACTED***")
	// the original is untouched
	assert.Equal(t, "myaccesskey", cfg.S3cfg.AccessKey)
}

func TestDescription(t *testing.T) {
	desc, err := config.Default().Description()
	require.NoError(t, err)
	assert.Contains(t, desc, "GOHEAD_OPTIONS")
	assert.Contains(t, desc, "S3REGION")
}

func TestRunConfig(t *testing.T) {
	size := func(s string) sizespec.Size {
		v, err := sizespec.Parse(s)
		require.NoError(t, err)
		return v
	}

	t.Run("defaults", func(t *testing.T) {
		rc := config.DefaultRunConfig()
		assert.Equal(t, config.RunConfig{BoundaryKind: copier.Line, Magnitude: 10, Verbose: true}, rc)
	})
	t.Run("bytes then lines", func(t *testing.T) {
		rc := config.DefaultRunConfig()
		rc.SetBytes(size("3"))
		assert.Equal(t, copier.Byte, rc.BoundaryKind)
		rc.SetLines(size("2K"))
		assert.Equal(t, copier.Line, rc.BoundaryKind)
		assert.Equal(t, uint64(2048), rc.Magnitude)
	})
	t.Run("zero terminated then lines", func(t *testing.T) {
		rc := config.DefaultRunConfig()
		rc.SetZeroTerminated()
		rc.SetLines(size("3"))
		assert.Equal(t, copier.ZeroDelimited, rc.BoundaryKind)
		assert.Equal(t, uint64(3), rc.Magnitude)
	})
	t.Run("lines then bytes", func(t *testing.T) {
		rc := config.DefaultRunConfig()
		rc.SetLines(size("3"))
		rc.SetBytes(size("1b"))
		assert.Equal(t, copier.Byte, rc.BoundaryKind)
		assert.Equal(t, uint64(512), rc.Magnitude)
	})
	t.Run("quiet and verbose", func(t *testing.T) {
		rc := config.DefaultRunConfig()
		rc.SetVerbose(false)
		assert.False(t, rc.ShowHeaders(2))
		rc.SetVerbose(true)
		assert.True(t, rc.ShowHeaders(2))
		assert.False(t, rc.ShowHeaders(1))
		assert.False(t, rc.ShowHeaders(0))
	})
}
