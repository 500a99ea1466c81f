package internal

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	BackendJSON   = "json"
	BackendBadger = "badger"
	DecoderText   = "text"
	DecoderExec   = "exec"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0" validate:"required"`
	Port     int    `env:"PORT,default=8000" validate:"min=1,max=65535"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	LogFile  string `env:"LOG_FILE"`

	DJIAppKey            string `env:"DJI_APP_KEY"`
	KeychainCachePath    string `env:"KEYCHAIN_CACHE_PATH,default=keychain_cache.json" validate:"required"`
	KeychainCacheBackend string `env:"KEYCHAIN_CACHE_BACKEND,default=json" validate:"oneof=json badger"`

	Decoder        string        `env:"DECODER,default=text" validate:"oneof=text exec"`
	DecoderBinPath string        `env:"DECODER_BIN_PATH" validate:"required_if=Decoder exec"`
	DecoderTimeout time.Duration `env:"DECODER_TIMEOUT,default=2m" validate:"gt=0"`

	DownloadTimeout  time.Duration `env:"DOWNLOAD_TIMEOUT,default=30s" validate:"gt=0"`
	MaxFileSizeMb    int           `env:"MAX_FILE_SIZE_MB,default=200" validate:"min=1"`
	ChunkSizeKb      int           `env:"CHUNK_SIZE_KB,default=64" validate:"min=1"`
	TmpDir           string        `env:"TMP_DIR"`
	TmpSweepInterval time.Duration `env:"TMP_SWEEP_INTERVAL,default=10m" validate:"gt=0"`
	TmpMaxAge        time.Duration `env:"TMP_MAX_AGE,default=1h" validate:"gt=0"`
	PreviewRows      int           `env:"PREVIEW_ROWS,default=5" validate:"min=0"`

	AuthSecret        string        `env:"AUTH_SECRET"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h" validate:"gt=0"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`
}

// Address is the listen address of the HTTP server.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate rejects combinations the service cannot start with.
func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fmt.Errorf("invalid %s: %q fails %s", fe.Field(), fmt.Sprint(fe.Value()), ruleOf(fe)))
	}
	return errors.Join(messages...)
}

func ruleOf(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
