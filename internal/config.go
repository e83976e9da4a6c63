package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host string `env:"HOST,required=true"`
	Port int    `env:"PORT,required=true"`

	FeedAddr string `env:"FEED_ADDR,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`

	// Timezone of the building the display hangs in, e.g. Europe/Amsterdam
	FacilityTimezone string `env:"FACILITY_TIMEZONE,required=true"`

	BufferSize           int           `env:"BUFFER_SIZE,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,required=true"`
	FeedWriteTimeout     time.Duration `env:"FEED_WRITE_TIMEOUT,required=true"`
	StoreTimeout         time.Duration `env:"STORE_TIMEOUT,required=true"`
	PulseInterval        time.Duration `env:"PULSE_INTERVAL,required=true"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,required=true"`

	CharReplacement string `env:"CHARACTER_REPLACEMENT,required=true"`

	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	// Argon2id hash of the shared booking secret, produced by the
	// secretgen tool. The plain secret never appears in config.
	SecretHash string  `env:"SECRET_HASH,required=true"`
	JWTKey     *string `env:"JWT_KEY"`

	DebugPort *int `env:"DEBUG_PORT"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
