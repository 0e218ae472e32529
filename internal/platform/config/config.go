package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	keyAddr      = "addr"
	keyDBPath    = "db.path"
	keyDBDSN     = "db.dsn"
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
	keyAppName   = "app.name"
)

// Config agrupa lo que necesita el proceso para arrancar.
type Config struct {
	Addr string

	// DBPath es el archivo SQLite (default). Si DBDSN viene definido,
	// se usa Postgres en su lugar.
	DBPath string
	DBDSN  string

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee config.yaml del directorio de trabajo (opcional) y deja que
// las env PETAGENDA_* pisen cualquier valor. Un config.yaml ausente no
// es error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault(keyAddr, ":3000")
	v.SetDefault(keyDBPath, "pet_agenda.sqlite")
	v.SetDefault(keyDBDSN, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyAppName, "pet-agenda")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PETAGENDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		Addr:      v.GetString(keyAddr),
		DBPath:    v.GetString(keyDBPath),
		DBDSN:     v.GetString(keyDBDSN),
		LogLevel:  v.GetString(keyLogLevel),
		LogFormat: v.GetString(keyLogFormat),
		AppName:   v.GetString(keyAppName),
	}, nil
}
