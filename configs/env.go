package configs

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/resource"
)

// EnvConfig groups the settings resolved before the properties file is read.
type EnvConfig struct {
	ApplicationName string
	PropertiesPath  string
	MessagesPath    string
}

// Load reads an optional .env file, then the message catalogue and the properties file.
func Load() (*EnvConfig, error) {
	envMissing := false
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		envMissing = true
	}

	viper.AutomaticEnv()

	env := &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-api"),
		PropertiesPath:  resource.Path(),
		MessagesPath:    msg.Path(),
	}

	if err := msg.Init(env.MessagesPath); err != nil {
		return nil, err
	}
	if envMissing {
		log.Debug(msg.GetMessage("app.config.env-missing"))
	}
	if err := resource.Init(env.PropertiesPath); err != nil {
		return nil, err
	}

	log.SetLevel(resource.GetString("app.log.level"))
	log.Info(msg.GetMessage("app.config.loaded", env.PropertiesPath))
	return env, nil
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
