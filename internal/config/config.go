package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort    string      `yaml:"http-port" env:"HTTP_PORT" env-default:"5000"`
	ValueTables ValueTables `yaml:"value-tables"`
	Redis       Redis       `yaml:"redis"`
}

type ValueTables struct {
	Source       string  `yaml:"source" env:"VALUE_TABLES_SOURCE" env-default:"file"`
	Dir          string  `yaml:"dir" env:"VALUE_TABLES_DIR" env-default:"./data"`
	XFile        string  `yaml:"x-file" env-default:"vx.npy"`
	OFile        string  `yaml:"o-file" env-default:"vo.npy"`
	Encoding     string  `yaml:"encoding" env:"VALUE_TABLES_ENCODING" env-default:"base3"`
	MissingValue float64 `yaml:"missing-value" env-default:"0"`
	Publish      bool    `yaml:"publish" env:"VALUE_TABLES_PUBLISH" env-default:"false"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// UsesRedis - whether the tables are read from or pushed to redis.
func (that *ValueTables) UsesRedis() bool {
	return that.Source == SourceRedis || that.Publish
}
