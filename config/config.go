package config

import (
	"fmt"

	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig  AppConfig  `env:"APPCONFIG"`
	HTTPConfig HTTPConfig `env:"HTTPCONFIG"`
	DBConfig   DBConfig   `env:"DBCONFIG"`
}

type AppConfig struct {
	APPName  string `default:"ropa"`
	Version  string `default:"x.x.x" env:"VERSION"`
	LogLevel string `default:"info" env:"LOG_LEVEL"`
}

type HTTPConfig struct {
	Host            string `default:"" env:"HTTP_HOST"`
	Port            int    `default:"8080" env:"HTTP_PORT"`
	ReadTimeoutSec  int    `default:"10" env:"HTTP_READ_TIMEOUT"`
	WriteTimeoutSec int    `default:"15" env:"HTTP_WRITE_TIMEOUT"`
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"ropa" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

// DSN builds the key/value connection string expected by the gorm postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.DataBase, c.Port, c.SSLMode,
	)
}

// URL builds the postgres:// form used by golang-migrate.
func (c DBConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DataBase, c.SSLMode,
	)
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	return config
}
