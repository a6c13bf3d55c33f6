// Ininicializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
}

type ServerConfig struct {
	AppVersion   string `json:"appVersion"`
	Host         string `json:"host" validate:"required"`
	Port         string `json:"port" validate:"required"`
	Timeout      time.Duration
	Idle_timeout time.Duration
	Env          string `json:"environment"`
	Mode         string `mapstructure:"mode"`
}

type AppConfig struct {
	APIKey            string `mapstructure:"api_key"`
	PoolSize          int    `mapstructure:"pool_size"`
	DefaultWeaponSize int    `mapstructure:"default_weapon_size"`
}

type UpstreamConfig struct {
	PlayerInfoURL string        `mapstructure:"player_info_url"`
	IconURL       string        `mapstructure:"icon_url"`
	AvatarURL     string        `mapstructure:"avatar_url"`
	CharacterURL  string        `mapstructure:"character_url"`
	BackgroundURL string        `mapstructure:"background_url"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
}

type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
	Enabled bool   `mapstructure:"enabled"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	setDefaults(viperInstance)

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timeout", 60*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	v.SetDefault("app.pool_size", 10)
	v.SetDefault("app.default_weapon_size", 150)

	v.SetDefault("upstream.player_info_url", "https://grandmixture-id-info.vercel.app/player-info")
	v.SetDefault("upstream.icon_url", "https://freefireinfo.vercel.app/icon")
	v.SetDefault("upstream.avatar_url", "https://as-image.onrender.com/image")
	v.SetDefault("upstream.character_url", "https://character-roan.vercel.app/Character_name")
	v.SetDefault("upstream.background_url", "https://iili.io/3LlJ82s.jpg")
	v.SetDefault("upstream.fetch_timeout", 10*time.Second)

	v.SetDefault("kafka.brokers", "localhost:9094")
	v.SetDefault("kafka.topic", "profile-renders")
	v.SetDefault("kafka.enabled", false)
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
