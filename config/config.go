package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config for the whole service
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Log          LogConfig          `mapstructure:"log"`
	Store        StoreConfig        `mapstructure:"store"`
	Memcache     MemcacheConfig     `mapstructure:"memcache"`
	Jaeger       JaegerConfig       `mapstructure:"jaeger"`
	Ledger       LedgerConfig       `mapstructure:"ledger"`
	Announcement AnnouncementConfig `mapstructure:"announcement"`
}

// ListenConfig ...
type ListenConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ServerConfig ...
type ServerConfig struct {
	HTTP ListenConfig `mapstructure:"http"`
	GRPC ListenConfig `mapstructure:"grpc"`
}

// String for dialing
func (c ListenConfig) String() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ListenString for listening on all interfaces
func (c ListenConfig) ListenString() string {
	return fmt.Sprintf(":%d", c.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	URL string `mapstructure:"url"`
}

// LedgerConfig ...
type LedgerConfig struct {
	MaxRetries int `mapstructure:"max_retries"`
}

// AnnouncementConfig ...
type AnnouncementConfig struct {
	TTLSeconds    uint32 `mapstructure:"ttl_seconds"`
	NearCacheSize int    `mapstructure:"near_cache_size"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.http.port", 8080)
	v.SetDefault("server.grpc.port", 8081)
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", "mysql")
	v.SetDefault("store.mysql.max_open_conns", 20)
	v.SetDefault("store.mysql.max_idle_conns", 5)
	v.SetDefault("ledger.max_retries", 3)
	v.SetDefault("announcement.ttl_seconds", 3600)
	v.SetDefault("announcement.near_cache_size", 16*1024*1024)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (Config, error) {
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// LoadFile reads config from the yaml file at path
func LoadFile(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}
	return unmarshal(v)
}

// Load reads config.yml from the working directory, panics on failure
func Load() Config {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}

	conf, err := unmarshal(v)
	if err != nil {
		panic(err)
	}
	return conf
}
