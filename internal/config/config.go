package config

import (
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
把init跟read分開
init : 需要設置viper watch 與 onConfigChange
read : 一般讀寫  需要使用讀寫鎖
*/
var config_singleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	SupabaseURL     string `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey string `mapstructure:"SUPABASE_ANON_KEY"`
	ServerPort      string `mapstructure:"SERVER_PORT"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	DataDir         string `mapstructure:"DATA_DIR"`
	CacheTTLSeconds int    `mapstructure:"CACHE_TTL_SECONDS"`
}

// CacheTTL 商品快取存活時間，未設定給 5 分鐘
func (c *Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func GetConfig() *Config {
	initConfig()
	config_singleton.mu.RLock()
	defer config_singleton.mu.RUnlock()
	return config_singleton.Config
}

func initConfig() {
	if config_singleton == nil {
		muonce.Do(func() {
			config_singleton = &ConfigSingleTon{}
			if cf, err := loadConfig(); err == nil {
				config_singleton.Config = cf
			} else {
				log.Fatal("error read config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					config_singleton.mu.Lock()
					config_singleton.Config = cf
					config_singleton.mu.Unlock()
				} else {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

/*
單純回傳錯誤  由外部決定要不要Fatal, 畢竟有可能有替代方案
*/
func loadConfig() (cf *Config, err error) {
	cf = &Config{}
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATA_DIR", ".storefront")
	viper.SetDefault("CACHE_TTL_SECONDS", 300)

	// .env 不存在就只吃環境變數
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("read config file: %v", err)
		}
		err = nil
	}

	err = viper.Unmarshal(cf)
	if err != nil {
		return
	}
	return
}
