package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App AppConfig `mapstructure:"app"`
	Log LogConfig `mapstructure:"log"`
}

type AppConfig struct {
	Env   string `mapstructure:"env"`
	Debug bool   `mapstructure:"debug"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"` // console / json
}

var GlobalConfig Config

// Validate 验证配置
func (c *Config) Validate() error {
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return errors.New("log.encoding must be console or json")
	}
	return nil
}

// LoadConfig 加载配置，配置文件可选
func LoadConfig() error {
	v, err := newViper(os.Getenv("APP_ENV"))
	if err != nil {
		return err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	GlobalConfig = cfg
	return nil
}

func newViper(env string) (*viper.Viper, error) {
	if env == "" {
		env = "dev"
	}

	// 根据环境选择配置文件
	configName := "config"
	if env != "dev" {
		configName = "config." + env
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// 设置默认值
	v.SetDefault("app.env", env)
	v.SetDefault("app.debug", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.encoding", "console")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// 绑定环境变量: LOG_LEVEL, APP_DEBUG ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}
