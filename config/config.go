package config

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/BaizeAI/volume-loader/internal/pkg/constants"
)

type Configuration struct {
	// Image is the image of the extraction container.
	Image string `json:"image"`
	// DockerBinary is the container runtime CLI.
	DockerBinary string `json:"docker_binary"`

	Debug     bool   `json:"debug"`
	LogOutput string `json:"log_output"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("image", constants.DefaultImage)
	v.SetDefault("docker_binary", constants.DefaultDockerBinary)
	v.SetDefault("debug", false)
	v.SetDefault("log_output", "")

	v.SetEnvPrefix(constants.ConfigEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration from defaults, the optional YAML file at
// configPath and VOLUME_LOADER_* environment variables, later sources
// overriding earlier ones.
func Load(configPath string) (*Configuration, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Configuration{}
	err := v.Unmarshal(cfg, func(c *mapstructure.DecoderConfig) {
		c.TagName = "json"
	})
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
