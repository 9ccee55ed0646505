package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cubeconverter/bedrockconv/bedrock"
	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Prefix   string `yaml:"prefix"`
	Format   string `yaml:"format"` // yaml or json
	LogLevel string `yaml:"logLevel"`
	LogFile  string `yaml:"logFile"`
}

func defaultConfig() *Config {
	return &Config{
		Prefix:   bedrock.DefaultPrefix,
		Format:   "yaml",
		LogLevel: "info",
	}
}

func loadConfigFile(conf *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(data, conf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// defaultConfigFile returns "<input>.bedrockconv.yaml" if it exists.
func defaultConfigFile(input string) string {
	confFile := input[0:len(input)-len(filepath.Ext(input))] + ".bedrockconv.yaml"
	if _, err := os.Stat(confFile); err != nil {
		return ""
	}
	return confFile
}

// resolveConfig applies defaults < config file < flags that were set explicitly.
func resolveConfig(fs *flag.FlagSet, flags *Config, confFile string) (*Config, error) {
	conf := defaultConfig()
	if confFile == "" && fs.NArg() > 0 {
		confFile = defaultConfigFile(fs.Arg(0))
	}
	if confFile != "" {
		if err := loadConfigFile(conf, confFile); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prefix":
			conf.Prefix = flags.Prefix
		case "format":
			conf.Format = flags.Format
		case "loglevel":
			conf.LogLevel = flags.LogLevel
		case "logfile":
			conf.LogFile = flags.LogFile
		}
	})
	if conf.Format != "yaml" && conf.Format != "json" {
		return nil, fmt.Errorf("Unsupported output format: %v", conf.Format)
	}
	return conf, nil
}
