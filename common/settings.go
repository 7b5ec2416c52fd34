package common

import (
	"os"
	"path/filepath"

	"github.com/omghumre/ui-generator-agent/logger"
	"gopkg.in/yaml.v3"
)

const (
	StyleMinimal  = "minimal"
	StylePolished = "polished"
)

type Generation struct {
	Framework   string  `yaml:"framework"`
	Style       string  `yaml:"style"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	IncludeRaw  bool    `yaml:"include_raw"`
}

type Settings struct {
	Language   string     `yaml:"language"`
	Tone       string     `yaml:"tone_instructions"`
	Generation Generation `yaml:"generation"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Language: "en-US",
		Generation: Generation{
			Framework:   "streamlit",
			Style:       StylePolished,
			Temperature: 0.7,
			MaxTokens:   4000,
			IncludeRaw:  true,
		},
	}
}

func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	filenames := []string{"ui-generator.yml", "ui-generator.yaml"}

	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if filePath != "" {
				return filepath.SkipDir
			}
			for _, name := range filenames {
				if !info.IsDir() && info.Name() == name {
					filePath = path
					return filepath.SkipDir
				}
			}
			return nil
		})
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err == nil {
			if err := yaml.Unmarshal(data, &settings); err != nil {
				logger.Infof("Failed to parse YAML file %s: %v", filePath, err)
			} else {
				logger.Infof("Using settings from YAML file: %s", filePath)
			}
		}
	} else {
		logger.Infof("No YAML file found in the current directory or subdirectories. Using default settings.")
	}
	return settings
}
