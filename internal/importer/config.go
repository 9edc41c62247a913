package importer

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds import settings.
type Config struct {
	InputDir    string `yaml:"input_dir"     env:"IMPORT_INPUT_DIR" env-default:"./import"`
	DryRun      bool   `yaml:"dry_run"       env:"IMPORT_DRY_RUN"`
	SkipInvalid bool   `yaml:"skip_invalid"  env:"IMPORT_SKIP_INVALID" env-default:"true"`
}

// LoadConfig reads config from a YAML file or environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("import config: %w", err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("import config: file %s not found", path)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("import config: read env: %w", err)
	}
	return &cfg, nil
}
