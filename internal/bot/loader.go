package bot

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/MTMORGUE/botsymax/internal/domain"
)

// Definition describes one bot in the definitions file.
type Definition struct {
	Name    string `mapstructure:"name" validate:"required"`
	Mood    string `mapstructure:"mood"`
	Running bool   `mapstructure:"running"`
}

type definitionsFile struct {
	Bots []Definition `mapstructure:"bots" validate:"dive"`
}

// LoadDefinitions reads bot definitions from the given YAML file and builds
// the name→handle mapping the registry is seeded with.
func LoadDefinitions(path string) (map[string]domain.Bot, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read bot definitions: %w", err)
	}

	var file definitionsFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse bot definitions: %w", err)
	}

	if err := validator.New().Struct(&file); err != nil {
		return nil, fmt.Errorf("invalid bot definitions: %w", err)
	}

	bots := make(map[string]domain.Bot, len(file.Bots))
	for _, def := range file.Bots {
		if _, exists := bots[def.Name]; exists {
			return nil, fmt.Errorf("duplicate bot name %q", def.Name)
		}
		bots[def.Name] = NewScripted(def.Name, def.Mood, def.Running)
	}

	return bots, nil
}
