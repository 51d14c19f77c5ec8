package utils

import (
	"fmt"
	"strings"

	"github.com/darkyzhou/seele/timej/cmd/timej/entities"
	"github.com/mitchellh/mapstructure"
)

const envPrefix = "TIMEJ_"

// LoadConfig decodes the TIMEJ_* variables of environ into a TimejConfig.
// TIMEJ_REPORT_FILE maps to the report_file key, and so on. Unknown keys
// are ignored.
func LoadConfig(environ []string) (*entities.TimejConfig, error) {
	payload := make(map[string]interface{})
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		payload[strings.ToLower(strings.TrimPrefix(key, envPrefix))] = value
	}

	var config entities.TimejConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return nil, fmt.Errorf("Error creating the config decoder: %w", err)
	}
	if err := decoder.Decode(payload); err != nil {
		return nil, fmt.Errorf("Error decoding the environment: %w", err)
	}

	return &config, nil
}
