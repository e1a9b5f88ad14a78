package config

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed sharing.yaml
var sharingFile embed.FS

// SharingPolicy bounds the share-toggle inputs and the ancestor walks.
type SharingPolicy struct {
	MaxDurationHours float64 `yaml:"max_duration_hours"`
	IndefiniteYears  int     `yaml:"indefinite_years"`
	MaxFolderDepth   int     `yaml:"max_folder_depth"`
}

type sharingFileSchema struct {
	Sharing SharingPolicy `yaml:"sharing"`
}

// LoadSharingPolicy parses the embedded sharing policy file.
func LoadSharingPolicy() (*SharingPolicy, error) {
	data, err := sharingFile.ReadFile("sharing.yaml")
	if err != nil {
		return nil, fmt.Errorf("read sharing policy: %w", err)
	}

	var schema sharingFileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("unmarshal sharing policy: %w", err)
	}

	policy := schema.Sharing
	if policy.MaxDurationHours <= 0 || policy.IndefiniteYears <= 0 || policy.MaxFolderDepth <= 0 {
		return nil, fmt.Errorf("sharing policy values must be positive")
	}

	return &policy, nil
}
