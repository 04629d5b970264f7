package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// LoadUsersFromFile loads and validates the users file
func LoadUsersFromFile(path string) (*model.UsersConfig, error) {
	if path == "" {
		return nil, goerr.New("users file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "users file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read users file",
			goerr.V("path", path))
	}

	var users model.UsersConfig
	if err := yaml.Unmarshal(data, &users); err != nil {
		return nil, goerr.Wrap(err, "failed to parse users file",
			goerr.V("path", path))
	}

	if err := users.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid users file",
			goerr.V("path", path))
	}

	return &users, nil
}
