package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		Rounds         int `json:"rounds"`
		PasswordLength int `json:"password_length"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend   string `json:"backend"`
		VaultPath string `json:"vault_path"`
		DSN       string `json:"dsn"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Rounds:         jsonCfg.App.Rounds,
			PasswordLength: jsonCfg.App.PasswordLength,
		},
		Storage: Storage{
			Backend:   jsonCfg.Storage.Backend,
			VaultPath: jsonCfg.Storage.VaultPath,
			DSN:       jsonCfg.Storage.DSN,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
