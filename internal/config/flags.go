package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-f vault file path (file backend)
//	-d database path (sqlite backend)
//	-backend storage backend name: file or sqlite
//	-rounds cipher round count
//	-password-length default generated password length
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var vaultPath string
	var databaseDSN string
	var backend string
	var rounds int
	var passwordLength int
	var jsonConfigPath string

	flag.StringVar(&vaultPath, "f", "", "Vault file path")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database path")
	flag.StringVar(&backend, "backend", "", "Storage backend: file or sqlite")
	flag.IntVar(&rounds, "rounds", 0, "Cipher round count")
	flag.IntVar(&passwordLength, "password-length", 0, "Default generated password length")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Rounds:         rounds,
			PasswordLength: passwordLength,
		},
		Storage: Storage{
			Backend:   backend,
			VaultPath: vaultPath,
			DSN:       databaseDSN,
		},
		JSONFilePath: jsonConfigPath,
	}
}
