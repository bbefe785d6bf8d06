// Package config holds the immutable pipeline configuration. Paths are
// resolved once per invocation and passed down explicitly; nothing in the
// pipeline mutates process-wide state.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "rcgen"

// CompanyProfile is the issuing organization embedded in document headers
// and sign-off blocks.
type CompanyProfile struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	TaxID      string `json:"tax_id"`
	RegistryNo string `json:"registry_no"`
	Signer     string `json:"signer"`
}

// Config is the flat rcgen configuration.
type Config struct {
	OrdersPath    string         `json:"orders_path"`
	RoutingPath   string         `json:"routing_path"`
	OutputRoot    string         `json:"output_root"`
	DefaultClient string         `json:"default_client,omitempty"`
	Company       CompanyProfile `json:"company"`
}

// Default returns the built-in configuration: empty dataset paths (the
// operator points them at the shared ledgers) and an output root under the
// user's documents folder.
func Default() *Config {
	home, err := os.UserHomeDir()
	outputRoot := "output"
	if err == nil {
		outputRoot = filepath.Join(home, "Documents", "RCGen")
	}
	return &Config{
		OutputRoot:    outputRoot,
		DefaultClient: "Elmet International SRL",
		Company: CompanyProfile{
			Name:       "S.C. INRED GROUP SRL",
			Address:    "Str.Sat Racauti 599, Comuna Buciumi, Bacau, Romania",
			TaxID:      "RO24705289",
			RegistryNo: "J04/1960/2008",
			Signer:     "Adm. Slevoaca Bogdan",
		},
	}
}

// Dir returns the per-user configuration directory for rcgen.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, "config.json")
}

// Load reads config.json from the specified directory. Returns an error if
// no config is found; callers fall back to Default.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes config.json to the specified directory, creating it if needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
