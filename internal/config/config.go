package config

import (
	"fmt"
	"os"
	"path/filepath"

	"codedeck/pkg/types"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file-based configuration. The
// execution credentials are also read directly from the environment by
// the proxy server at request time.
const (
	EnvClientID     = "CODEDECK_CLIENT_ID"
	EnvClientSecret = "CODEDECK_CLIENT_SECRET"
	EnvGitHubToken  = "CODEDECK_GITHUB_TOKEN"
)

// Config represents the application configuration structure.
// It defines the repository catalog, hosting API parameters, execution
// service settings, and browsing preferences.
type Config struct {
	GitHub struct {
		Owner   string `yaml:"owner"`    // Account that owns the browsable repositories
		APIBase string `yaml:"api_base"` // Hosting API base URL
		Token   string `yaml:"token"`    // Optional bearer token for the hosting API
	} `yaml:"github"`
	Repositories []types.RepositoryEntry `yaml:"repositories"` // Catalog shown on the hub screen
	Execute      struct {
		Endpoint       string `yaml:"endpoint"`        // Remote execution API endpoint
		ClientID       string `yaml:"client_id"`       // Execution API credential
		ClientSecret   string `yaml:"client_secret"`   // Execution API credential
		TimeoutSeconds int    `yaml:"timeout_seconds"` // Per-run HTTP timeout
	} `yaml:"execute"`
	Server struct {
		Addr string `yaml:"addr"` // Listen address for the execution proxy
	} `yaml:"server"`
	Browse struct {
		Ignore     []string `yaml:"ignore"`      // Glob patterns excluded from file trees
		ShowHidden bool     `yaml:"show_hidden"` // Include dotfiles in file trees
	} `yaml:"browse"`
	Theme struct {
		Name     string `yaml:"name"`     // Theme name (default, dark, light)
		Primary  string `yaml:"primary"`  // Primary color for branding
		Success  string `yaml:"success"`  // Success message color
		Error    string `yaml:"error"`    // Error message color
		Info     string `yaml:"info"`     // Informational message color
		Border   string `yaml:"border"`   // Border color for panel frames
		Emphasis string `yaml:"emphasis"` // Emphasis color for focused elements
	} `yaml:"theme"`
}

// LoadConfig loads configuration from the default location
// (~/.config/codedeck/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "codedeck", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration. Environment
// overrides are applied after the file is merged.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.GitHub.Owner != "" {
		cfg.GitHub.Owner = tempCfg.GitHub.Owner
	}
	if tempCfg.GitHub.APIBase != "" {
		cfg.GitHub.APIBase = tempCfg.GitHub.APIBase
	}
	if tempCfg.GitHub.Token != "" {
		cfg.GitHub.Token = tempCfg.GitHub.Token
	}
	if len(tempCfg.Repositories) > 0 {
		cfg.Repositories = tempCfg.Repositories
	}
	if tempCfg.Execute.Endpoint != "" {
		cfg.Execute.Endpoint = tempCfg.Execute.Endpoint
	}
	if tempCfg.Execute.ClientID != "" {
		cfg.Execute.ClientID = tempCfg.Execute.ClientID
	}
	if tempCfg.Execute.ClientSecret != "" {
		cfg.Execute.ClientSecret = tempCfg.Execute.ClientSecret
	}
	if tempCfg.Execute.TimeoutSeconds > 0 {
		cfg.Execute.TimeoutSeconds = tempCfg.Execute.TimeoutSeconds
	}
	if tempCfg.Server.Addr != "" {
		cfg.Server.Addr = tempCfg.Server.Addr
	}
	if len(tempCfg.Browse.Ignore) > 0 {
		cfg.Browse.Ignore = tempCfg.Browse.Ignore
	}
	cfg.Browse.ShowHidden = tempCfg.Browse.ShowHidden
	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}

	cfg.applyEnv()

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyEnv overlays environment-provided secrets onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvClientID); v != "" {
		c.Execute.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		c.Execute.ClientSecret = v
	}
	if v := os.Getenv(EnvGitHubToken); v != "" {
		c.GitHub.Token = v
	}
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.GitHub.Owner = "codedeck"
	cfg.GitHub.APIBase = "https://api.github.com"

	cfg.Repositories = []types.RepositoryEntry{}

	cfg.Execute.Endpoint = "https://api.jdoodle.com/v1/execute"
	cfg.Execute.TimeoutSeconds = 30

	cfg.Server.Addr = ":8080"

	// Binary and build artifacts clutter the tree without being viewable
	cfg.Browse.Ignore = []string{".git", "*.png", "*.jpg", "*.gif", "*.ico", "*.lock", "node_modules"}
	cfg.Browse.ShowHidden = false

	cfg.ApplyTheme("default")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.GitHub.Owner == "" {
		return fmt.Errorf("github owner is required")
	}
	if c.GitHub.APIBase == "" {
		return fmt.Errorf("github api_base is required")
	}

	for i, repo := range c.Repositories {
		if repo.Name == "" {
			return fmt.Errorf("repository %d: name is required", i)
		}
	}

	if c.Execute.Endpoint == "" {
		return fmt.Errorf("execute endpoint is required")
	}
	if c.Execute.TimeoutSeconds < 1 {
		return fmt.Errorf("execute timeout must be >= 1 second")
	}

	for _, pattern := range c.Browse.Ignore {
		if pattern == "" {
			return fmt.Errorf("ignore pattern cannot be empty")
		}
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
	}

	return nil
}

// IgnoreGlobs compiles the configured ignore patterns. Validate has
// already rejected patterns that do not compile.
func (c *Config) IgnoreGlobs() []glob.Glob {
	globs := make([]glob.Glob, 0, len(c.Browse.Ignore))
	for _, pattern := range c.Browse.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

// Repository looks up a catalog entry by name.
func (c *Config) Repository(name string) (types.RepositoryEntry, bool) {
	for _, repo := range c.Repositories {
		if repo.Name == name {
			return repo, true
		}
	}
	return types.RepositoryEntry{}, false
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.GitHub.Owner = "testowner"
	cfg.Repositories = []types.RepositoryEntry{
		{Name: "sandbox", Description: "scratch repository", Language: "Python"},
		{Name: "examples", Description: "sample programs", Language: "Go"},
	}
	cfg.Execute.ClientID = "test-id"
	cfg.Execute.ClientSecret = "test-secret"
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"success":  "114", // Green
			"error":    "196", // Red
			"info":     "39",  // Blue
			"border":   "213", // Purple
			"emphasis": "212", // Light Pink
		},
		"dark": {
			"primary":  "105", // Dark Blue
			"success":  "78",  // Dark Green
			"error":    "160", // Dark Red
			"info":     "33",  // Dark Blue
			"border":   "105", // Dark Blue
			"emphasis": "147", // Light Blue
		},
		"light": {
			"primary":  "135", // Light Purple
			"success":  "150", // Light Green
			"error":    "210", // Light Red
			"info":     "117", // Light Blue
			"border":   "135", // Light Purple
			"emphasis": "219", // Very Light Pink
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Border = theme["border"]
	c.Theme.Emphasis = theme["emphasis"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light"}
}
