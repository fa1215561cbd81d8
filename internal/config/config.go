package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

//go:embed data/default_config.toml
var defaultConfigTOML string

//go:embed data/example_templates.toml
var exampleTemplatesTOML string

// TemplatesFileName is the user template file next to the config file
const TemplatesFileName = "templates.toml"

// Manager handles configuration loading and management
type Manager struct {
	v      *viper.Viper
	cfg    *Config
	logger *slog.Logger
	notice io.Writer
}

// NewManager creates a new configuration manager with default settings
func NewManager() *Manager {
	v := viper.New()

	// environment overrides for the preference values
	_ = v.BindEnv("author.name", "SNIP_AUTHOR")
	_ = v.BindEnv("author.mail", "SNIP_MAIL")
	_ = v.BindEnv("editor.file", "SNIP_FILE")
	_ = v.BindEnv("editor.cursor", "SNIP_CURSOR")

	return &Manager{
		v:      v,
		cfg:    &Config{}, // defaults loaded from embedded TOML in Load()
		notice: os.Stderr,
	}
}

// WithLogger sets the logger for the configuration manager
func (m *Manager) WithLogger(logger *slog.Logger) *Manager {
	m.logger = logger
	return m
}

// WithNotice sets where first-run notices are printed
func (m *Manager) WithNotice(w io.Writer) *Manager {
	m.notice = w
	return m
}

// Load loads configuration from the specified TOML file, merging with defaults
func (m *Manager) Load(configPath string) error {
	m.debug("Attempting to load config file", "path", configPath)

	m.v.SetConfigType("toml")

	if err := m.v.ReadConfig(strings.NewReader(defaultConfigTOML)); err != nil {
		return fmt.Errorf("failed to load embedded defaults: %w", err)
	}

	m.v.SetConfigFile(configPath)

	// merge user config file over defaults
	err := m.v.MergeInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		var pathError *os.PathError
		if !errors.As(err, &configFileNotFoundError) && !errors.As(err, &pathError) {
			return err
		}
		if pathError != nil && !os.IsNotExist(pathError) {
			return err
		}

		m.debug("Config file not found")
		if err := m.createDefaultConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create default config file: %w", err)
		}
		m.v.SetConfigFile(configPath)
	} else if m.logger != nil {
		m.logger.Info("Configuration loaded successfully", "path", m.v.ConfigFileUsed())
	}

	if err := m.v.Unmarshal(m.cfg); err != nil {
		return err
	}

	templatesPath := filepath.Join(filepath.Dir(configPath), TemplatesFileName)
	if err := m.createExampleTemplatesFile(templatesPath); err != nil {
		return fmt.Errorf("failed to create templates file: %w", err)
	}
	if err := m.loadUserTemplates(templatesPath); err != nil {
		return fmt.Errorf("invalid template configuration: %w", err)
	}

	return nil
}

// Config returns the current configuration
func (m *Manager) Config() *Config {
	return m.cfg
}

// Viper returns the underlying Viper instance for flag binding
func (m *Manager) Viper() *viper.Viper {
	return m.v
}

// Save writes the current configuration state back to the config file
func (m *Manager) Save() error {
	configFile := m.v.ConfigFileUsed()
	if configFile == "" {
		return fmt.Errorf("no config file path set")
	}

	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := m.v.SafeWriteConfigAs(configFile); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	} else {
		if err := m.v.WriteConfigAs(configFile); err != nil {
			return fmt.Errorf("failed to update config file: %w", err)
		}
	}

	// keep user templates, they live in their own file
	templates := m.cfg.Templates
	if err := m.v.Unmarshal(m.cfg); err != nil {
		return fmt.Errorf("failed to reload configuration after save: %w", err)
	}
	m.cfg.Templates = templates

	return nil
}

// NewDefaultFromEmbedded creates a Config struct populated from embedded TOML
// note we're primarily using this for testing
func NewDefaultFromEmbedded() *Config {
	v := viper.New()
	v.SetConfigType("toml")

	if err := v.ReadConfig(strings.NewReader(defaultConfigTOML)); err != nil {
		panic(fmt.Sprintf("failed to load embedded defaults in test helper: %v", err))
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal embedded config in test helper: %v", err))
	}
	return cfg
}

// loadUserTemplates loads template overrides from templates.toml
func (m *Manager) loadUserTemplates(templatesPath string) error {
	templatesViper := viper.New()
	templatesViper.SetConfigFile(templatesPath)
	templatesViper.SetConfigType("toml")

	if err := templatesViper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) || errors.Is(err, os.ErrNotExist) {
			return nil // templates file is optional
		}
		return fmt.Errorf("failed to read templates config: %w", err)
	}

	if len(templatesViper.GetStringMap("templates")) == 0 {
		return nil
	}

	var userTemplates map[string]map[string]UserTemplate
	if err := templatesViper.UnmarshalKey("templates", &userTemplates); err != nil {
		return fmt.Errorf("failed to unmarshal templates: %w", err)
	}

	for kind, subs := range userTemplates {
		for sub, tmpl := range subs {
			if strings.TrimSpace(tmpl.Text) == "" {
				return fmt.Errorf("template %s.%s has no text", kind, sub)
			}
		}
	}

	m.cfg.Templates = userTemplates
	m.debug("Loaded user templates", "path", templatesPath, "kinds", len(userTemplates))
	return nil
}

// createDefaultConfigFile creates the default config.toml file if it doesn't exist
func (m *Manager) createDefaultConfigFile(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigTOML), 0600); err != nil {
		return fmt.Errorf("failed to write default config file: %w", err)
	}

	if m.notice != nil {
		fmt.Fprintf(m.notice, "Created default config.toml at %s\n", configPath)
		fmt.Fprintf(m.notice, "To set your author name and mail, run: snip init\n")
	}

	if m.logger != nil {
		m.logger.Info("Created default config file", "path", configPath)
	}

	return nil
}

// createExampleTemplatesFile writes a commented templates.toml if it doesn't exist
func (m *Manager) createExampleTemplatesFile(templatesPath string) error {
	if _, err := os.Stat(templatesPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check templates file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(templatesPath), 0755); err != nil {
		return fmt.Errorf("failed to create templates directory: %w", err)
	}

	if err := os.WriteFile(templatesPath, []byte(exampleTemplatesTOML), 0600); err != nil {
		return fmt.Errorf("failed to write templates file: %w", err)
	}

	m.debug("Created example templates file", "path", templatesPath)
	return nil
}

func (m *Manager) debug(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}
