package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ConfigFieldInfo contains metadata about a configuration field
type ConfigFieldInfo struct {
	Type        reflect.Type
	Description string
	Default     interface{}
	Validation  func(interface{}) error
}

// ConfigSchema holds the registry of valid configuration paths and aliases
type ConfigSchema struct {
	ValidPaths map[string]ConfigFieldInfo
	Aliases    map[string]string
}

// validateMail accepts an empty value or something shaped like an address
func validateMail() func(interface{}) error {
	return func(value interface{}) error {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		if v == "" {
			return nil
		}
		at := strings.Index(v, "@")
		if at <= 0 || at == len(v)-1 || strings.ContainsAny(v, " \t\n") {
			return fmt.Errorf("%q does not look like a mail address", v)
		}
		return nil
	}
}

// validateNoNewline rejects values spanning several lines
func validateNoNewline() func(interface{}) error {
	return func(value interface{}) error {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		if strings.ContainsAny(v, "\r\n") {
			return fmt.Errorf("value must be a single line")
		}
		return nil
	}
}

// validateCursor accepts "end", "line" or "line:column"
func validateCursor() func(interface{}) error {
	return func(value interface{}) error {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		line, col, hasCol := strings.Cut(strings.TrimSpace(v), ":")
		if line == "" && !hasCol {
			return nil
		}
		if line != "end" && !isPositiveNumber(line) {
			return fmt.Errorf("cursor line must be a positive number or \"end\"")
		}
		if hasCol && !isNumber(col) {
			return fmt.Errorf("cursor column must be a number")
		}
		return nil
	}
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isPositiveNumber(s string) bool {
	return isNumber(s) && strings.TrimLeft(s, "0") != ""
}

// DefaultConfigSchema returns the default configuration schema
func DefaultConfigSchema() *ConfigSchema {
	return &ConfigSchema{
		ValidPaths: map[string]ConfigFieldInfo{
			"author.name": {
				Type:        reflect.TypeOf(""),
				Description: "Default author name for license headers",
				Default:     "",
				Validation:  validateNoNewline(),
			},
			"author.mail": {
				Type:        reflect.TypeOf(""),
				Description: "Default author mail for license headers",
				Default:     "",
				Validation:  validateMail(),
			},
			"editor.file": {
				Type:        reflect.TypeOf(""),
				Description: "Script file used as the active text buffer",
				Default:     "",
				Validation:  validateNoNewline(),
			},
			"editor.cursor": {
				Type:        reflect.TypeOf(""),
				Description: "Cursor position in the active buffer (line:column, line or end)",
				Default:     "end",
				Validation:  validateCursor(),
			},
			"editor.backup": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Keep a .bak copy of the script before writing",
				Default:     false,
			},
			"verbose": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Print a summary table after each insertion",
				Default:     false,
			},
			"debug": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Enable detailed debug logging",
				Default:     false,
			},
		},

		Aliases: map[string]string{
			"author": "author.name",
			"name":   "author.name",
			"mail":   "author.mail",
			"email":  "author.mail",
			"file":   "editor.file",
			"cursor": "editor.cursor",
			"at":     "editor.cursor",
			"backup": "editor.backup",
		},
	}
}

// ResolveKey resolves an alias to its canonical path or returns the path if already canonical
func (s *ConfigSchema) ResolveKey(key string) (string, error) {
	if canonicalPath, exists := s.Aliases[key]; exists {
		return canonicalPath, nil
	}

	if _, exists := s.ValidPaths[key]; exists {
		return key, nil
	}

	suggestions := s.FindSimilarKeys(key)
	if len(suggestions) > 0 {
		return "", fmt.Errorf("invalid config key %q. Did you mean one of: %s", key, strings.Join(suggestions, ", "))
	}

	return "", fmt.Errorf("invalid config key %q. Use 'snip config' to see valid keys", key)
}

// ValidateValue validates a value against the field's type and validation rules
func (s *ConfigSchema) ValidateValue(path string, value interface{}) error {
	fieldInfo, exists := s.ValidPaths[path]
	if !exists {
		return fmt.Errorf("unknown config path: %s", path)
	}

	valueType := reflect.TypeOf(value)
	if valueType != fieldInfo.Type {
		return fmt.Errorf("expected %s, got %v", fieldInfo.Type.String(), valueType)
	}

	if fieldInfo.Validation != nil {
		return fieldInfo.Validation(value)
	}

	return nil
}

// GetFieldInfo returns information about a configuration field
func (s *ConfigSchema) GetFieldInfo(path string) (ConfigFieldInfo, error) {
	fieldInfo, exists := s.ValidPaths[path]
	if !exists {
		return ConfigFieldInfo{}, fmt.Errorf("unknown config path: %s", path)
	}
	return fieldInfo, nil
}

// ListCanonicalKeys returns only the canonical configuration paths
func (s *ConfigSchema) ListCanonicalKeys() []string {
	keys := make([]string, 0, len(s.ValidPaths))
	for path := range s.ValidPaths {
		keys = append(keys, path)
	}
	sort.Strings(keys)
	return keys
}

// ListAliases returns only the alias keys
func (s *ConfigSchema) ListAliases() []string {
	var aliases []string
	for alias := range s.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// FindSimilarKeys finds keys similar to the input using simple string matching
func (s *ConfigSchema) FindSimilarKeys(key string) []string {
	lowerKey := strings.ToLower(key)
	if lowerKey == "" {
		return nil
	}

	var suggestions []string
	for _, path := range s.ListCanonicalKeys() {
		parts := strings.Split(path, ".")
		leaf := parts[len(parts)-1]
		if strings.Contains(path, lowerKey) || strings.Contains(lowerKey, leaf) {
			suggestions = append(suggestions, path)
		}
	}

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}
