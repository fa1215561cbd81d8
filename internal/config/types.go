package config

// Config represents the complete configuration structure for snip
type Config struct {
	Author    Author                             `mapstructure:"author"`
	Editor    Editor                             `mapstructure:"editor"`
	Verbose   bool                               `mapstructure:"verbose"`
	Debug     bool                               `mapstructure:"debug"`
	Templates map[string]map[string]UserTemplate `mapstructure:"templates"`
}

// Author holds the defaults for the license dialog
type Author struct {
	Name string `mapstructure:"name"`
	Mail string `mapstructure:"mail"`
}

// Editor describes the active text buffer
type Editor struct {
	File   string `mapstructure:"file"`
	Cursor string `mapstructure:"cursor"`
	Backup bool   `mapstructure:"backup"`
}

// UserTemplate replaces the text of a built-in template
type UserTemplate struct {
	Text string `mapstructure:"text"`
}

// TemplateOverrides returns user template texts keyed by kind then variant
func (c *Config) TemplateOverrides() map[string]map[string]string {
	if len(c.Templates) == 0 {
		return nil
	}

	overrides := make(map[string]map[string]string, len(c.Templates))
	for kind, subs := range c.Templates {
		texts := make(map[string]string, len(subs))
		for sub, tmpl := range subs {
			texts[sub] = tmpl.Text
		}
		overrides[kind] = texts
	}
	return overrides
}
