package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Behaviours == nil {
		cfg.Behaviours = make(map[string]BehaviourConfig)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		TabSize:            c.TabSize,
		BackslashColumn:    c.BackslashColumn,
		BracketLookback:    c.BracketLookback,
		ClassBraceLookback: c.ClassBraceLookback,
		MacroLookback:      c.MacroLookback,
		StateLookback:      c.StateLookback,
		Jobs:               c.Jobs,
	}

	if c.SoftTabs != nil {
		clone.SoftTabs = Bool(*c.SoftTabs)
	}
	if c.TokenCache != nil {
		clone.TokenCache = Bool(*c.TokenCache)
	}

	if c.Behaviours != nil {
		clone.Behaviours = make(map[string]BehaviourConfig, len(c.Behaviours))
		for k, v := range c.Behaviours {
			clone.Behaviours[k] = v.clone()
		}
	}

	if c.EnableBehaviours != nil {
		clone.EnableBehaviours = make([]string, len(c.EnableBehaviours))
		copy(clone.EnableBehaviours, c.EnableBehaviours)
	}
	if c.DisableBehaviours != nil {
		clone.DisableBehaviours = make([]string, len(c.DisableBehaviours))
		copy(clone.DisableBehaviours, c.DisableBehaviours)
	}

	return clone
}

func (bc BehaviourConfig) clone() BehaviourConfig {
	if bc.Enabled == nil {
		return BehaviourConfig{}
	}
	return BehaviourConfig{Enabled: Bool(*bc.Enabled)}
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
