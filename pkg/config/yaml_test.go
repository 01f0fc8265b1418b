package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cstyle/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies Behaviours map", func(t *testing.T) {
		original := &config.Config{
			Behaviours: map[string]config.BehaviourConfig{
				"CB004": {Enabled: config.Bool(false)},
			},
		}

		clone := original.Clone()
		require.Contains(t, clone.Behaviours, "CB004")
		assert.False(t, *clone.Behaviours["CB004"].Enabled)

		*clone.Behaviours["CB004"].Enabled = true
		assert.False(t, *original.Behaviours["CB004"].Enabled)
	})

	t.Run("deep copies pointer fields and slices", func(t *testing.T) {
		original := config.NewConfig()
		original.DisableBehaviours = []string{"CB001"}

		clone := original.Clone()
		*clone.SoftTabs = false
		clone.DisableBehaviours[0] = "CB002"

		assert.True(t, *original.SoftTabs)
		assert.Equal(t, "CB001", original.DisableBehaviours[0])
	})
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	original := config.NewConfig()
	original.TabSize = 2
	original.Behaviours["CB010"] = config.BehaviourConfig{Enabled: config.Bool(false)}

	data, err := original.ToYAMLWithHeader("# test")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# test\n\n")
	assert.Contains(t, string(data), "tab_size: 2")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 2, parsed.TabSize)
	assert.Equal(t, 62, parsed.BackslashColumn)
	require.Contains(t, parsed.Behaviours, "CB010")
	assert.False(t, *parsed.Behaviours["CB010"].Enabled)
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("tab_size: [oops"))
	require.Error(t, err)
}

func TestTabString(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{"nil config", nil, "    "},
		{"defaults", config.NewConfig(), "    "},
		{"two spaces", &config.Config{TabSize: 2}, "  "},
		{"hard tabs", &config.Config{TabSize: 8, SoftTabs: config.Bool(false)}, "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.TabString())
		})
	}
}

func TestGenerateTemplate(t *testing.T) {
	minimal := config.GenerateTemplate(config.TemplateOptions{})
	parsed, err := config.FromYAML(minimal)
	require.NoError(t, err)
	assert.Equal(t, 62, parsed.BackslashColumn)
	assert.Empty(t, parsed.Behaviours)

	full := config.GenerateTemplate(config.TemplateOptions{
		Full: true,
		Behaviours: []config.BehaviourInfo{
			{ID: "CB002", Name: "smart-newline", Enabled: true},
			{ID: "CB001", Name: "doc-skeleton", Enabled: true},
		},
	})
	parsed, err = config.FromYAML(full)
	require.NoError(t, err)
	require.Len(t, parsed.Behaviours, 2)
	assert.True(t, *parsed.Behaviours["CB001"].Enabled)
	assert.Less(t, bytesIndex(full, "CB001"), bytesIndex(full, "CB002"))
}

func bytesIndex(data []byte, needle string) int {
	for i := 0; i+len(needle) <= len(data); i++ {
		if string(data[i:i+len(needle)]) == needle {
			return i
		}
	}
	return -1
}
