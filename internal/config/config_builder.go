package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	// fileSlot is where the file layer goes: after defaults, before env.
	fileSlot int
	// clipboardClearAfter is the highest-priority explicit clipboard delay.
	// Merging skips zero values, so a layer asking for 0 is applied here.
	clipboardClearAfter *time.Duration
	err                 error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if len(b.configs) == 0 {
		return config, nil
	}

	if b.clipboardClearAfter != nil {
		config.App.ClipboardClearAfter = *b.clipboardClearAfter
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Defaults())
	b.fileSlot = len(b.configs)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if d, ok := envClipboardClear(); ok {
		b.clipboardClearAfter = &d
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	if flags == nil {
		return b
	}

	if d, ok := flags.clipboardClear(); ok {
		b.clipboardClearAfter = &d
	}

	b.configs = append(b.configs, flags.config())
	return b
}

// withFile loads the config file named by the highest-priority layer that
// sets one and slots it in right after the defaults.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			path = cfg.ConfigFilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, clearAfter, err := parseFileLayer(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	// The file ranks below env and flags, so it only fills an unset delay.
	if clearAfter != nil && b.clipboardClearAfter == nil {
		b.clipboardClearAfter = clearAfter
	}

	b.configs = slices.Insert(b.configs, b.fileSlot, fileCfg)
	return b
}
