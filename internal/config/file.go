package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of a config file. The same tags
// serve JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		LogFile             string   `json:"log_file" yaml:"log_file"`
		LogLevel            string   `json:"log_level" yaml:"log_level"`
		ClipboardClearAfter *Duration `json:"clipboard_clear_after" yaml:"clipboard_clear_after"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		Driver      string   `json:"driver" yaml:"driver"`
		Path        string   `json:"path" yaml:"path"`
		OpenTimeout Duration `json:"open_timeout" yaml:"open_timeout"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Crypto struct {
		ArgonTime      uint32 `json:"argon_time" yaml:"argon_time"`
		ArgonMemoryKiB uint32 `json:"argon_memory" yaml:"argon_memory"`
		ArgonThreads   uint8  `json:"argon_threads" yaml:"argon_threads"`
	} `json:"crypto,omitempty" yaml:"crypto,omitempty"`

	Workers struct {
		DecryptParallelism int `json:"decrypt_parallelism" yaml:"decrypt_parallelism"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	cfg, _, err := parseFileLayer(path)
	return cfg, err
}

// parseFileLayer is parseFile that also reports the clipboard delay when the
// file sets it, zero included.
func parseFileLayer(path string) (*StructuredConfig, *time.Duration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	var clearAfter *time.Duration
	if fileCfg.App.ClipboardClearAfter != nil {
		d := time.Duration(*fileCfg.App.ClipboardClearAfter)
		clearAfter = &d
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile:  fileCfg.App.LogFile,
			LogLevel: fileCfg.App.LogLevel,
		},
		Storage: Storage{
			Driver:      fileCfg.Storage.Driver,
			Path:        fileCfg.Storage.Path,
			OpenTimeout: time.Duration(fileCfg.Storage.OpenTimeout),
		},
		Crypto: Crypto{
			ArgonTime:      fileCfg.Crypto.ArgonTime,
			ArgonMemoryKiB: fileCfg.Crypto.ArgonMemoryKiB,
			ArgonThreads:   fileCfg.Crypto.ArgonThreads,
		},
		Workers: Workers{
			DecryptParallelism: fileCfg.Workers.DecryptParallelism,
		},
	}
	if clearAfter != nil {
		cfg.App.ClipboardClearAfter = *clearAfter
	}

	return cfg, clearAfter, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		var n int64
		if numErr := node.Decode(&n); numErr != nil {
			return err
		}
		tmp = time.Duration(n)
	}
	*d = Duration(tmp)
	return nil
}
