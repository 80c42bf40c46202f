package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the configuration flags registered on a
// FlagSet. Values stay zero unless given on the command line, so they only
// override other layers when set.
type Flags struct {
	configPath          string
	driver              string
	dbPath              string
	openTimeout         time.Duration
	argonTime           uint32
	argonMemory         uint32
	argonThreads        uint8
	parallelism         int
	logFile             string
	logLevel            string
	clipboardClearAfter time.Duration

	fs *pflag.FlagSet
}

// RegisterFlags registers all configuration flags on fs.
//
// Flags:
//
//	-c/--config        JSON or YAML config file path
//	--driver           storage driver: bolt or sqlite
//	--db               vault database path
//	--open-timeout     how long to wait for the database lock (e.g. "5s")
//	--argon-time       Argon2id iterations
//	--argon-memory     Argon2id memory in KiB
//	--argon-threads    Argon2id parallelism
//	--parallelism      envelopes opened concurrently while listing
//	--log-file         log file path
//	--log-level        log level (debug, info, warn, error)
//	--clipboard-clear  how long copied secrets stay in the clipboard (e.g. "30s")
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&f.driver, "driver", "", "Storage driver: bolt or sqlite")
	fs.StringVar(&f.dbPath, "db", "", "Vault database path")
	fs.DurationVar(&f.openTimeout, "open-timeout", 0, "Database lock wait (e.g., 5s)")
	fs.Uint32Var(&f.argonTime, "argon-time", 0, "Argon2id iterations")
	fs.Uint32Var(&f.argonMemory, "argon-memory", 0, "Argon2id memory in KiB")
	fs.Uint8Var(&f.argonThreads, "argon-threads", 0, "Argon2id parallelism")
	fs.IntVar(&f.parallelism, "parallelism", 0, "Envelopes opened concurrently while listing")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&f.clipboardClearAfter, "clipboard-clear", 0, "Clipboard clear delay (e.g., 30s)")

	return f
}

// clipboardClear returns the --clipboard-clear value when it was given on the
// command line, so an explicit 0 can be told apart from an absent flag.
func (f *Flags) clipboardClear() (time.Duration, bool) {
	if f.fs == nil || !f.fs.Changed("clipboard-clear") {
		return 0, false
	}
	return f.clipboardClearAfter, true
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:             f.logFile,
			LogLevel:            f.logLevel,
			ClipboardClearAfter: f.clipboardClearAfter,
		},
		Storage: Storage{
			Driver:      f.driver,
			Path:        f.dbPath,
			OpenTimeout: f.openTimeout,
		},
		Crypto: Crypto{
			ArgonTime:      f.argonTime,
			ArgonMemoryKiB: f.argonMemory,
			ArgonThreads:   f.argonThreads,
		},
		Workers: Workers{
			DecryptParallelism: f.parallelism,
		},
		ConfigFilePath: f.configPath,
	}
}
