package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputDir sets the directory tables are written to.
func (b *ConfigBuilder) WithOutputDir(dir string) *ConfigBuilder {
	b.cfg.Output.Dir = dir
	return b
}

// WithPrefix sets the table file name prefix.
func (b *ConfigBuilder) WithPrefix(prefix string) *ConfigBuilder {
	b.cfg.Output.Prefix = prefix
	return b
}

// WithTableFormat sets the row encoding.
func (b *ConfigBuilder) WithTableFormat(format TableFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithCompression enables zstd compressed tables.
func (b *ConfigBuilder) WithCompression(enabled bool) *ConfigBuilder {
	b.cfg.Output.Compress = enabled
	return b
}

// WithHeaderRow controls the CSV header row.
func (b *ConfigBuilder) WithHeaderRow(enabled bool) *ConfigBuilder {
	b.cfg.Output.WriteHeader = enabled
	return b
}

// WithDiagnostics controls the diagnostics table.
func (b *ConfigBuilder) WithDiagnostics(enabled bool) *ConfigBuilder {
	b.cfg.Output.Diagnostics = enabled
	return b
}

// WithManifest controls the run manifest.
func (b *ConfigBuilder) WithManifest(enabled bool) *ConfigBuilder {
	b.cfg.Output.Manifest = enabled
	return b
}

// WithEngine selects the replay engine.
func (b *ConfigBuilder) WithEngine(e Engine) *ConfigBuilder {
	b.cfg.Replay.Engine = e
	return b
}

// WithNullMoves allows "--" and "Z0" in the movetext.
func (b *ConfigBuilder) WithNullMoves(enabled bool) *ConfigBuilder {
	b.cfg.AllowNullMoves = enabled
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
