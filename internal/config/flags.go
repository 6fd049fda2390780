package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Only flags set on the command line
// override the config file.
type Flags struct {
	Config    string
	Debug     bool
	Precision int
	Output    string
	NoCache   bool
	Screen    float64

	fs *pflag.FlagSet
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Precision, "precision", 0, "Decimals printed per component")
	fs.StringVarP(&f.Output, "output", "o", "", "Output format: text or yaml")
	fs.BoolVar(&f.NoCache, "no-cache", false, "Build fresh quaternions instead of shared ones")
	fs.Float64Var(&f.Screen, "screen", 0, "Screen orientation twist in degrees")
	return f
}

func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.changed("precision") {
		cfg.Format.Precision = f.Precision
	}
	if f.Output != "" {
		cfg.Format.Output = f.Output
	}
	if f.NoCache {
		cfg.Cache.Enabled = false
	}
	if f.changed("screen") {
		cfg.Orientation.Screen = f.Screen
	}
}
