package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug          = "debug"
	ConfigLexiconPath    = "lexicon-path"
	ConfigDefaultLexicon = "default-lexicon"
	ConfigMaxQueue       = "max-queue"
	ConfigHistoryFile    = "history-file"
	ConfigFile           = "config"
)

const envPrefix = "doublets"

type Config struct {
	*viper.Viper
	args []string
}

// DefaultConfig returns a config with only the built-in defaults applied.
// Env vars are honored, but no flags are parsed.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigLexiconPath, "./data/lexica")
	c.SetDefault(ConfigDefaultLexicon, "")
	c.SetDefault(ConfigMaxQueue, 0)
	c.SetDefault(ConfigHistoryFile, "/tmp/doublets_history.tmp")
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
}

// Load parses command-line flags. Anything that is not a flag is kept and
// returned by Args; the shell treats it as a one-shot command.
func (c *Config) Load(args []string) error {
	if c.Viper == nil {
		c.Viper = viper.New()
	}
	c.setDefaults()

	fs := pflag.NewFlagSet("doublets", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigLexiconPath, "./data/lexica", "directory holding lexicon word lists")
	fs.String(ConfigDefaultLexicon, "", "lexicon to load on startup")
	fs.Int(ConfigMaxQueue, 0, "abandon a ladder search after this many nodes; 0 means no bound")
	fs.String(ConfigHistoryFile, "/tmp/doublets_history.tmp", "readline history file")
	fs.String(ConfigFile, "", "optional config file (yaml, toml or json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()

	if cfgFile := c.GetString(ConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}
	return nil
}

// Args returns the positional arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths resolves a relative lexicon path against basePath
// when it does not exist relative to the working directory. This lets the
// binary find its data directory when started from elsewhere.
func (c *Config) AdjustRelativePaths(basePath string) {
	p := c.GetString(ConfigLexiconPath)
	if filepath.IsAbs(p) {
		return
	}
	if _, err := os.Stat(p); err == nil {
		return
	}
	c.Set(ConfigLexiconPath, filepath.Join(basePath, p))
}
