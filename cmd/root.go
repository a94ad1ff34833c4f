package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrVersionRequested is returned when -version was passed; the version has
// already been printed.
var ErrVersionRequested = errors.New("version requested")

const envPrefix = "LANDING_"

// Config holds CLI configuration.
type Config struct {
	ConfigDir    string        `koanf:"-"`
	ConfigPath   string        `koanf:"-"`
	ContentPath  string        `koanf:"content"`
	LogFile      string        `koanf:"log_file"`
	LogLevel     string        `koanf:"log_level"`
	Images       bool          `koanf:"images"`
	Mouse        bool          `koanf:"mouse"`
	ImageTimeout time.Duration `koanf:"image_timeout"`
	SetupDone    bool          `koanf:"setup_done"`

	imagesFlag bool
	mouseFlag  bool
}

func defaultConfig(configDir string) *Config {
	return &Config{
		ConfigDir:    configDir,
		ConfigPath:   filepath.Join(configDir, "config.yaml"),
		LogFile:      filepath.Join(configDir, "shree.log"),
		LogLevel:     "info",
		Images:       true,
		Mouse:        true,
		ImageTimeout: 10 * time.Second,
	}
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string) (*Config, error) {
	// Load .env files first so env-based defaults work with existing flag parsing.
	if err := loadDotEnv(".env", ".env.local"); err != nil {
		return nil, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	configDir := filepath.Join(home, ".shree")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := parse(os.Args[1:], configDir, version, os.Stdout)
	if err != nil {
		return nil, err
	}

	if !config.SetupDone && isInteractive() {
		settings, err := runOnboarding(config)
		if err != nil {
			return nil, fmt.Errorf("failed to run onboarding: %w", err)
		}
		config.applySetup(settings)
	}

	return config, nil
}

// loadDotEnv loads each file that exists. Variables already in the
// environment are kept.
func loadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}

// applySetup takes the first-run answers, except where a flag was given.
func (c *Config) applySetup(settings SetupSettings) {
	if !c.imagesFlag {
		c.Images = settings.Images
	}
	if !c.mouseFlag {
		c.Mouse = settings.Mouse
	}
	c.SetupDone = true
}

func parse(args []string, configDir, version string, out io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("shree", flag.ContinueOnError)
	fs.SetOutput(out)

	configPath := fs.String("config", "", "Path to config file (default: ~/.shree/config.yaml)")
	contentPath := fs.String("content", "", "Path to a page content YAML file (default: built-in)")
	logFile := fs.String("log-file", "", "Path to log file (default: ~/.shree/shree.log)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	noImages := fs.Bool("no-images", false, "Do not download gallery photos")
	noMouse := fs.Bool("no-mouse", false, "Disable mouse support")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *showVersion {
		fmt.Fprintf(out, "shree %s\n", version)
		return nil, ErrVersionRequested
	}

	config := defaultConfig(configDir)
	if *configPath != "" {
		config.ConfigPath = *configPath
	}
	if err := loadConfigFile(config); err != nil {
		return nil, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["content"] {
		config.ContentPath = *contentPath
	}
	if set["log-file"] {
		config.LogFile = *logFile
	}
	if set["log-level"] {
		config.LogLevel = *logLevel
	}
	if set["no-images"] {
		config.Images = !*noImages
		config.imagesFlag = true
	}
	if set["no-mouse"] {
		config.Mouse = !*noMouse
		config.mouseFlag = true
	}

	return config, nil
}

// loadConfigFile overlays the YAML config file and LANDING_* environment
// variables onto config.
func loadConfigFile(config *Config) error {
	k := koanf.New(".")

	if _, err := os.Stat(config.ConfigPath); err == nil {
		if err := k.Load(file.Provider(config.ConfigPath), yaml.Parser()); err != nil {
			return fmt.Errorf("reading config %s: %w", config.ConfigPath, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("accessing config %s: %w", config.ConfigPath, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", config); err != nil {
		return fmt.Errorf("unmarshalling config: %w", err)
	}
	return nil
}

func isInteractive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
