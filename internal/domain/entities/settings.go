package entities

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// DefaultRawRootURL is the raw content root of homebrew-core, the repository
// the commit identifiers refer to.
const DefaultRawRootURL = "https://raw.githubusercontent.com/Homebrew/homebrew-core"

// DefaultTapSuffix is appended to the invoking user's name to form the
// default override tap.
const DefaultTapSuffix = "local"

// Settings holds the tool configuration. Every field is optional and has a
// documented default; a config file merely overrides defaults.
type Settings struct {
	// DefaultTap is used when no tap argument is supplied.
	// Default: "<current-user>/local".
	DefaultTap string `yaml:"default_tap" hcl:"default_tap,optional"`
	// RawRootURL is the raw content root candidate URLs are derived from.
	RawRootURL string `yaml:"raw_root_url" hcl:"raw_root_url,optional"`
	// BrewBinary is the package manager executable. Default: "brew".
	BrewBinary string `yaml:"brew_binary" hcl:"brew_binary,optional"`
}

// envVarPattern matches ${VAR_NAME} placeholders in YAML config values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultTap: currentUserName() + "/" + DefaultTapSuffix,
		RawRootURL: DefaultRawRootURL,
		BrewBinary: "brew",
	}
}

// NewSettings reads and parses a configuration file, dispatching on the
// file extension (.hcl vs YAML), and fills unset fields with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Settings
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		if hclErr := parseHCLSettings(data, path, &cfg); hclErr != nil {
			return nil, hclErr
		}
	} else {
		expanded := expandEnvRefs(string(data))
		if yamlErr := yaml.Unmarshal([]byte(expanded), &cfg); yamlErr != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, yamlErr)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadSettings locates a config file and loads it, falling back to the
// built-in defaults when no file exists.
func LoadSettings() (*Settings, error) {
	path, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return DefaultSettings(), nil
	}
	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".brewpin.yaml",
		".brewpin.yml",
		"brewpin.yaml",
		"brewpin.yml",
		"brewpin.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// parseHCLSettings decodes an HCL config body. Expressions may reference
// environment variables through the `env` map (e.g. "${env.USER}/local").
func parseHCLSettings(data []byte, path string, out *Settings) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %q: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environmentValue(),
		},
	}

	if decodeDiags := gohcl.DecodeBody(file.Body, evalCtx, out); decodeDiags.HasErrors() {
		return fmt.Errorf("failed to decode config file %q: %w", path, decodeDiags)
	}
	return nil
}

// environmentValue exposes the process environment as a cty map value.
func environmentValue() cty.Value {
	env := os.Environ()
	if len(env) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	values := make(map[string]cty.Value, len(env))
	for _, entry := range env {
		key, value, ok := strings.Cut(entry, "=")
		if ok && key != "" {
			values[key] = cty.StringVal(value)
		}
	}
	return cty.MapVal(values)
}

// expandEnvRefs expands ${ENV_VAR} references in YAML config content.
func expandEnvRefs(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func (s *Settings) applyDefaults() {
	defaults := DefaultSettings()
	if s.DefaultTap == "" {
		s.DefaultTap = defaults.DefaultTap
	}
	if s.RawRootURL == "" {
		s.RawRootURL = defaults.RawRootURL
	}
	if s.BrewBinary == "" {
		s.BrewBinary = defaults.BrewBinary
	}
}

// currentUserName resolves the invoking user's name for the default tap.
func currentUserName() string {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "brewpin"
}
