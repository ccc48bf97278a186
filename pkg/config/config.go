package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
)

// DefaultModel is the Gemini model every prompt is sent to.
const DefaultModel = "gemini-2.0-flash"

// DefaultEnvFile is the dotenv file read from the working directory at startup.
const DefaultEnvFile = ".env"

// Environment variables checked for the API key, in order.
var apiKeyVars = []string{"API_KEY", "GEMINI_API_KEY"}

// Config holds the process-wide settings built once at startup.
type Config struct {
	APIKey string // Credential for the Gemini API; may be empty
	Model  string // Model identifier
}

// Load reads the given dotenv files (DefaultEnvFile when none are named) into
// the process environment and builds a Config from it. Variables already set
// in the environment are not overridden. Missing files are skipped.
//
// An empty API key is not an error here: the service rejects it on the first call.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				glog.V(1).Infof("Env file %q not found, skipping.", path)
				continue
			}
			return nil, fmt.Errorf("failed to load env file %q: %w", path, err)
		}
		glog.V(1).Infof("Loaded environment from %q.", path)
	}

	cfg := &Config{
		APIKey: lookupAPIKey(),
		Model:  DefaultModel,
	}
	if cfg.APIKey == "" {
		glog.Warningf("No API key found in %v.", apiKeyVars)
	}
	glog.V(0).Infof("Using %q model.", cfg.Model)
	return cfg, nil
}

func lookupAPIKey() string {
	for _, name := range apiKeyVars {
		if v := os.Getenv(name); v != "" {
			glog.V(1).Infof("Using API key from %s environment variable.", name)
			return v
		}
	}
	return ""
}
