package changelog

import (
	"fmt"
	"os"

	"github.com/akerl/timber/log"
	"github.com/ghodss/yaml"
	"github.com/m-mizutani/goerr/v2"
)

var logger = log.NewLogger("changelog")

// DefaultConfigFile is where the host keeps its configuration
const DefaultConfigFile = ".changeset/config.json"

// Config is the subset of the host configuration this plugin reads.
// Changelog is either false, a plugin name, or a [name, options] pair.
type Config struct {
	Changelog interface{} `json:"changelog"`
}

func loadConfig(fileArg string) (Config, error) {
	var c Config

	file := fileArg
	if file == "" {
		file = DefaultConfigFile
	}
	logger.DebugMsg(fmt.Sprintf("loading config from %s", file))

	contents, err := os.ReadFile(file)
	if err != nil {
		return c, goerr.Wrap(err, "failed to read config", goerr.V("file", file))
	}

	if err := yaml.Unmarshal(contents, &c); err != nil {
		return c, goerr.Wrap(err, "failed to parse config", goerr.V("file", file))
	}
	return c, nil
}

// LoadOptions reads the host configuration file and returns the raw options
// given to the changelog plugin. The result is unvalidated, pass it to
// ParseOptions or to one of the Formatter operations.
func LoadOptions(fileArg string) (interface{}, error) {
	c, err := loadConfig(fileArg)
	if err != nil {
		return nil, err
	}
	return c.Options(), nil
}

// Options returns the options element of the changelog entry, if any
func (c Config) Options() interface{} {
	entry, ok := c.Changelog.([]interface{})
	if !ok || len(entry) < 2 {
		return nil
	}
	return entry[1]
}
