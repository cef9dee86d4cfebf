// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package irc

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ergochat/gossip/irc/logger"
	"github.com/ergochat/gossip/irc/sasl"
)

// TLSConfig controls TLS for an outbound connection.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled"`
	ServerName         string `yaml:"server-name"`
	InsecureSkipVerify bool   `yaml:"insecure-skip-verify"`
}

// ServerConfig tells us where and how to connect.
type ServerConfig struct {
	// host:port of the server to connect to
	Address string `yaml:"address"`
	// ws:// or wss:// URL; when set, it takes precedence over address
	WebsocketURL string    `yaml:"websocket-url"`
	TLS          TLSConfig `yaml:"tls"`
}

// SASLConfig holds the credentials used during SASL authentication.
type SASLConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Mechanism string `yaml:"mechanism"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	Authzid   string `yaml:"authzid"`
}

// Config defines a session: where to connect and who we claim to be.
// The identity fields are read during Identify and never mutated.
type Config struct {
	Server ServerConfig `yaml:"server"`

	Nick     string `yaml:"nick"`
	Username string `yaml:"username"`
	Realname string `yaml:"realname"`
	// connection password (PASS); empty means none is sent
	Password string `yaml:"password"`

	SASL SASLConfig `yaml:"sasl"`

	// channels to join once registration completes
	Channels []string `yaml:"channels"`

	Logging []logger.LoggingConfig `yaml:"logging"`

	Filename string `yaml:"-"`
}

// LoadConfig loads the given YAML configuration file, validates it and
// fills in defaults.
func LoadConfig(filename string) (config *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config = &Config{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	config.Filename = filename

	if config.Server.Address == "" && config.Server.WebsocketURL == "" {
		return nil, errNoServerAddress
	}

	if config.SASL.Enabled {
		mechanism := strings.ToUpper(config.SASL.Mechanism)
		if mechanism == "" {
			mechanism = sasl.Plain
		}
		switch mechanism {
		case sasl.Plain, sasl.External, sasl.ScramSHA256:
			config.SASL.Mechanism = mechanism
		default:
			return nil, fmt.Errorf("%w: %s", errUnknownMechanism, config.SASL.Mechanism)
		}
		if config.SASL.Username == "" {
			config.SASL.Username = config.Nick
		}
	}

	var newLogConfigs []logger.LoggingConfig
	for _, logConfig := range config.Logging {
		// methods
		methods := make(map[string]bool)
		for _, method := range strings.Split(logConfig.Method, " ") {
			if len(method) > 0 {
				methods[strings.ToLower(method)] = true
			}
		}
		logConfig.MethodStdout = methods["stdout"]
		logConfig.MethodStderr = methods["stderr"]

		// levels
		level, exists := logger.LogLevelNames[strings.ToLower(logConfig.LevelString)]
		if !exists {
			return nil, fmt.Errorf("Could not translate log level [%s]", logConfig.LevelString)
		}
		logConfig.Level = level

		// types
		for _, typeStr := range strings.Split(logConfig.TypeString, " ") {
			if len(typeStr) == 0 {
				continue
			}
			if typeStr == "-" {
				return nil, fmt.Errorf("Encountered logging type '-' with no type to exclude")
			}
			if typeStr[0] == '-' {
				typeStr = typeStr[1:]
				logConfig.ExcludedTypes = append(logConfig.ExcludedTypes, typeStr)
			} else {
				logConfig.Types = append(logConfig.Types, typeStr)
			}
		}
		if len(logConfig.Types) < 1 {
			return nil, fmt.Errorf("Logger has no types to log")
		}

		newLogConfigs = append(newLogConfigs, logConfig)
	}
	config.Logging = newLogConfigs

	return config, nil
}
