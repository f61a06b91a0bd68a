package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type cliConfig struct {
	Servers        []string
	PoolSize       int32
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	LogLevel       string
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Servers:        []string{"127.0.0.1:11211"},
		PoolSize:       2,
		ConnectTimeout: 5 * time.Second,
		RequestTimeout: 2 * time.Second,
		LogLevel:       "warn",
	}
}

type fileConfig struct {
	Servers        []string `toml:"servers"`
	PoolSize       int32    `toml:"pool_size"`
	ConnectTimeout string   `toml:"connect_timeout"`
	RequestTimeout string   `toml:"request_timeout"`
	LogLevel       string   `toml:"log_level"`
}

// loadCLIConfig overlays the keys present in the TOML file at path onto
// the defaults.
func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	var raw fileConfig
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load config: %w", err)
	}

	if md.IsDefined("servers") && len(raw.Servers) > 0 {
		cfg.Servers = raw.Servers
	}

	if md.IsDefined("pool_size") && raw.PoolSize > 0 {
		cfg.PoolSize = raw.PoolSize
	}

	if md.IsDefined("connect_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ConnectTimeout))
		if err != nil {
			return cliConfig{}, fmt.Errorf("parse connect_timeout: %w", err)
		}
		cfg.ConnectTimeout = d
	}

	if md.IsDefined("request_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.RequestTimeout))
		if err != nil {
			return cliConfig{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}

	if md.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, nil
}
