// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultTokenDuration = 24 * time.Hour
	defaultTokenIssuer   = "shopman"
)

// ServerConfig is the reference backend view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage DB
	Server  Server
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage.DB,
		Server:  cfg.Server,
	}

	if serverCfg.App.TokenDuration == 0 {
		serverCfg.App.TokenDuration = defaultTokenDuration
	}
	if serverCfg.App.TokenIssuer == "" {
		serverCfg.App.TokenIssuer = defaultTokenIssuer
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultRequestTimeout
	}

	return serverCfg
}
