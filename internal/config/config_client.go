package config

import (
	"fmt"
	"time"
)

const (
	// MemoryDSN selects the in-memory client store.
	MemoryDSN = "memory"

	defaultLocalDSN       = "shopman.db"
	defaultRequestTimeout = 15 * time.Second
	defaultSyncInterval   = time.Minute
	defaultProbeInterval  = 10 * time.Second
	defaultMaxRetries     = 3
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the Remote Authority base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage contains durable store settings for the client.
type ClientStorage struct {
	// DSN is the SQLite file, or [MemoryDSN].
	DSN string
	// LogDir is the directory of the client log file.
	LogDir string
}

// InMemory reports whether the client should skip the durable store.
func (s ClientStorage) InMemory() bool {
	return s.DSN == MemoryDSN
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the queue is drained in the background.
	SyncInterval time.Duration
	// ProbeInterval defines how often connectivity is probed.
	ProbeInterval time.Duration
	// MaxRetries is the number of attempts per queued operation.
	MaxRetries int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the Remote Authority address and timeout.
	Adapter ClientAdapter
	// Storage contains durable store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// ListName is the list opened on start; empty shows the list picker.
	ListName string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN:    cfg.Storage.Local.DSN,
			LogDir: cfg.Storage.Local.LogDir,
		},
		Workers: ClientWorkers{
			SyncInterval:  cfg.Workers.SyncInterval,
			ProbeInterval: cfg.Workers.ProbeInterval,
			MaxRetries:    cfg.Workers.MaxRetries,
		},
		ListName: cfg.ListName,
	}

	if clientCfg.Storage.DSN == "" {
		clientCfg.Storage.DSN = defaultLocalDSN
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = defaultSyncInterval
	}
	if clientCfg.Workers.ProbeInterval == 0 {
		clientCfg.Workers.ProbeInterval = defaultProbeInterval
	}
	if clientCfg.Workers.MaxRetries == 0 {
		clientCfg.Workers.MaxRetries = defaultMaxRetries
	}

	return clientCfg
}
