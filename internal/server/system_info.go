package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dshills/codescore/internal/engine"
	"github.com/dshills/codescore/internal/source"
	log "github.com/sirupsen/logrus"
)

const (
	LISTEN_ADDRESS   = "LISTEN_ADDRESS"
	ORIGIN_ALLOWED   = "ORIGIN_ALLOWED"
	LOG_LEVEL        = "LOG_LEVEL"
	MAX_UPLOAD_BYTES = "MAX_UPLOAD_BYTES"
	CACHE_SIZE       = "CACHE_SIZE"
	CACHE_TTL        = "CACHE_TTL"
)

const DefaultListenAddress = ":8080"

// SystemInfo is the server configuration, read once from the environment.
type SystemInfo struct {
	ListenAddress  string
	OriginAllowed  string
	LogLevel       string
	MaxUploadBytes int64
	CacheSize      int
	CacheTTL       time.Duration
}

// NewSystemInfo reads the configuration from the process environment.
func NewSystemInfo() (*SystemInfo, error) {
	s, err := systemInfoFrom(os.Getenv)
	if err != nil {
		log.Error("Failed to read system info: " + err.Error())
		return nil, err
	}
	return s, nil
}

func systemInfoFrom(getenv func(string) string) (*SystemInfo, error) {
	s := &SystemInfo{
		ListenAddress:  getenv(LISTEN_ADDRESS),
		OriginAllowed:  getenv(ORIGIN_ALLOWED),
		LogLevel:       getenv(LOG_LEVEL),
		MaxUploadBytes: source.DefaultMaxBytes,
		CacheSize:      engine.DefaultCacheSize,
		CacheTTL:       engine.DefaultCacheTTL,
	}
	if s.ListenAddress == "" {
		s.ListenAddress = DefaultListenAddress
	}
	if s.LogLevel == "" {
		s.LogLevel = log.InfoLevel.String()
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return nil, fmt.Errorf("%s: %w", LOG_LEVEL, err)
	}

	if v := getenv(MAX_UPLOAD_BYTES); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s: invalid value %q", MAX_UPLOAD_BYTES, v)
		}
		s.MaxUploadBytes = n
	}
	if v := getenv(CACHE_SIZE); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s: invalid value %q", CACHE_SIZE, v)
		}
		s.CacheSize = n
	}
	if v := getenv(CACHE_TTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%s: invalid value %q", CACHE_TTL, v)
		}
		s.CacheTTL = d
	}
	return s, nil
}

// ApplyLogLevel sets the logrus level from LogLevel.
func (s *SystemInfo) ApplyLogLevel() {
	if lvl, err := log.ParseLevel(s.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
}
