package logging

import "sync"

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger initializes the global logger. Safe to call more than once; the
// last configuration wins (tests rely on this).
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		instance.Close()
	}
	instance = logger
	return nil
}

// GetGlobalLogger returns the global logger. Falls back to a stderr-less
// default writing to ./logs/app.log when InitLogger was never called.
func GetGlobalLogger() *Logger {
	mu.RLock()
	if instance != nil {
		defer mu.RUnlock()
		return instance
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		logger, err := NewLogger(&Config{Level: LevelInfo, File: "./logs/app.log", MaxSize: 100, MaxBackups: 3, MaxAge: 7})
		if err != nil {
			panic("failed to initialize fallback logger: " + err.Error())
		}
		instance = logger
	}
	return instance
}
