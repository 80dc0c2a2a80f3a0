// internal/i18n/i18n.go
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed locales/en.json
var locales embed.FS

const defaultLocale = "en"

type Messages struct {
	mu       sync.RWMutex
	messages map[string]string
}

var instance *Messages
var once sync.Once

// Initialize loads the embedded message table. It is safe to call more than once.
func Initialize() error {
	var err error
	once.Do(func() {
		m := &Messages{messages: make(map[string]string)}
		if err = m.Load(defaultLocale + ".json"); err == nil {
			instance = m
		}
	})
	return err
}

func (m *Messages) Load(file string) error {
	data, err := locales.ReadFile("locales/" + file)
	if err != nil {
		return fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("failed to unmarshal locale file %s: %w", file, err)
	}

	m.mu.Lock()
	m.messages = messages
	m.mu.Unlock()
	return nil
}

func (m *Messages) T(key string, args ...interface{}) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if text, exists := m.messages[key]; exists {
		if len(args) > 0 {
			return fmt.Sprintf(text, args...)
		}
		return text
	}

	// Return key if no message found
	return key
}

// T looks key up in the message table, formatting args into it.
func T(key string, args ...interface{}) string {
	if instance != nil {
		return instance.T(key, args...)
	}
	return key
}
