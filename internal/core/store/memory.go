package store

import "sync"

// Memory is a map-backed KV used as a test double and for ephemeral runs.
// The hooks let tests inject failures on specific keys.
type Memory struct {
	mu   sync.Mutex
	data map[string]string

	// GetHook, when non-nil, runs before a read; a returned error is
	// surfaced from Get.
	GetHook func(key string) error
	// SetHook, when non-nil, runs before a write and can veto it.
	SetHook func(key string) error
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetHook != nil {
		if err := m.GetHook(key); err != nil {
			return "", false, err
		}
	}
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetHook != nil {
		if err := m.SetHook(key); err != nil {
			return err
		}
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
