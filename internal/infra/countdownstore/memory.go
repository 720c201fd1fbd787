package countdownstore

import "petstay-bff/internal/domain/countdown"

// MemoryPersister holds entries in memory only. Used by tests and when no
// storage path is configured; the countdown then simply does not survive a
// restart.
type MemoryPersister struct {
	entries map[string]countdown.Entry
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{entries: make(map[string]countdown.Entry)}
}

func (p *MemoryPersister) Load() (map[string]countdown.Entry, error) {
	out := make(map[string]countdown.Entry, len(p.entries))
	for id, entry := range p.entries {
		out[id] = entry
	}
	return out, nil
}

func (p *MemoryPersister) Put(entry countdown.Entry) error {
	p.entries[entry.OrderID] = entry
	return nil
}

func (p *MemoryPersister) Delete(orderID string) error {
	delete(p.entries, orderID)
	return nil
}

func (p *MemoryPersister) DeleteAll() error {
	p.entries = make(map[string]countdown.Entry)
	return nil
}

func (p *MemoryPersister) Close() error {
	return nil
}
