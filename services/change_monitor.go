package services

import (
	"sync"
	"time"

	"github.com/yeremiapane/bar-app/database"
	"github.com/yeremiapane/bar-app/utils"
)

// ChangeMonitor collects changed collections and writes them to the store in
// the background. Only the latest value of each collection is written.
type ChangeMonitor struct {
	Store    database.Store
	StopChan chan struct{}
	Interval time.Duration

	mu      sync.Mutex
	pending map[string]interface{}
	order   []string
	writeMu sync.Mutex
	done    chan struct{}
	once    sync.Once
}

func NewChangeMonitor(store database.Store) *ChangeMonitor {
	return &ChangeMonitor{
		Store:    store,
		StopChan: make(chan struct{}),
		Interval: 500 * time.Millisecond,
		pending:  make(map[string]interface{}),
		done:     make(chan struct{}),
	}
}

// Persist marks key as dirty with its newest value.
func (cm *ChangeMonitor) Persist(key string, value interface{}) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if _, ok := cm.pending[key]; !ok {
		cm.order = append(cm.order, key)
	}
	cm.pending[key] = value
}

func (cm *ChangeMonitor) Start() {
	go func() {
		defer close(cm.done)
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.Flush()
			case <-cm.StopChan:
				return
			}
		}
	}()
}

// Stop ends the background loop and writes whatever is still pending.
// It must only be called after Start.
func (cm *ChangeMonitor) Stop() {
	cm.once.Do(func() {
		close(cm.StopChan)
		<-cm.done
		cm.Flush()
	})
}

// Flush writes every dirty collection now.
func (cm *ChangeMonitor) Flush() {
	cm.writeMu.Lock()
	defer cm.writeMu.Unlock()

	cm.mu.Lock()
	pending, order := cm.pending, cm.order
	cm.pending = make(map[string]interface{})
	cm.order = nil
	cm.mu.Unlock()

	for _, key := range order {
		writeCollection(cm.Store, key, pending[key])
	}
	if len(order) > 0 {
		utils.Info().Debugf("Persisted %d collections", len(order))
	}
}

// SyncPersister writes each change immediately.
type SyncPersister struct {
	Store database.Store
}

func (p SyncPersister) Persist(key string, value interface{}) {
	writeCollection(p.Store, key, value)
}

func writeCollection(store database.Store, key string, value interface{}) {
	if err := store.Save(key, value); err != nil {
		storeWriteErrors.WithLabelValues(key).Inc()
		utils.Error().WithField("collection", key).Errorf("Error saving collection: %v", err)
	}
}
