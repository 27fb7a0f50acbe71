package datastore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config holds options for the DataStore.
type Config struct {
	FilePath         string
	AutoSaveInterval time.Duration
	BackupCount      int // rotating .backup.* files to keep
}

// DefaultConfig returns a default configuration for filePath.
func DefaultConfig(filePath string) *Config {
	return &Config{
		FilePath:         filePath,
		AutoSaveInterval: 10 * time.Second,
		BackupCount:      3,
	}
}

// DataStore is a JSON-backed key-value store: the whole map is reloaded at
// startup and rewritten on save. Values round-trip through encoding/json, so
// a value read back after reload is a json-decoded form of what was stored.
type DataStore struct {
	data         map[string]any
	file         string
	config       *Config
	mu           sync.RWMutex
	lastChecksum string
	closed       bool
	closeMu      sync.RWMutex
	done         chan struct{}
	wg           sync.WaitGroup
}

// New creates a DataStore with default configuration.
func New(filePath string) (*DataStore, error) {
	return NewWithConfig(DefaultConfig(filePath))
}

// NewWithConfig creates a DataStore, loading existing data if the file exists.
func NewWithConfig(config *Config) (*DataStore, error) {
	if config == nil || config.FilePath == "" {
		return nil, fmt.Errorf("datastore: file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
		return nil, fmt.Errorf("datastore: create directory: %w", err)
	}

	ds := &DataStore{
		data:   make(map[string]any),
		file:   config.FilePath,
		config: config,
		done:   make(chan struct{}),
	}

	if _, err := os.Stat(config.FilePath); os.IsNotExist(err) {
		if err := ds.writeFileAtomic([]byte("{}")); err != nil {
			return nil, fmt.Errorf("datastore: init empty file: %w", err)
		}
	} else if err == nil {
		if err := ds.loadFromFile(); err != nil {
			return nil, fmt.Errorf("datastore: load: %w", err)
		}
	} else {
		return nil, fmt.Errorf("datastore: stat: %w", err)
	}

	if config.AutoSaveInterval > 0 {
		ds.wg.Add(1)
		go ds.autoSave()
	}

	return ds, nil
}

// Add stores a key-value pair.
func (ds *DataStore) Add(key string, value any) {
	if ds.isClosed() {
		return
	}
	ds.mu.Lock()
	ds.data[key] = value
	ds.mu.Unlock()
}

// Get retrieves a value by key.
func (ds *DataStore) Get(key string) (any, bool) {
	if ds.isClosed() {
		return nil, false
	}
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	value, exists := ds.data[key]
	return value, exists
}

// Delete removes a key-value pair.
func (ds *DataStore) Delete(key string) {
	if ds.isClosed() {
		return
	}
	ds.mu.Lock()
	delete(ds.data, key)
	ds.mu.Unlock()
}

// Keys returns all stored keys.
func (ds *DataStore) Keys() []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	keys := make([]string, 0, len(ds.data))
	for k := range ds.data {
		keys = append(keys, k)
	}
	return keys
}

// SaveToFile forces an immediate save to disk.
func (ds *DataStore) SaveToFile() error {
	if ds.isClosed() {
		return fmt.Errorf("datastore is closed")
	}
	return ds.saveToFile()
}

// Close stops the autosave routine and performs a final save.
func (ds *DataStore) Close() error {
	ds.closeMu.Lock()
	if ds.closed {
		ds.closeMu.Unlock()
		return nil
	}
	ds.closed = true
	ds.closeMu.Unlock()

	close(ds.done)
	ds.wg.Wait()

	return ds.saveToFile()
}

func (ds *DataStore) isClosed() bool {
	ds.closeMu.RLock()
	defer ds.closeMu.RUnlock()
	return ds.closed
}

func (ds *DataStore) saveToFile() error {
	ds.mu.RLock()
	data, err := json.MarshalIndent(ds.data, "", "  ")
	ds.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	checksum := checksumOf(data)
	if checksum == ds.lastChecksum {
		return nil
	}

	if ds.config.BackupCount > 0 {
		if err := ds.createBackup(); err != nil {
			log.Printf("[WARN] datastore backup failed: %v", err)
		}
	}

	if err := ds.writeFileAtomic(data); err != nil {
		return err
	}

	ds.lastChecksum = checksum
	return nil
}

func (ds *DataStore) loadFromFile() error {
	data, err := os.ReadFile(ds.file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var temp map[string]any
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if temp == nil {
		temp = make(map[string]any)
	}

	ds.mu.Lock()
	ds.data = temp
	ds.mu.Unlock()
	ds.lastChecksum = checksumOf(data)
	return nil
}

// writeFileAtomic writes via a temp file and rename.
func (ds *DataStore) writeFileAtomic(data []byte) error {
	tmpFile := ds.file + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, ds.file); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (ds *DataStore) createBackup() error {
	if _, err := os.Stat(ds.file); os.IsNotExist(err) {
		return nil
	}

	timestamp := time.Now().Format("20060102_150405")
	backupFile := fmt.Sprintf("%s.backup.%s", ds.file, timestamp)

	src, err := os.Open(ds.file)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(backupFile)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	ds.cleanupOldBackups()
	return nil
}

func (ds *DataStore) cleanupOldBackups() {
	matches, err := filepath.Glob(ds.file + ".backup.*")
	if err != nil || len(matches) <= ds.config.BackupCount {
		return
	}

	type fileInfo struct {
		path    string
		modTime time.Time
	}
	var files []fileInfo
	for _, match := range matches {
		if info, err := os.Stat(match); err == nil {
			files = append(files, fileInfo{match, info.ModTime()})
		}
	}

	// oldest first
	for i := 0; i < len(files)-1; i++ {
		for j := i + 1; j < len(files); j++ {
			if files[i].modTime.After(files[j].modTime) {
				files[i], files[j] = files[j], files[i]
			}
		}
	}

	for i := 0; i < len(files)-ds.config.BackupCount; i++ {
		os.Remove(files[i].path)
	}
}

func (ds *DataStore) autoSave() {
	defer ds.wg.Done()

	ticker := time.NewTicker(ds.config.AutoSaveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ds.done:
			return
		case <-ticker.C:
			if err := ds.saveToFile(); err != nil {
				log.Printf("[WARN] datastore auto-save error: %v", err)
			}
		}
	}
}

// Stats returns basic statistics about the store.
func (ds *DataStore) Stats() map[string]any {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return map[string]any{
		"keys":      len(ds.data),
		"file_path": ds.file,
	}
}

func checksumOf(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
