package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Store 本機裝置儲存，一個 key 一個檔案
// 讀寫都是同步且 best-effort：讀不到或壞掉一律當作不存在，只記 log 不往上拋
type Store struct {
	mu     sync.Mutex
	dir    string
	logger zerolog.Logger
}

func New(dir string, logger zerolog.Logger) *Store {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error().Err(err).Str("dir", dir).Msg("create local storage dir failed")
	}
	return &Store{dir: dir, logger: logger}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get 讀取原始內容，不存在或讀取失敗回 ok=false
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("key", key).Msg("read local storage failed")
		}
		return nil, false
	}
	return data, true
}

// Set 同步寫入，失敗只記 log
func (s *Store) Set(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("write local storage failed")
	}
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Str("key", key).Msg("delete local storage failed")
	}
}

// GetJSON 讀取並反序列化，解析失敗視同不存在
func (s *Store) GetJSON(key string, dest any) bool {
	data, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("parse local storage failed, fallback to empty")
		return false
	}
	return true
}

// SetJSON 序列化後寫入
func (s *Store) SetJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("marshal local storage value failed")
		return
	}
	s.Set(key, data)
}
