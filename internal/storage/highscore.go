package storage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// HighScoreProp is the property under which a game's best score is stored.
// The object name is the game ID.
const HighScoreProp = "highScore"

// KVStore keeps one best score per game in the platform data directory.
// A nil manager runs in degraded mode: scores live in memory only.
type KVStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
	mem     map[string]int
}

// OpenKV opens the key/value store for the given application name.
func OpenKV(appName string) (*KVStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open data dir for %s: %w", appName, err)
	}
	return &KVStore{manager: manager}, nil
}

// NewMemoryKV returns a store that never touches disk.
func NewMemoryKV() *KVStore {
	return &KVStore{}
}

// LoadHighScore returns the stored best score for gameID.
// A missing value reads as 0. A value that does not parse also reads as 0,
// with the parse error returned so the caller can log it.
func (s *KVStore) LoadHighScore(gameID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil {
		return s.mem[gameID], nil
	}
	if !s.manager.ObjectPropExists(gameID, HighScoreProp) {
		return 0, nil
	}

	data, err := s.manager.LoadObjectProp(gameID, HighScoreProp)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score for %s: %w", gameID, err)
	}
	score, err := ParseHighScore(data)
	if err != nil {
		return 0, fmt.Errorf("storage: bad high score for %s: %w", gameID, err)
	}
	return score, nil
}

// SaveHighScore stores score as the best score for gameID.
func (s *KVStore) SaveHighScore(gameID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil {
		if s.mem == nil {
			s.mem = make(map[string]int)
		}
		s.mem[gameID] = score
		return nil
	}

	if err := s.manager.SaveObjectProp(gameID, HighScoreProp, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save high score for %s: %w", gameID, err)
	}
	return nil
}

// ParseHighScore decodes a stored score. Negative values are rejected.
func ParseHighScore(data []byte) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, err
	}
	if score < 0 {
		return 0, fmt.Errorf("negative score %d", score)
	}
	return score, nil
}
