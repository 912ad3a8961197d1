package chat

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ashwinyue/mindwell/internal/model"
)

const (
	// conversation state expiry in Redis
	stateTTL = 24 * time.Hour
	// Redis key prefix
	stateKeyPrefix = "chat:state:"
)

// ConversationState is the ephemeral per-session state that is not part of
// the persisted transcript: the booking flow stage and draft.
type ConversationState struct {
	SessionID string       `json:"sessionId"`
	Booking   BookingState `json:"booking"`
	UpdatedAt time.Time    `json:"updatedAt"`

	// catalog caches, filled on first list/open intent and held for the rest
	// of the conversation; memory only, so a Redis reload refetches
	resources   []*model.Resource
	assessments []AssessmentOption
}

// StateManager keeps conversation state in memory with Redis write-through,
// and hands out the per-session lock that serializes message handling.
type StateManager struct {
	mu     sync.RWMutex
	memory map[string]*ConversationState
	locks  map[string]*sync.Mutex
	redis  *redis.Client
}

// NewStateManager creates the state manager. redisClient may be nil; state
// then lives in memory only.
func NewStateManager(redisClient *redis.Client) *StateManager {
	return &StateManager{
		memory: make(map[string]*ConversationState),
		locks:  make(map[string]*sync.Mutex),
		redis:  redisClient,
	}
}

// Lock returns the mutex serializing message handling for one session
func (m *StateManager) Lock(sessionID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[sessionID] = lock
	}
	return lock
}

// Get fetches the conversation state, falling back to Redis and finally to a
// fresh zero state
func (m *StateManager) Get(ctx context.Context, sessionID string) *ConversationState {
	m.mu.RLock()
	state, ok := m.memory[sessionID]
	m.mu.RUnlock()

	if ok {
		return state
	}

	if m.redis != nil {
		if state := m.loadFromRedis(ctx, sessionID); state != nil {
			m.mu.Lock()
			m.memory[sessionID] = state
			m.mu.Unlock()
			return state
		}
	}

	state = &ConversationState{
		SessionID: sessionID,
		UpdatedAt: time.Now(),
	}
	m.mu.Lock()
	m.memory[sessionID] = state
	m.mu.Unlock()

	return state
}

// Save writes the state back to memory and Redis
func (m *StateManager) Save(ctx context.Context, state *ConversationState) {
	state.UpdatedAt = time.Now()

	m.mu.Lock()
	m.memory[state.SessionID] = state
	m.mu.Unlock()

	if m.redis != nil {
		if err := m.saveToRedis(ctx, state); err != nil {
			// keep going, memory copy stays authoritative
			log.Printf("warning: failed to save conversation state to redis: %v", err)
		}
	}
}

// Clear drops the state and its lock, once a session has ended
func (m *StateManager) Clear(ctx context.Context, sessionID string) {
	m.mu.Lock()
	delete(m.memory, sessionID)
	delete(m.locks, sessionID)
	m.mu.Unlock()

	if m.redis != nil {
		key := stateKeyPrefix + sessionID
		if err := m.redis.Del(ctx, key).Err(); err != nil {
			log.Printf("warning: failed to delete conversation state from redis: %v", err)
		}
	}
}

func (m *StateManager) loadFromRedis(ctx context.Context, sessionID string) *ConversationState {
	key := stateKeyPrefix + sessionID
	data, err := m.redis.Get(ctx, key).Result()
	if err != nil {
		return nil
	}

	var state ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil
	}
	return &state
}

func (m *StateManager) saveToRedis(ctx context.Context, state *ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return m.redis.Set(ctx, stateKeyPrefix+state.SessionID, data, stateTTL).Err()
}
