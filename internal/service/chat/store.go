package chat

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/Jadav-Gajanand-19/aiera-backend/internal/model/chat"
)

var (
	ErrUserRequired    = errors.New("user id is required")
	ErrSessionRequired = errors.New("session id is required")
)

// conversations/<userID>/<sessionID>/<seq> -> JSON-encoded chat.Message
var bucketConversations = []byte("conversations")

// Store persists conversation turns in a single-file bbolt database keyed by
// (user id, session id). Sessions come into existence on first append; an
// unknown session simply has an empty history.
type Store struct {
	db *bolt.DB
}

// Open creates or opens the store at path, creating parent directories as
// needed. The returned Store is safe for concurrent use and must be closed
// on shutdown.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketConversations)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.db.Path()
}

// AppendTurn appends a message to the (user, session) history. The message
// always receives a fresh id, and a UTC timestamp when absent. The write runs
// inside one transaction, released on every exit path.
func (s *Store) AppendTurn(_ context.Context, message chat.Message) error {
	if message.UserID == "" {
		return ErrUserRequired
	}
	if message.SessionID == "" {
		return ErrSessionRequired
	}

	message.ID = uuid.NewString()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		users := tx.Bucket(bucketConversations)
		user, err := users.CreateBucketIfNotExists([]byte(message.UserID))
		if err != nil {
			return err
		}
		session, err := user.CreateBucketIfNotExists([]byte(message.SessionID))
		if err != nil {
			return err
		}

		seq, err := session.NextSequence()
		if err != nil {
			return err
		}

		var key [8]byte
		binary.BigEndian.PutUint64(key[:], seq)
		return session.Put(key[:], payload)
	})
}

// History returns the stored messages for (user, session) in append order.
// Unknown users or sessions yield an empty history.
func (s *Store) History(_ context.Context, userID, sessionID string) ([]chat.Message, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	var messages []chat.Message
	err := s.db.View(func(tx *bolt.Tx) error {
		user := tx.Bucket(bucketConversations).Bucket([]byte(userID))
		if user == nil {
			return nil
		}
		session := user.Bucket([]byte(sessionID))
		if session == nil {
			return nil
		}

		return session.ForEach(func(_, value []byte) error {
			var message chat.Message
			if err := json.Unmarshal(value, &message); err != nil {
				return fmt.Errorf("failed to decode message: %w", err)
			}
			messages = append(messages, message)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}
