// Package memory provides in-process implementations of the repositories.
// They follow the same projection and error contracts as the MongoDB ones.
package memory

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oksasatya/photocards/internal/domain/repository"
	"github.com/oksasatya/photocards/pkg/validation"
)

var counter atomic.Uint32

// newID returns a 24-character hex id laid out like a Mongo ObjectID:
// 4 bytes of time, 5 random bytes, 3 bytes of counter.
func newID() string {
	var b [12]byte
	ts := uint32(time.Now().Unix())
	b[0], b[1], b[2], b[3] = byte(ts>>24), byte(ts>>16), byte(ts>>8), byte(ts)
	_, _ = rand.Read(b[4:9])
	c := counter.Add(1)
	b[9], b[10], b[11] = byte(c>>16), byte(c>>8), byte(c)
	return hex.EncodeToString(b[:])
}

func checkID(id string) error {
	if !validation.IsObjectID(id) {
		return repository.ErrInvalidID
	}
	return nil
}

// Store holds both collections behind one lock.
type Store struct {
	mu     sync.RWMutex
	users  map[string]userRecord
	emails map[string]string
	cards  map[string]cardRecord
	order  []string
}

func NewStore() *Store {
	return &Store{
		users:  make(map[string]userRecord),
		emails: make(map[string]string),
		cards:  make(map[string]cardRecord),
	}
}

// Users returns a UserRepository backed by s
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Cards returns a CardRepository backed by s
func (s *Store) Cards() *CardRepository { return &CardRepository{s: s} }
