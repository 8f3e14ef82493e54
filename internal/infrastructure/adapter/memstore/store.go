// Package memstore keeps cards, users and transfers in process memory.
// It is selected with database.driver=memory and backs the concurrency tests.
package memstore

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

type transferKey struct {
	ownerID   uint64
	requestID string
}

// Store holds all records. mu guards the maps; per-card locks give the
// exclusive access that Mutate and MutatePair promise.
type Store struct {
	mu sync.RWMutex

	cards       map[uint64]*entity.Card
	cardNumbers map[string]uint64
	cardLocks   map[uint64]cardLock
	nextCardID  uint64

	users      map[uint64]*entity.User
	usernames  map[string]uint64
	nextUserID uint64

	transfers    []*entity.Transfer
	transferKeys map[transferKey]int
}

// New creates an empty Store
func New() *Store {
	return &Store{
		cards:        make(map[uint64]*entity.Card),
		cardNumbers:  make(map[string]uint64),
		cardLocks:    make(map[uint64]cardLock),
		users:        make(map[uint64]*entity.User),
		usernames:    make(map[string]uint64),
		transferKeys: make(map[transferKey]int),
	}
}

// Cards returns the CardStore view of the Store
func (s *Store) Cards() *CardStore {
	return &CardStore{s: s}
}

// Users returns the UserRepository view of the Store
func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

// Transfers returns the TransferRepository view of the Store
func (s *Store) Transfers() *TransferRepository {
	return &TransferRepository{s: s}
}

// UnitOfWork returns a UnitOfWork over the Store
func (s *Store) UnitOfWork() *UnitOfWork {
	return &UnitOfWork{s: s}
}

// cardLock is a one-slot semaphore so acquisition can honor ctx cancellation
type cardLock chan struct{}

func (l cardLock) acquire(ctx context.Context) error {
	select {
	case l <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l cardLock) release() {
	<-l
}

func (s *Store) lockFor(id uint64) cardLock {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.cardLocks[id]
	if !ok {
		l = make(cardLock, 1)
		s.cardLocks[id] = l
	}
	return l
}

// stagedOp is a write deferred until its unit commits. check runs for every op
// before any apply, both with mu held.
type stagedOp struct {
	check func() error
	apply func()
}

type txState struct {
	mu  sync.Mutex
	ops []stagedOp
}

type txKey struct{}

func txFrom(ctx context.Context) *txState {
	tx, _ := ctx.Value(txKey{}).(*txState)
	return tx
}

func (t *txState) stage(op stagedOp) {
	t.mu.Lock()
	t.ops = append(t.ops, op)
	t.mu.Unlock()
}

func (t *txState) drain() []stagedOp {
	t.mu.Lock()
	defer t.mu.Unlock()
	ops := t.ops
	t.ops = nil
	return ops
}

// run executes op now, or stages it when ctx carries an open unit
func (s *Store) run(ctx context.Context, op stagedOp) error {
	if tx := txFrom(ctx); tx != nil {
		s.mu.RLock()
		err := checkOp(op)
		s.mu.RUnlock()
		if err != nil {
			return err
		}
		tx.stage(op)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := checkOp(op); err != nil {
		return err
	}
	op.apply()
	return nil
}

// commitLocked applies staged ops; the caller holds mu
func commitLocked(ops []stagedOp) error {
	for _, op := range ops {
		if err := checkOp(op); err != nil {
			return err
		}
	}
	for _, op := range ops {
		op.apply()
	}
	return nil
}

func checkOp(op stagedOp) error {
	if op.check == nil {
		return nil
	}
	return op.check()
}
