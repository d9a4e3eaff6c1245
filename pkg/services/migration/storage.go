package migration

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ivan-rueda-duarte/winsec/pkg/windows/acl"
)

// ErrResourceNotFound is returned by Source implementations for paths
// without a stored ACL.
var ErrResourceNotFound = errors.New("resource not found")

// Source is an interface of storage of access control lists with read access.
type Source interface {
	// Must return access control list by resource path key.
	ACL(context.Context, string) (*acl.List, error)
}

// Store is an interface of storage of access control lists.
type Store interface {
	Source

	// Must store access control list for resource path key.
	PutACL(context.Context, string, *acl.List) error
}

// MemoryStore is an in-memory Store keyed by resource path. Entries are
// copied on the way in and out, so callers never share a list instance
// with the store. Safe for concurrent use.
type MemoryStore struct {
	mtx   sync.RWMutex
	lists map[string][]acl.Entry
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lists: make(map[string][]acl.Entry),
	}
}

// ACL returns a fresh list built from the stored entries of path.
func (s *MemoryStore) ACL(_ context.Context, path string) (*acl.List, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	es, ok := s.lists[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, path)
	}

	return acl.NewList(es...), nil
}

// PutACL stores a copy of the list entries under path, replacing any
// previous ACL.
func (s *MemoryStore) PutACL(_ context.Context, path string, l *acl.List) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.lists[path] = l.Entries()

	return nil
}
