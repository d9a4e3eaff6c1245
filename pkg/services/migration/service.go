// Package migration implements SID reassignment sweeps: applying an
// ordered SID mapping to the access control lists of many resources at
// once, the bulk operation behind account migration and SID history
// rewriting.
package migration

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service sweeps SID mappings over the ACLs of a Store.
type Service struct {
	*cfg

	store Store
}

// New constructs a migration service over the given store.
func New(store Store, opts ...Option) *Service {
	c := defaultCfg()

	for i := range opts {
		opts[i](c)
	}

	return &Service{
		cfg:   c,
		store: store,
	}
}

// Report is the outcome of a single Migrate call.
type Report struct {
	// ID is a unique identifier of the sweep, also attached to its log
	// records.
	ID string

	// Rewritten maps successfully migrated resource paths to the number
	// of entries that changed subject there (possibly zero).
	Rewritten map[string]int

	// Failed maps resource paths to the error that prevented their
	// migration.
	Failed map[string]error
}

// Migrate applies the mapping to the ACL of every listed resource: read
// list, reassign each rule in mapping order, store the list back.
// Resources are processed independently through the worker pool, each
// list is touched by exactly one routine.
//
// A failing resource does not stop the sweep; it is recorded in the
// report instead. Migrate stops submitting new resources once ctx is
// done and returns the context error alongside the partial report.
func (s *Service) Migrate(ctx context.Context, paths []string, m Mapping) (*Report, error) {
	rep := &Report{
		ID:        uuid.NewString(),
		Rewritten: make(map[string]int, len(paths)),
		Failed:    make(map[string]error),
	}

	log := s.log.With(zap.String("run_id", rep.ID))
	log.Info("starting SID migration sweep",
		zap.Int("resources", len(paths)),
		zap.Int("rules", len(m)),
	)

	var (
		wg  sync.WaitGroup
		mtx sync.Mutex
	)

	for i := range paths {
		if ctx.Err() != nil {
			break
		}

		path := paths[i]

		wg.Add(1)

		err := s.pool.Submit(func() {
			defer wg.Done()

			n, err := s.migrateResource(ctx, path, m)

			mtx.Lock()
			if err != nil {
				rep.Failed[path] = err
			} else {
				rep.Rewritten[path] = n
			}
			mtx.Unlock()

			if err != nil {
				s.metrics.AddResourceFailed()
				log.Warn("could not migrate resource",
					zap.String("path", path),
					zap.Error(err),
				)
			} else {
				s.metrics.AddResourceMigrated()
				s.metrics.AddEntriesRewritten(n)
				log.Debug("resource migrated",
					zap.String("path", path),
					zap.Int("entries_rewritten", n),
				)
			}
		})
		if err != nil {
			wg.Done()

			mtx.Lock()
			rep.Failed[path] = err
			mtx.Unlock()

			s.metrics.AddResourceFailed()
		}
	}

	wg.Wait()

	log.Info("SID migration sweep finished",
		zap.Int("migrated", len(rep.Rewritten)),
		zap.Int("failed", len(rep.Failed)),
	)

	return rep, ctx.Err()
}

func (s *Service) migrateResource(ctx context.Context, path string, m Mapping) (int, error) {
	l, err := s.store.ACL(ctx, path)
	if err != nil {
		return 0, err
	}

	n := m.Apply(l)

	if err := s.store.PutACL(ctx, path, l); err != nil {
		return 0, err
	}

	return n, nil
}
