// Package store orchestrates persistence for the tracked collection.
// It owns the only authoritative in-memory copy; the collection is
// replaced wholesale on every successful load so readers never observe
// a partially-updated slice.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mgreer/arc-tracker/internal/arc"
	"github.com/mgreer/arc-tracker/internal/logging"
	"github.com/mgreer/arc-tracker/internal/rest"
)

// State is the store's lifecycle state.
type State int

const (
	Idle State = iota
	Loading
	// Ready means the last load came from the backing store.
	Ready
	// Degraded means the backing store was unreachable at load time and
	// the collection holds the seed item instead. A first-class state,
	// not a silent substitution, so callers can tell "really loaded one
	// item" from "fell back".
	Degraded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Degraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// seedItem is the demo record installed when the initial load fails,
// so the tool is never empty while misconfigured or offline.
var seedItem = arc.ARC{
	ID: 1,
	Draft: arc.Draft{
		Title:        "Demo Book",
		Author:       "Demo Author",
		Publisher:    "Demo Publisher",
		Genre:        "Fiction",
		PublishDate:  "2024-12-01",
		ReceivedDate: "2024-11-01",
		Description:  "This is a demo book. Configure the backing store to start tracking real data!",
		Notes:        "Set base_url and api_key in the config file",
	},
	DateAdded: "2024-11-01",
}

// Store loads, creates, updates, and deletes tracked items through the
// rest client, translating records with the arc field mapper.
type Store struct {
	client       *rest.Client
	seedFallback bool
	logger       logging.Logger

	state       State
	items       []arc.ARC
	subscribers []func()

	// now is injected for deterministic date_added stamps in tests.
	now func() time.Time
}

// New creates an idle store around the given client.
func New(client *rest.Client, seedFallback bool) *Store {
	return &Store{
		client:       client,
		seedFallback: seedFallback,
		logger:       logging.Get().Named("store"),
		state:        Idle,
		now:          time.Now,
	}
}

// Subscribe registers a callback invoked after every state or
// collection change. Callbacks run synchronously on the mutating call.
func (s *Store) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}

func (s *Store) setState(st State) {
	s.state = st
	s.notify()
}

// State returns the current lifecycle state.
func (s *Store) State() State { return s.state }

// Items returns a copy of the collection; callers never hold the
// authoritative slice.
func (s *Store) Items() []arc.ARC {
	out := make([]arc.ARC, len(s.items))
	copy(out, s.items)
	return out
}

// Load fetches the full collection. A transport failure is non-fatal:
// the store logs it, installs the seed item, and enters Degraded so the
// tool stays usable offline or misconfigured. Only a mapping failure,
// which indicates malformed store data, propagates as an error.
func (s *Store) Load(ctx context.Context) error {
	s.setState(Loading)

	records, err := s.client.Do(ctx, rest.List())
	if err != nil {
		s.logger.Warn("Loading collection failed, falling back", "error", err)
		if s.seedFallback {
			s.items = []arc.ARC{seedItem}
		} else {
			s.items = nil
		}
		s.setState(Degraded)
		return nil
	}

	items := make([]arc.ARC, 0, len(records))
	for _, rec := range records {
		item, err := arc.FromRecord(arc.ToInternal(rec))
		if err != nil {
			s.setState(Degraded)
			return fmt.Errorf("loading collection: %w", err)
		}
		items = append(items, item)
	}

	s.items = items // wholesale replacement, never patched in place
	s.setState(Ready)
	s.logger.Info("Collection loaded", "count", len(items))
	return nil
}

// Create submits a new item and reloads on success. The store performs
// no validation; callers run arc.ValidateDraft first. On failure the
// collection is untouched and the transport error is returned verbatim.
// The returned id is the store-assigned identifier, or 0 when the
// store did not echo the created row.
func (s *Store) Create(ctx context.Context, draft arc.Draft) (int64, error) {
	rec, err := arc.DraftRecord(draft)
	if err != nil {
		return 0, err
	}
	rec["dateAdded"] = s.now().UTC().Format(arc.DateFormat)

	created, err := s.client.Do(ctx, rest.Insert([]map[string]any{arc.ToExternal(rec)}))
	if err != nil {
		s.logger.Error("Create failed", "title", draft.Title, "error", err)
		return 0, err
	}

	var id int64
	if len(created) > 0 {
		if item, err := arc.FromRecord(arc.ToInternal(created[0])); err == nil {
			id = item.ID
		}
	}

	s.logger.Info("Created item", "title", draft.Title, "id", id)
	return id, s.Load(ctx)
}

// Update patches the item with the given id and reloads on success.
func (s *Store) Update(ctx context.Context, id int64, draft arc.Draft) error {
	rec, err := arc.DraftRecord(draft)
	if err != nil {
		return err
	}

	req := rest.Update(arc.ToExternal(rec)).ForKey("id", id)
	if _, err := s.client.Do(ctx, req); err != nil {
		s.logger.Error("Update failed", "id", id, "error", err)
		return err
	}

	s.logger.Info("Updated item", "id", id)
	return s.Load(ctx)
}

// Delete removes the item with the given id and reloads on success.
// Deletion is irrevocable; there is no soft-delete or undo.
func (s *Store) Delete(ctx context.Context, id int64) error {
	req := rest.Delete().ForKey("id", id)
	if _, err := s.client.Do(ctx, req); err != nil {
		s.logger.Error("Delete failed", "id", id, "error", err)
		return err
	}

	s.logger.Info("Deleted item", "id", id)
	return s.Load(ctx)
}

// Get finds an item by id in the current collection.
func (s *Store) Get(id int64) (arc.ARC, bool) {
	for _, a := range s.items {
		if a.ID == id {
			return a, true
		}
	}
	return arc.ARC{}, false
}
