// Package records implements the CRUD controller shared by the product
// and team-member collections. A collection is the entire ordered
// sequence of its records under one storage key; every mutation
// rewrites the sequence wholesale through the store.
package records

import (
	"github.com/google/uuid"

	"shippy/internal/logging"
	"shippy/internal/store"
)

// Entity is implemented by the value types a Collection manages.
// Methods return modified copies so the in-memory sequence is only
// ever replaced, never mutated in place.
type Entity[T any] interface {
	GetID() string
	WithID(id string) T
	Validate() bool
	WithField(field string, value any) T
}

// Collection is a CRUD controller over one record sequence. It is not
// safe for concurrent use; the dashboard drives it from a single
// event loop.
type Collection[T Entity[T]] struct {
	st        *store.Store
	key       string
	items     []T
	editingID string
	log       *logging.Logger
}

// Open loads the collection under key, seeding it with seed when the
// key has never been written.
func Open[T Entity[T]](st *store.Store, key string, seed []T) (*Collection[T], error) {
	items, err := store.LoadOrSeed(st, key, seed)
	if err != nil {
		return nil, err
	}
	return &Collection[T]{
		st:    st,
		key:   key,
		items: items,
		log:   logging.Get(logging.CategoryRecords),
	}, nil
}

// Items returns the records in insertion order. The returned slice is
// the live backing sequence; callers must treat it as read-only.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Find returns the record with the given id.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, item := range c.items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add validates the draft's required display fields, assigns a fresh
// id and appends it. An invalid draft is a silent no-op; no error is
// surfaced to the caller.
func (c *Collection[T]) Add(draft T) {
	if !draft.Validate() {
		c.log.Debug("%s: add rejected, required fields empty", c.key)
		return
	}
	item := draft.WithID(uuid.NewString())
	c.items = append(c.items, item)
	c.save()
	c.log.Info("%s: added record %s (now %d)", c.key, item.GetID(), len(c.items))
}

// Update replaces one field on the record matching id. An unknown id
// leaves the sequence unchanged but still persists it, matching the
// map-then-save behavior of the forms this backs.
func (c *Collection[T]) Update(id, field string, value any) {
	for i, item := range c.items {
		if item.GetID() == id {
			c.items[i] = item.WithField(field, value)
			break
		}
	}
	c.save()
}

// Remove filters out the record matching id and persists. There is no
// confirmation step and no soft delete.
func (c *Collection[T]) Remove(id string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.save()
	c.log.Info("%s: removed record %s (now %d)", c.key, id, len(c.items))
}

// BeginEdit marks one record as being edited. Starting an edit on a
// second record atomically replaces the first; there is never more
// than one edit slot.
func (c *Collection[T]) BeginEdit(id string) {
	c.editingID = id
}

// EndEdit clears the edit slot.
func (c *Collection[T]) EndEdit() {
	c.editingID = ""
}

// EditingID returns the id currently in edit mode, or "".
func (c *Collection[T]) EditingID() string {
	return c.editingID
}

// save persists the whole sequence. Persistence failures are logged,
// not surfaced; the worst case is a stale view after restart.
func (c *Collection[T]) save() {
	if err := store.Save(c.st, c.key, c.items); err != nil {
		c.log.Error("%s: save failed: %v", c.key, err)
	}
}
