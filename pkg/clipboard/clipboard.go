// Package clipboard keeps copied objects between CLI invocations.
//
// Copied objects are encoded with the raw IOP codec and stored in a
// [cache.Cache] under a random entry ID. The most recent entry is also
// reachable as "latest", which is what a plain paste uses.
package clipboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/vtdesigner/pkg/cache"
	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/iop"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// DefaultTTL is how long clipboard entries are kept.
const DefaultTTL = 7 * 24 * time.Hour

const (
	entryPrefix = "clipboard:entry:"
	latestKey   = "clipboard:latest"
)

// Clipboard stores object copies in a cache.
type Clipboard struct {
	store cache.Cache
	ttl   time.Duration
}

// New returns a clipboard on top of store. A zero ttl uses [DefaultTTL].
func New(store cache.Cache, ttl time.Duration) *Clipboard {
	if store == nil {
		store = cache.NewNullCache()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Clipboard{store: store, ttl: ttl}
}

// Put stores objs as a new entry, makes it the latest one, and returns the
// entry ID.
func (c *Clipboard) Put(ctx context.Context, objs []pool.Object) (string, error) {
	if len(objs) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "nothing to copy")
	}
	var data []byte
	for _, o := range objs {
		var err error
		if data, err = iop.AppendObject(data, o); err != nil {
			return "", err
		}
	}

	id := uuid.NewString()
	err := cache.RetryWithBackoff(ctx, func() error {
		if err := c.store.Set(ctx, entryPrefix+id, data, c.ttl); err != nil {
			return err
		}
		return c.store.Set(ctx, latestKey, []byte(id), c.ttl)
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "store clipboard entry")
	}
	return id, nil
}

// Get returns the objects of entry id.
func (c *Clipboard) Get(ctx context.Context, id string) ([]pool.Object, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid clipboard entry %q", id)
	}
	data, err := c.load(ctx, entryPrefix+id)
	if err != nil {
		return nil, err
	}
	p, err := iop.Decode(data)
	if err != nil {
		return nil, err
	}
	return p.Objects(), nil
}

// Latest returns the objects of the most recent entry and its ID.
func (c *Clipboard) Latest(ctx context.Context) ([]pool.Object, string, error) {
	id, err := c.load(ctx, latestKey)
	if err != nil {
		return nil, "", err
	}
	objs, err := c.Get(ctx, string(id))
	return objs, string(id), err
}

// Clear forgets the latest entry.
func (c *Clipboard) Clear(ctx context.Context) error {
	return c.store.Delete(ctx, latestKey)
}

func (c *Clipboard) load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	var hit bool
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, hit, err = c.store.Get(ctx, key)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read clipboard")
	}
	if !hit {
		return nil, errors.New(errors.ErrCodeNotFound, "clipboard is empty")
	}
	return data, nil
}
