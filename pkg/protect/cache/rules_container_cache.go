// Package cache holds the client-side rules container cache. The cache
// keeps exactly one container, the most recently fetched one, and
// collapses concurrent misses into a single upstream fetch.
package cache

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

var log = logrus.WithField("prefix", "protect/cache")

// FetchFunc fetches the current rules container in its base64 wire form.
type FetchFunc func(ctx context.Context) (string, error)

// RulesContainerCache is a single-slot cache over the tenant's rules
// container. It is safe for concurrent use by many operations of the same
// client.
type RulesContainerCache struct {
	decode func(base64Data string) (*model.DecodedRulesContainer, error)

	mu        sync.RWMutex
	rawBase64 string
	container *model.DecodedRulesContainer
	populated bool

	group singleflight.Group
}

// NewRulesContainerCache returns an empty cache that decodes fetched
// containers with the given decoder.
func NewRulesContainerCache(decode func(base64Data string) (*model.DecodedRulesContainer, error)) *RulesContainerCache {
	return &RulesContainerCache{decode: decode}
}

// Get returns the cached container, fetching and decoding it on a miss.
// Concurrent misses share one fetch; every caller observes the same
// decoded container instance. A caller whose context is cancelled while
// waiting gets the context error, but the fetch itself runs to completion
// for the remaining waiters.
func (c *RulesContainerCache) Get(ctx context.Context, fetch FetchFunc) (*model.DecodedRulesContainer, error) {
	c.mu.RLock()
	if c.populated {
		container := c.container
		c.mu.RUnlock()
		return container, nil
	}
	c.mu.RUnlock()

	resultCh := c.group.DoChan("rules-container", func() (interface{}, error) {
		// A previous flight may have populated the slot while this
		// caller was queueing.
		c.mu.RLock()
		if c.populated {
			container := c.container
			c.mu.RUnlock()
			return container, nil
		}
		c.mu.RUnlock()

		// The fetch must outlive the winning caller's context so that
		// cancelling the winner does not abort the other waiters.
		rawBase64, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch rules container")
		}
		container, err := c.decode(rawBase64)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.rawBase64 = rawBase64
		c.container = container
		c.populated = true
		c.mu.Unlock()

		log.Debug("rules container cache refreshed")
		return container, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultCh:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*model.DecodedRulesContainer), nil
	}
}

// RawBase64 returns the wire form of the cached container, if any.
func (c *RulesContainerCache) RawBase64() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rawBase64, c.populated
}

// Invalidate clears the slot; the next Get fetches anew. An in-flight
// fetch is deliberately left alone, forgetting it would allow a second
// concurrent fetch.
func (c *RulesContainerCache) Invalidate() {
	c.mu.Lock()
	c.rawBase64 = ""
	c.container = nil
	c.populated = false
	c.mu.Unlock()
	log.Debug("rules container cache invalidated")
}
