// Zaparoo Core
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Core.
//
// Zaparoo Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Core.  If not, see <http://www.gnu.org/licenses/>.

// Package oracle answers whether auxiliary software is installed, such as
// the hiscore cart in MAME's a7800 software list. Queries run an external
// program, so answers are remembered for the lifetime of a Cache.
package oracle

import (
	"context"
	"errors"

	"github.com/ZaparooProject/zaparoo-emuresolve/pkg/helpers/syncutil"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Querier performs the uncached lookup.
type Querier interface {
	Query(ctx context.Context, list, item string) (bool, error)
}

type key struct {
	list string
	item string
}

// Cache memoizes a Querier per (list, item). It is safe for concurrent
// use, and concurrent lookups of the same key share one query.
type Cache struct {
	querier Querier
	clock   clockwork.Clock
	results map[key]bool
	group   singleflight.Group
	mu      syncutil.RWMutex
}

type Option func(*Cache)

// WithClock sets the clock used to time queries.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Cache) {
		c.clock = clock
	}
}

func NewCache(querier Querier, opts ...Option) *Cache {
	c := &Cache{
		querier: querier,
		clock:   clockwork.NewRealClock(),
		results: make(map[key]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) lookup(k key) (found, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	found, ok = c.results[k]
	return found, ok
}

// HasItem reports whether item is installed in list. A failed query
// counts as not installed and is remembered like any other answer,
// unless it failed because ctx was cancelled.
func (c *Cache) HasItem(ctx context.Context, list, item string) bool {
	k := key{list: list, item: item}
	if found, ok := c.lookup(k); ok {
		return found
	}

	v, _, _ := c.group.Do(list+"\x00"+item, func() (any, error) {
		if found, ok := c.lookup(k); ok {
			return found, nil
		}

		start := c.clock.Now()
		found, err := c.querier.Query(ctx, list, item)
		took := c.clock.Since(start)

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return false, nil
			}
			log.Warn().Err(err).Str("list", list).Str("item", item).Msg("software query failed")
			found = false
		}
		log.Debug().
			Str("list", list).
			Str("item", item).
			Bool("found", found).
			Dur("took", took).
			Msg("software query")

		c.mu.Lock()
		c.results[k] = found
		c.mu.Unlock()
		return found, nil
	})
	found, _ := v.(bool)
	return found
}

// Len returns the number of remembered answers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
