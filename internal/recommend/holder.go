// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package recommend

import (
	"context"
	"sync/atomic"

	"github.com/tomtom215/pickrec/internal/catalog"
	"github.com/tomtom215/pickrec/internal/metrics"
)

// Holder publishes the current Index. Readers never block; a reload swaps
// the whole catalog and matrix pair in one atomic store.
type Holder struct {
	current atomic.Pointer[Index]
}

// NewHolder returns an empty holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Load returns the published index, or nil before the first Publish.
func (h *Holder) Load() *Index {
	return h.current.Load()
}

// Publish makes ix the current index.
func (h *Holder) Publish(ix *Index) {
	h.current.Store(ix)
	metrics.RecordIndexPublished(ix.Len(), ix.VocabularySize(), ix.BuildDuration())
}

// Ready reports whether an index has been published.
func (h *Holder) Ready() bool {
	return h.current.Load() != nil
}

// Refresh loads the catalog from src, builds a new index and publishes it.
// On any error the current index stays in place.
func (h *Holder) Refresh(ctx context.Context, src catalog.Source) error {
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		return err
	}

	ix, err := Build(ctx, cat)
	if err != nil {
		return err
	}

	h.Publish(ix)
	return nil
}
