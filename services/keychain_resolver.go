package services

import (
	"context"
	"flight-parser/contract"
	"flight-parser/domain"
	perrors "flight-parser/errors"
	"flight-parser/observability"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"
)

// KeychainResolver returns the keychains needed to decode a file, asking the
// remote keychain service only for content it has never seen.
type KeychainResolver struct {
	log           *slog.Logger
	fingerprinter contract.Fingerprinter
	store         contract.KeychainStore
	decoder       contract.Decoder
	metrics       *observability.Metrics
	group         singleflight.Group
}

func NewKeychainResolver(
	log *slog.Logger,
	fingerprinter contract.Fingerprinter,
	store contract.KeychainStore,
	decoder contract.Decoder,
	metrics *observability.Metrics,
) *KeychainResolver {
	return &KeychainResolver{
		log:           log,
		fingerprinter: fingerprinter,
		store:         store,
		decoder:       decoder,
		metrics:       metrics,
	}
}

// Resolve fingerprints path and returns cached keychains on a hit. On a miss
// it fetches them once with apiKey and stores them under the fingerprint.
// A failed fetch is returned as ErrKeyResolution and leaves the cache untouched.
// Concurrent misses for the same content share a single fetch.
func (r *KeychainResolver) Resolve(ctx context.Context, path, apiKey string) (domain.Keychains, error) {
	fp, err := r.fingerprinter.Fingerprint(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", perrors.ErrKeyResolution, err)
	}

	// The shared fetch outlives any single caller: each caller only stops waiting
	// when its own context ends. The decoder bounds the fetch with its own timeout.
	fetchCtx := context.WithoutCancel(ctx)
	results := r.group.DoChan(string(fp), func() (any, error) {
		if cached, ok := r.store.Lookup(fp); ok {
			r.log.Debug("Keychain cache hit", "fingerprint", fp.Short())
			r.metrics.KeychainCacheHits.Inc()
			return cached, nil
		}

		r.log.Info("Keychain cache miss, fetching keychains", "fingerprint", fp.Short())
		r.metrics.KeychainCacheMisses.Inc()
		fetched, err := r.decoder.FetchKeychains(fetchCtx, path, apiKey)
		if err != nil {
			r.metrics.KeychainFetchErrors.Inc()
			return nil, fmt.Errorf("%w: %w", perrors.ErrKeyResolution, err)
		}
		r.store.Store(fp, fetched)
		return fetched, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", perrors.ErrKeyResolution, ctx.Err())
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val, nil
	}
}
