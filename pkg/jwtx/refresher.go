package jwtx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// KeySetRefresher keeps a KeySet in sync with the auth service's
// /.well-known/jwks.json so rotated signing keys are picked up without a
// restart.
type KeySetRefresher struct {
	Keys       *KeySet
	URL        string
	Interval   time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewKeySetRefresher creates a refresher. If interval is 0 or negative it
// defaults to 15 minutes.
func NewKeySetRefresher(keys *KeySet, url string, interval time.Duration, logger *slog.Logger) *KeySetRefresher {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &KeySetRefresher{
		Keys:       keys,
		URL:        url,
		Interval:   interval,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Logger:     logger,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Refresh fetches the JWKS once and swaps it into the KeySet.
func (r *KeySetRefresher) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("failed to fetch jwks: unexpected status %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&jwks); err != nil {
		return fmt.Errorf("failed to decode jwks: %w", err)
	}
	if len(jwks.Keys) == 0 {
		return errors.New("jwtx: jwks contains no keys")
	}

	return r.Keys.ResetFromJWKS(jwks)
}

// Start performs an initial refresh and then refreshes on every tick in the
// background. The initial error is returned so callers can decide whether a
// cold start without keys is fatal. Call Stop() to shut the worker down.
func (r *KeySetRefresher) Start(ctx context.Context) error {
	err := r.Refresh(ctx)
	if err != nil {
		r.Logger.Warn("initial jwks fetch failed", "url", r.URL, "error", err)
	}

	go r.run()
	r.Logger.Info("jwks refresher started", "url", r.URL, "interval", r.Interval)
	return err
}

// Stop gracefully shuts down the background worker.
func (r *KeySetRefresher) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("jwks refresher stopped")
}

func (r *KeySetRefresher) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.HTTPClient.Timeout)
			if err := r.Refresh(ctx); err != nil {
				// keep serving with the previous keys
				r.Logger.Error("jwks refresh failed", "error", err)
			} else {
				r.Logger.Debug("jwks refreshed", "keys", len(r.Keys.Snapshot().Keys))
			}
			cancel()
		case <-r.stopCh:
			return
		}
	}
}

// LoadJWKSJSON parses an inline JWKS document, used when the key set is
// provided through configuration instead of fetched.
func LoadJWKSJSON(keys *KeySet, raw string) error {
	var jwks JWKS
	if err := json.Unmarshal([]byte(raw), &jwks); err != nil {
		return fmt.Errorf("failed to decode jwks: %w", err)
	}
	return keys.ResetFromJWKS(jwks)
}
