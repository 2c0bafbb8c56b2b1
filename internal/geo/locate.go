package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LocateTimeout bounds the device location lookup. A lookup that has not
// resolved by then yields "no location" rather than blocking the views.
const LocateTimeout = 10 * time.Second

// LocatorConfig controls how the device position is resolved.
type LocatorConfig struct {
	// Fixed pins the position without any network lookup.
	Fixed *Point

	// Endpoint is an IP geolocation service returning {"lat":..,"lon":..}.
	// Empty disables the lookup.
	Endpoint string
}

// Locator resolves an approximate device position.
type Locator struct {
	cfg    LocatorConfig
	client *http.Client
	logger *zap.Logger
}

// NewLocator creates a locator with the lookup timeout baked into its
// HTTP client.
func NewLocator(cfg LocatorConfig, logger *zap.Logger) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{
		cfg:    cfg,
		client: &http.Client{Timeout: LocateTimeout},
		logger: logger,
	}
}

// Locate returns the device position, or nil when it cannot be determined.
// Failure to locate is not an error condition for callers: every view that
// takes a position also renders without one.
func (l *Locator) Locate(ctx context.Context) *Point {
	if l.cfg.Fixed != nil {
		return &Point{Lat: l.cfg.Fixed.Lat, Lon: l.cfg.Fixed.Lon}
	}
	if l.cfg.Endpoint == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, LocateTimeout)
	defer cancel()

	p, err := l.lookup(ctx)
	if err != nil {
		l.logger.Debug("location lookup failed", zap.Error(err))
		return nil
	}
	return p
}

func (l *Locator) lookup(ctx context.Context) (*Point, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation returned status %d", resp.StatusCode)
	}

	var body struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}
	if body.Lat == 0 && body.Lon == 0 {
		return nil, fmt.Errorf("geolocation response missing coordinates")
	}
	return &Point{Lat: body.Lat, Lon: body.Lon}, nil
}
