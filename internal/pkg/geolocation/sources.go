package geolocation

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"partner/internal/entities"
)

// Static устройство без движения: одна и та же точка раз в period.
// Первый замер отдаётся сразу.
type Static struct {
	pos    entities.Coordinates
	period time.Duration
	first  bool
}

func NewStatic(pos entities.Coordinates, period time.Duration) *Static {
	return &Static{pos: pos, period: period, first: true}
}

func (s *Static) Next(ctx context.Context) (entities.Coordinates, error) {
	if s.first {
		s.first = false
		return s.pos, nil
	}

	timer := time.NewTimer(s.period)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return entities.Coordinates{}, ctx.Err()
	case <-timer.C:
		return s.pos, nil
	}
}

// Unsupported источник для устройств без геолокации.
type Unsupported struct{}

func (Unsupported) Next(context.Context) (entities.Coordinates, error) {
	return entities.Coordinates{}, ErrUnsupported
}

// Track проигрывает записанный маршрут: NDJSON со строками {"lat":..,"lng":..}.
// Конец файла означает, что позиция больше недоступна.
type Track struct {
	scanner *bufio.Scanner
	closer  io.Closer
	period  time.Duration
	first   bool
}

func OpenTrack(path string, period time.Duration) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
		default:
			return nil, fmt.Errorf("open track: %w", err)
		}
	}
	return NewTrack(f, period), nil
}

func NewTrack(r io.Reader, period time.Duration) *Track {
	t := &Track{
		scanner: bufio.NewScanner(r),
		period:  period,
		first:   true,
	}
	if c, ok := r.(io.Closer); ok {
		t.closer = c
	}
	return t
}

func (t *Track) Next(ctx context.Context) (entities.Coordinates, error) {
	if !t.first {
		timer := time.NewTimer(t.period)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return entities.Coordinates{}, ctx.Err()
		case <-timer.C:
		}
	}
	t.first = false

	for t.scanner.Scan() {
		line := strings.TrimSpace(t.scanner.Text())
		if line == "" {
			continue
		}

		var sample struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		}
		if err := json.Unmarshal([]byte(line), &sample); err != nil {
			return entities.Coordinates{}, fmt.Errorf("%w: %w", ErrPositionUnavailable, err)
		}
		if sample.Lat == nil || sample.Lng == nil {
			return entities.Coordinates{}, fmt.Errorf("%w: sample without lat/lng", ErrPositionUnavailable)
		}
		return entities.Coordinates{Lat: *sample.Lat, Lng: *sample.Lng}, nil
	}

	if err := t.scanner.Err(); err != nil {
		return entities.Coordinates{}, fmt.Errorf("%w: %w", ErrPositionUnavailable, err)
	}
	return entities.Coordinates{}, ErrPositionUnavailable
}

func (t *Track) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}
