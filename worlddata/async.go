package worlddata

import (
	"context"
	"fmt"
	"time"
)

// LoadBitmap fetches src and scans it into a layout.
func LoadBitmap(ctx context.Context, src string, scale float64) (*Layout, error) {
	img, err := Fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	layout, err := FromBitmap(src, img, scale)
	if err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("bitmap %s: %w", src, err)
	}
	return layout, nil
}

// LoadAsync runs LoadBitmap on its own goroutine. The returned channel
// receives exactly one Result and is then closed, so the caller can poll it
// once per frame without blocking.
func LoadAsync(ctx context.Context, src string, scale float64) <-chan Result {
	return loadAsync(ctx, func() {}, src, scale)
}

// LoadAsyncTimeout is LoadAsync with a deadline of its own. A timeout
// arrives on the channel as an ordinary error.
func LoadAsyncTimeout(src string, scale float64, timeout time.Duration) <-chan Result {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	return loadAsync(ctx, cancel, src, scale)
}

func loadAsync(ctx context.Context, done func(), src string, scale float64) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		defer done()
		layout, err := LoadBitmap(ctx, src, scale)
		ch <- Result{Layout: layout, Err: err}
	}()
	return ch
}

// Ready returns a channel that already holds layout. Synchronous sources
// (default, Tiled) go through the same Loading to Ready path as bitmaps.
func Ready(layout *Layout, err error) <-chan Result {
	ch := make(chan Result, 1)
	ch <- Result{Layout: layout, Err: err}
	close(ch)
	return ch
}
