package worlddata

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// maxImageBytes caps how much of a remote image is read.
const maxImageBytes = 32 << 20

// Fetch reads and decodes a world image. src is an http(s) URL, a file://
// URL, or a plain file path.
func Fetch(ctx context.Context, src string) (image.Image, error) {
	rc, err := open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(io.LimitReader(rc, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}

func open(ctx context.Context, src string) (io.ReadCloser, error) {
	if src == "" {
		return nil, fmt.Errorf("empty source: %w", ErrUnsupportedSource)
	}

	u, err := url.Parse(src)
	if err != nil || u.Scheme == "" || isDriveLetter(u.Scheme) {
		return openFile(src)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", src, err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: unexpected status %s", src, resp.Status)
		}
		return resp.Body, nil
	case "file":
		return openFile(u.Path)
	}
	return nil, fmt.Errorf("scheme %q: %w", u.Scheme, ErrUnsupportedSource)
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// C:\maps\a.png parses with scheme "c".
func isDriveLetter(scheme string) bool {
	return len(scheme) == 1
}
