package analyzer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/vmihailenco/msgpack/v5"
)

// Cache stores msgpack encoded results keyed by fingerprint
type Cache struct {
	fs      afs.Service
	baseURL string
}

// NewCache creates a result cache under baseURL
func NewCache(baseURL string) *Cache {
	return &Cache{fs: afs.New(), baseURL: baseURL}
}

// URL returns cache entry location
func (c *Cache) URL(fingerprint uint64) string {
	return url.Join(c.baseURL, fmt.Sprintf("%016x.msgpack", fingerprint))
}

// Get returns cached result or nil if there is no entry
func (c *Cache) Get(ctx context.Context, fingerprint uint64) (*Result, error) {
	URL := c.URL(fingerprint)
	if ok, _ := c.fs.Exists(ctx, URL); !ok {
		return nil, nil
	}
	data, err := c.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, err
	}
	result := &Result{}
	if err = msgpack.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", URL, err)
	}
	if result.Fingerprint != fingerprint {
		return nil, nil
	}
	return result, nil
}

// Put stores result under its fingerprint
func (c *Cache) Put(ctx context.Context, result *Result) error {
	data, err := msgpack.Marshal(result)
	if err != nil {
		return err
	}
	return c.fs.Upload(ctx, c.URL(result.Fingerprint), 0o644, bytes.NewReader(data))
}
