package stac

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/ohler55/ojg/oj"
)

// Fetcher retrieves JSON documents from http(s) URLs, s3:// URIs, or
// plain filesystem paths. It keeps no cache: every call re-fetches.
type Fetcher struct {
	Client *http.Client
}

// NewFetcher returns a Fetcher using the default HTTP client.
func NewFetcher() *Fetcher {
	return &Fetcher{Client: http.DefaultClient}
}

// Fetch retrieves the document at location and decodes it into v.
func (f *Fetcher) Fetch(ctx context.Context, location string, v any) error {
	data, err := f.read(ctx, location)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", location, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", location, err)
	}
	return nil
}

// FetchRaw retrieves the document at location as untyped JSON, for
// ad-hoc inspection (JSONPath queries).
func (f *Fetcher) FetchRaw(ctx context.Context, location string) (any, error) {
	data, err := f.read(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", location, err)
	}
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", location, err)
	}
	return doc, nil
}

func (f *Fetcher) read(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return f.readHTTP(ctx, location)
		case "s3":
			return f.readS3(ctx, u)
		}
	}
	return os.ReadFile(location)
}

func (f *Fetcher) readHTTP(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// readS3 fetches s3://bucket/key. The endpoint comes from S3_ENDPOINT
// (default AWS); credentials from the usual AWS environment variables,
// falling back to anonymous access for public buckets.
func (f *Fetcher) readS3(ctx context.Context, u *url.URL) ([]byte, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	if endpoint == "" {
		endpoint = "s3.amazonaws.com"
	}
	secure := true
	if strings.HasPrefix(endpoint, "http://") {
		secure = false
	}
	endpoint = strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewEnvAWS(),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	obj, err := client.GetObject(ctx, u.Host, strings.TrimPrefix(u.Path, "/"), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// ResolveLocation resolves ref against the location of its containing
// document. Absolute references are returned unchanged; relative ones
// resolve against base (a URL or a filesystem path), never against the
// working directory.
func ResolveLocation(base, ref string) string {
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if refURL.IsAbs() {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return filepath.Join(filepath.Dir(base), filepath.FromSlash(ref))
	}
	return baseURL.ResolveReference(refURL).String()
}
