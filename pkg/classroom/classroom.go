// Package classroom holds the coordinates of the Google Classroom REST API and
// a client placeholder that pairs them with a codec. It performs no network
// I/O.
package classroom

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/randomairborne/google-classroom/pkg/codec"
)

const (
	// APIVersion is the major version of the REST API the models describe.
	APIVersion = 1
	// ServiceEndpoint is the public API host.
	ServiceEndpoint = "https://classroom.googleapis.com"
)

// Options configure a Client. Zero values fall back to the package
// constants and a default codec.
type Options struct {
	Endpoint string
	Version  int
	Codec    *codec.Codec
}

// Client carries what a transport would need to reach the API.
type Client struct {
	endpoint *url.URL
	version  int
	codec    *codec.Codec
}

// NewClient validates the endpoint and builds a Client.
func NewClient(opts Options) (*Client, error) {
	raw := opts.Endpoint
	if raw == "" {
		raw = ServiceEndpoint
	}
	endpoint, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("endpoint %q must be an absolute URL", raw)
	}

	version := opts.Version
	if version == 0 {
		version = APIVersion
	}
	if version < 0 {
		return nil, fmt.Errorf("invalid API version %d", version)
	}

	c := opts.Codec
	if c == nil {
		c = codec.New(codec.Config{})
	}
	return &Client{endpoint: endpoint, version: version, codec: c}, nil
}

// Endpoint returns the API host.
func (c *Client) Endpoint() string { return c.endpoint.String() }

// Version returns the API major version.
func (c *Client) Version() int { return c.version }

// Codec returns the codec requests and responses go through.
func (c *Client) Codec() *codec.Codec { return c.codec }

// ResourceURL joins path segments under the versioned API root, escaping each
// segment, e.g. ResourceURL("courses", "d:math", "topics").
func (c *Client) ResourceURL(segments ...string) string {
	plain := make([]string, 0, len(segments)+1)
	escaped := make([]string, 0, len(segments)+1)
	root := fmt.Sprintf("v%d", c.version)
	plain = append(plain, root)
	escaped = append(escaped, root)
	for _, s := range segments {
		plain = append(plain, s)
		escaped = append(escaped, url.PathEscape(s))
	}

	u := *c.endpoint
	base := strings.TrimRight(u.Path, "/")
	u.Path = base + "/" + strings.Join(plain, "/")
	u.RawPath = base + "/" + strings.Join(escaped, "/")
	return u.String()
}
