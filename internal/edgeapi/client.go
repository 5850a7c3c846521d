// Package edgeapi is the client for the Akamai diagnostic-tools and
// property (PAPI) endpoints. Request signing and retry are delegated to
// the injected collaborators; this package only builds paths, issues
// sequential calls and decodes the JSON documents that come back.
package edgeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/akamai/AkamaiOPEN-edgegrid-golang/v9/pkg/edgegrid"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"

	"github.com/edgetools/akaget/internal/cache"
	"github.com/edgetools/akaget/pkg/httpclient"
)

// Signer attaches an EdgeGrid signature to an outgoing request. It is
// satisfied by *edgegrid.Config and treated as a black box here.
type Signer interface {
	SignRequest(r *http.Request)
}

// Options configures a Client. EdgercPath and Section select the
// credential profile; Account, when set, is added to every request as
// the accountSwitchKey query parameter.
type Options struct {
	EdgercPath string
	Section    string
	Account    string

	// HTTPClient defaults to the retrying client from pkg/httpclient.
	HTTPClient httpclient.HTTPDoer
	// Cache, when non-nil, is consulted before property lookups.
	Cache *cache.Store
	// Logger defaults to a no-op logger.
	Logger zerolog.Logger
}

// Client issues signed, sequential API calls. It holds no mutable state
// across calls and is not meant for concurrent use.
type Client struct {
	baseURL string
	account string
	signer  Signer
	http    httpclient.HTTPDoer
	cache   *cache.Store
	log     zerolog.Logger
}

// New reads the edgerc profile, builds the signer and returns a ready
// client. The profile's host value becomes the base URL.
func New(opts Options) (*Client, error) {
	path, err := homedir.Expand(os.ExpandEnv(strings.TrimSpace(opts.EdgercPath)))
	if err != nil {
		return nil, fmt.Errorf("resolve edgerc path %q: %w", opts.EdgercPath, err)
	}
	rc, err := edgegrid.New(
		edgegrid.WithFile(path),
		edgegrid.WithSection(opts.Section),
	)
	if err != nil {
		return nil, fmt.Errorf("load edgerc %q section %q: %w", path, opts.Section, err)
	}
	doer := opts.HTTPClient
	if doer == nil {
		doer = httpclient.NewRetrying()
	}
	return &Client{
		baseURL: "https://" + rc.Host,
		account: strings.TrimSpace(opts.Account),
		signer:  rc,
		http:    doer,
		cache:   opts.Cache,
		log:     opts.Logger,
	}, nil
}

// apiURL joins the base URL, endpoint and query parameters. The account
// switch key rides along on every request when configured. Endpoints
// that already carry a query string are passed through untouched, same
// as the upstream path builder this mirrors.
func (c *Client) apiURL(endpoint string, params url.Values) string {
	if c.account != "" {
		if params == nil {
			params = url.Values{}
		}
		params.Set("accountSwitchKey", c.account)
	}
	u := c.baseURL + endpoint
	if len(params) > 0 && !strings.Contains(endpoint, "?") {
		u += "?" + params.Encode()
	}
	c.log.Debug().Str("url", u).Msg("api path")
	return u
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values) (map[string]any, error) {
	return c.doJSON(ctx, http.MethodGet, endpoint, params, nil)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, params url.Values, body any) (map[string]any, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body for %s: %w", endpoint, err)
	}
	return c.doJSON(ctx, http.MethodPost, endpoint, params, b)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, params url.Values, body []byte) (map[string]any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	reqURL := c.apiURL(endpoint, params)
	var rdr io.Reader = http.NoBody
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.signer.SignRequest(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, reqURL, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response of %s %s: %w", method, reqURL, err)
	}
	c.log.Debug().Int("status", resp.StatusCode).Str("url", reqURL).Msg("api response")
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request %s %s failed: status=%d body=%s", method, reqURL, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode response of %s %s: %w", method, reqURL, err)
	}
	return doc, nil
}
