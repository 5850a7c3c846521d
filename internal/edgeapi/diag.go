package edgeapi

import (
	"context"
	"html"
	"net/url"
	"strings"
)

// URLDebug runs the edge debug trace for an accelerated URL and returns
// the raw result document.
func (c *Client) URLDebug(ctx context.Context, target string) (map[string]any, error) {
	params := url.Values{}
	params.Set("url", target)
	return c.getJSON(ctx, "/diagnostic-tools/v2/url-debug", params)
}

// TranslateReference resolves an error reference to its translated
// description. References pasted from error pages are often HTML-escaped
// and carry the code behind a '#' fragment; only the fragment is sent.
func (c *Client) TranslateReference(ctx context.Context, reference string) (map[string]any, error) {
	code := html.UnescapeString(reference)
	if strings.Contains(code, "#") {
		code = strings.Split(code, "#")[1]
	}
	return c.getJSON(ctx, "/diagnostic-tools/v2/errors/"+url.PathEscape(code)+"/translated-error", nil)
}

// EStats returns edge error statistics for a URL.
func (c *Client) EStats(ctx context.Context, target string) (map[string]any, error) {
	params := url.Values{}
	params.Set("url", target)
	return c.getJSON(ctx, "/diagnostic-tools/v2/estat", params)
}

// CPStats returns edge error statistics for a CP code.
func (c *Client) CPStats(ctx context.Context, cpcode string) (map[string]any, error) {
	return c.getJSON(ctx, "/diagnostic-tools/v2/cpcodes/"+url.PathEscape(cpcode)+"/estats", nil)
}
