package edgeapi

import (
	"context"
	"net/url"

	"github.com/edgetools/akaget/pkg/jsonutil"
	"github.com/edgetools/akaget/pkg/ruletree"
)

const productionStatusActive = "ACTIVE"

// PropertyByHostname finds the property version serving hostname in
// production. It returns the first ACTIVE version entry, or nil when the
// hostname does not resolve to one. With a cache configured, a cached
// entry short-circuits the API call.
func (c *Client) PropertyByHostname(ctx context.Context, hostname string) (map[string]any, error) {
	cacheName := "property/" + hostname
	if c.cache != nil {
		var cached map[string]any
		found, err := c.cache.Load(cacheName, &cached)
		if err != nil {
			return nil, err
		}
		if found {
			c.log.Debug().Str("hostname", hostname).Msg("property cache hit")
			return cached, nil
		}
	}

	doc, err := c.postJSON(ctx, "/papi/v1/search/find-by-value", nil, map[string]string{"hostname": hostname})
	if err != nil {
		return nil, err
	}
	items, _ := jsonutil.GetValuesByPath(doc, "$.versions.items[*]")
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if jsonutil.CoerceString(entry["productionStatus"]) == productionStatusActive {
			if c.cache != nil {
				if err := c.cache.Dump(cacheName, entry); err != nil {
					return nil, err
				}
			}
			return entry, nil
		}
	}
	return nil, nil
}

// PropertyRules fetches the full rule tree of the production version
// serving hostname. Nil when the hostname has no active property.
func (c *Client) PropertyRules(ctx context.Context, hostname string) (map[string]any, error) {
	property, err := c.PropertyByHostname(ctx, hostname)
	if err != nil || property == nil {
		return nil, err
	}
	propertyID := jsonutil.CoerceString(property["propertyId"])
	version, _ := jsonutil.CoerceScalar(property["propertyVersion"])

	params := url.Values{}
	params.Set("contractId", jsonutil.CoerceString(property["contractId"]))
	params.Set("groupId", jsonutil.CoerceString(property["groupId"]))
	params.Set("validateMode", "fast")
	params.Set("validateRules", "false")
	endpoint := "/papi/v1/properties/" + url.PathEscape(propertyID) + "/versions/" + url.PathEscape(version) + "/rules"
	return c.getJSON(ctx, endpoint, params)
}

// Origins returns the origin behaviors of the hostname's production rule
// tree in document order. Nil when the hostname has no active property.
func (c *Client) Origins(ctx context.Context, hostname string) ([]ruletree.Behavior, error) {
	rules, err := c.PropertyRules(ctx, hostname)
	if err != nil || rules == nil {
		return nil, err
	}
	idx, err := ruletree.FlattenDocument(rules)
	if err != nil {
		return nil, err
	}
	return idx.Origins(), nil
}
