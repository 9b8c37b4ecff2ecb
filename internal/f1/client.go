// Package f1 retrieves session, lap and car telemetry data from an F1
// live-timing REST API and exposes it as immutable value records.
package f1

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://api.openf1.org/v1"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	cache *Cache
}

// NewClient builds an API client. cache may be nil, in which case every call
// goes to the network.
func NewClient(baseURL string, cache *Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: time.Second * 30,
		},
		cache: cache,
	}
}

// get fetches path?query and decodes the JSON response into out, consulting
// the response cache first.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	requestURL := fmt.Sprintf("%s/%s?%s", c.BaseURL, path, query.Encode())
	cacheKey := fmt.Sprintf("%s?%s", path, query.Encode())

	if c.cache != nil {
		if data, ok := c.cache.Get(cacheKey); ok {
			logrus.Debugf("Cache hit for %s (%s)", cacheKey, humanize.Bytes(uint64(len(data))))

			return errors.Wrapf(json.Unmarshal(data, out), "could not decode cached response for %s", cacheKey)
		}
	}

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)

	if err != nil {
		return errors.Wrapf(err, "could not build request for %s", path)
	}

	req = req.WithContext(ctx)

	resp, err := c.HTTPClient.Do(req)

	if err != nil {
		return errors.Wrapf(err, "could not fetch %s", path)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d fetching %s", resp.StatusCode, requestURL)
	}

	data, err := ioutil.ReadAll(resp.Body)

	if err != nil {
		return errors.Wrapf(err, "could not read response for %s", path)
	}

	logrus.Debugf("Fetched %s (%s)", requestURL, humanize.Bytes(uint64(len(data))))

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "could not decode response for %s", path)
	}

	if c.cache != nil {
		c.cache.Put(cacheKey, data)
	}

	return nil
}
