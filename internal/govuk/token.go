package govuk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ErrNoToken is returned when a token endpoint answers 200 but the body
// carries no access token.
var ErrNoToken = errors.New("no access token in response")

// tokenResponse covers both shapes the token endpoint has been seen
// returning: a {success, data} envelope and a bare OAuth payload.
type tokenResponse struct {
	Success bool `json:"success"`
	Data    struct {
		AccessToken string `json:"access_token"`
	} `json:"data"`
	AccessToken string `json:"access_token"`
}

// AcquireToken obtains an OAuth 2.0 access token using client credentials.
// Each configured token path is probed with a JSON body, then a
// form-urlencoded client-credentials grant, then HTTP basic auth, because
// the API documentation disagrees with itself about which one is correct.
// The first 2xx response wins.
func (c *Client) AcquireToken(ctx context.Context) (string, error) {
	attempts := []struct {
		name string
		do   func(ctx context.Context, url string) (*resty.Response, error)
	}{
		{"JSON", c.tokenRequestJSON},
		{"form-urlencoded", c.tokenRequestForm},
		{"basic auth", c.tokenRequestBasicAuth},
	}

	var lastErr error
	for _, path := range c.tokenPaths {
		url := c.baseURL + path
		c.log.Infof("trying token endpoint: %s", url)

		for _, attempt := range attempts {
			resp, err := attempt.do(ctx, url)
			if err != nil {
				c.log.Warnf("%s request failed for %s: %v", attempt.name, path, err)
				lastErr = err
				continue
			}
			if !resp.IsSuccess() {
				c.log.Warnf("%s request returned %d at %s", attempt.name, resp.StatusCode(), path)
				continue
			}

			token, err := extractToken(resp.Body())
			if err != nil {
				return "", err
			}
			c.log.Infof("obtained access token with %s format at %s", attempt.name, path)
			return token, nil
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("all token endpoints failed: %w", lastErr)
	}
	return "", errors.New("all token endpoints failed: every endpoint rejected the credentials")
}

func (c *Client) tokenRequestJSON(ctx context.Context, url string) (*resty.Response, error) {
	return c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
		}).
		Post(url)
}

func (c *Client) tokenRequestForm(ctx context.Context, url string) (*resty.Response, error) {
	return c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
			"scope":         "fuelfinder.read",
		}).
		Post(url)
}

func (c *Client) tokenRequestBasicAuth(ctx context.Context, url string) (*resty.Response, error) {
	return c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.clientID, c.clientSecret).
		SetFormData(map[string]string{
			"grant_type": "client_credentials",
			"scope":      "fuelfinder.read",
		}).
		Post(url)
}

// extractToken pulls the access token out of a token endpoint response body.
func extractToken(body []byte) (string, error) {
	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	token := tr.AccessToken
	if tr.Success && tr.Data.AccessToken != "" {
		token = tr.Data.AccessToken
	}
	if token == "" {
		return "", fmt.Errorf("%w: %s", ErrNoToken, string(body))
	}
	return token, nil
}
