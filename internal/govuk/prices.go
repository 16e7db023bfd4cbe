package govuk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/simonykma/FuelSaverUK-Data/internal/models"
)

// pricesResponse is the body of the prices endpoint.
type pricesResponse struct {
	Stations []models.RawStation `json:"stations"`
}

// FetchByFuelType fetches station records carrying prices for one fuel type.
func (c *Client) FetchByFuelType(ctx context.Context, token, fuelType string) ([]models.RawStation, error) {
	url := c.baseURL + c.pricesPath
	c.log.Infof("fetching %s prices from %s", fuelType, url)

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("fuel_type", fuelType).
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s prices: %w", fuelType, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("prices API returned status %d for fuel type %s", resp.StatusCode(), fuelType)
	}

	var data pricesResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("failed to parse prices response: %w", err)
	}

	c.log.Infof("fetched %d stations with %s prices", len(data.Stations), fuelType)
	return data.Stations, nil
}
