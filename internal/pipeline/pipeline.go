package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/simonykma/FuelSaverUK-Data/internal/logger"
	"github.com/simonykma/FuelSaverUK-Data/internal/models"
)

var (
	// ErrNoStations means no fuel type produced any station records.
	ErrNoStations = errors.New("no stations fetched")
	// ErrNoValidStations means every fetched record failed normalization.
	ErrNoValidStations = errors.New("no valid stations after normalization")
)

// TokenAcquirer obtains a bearer token for the prices API.
type TokenAcquirer interface {
	AcquireToken(ctx context.Context) (string, error)
}

// PriceFetcher returns raw station records for one fuel type.
type PriceFetcher interface {
	FetchByFuelType(ctx context.Context, token, fuelType string) ([]models.RawStation, error)
}

// SnapshotWriter persists the final station list.
type SnapshotWriter interface {
	Write(ctx context.Context, stations []models.Station) error
}

// Runner drives one fetch-aggregate-normalize-write pass.
type Runner struct {
	auth       TokenAcquirer
	fetcher    PriceFetcher
	writer     SnapshotWriter
	normalizer *Normalizer
	fuelTypes  []string
	log        *logger.Logger
}

// NewRunner wires the pipeline collaborators together.
func NewRunner(auth TokenAcquirer, fetcher PriceFetcher, writer SnapshotWriter, fuelTypes []string, log *logger.Logger) *Runner {
	return &Runner{
		auth:       auth,
		fetcher:    fetcher,
		writer:     writer,
		normalizer: NewNormalizer(log),
		fuelTypes:  fuelTypes,
		log:        log.WithComponent("pipeline"),
	}
}

// Run executes a single pass. A fetch failure for one fuel type is logged
// and skipped so partial data beats total failure; everything else is fatal
// and surfaces as an error.
func (r *Runner) Run(ctx context.Context) error {
	token, err := r.auth.AcquireToken(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	var raws []models.RawStation
	for _, fuelType := range r.fuelTypes {
		stations, err := r.fetcher.FetchByFuelType(ctx, token, fuelType)
		if err != nil {
			r.log.Errorf("failed to fetch %s prices: %v", fuelType, err)
			continue
		}
		raws = append(raws, stations...)
	}
	if len(raws) == 0 {
		return ErrNoStations
	}

	merged := Aggregate(raws)
	r.log.Infof("aggregated %d station records to %d unique stations", len(raws), len(merged))

	stations := r.normalizer.Normalize(merged)
	if len(stations) == 0 {
		return ErrNoValidStations
	}

	if err := r.writer.Write(ctx, stations); err != nil {
		return err
	}

	r.log.Infof("successfully fetched and saved %d stations", len(stations))
	return nil
}
