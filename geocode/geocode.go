package geocode

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"googlemaps.github.io/maps"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	var err error
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			err = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, err = maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.Fatalf("Failed to create maps client: %v", err)
		}
	})
	return mapsClient, err
}

// RouteDistanceKM returns the driving distance between two addresses in
// kilometers, using the first origin/destination pairing the Distance
// Matrix API returns.
func RouteDistanceKM(ctx context.Context, from, to string) (float64, error) {
	client, err := InitMapsClient()
	if err != nil {
		return 0, err
	}

	req := &maps.DistanceMatrixRequest{
		Origins:      []string{from},
		Destinations: []string{to},
	}

	resp, err := client.DistanceMatrix(ctx, req)
	if err != nil {
		return 0, err
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("no distance matrix result for %q -> %q", from, to)
	}
	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("distance matrix status %s for %q -> %q", element.Status, from, to)
	}

	return float64(element.Distance.Meters) / 1000.0, nil
}
