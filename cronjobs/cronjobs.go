package cronjobs

import (
	"context"
	"log"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"

	"go-greenprint/db"
	"go-greenprint/geocode"
)

// backfillRouteDistances walks every stored inputs row and fills in
// commute routes whose distance is still empty, using the distance
// matrix on the route's from/to addresses. It only touches the inputs
// row; recomputation happens on the user's next save.
func backfillRouteDistances(carbonRepo *db.CarbonRepository) {
	ctx := context.Background()

	inputs, err := carbonRepo.ListEmissionFactors(ctx)
	if err != nil {
		log.Printf("Error listing emission factors for distance backfill: %v", err)
		return
	}

	for _, input := range inputs {
		changed := false
		for i, route := range input.Commute {
			if route.Distance != "" || route.From == "" || route.To == "" {
				continue
			}

			km, err := geocode.RouteDistanceKM(ctx, route.From, route.To)
			if err != nil {
				log.Printf("Error resolving distance for route %s (%s -> %s): %v", route.ID, route.From, route.To, err)
				continue
			}

			input.Commute[i].Distance = strconv.FormatFloat(km, 'f', 2, 64)
			changed = true
		}

		if !changed {
			continue
		}
		if err := carbonRepo.SaveEmissionFactors(ctx, input); err != nil {
			log.Printf("Error saving backfilled distances for %s: %v", input.UserID, err)
			continue
		}
		log.Printf("Backfilled commute distances for %s", input.UserID)
	}
}

func InitCronJobs(firestoreClient *firestore.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	carbonRepo := db.NewCarbonRepository(firestoreClient)

	// Distance backfill: run every 30 minutes.
	_, err := c.AddFunc("*/30 * * * *", func() {
		log.Println("\nCronJob: Commute Distance Backfill Running")
		backfillRouteDistances(carbonRepo)
	})
	if err != nil {
		log.Println("Error scheduling Commute Distance Backfill:", err)
	}

	c.Start()
}
