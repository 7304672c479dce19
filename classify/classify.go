package classify

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"
)

// languageClient is a singleton language client instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
)

// initializes and returns a language client.
func InitLanguageClient() (*language.Client, error) {
	var err error

	clientOnce.Do(func() {
		// Decode credentials
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			log.Fatalf("Failed to decode Natural Language credentials: %v", err)
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, err = language.NewClient(context.Background(), opt)
		if err != nil {
			log.Fatalf("Failed to create Natural Language client: %v", err)
		}
	})

	return languageClient, err
}

func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}

// SuggestCategory classifies a free-text activity description and maps
// the Cloud Natural Language content category onto one of the app's
// spending categories. Unrecognized descriptions land in "other".
func SuggestCategory(client *language.Client, description string) (string, error) {
	ctx := context.Background()
	req := &languagepb.ClassifyTextRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: description,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
	}

	resp, err := client.ClassifyText(ctx, req)
	if err != nil {
		return "", fmt.Errorf("ClassifyText error: %w", err)
	}

	if len(resp.Categories) == 0 {
		return "other", nil
	}

	// Categories come back sorted by confidence; map the top one.
	return mapContentCategory(resp.Categories[0].Name), nil
}

// mapContentCategory translates a Cloud Natural Language content
// category path into one of the app's spending categories.
func mapContentCategory(name string) string {
	switch {
	case strings.HasPrefix(name, "/Food & Drink"):
		return "food_and_drink"
	case strings.HasPrefix(name, "/Computers & Electronics"):
		return "computers_it_equipment"
	case strings.HasPrefix(name, "/Health"):
		return "pharmaceuticals"
	case strings.Contains(name, "Apparel"):
		return "clothes_textiles_shoes"
	case strings.HasPrefix(name, "/Arts & Entertainment"):
		return "recreational_cultural_sports"
	case strings.HasPrefix(name, "/Travel"):
		return "hotels_restaurants_pubs"
	case strings.HasPrefix(name, "/Internet & Telecom"):
		return "telecoms"
	case strings.HasPrefix(name, "/Home & Garden"):
		return "furniture_other_goods"
	case strings.HasPrefix(name, "/Autos & Vehicles"):
		return "vehicles"
	default:
		return "other"
	}
}
