package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-greenprint/classify"
	"go-greenprint/cronjobs"
	"go-greenprint/db"
	"go-greenprint/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// Natural Language client for activity classification
	langClient, err := classify.InitLanguageClient()
	if err != nil {
		log.Fatalf("Failed to initialize Natural Language client: %v", err)
	}
	defer classify.CloseLanguageClient()

	// The model-assisted estimate path is optional; without a key the
	// calculator handles everything locally.
	var aiClient *openai.Client
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
		aiClient = openai.NewClient(apiKey)
	}

	// Initialize cron jobs
	cronjobs.InitCronJobs(firestoreClient)

	r := routes.SetupRouter(firestoreClient, langClient, aiClient)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
