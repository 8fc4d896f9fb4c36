package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"barangay_bis/internal/config"
	"barangay_bis/internal/logger"
	"barangay_bis/internal/middleware"
	"barangay_bis/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Signature uploads land here
	if err := os.MkdirAll(filepath.Join(config.UploadDir(), "signatures"), 0o755); err != nil {
		log.Fatalf("could not create upload directory: %v", err)
	}

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("🚀 Server running at :" + port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
