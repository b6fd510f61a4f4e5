package main

import (
	"flag"
	"log"

	"garden-planner-backend/internal/companion"
	"garden-planner-backend/internal/config"
	"garden-planner-backend/internal/database"
	"garden-planner-backend/internal/repository"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

// Replaces the companion_edges table with the contents of a dataset file.
//
//	go run ./scripts/load_companions.go -file data/companions.json
func main() {
	file := flag.String("file", "", "dataset file (.json, .csv, .yaml); defaults to COMPANION_DATASET_PATH")
	verbose := flag.Bool("verbose", false, "log SQL statements")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	path := *file
	if path == "" {
		path = cfg.CompanionDatasetPath
	}

	edges, err := companion.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}
	_, stats := companion.NewGraph(edges)
	log.Printf("Read %d edges (%d would be skipped, %d plants)", len(edges), stats.Skipped, stats.Plants)

	opts := &database.Options{LogLevel: logger.Silent}
	if *verbose {
		opts.LogLevel = logger.Info
	}
	db, err := database.Initialize(cfg.DatabaseURL, opts)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repository.NewCompanionEdgeRepository(db)
	if err := repo.ReplaceAll(companion.ToModels(edges)); err != nil {
		log.Fatalf("Failed to store companion edges: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		log.Fatalf("Failed to count companion edges: %v", err)
	}
	log.Printf("companion_edges now holds %d rows", count)
}
