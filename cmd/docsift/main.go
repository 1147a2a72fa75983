package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/docsift/docsift/api"
	"github.com/docsift/docsift/config"
	"github.com/docsift/docsift/internal/engine"
	internalErrors "github.com/docsift/docsift/internal/errors"
	"github.com/docsift/docsift/internal/loader"
)

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.Int("port", 0, "Port to run the server on (overrides config file)")
		dataDir    = flag.String("data-dir", "", "Directory to store index data (overrides config file)")
		configPath = flag.String("config", "", "Path to a YAML server configuration file")
		corpusDir  = flag.String("corpus-dir", "", "Folder of .txt files to index at startup")
		indexName  = flag.String("index-name", "corpus", "Index to load the startup corpus into")
	)

	flag.Parse()

	if *help {
		fmt.Printf("docsift - a TF-IDF document retrieval engine\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                                # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                    # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --corpus-dir ./records         # Index a folder of .txt files at startup\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("docsift v1.0.0\n")
		return
	}

	cfg := config.DefaultServerConfig()
	if *configPath != "" {
		loaded, err := config.LoadServerConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	log.Printf("Using data directory: %s", cfg.DataDir)
	searchEngine := engine.NewEngine(cfg.DataDir)

	if *corpusDir != "" {
		if err := bootstrapCorpus(searchEngine, *corpusDir, *indexName); err != nil {
			log.Fatalf("Failed to load startup corpus: %v", err)
		}
	}

	router := gin.Default()
	api.SetupRoutes(router, searchEngine)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeout),
		WriteTimeout: time.Duration(cfg.WriteTimeout),
	}

	log.Printf("Starting server on port %d...", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// bootstrapCorpus loads a folder of .txt files into the named index,
// creating the index if it does not exist yet. Documents already present
// (from a previous run's persisted state) are kept as they are.
func bootstrapCorpus(searchEngine *engine.Engine, corpusDir, indexName string) error {
	docs, err := loader.LoadTextCorpus(corpusDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		log.Printf("Warning: no .txt files found in %s; nothing to index.", corpusDir)
		return nil
	}

	err = searchEngine.CreateIndex(config.IndexSettings{Name: indexName})
	if err != nil && !errors.Is(err, internalErrors.ErrIndexAlreadyExists) {
		return err
	}

	accessor, err := searchEngine.GetIndex(indexName)
	if err != nil {
		return err
	}
	if accessor.DocumentCount() > 0 {
		log.Printf("Index '%s' already holds %d documents; skipping corpus load.", indexName, accessor.DocumentCount())
		return nil
	}

	if err := accessor.AddDocuments(docs); err != nil {
		return err
	}
	if err := searchEngine.PersistIndexData(indexName); err != nil {
		return err
	}
	log.Printf("Indexed %d documents from %s into '%s'.", len(docs), corpusDir, indexName)
	return nil
}
