// Package main は漢字データインポーターのエントリーポイントです
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kanjidex/backend/internal/importer"
	"kanjidex/backend/internal/store"
)

func main() {
	fileFlag := flag.String("file", "data/kanji.json", "インポートする漢字データのJSONファイルパス")
	flag.Parse()

	log.Println("[Importer] Starting Kanjidex data import...")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("[Importer] DATABASE_URL is not set")
	}

	// Ctrl+Cで中断可能にする
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := store.Open(dsn)
	if err != nil {
		log.Fatalf("[Importer] Failed to open store: %v", err)
	}

	result, err := importer.Run(ctx, st, *fileFlag)
	if err != nil {
		st.Close()
		log.Fatalf("[Importer] Import failed: %v", err)
	}

	if err := st.Close(); err != nil {
		log.Printf("[Importer] Failed to close store: %v", err)
	}

	log.Printf("[Importer] Import completed: deleted=%d, inserted=%d", result.Deleted, result.Inserted)
}
