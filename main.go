package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"microblog/app/repositories"
	"microblog/app/routes"
)

const cliVersion = "1.0.0"

const defaultDBPath = "data/microblog.db"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("microblog version %s\n", cliVersion)
	case "serve":
		serve(os.Args[2:])
	case "db":
		handleDBCommand(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: microblog <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [--addr :8080] [--db path]
                                 Run the blog API server.
  db init  [--db path]           Create the database schema.
  db clean [--db path]           Drop all rows from the database.
`
	fmt.Println(helpText)
}

// serve opens the store, wires the router, and runs the HTTP server
// until SIGINT/SIGTERM, then shuts down and releases the store.
func serve(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "listen address")
	dbPath := fs.String("db", defaultDBPath, "SQLite database path")
	fs.Parse(args)

	store := openStore(*dbPath)

	router := routes.SetupRoutes(store)
	server := &http.Server{Addr: *addr, Handler: router}

	go func() {
		log.Printf("Starting blog API on %s", *addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Printf("Failed to close store: %v", err)
	}
}

// handleDBCommand handles db subcommands
func handleDBCommand(args []string) {
	if len(args) < 1 {
		fmt.Println("Error: db subcommand required (init or clean)")
		os.Exit(1)
	}

	fs := flag.NewFlagSet("db", flag.ExitOnError)
	dbPath := fs.String("db", defaultDBPath, "SQLite database path")
	fs.Parse(args[1:])

	switch args[0] {
	case "init":
		// Opening the store bootstraps the schema.
		store := openStore(*dbPath)
		if err := store.Close(); err != nil {
			log.Fatalf("Failed to close store: %v", err)
		}
		log.Printf("Database initialized at %s", *dbPath)
	case "clean":
		store := openStore(*dbPath)
		if err := store.Clear(); err != nil {
			log.Fatalf("Failed to clean database: %v", err)
		}
		if err := store.Close(); err != nil {
			log.Fatalf("Failed to close store: %v", err)
		}
		log.Printf("Database cleaned at %s", *dbPath)
	default:
		fmt.Printf("Unknown db subcommand: %s\n", args[0])
		os.Exit(1)
	}
}

func openStore(path string) *repositories.Store {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}
	}
	store, err := repositories.Open(path)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	return store
}
