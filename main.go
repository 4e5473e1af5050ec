package main

import (
	"fmt"
	"os"

	"github.com/mvoskres/postroom/internal/config"
	"github.com/mvoskres/postroom/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("postroom %s (%s)\n", Version, Commit)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("postroom - community board backend")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  postroom [serve]   Start the HTTP server (default)")
	fmt.Println("  postroom version   Print version information")
	fmt.Println("  postroom help      Show this help")
}
