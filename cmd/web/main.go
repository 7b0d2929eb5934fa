package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/stets/scoundrel/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	rulesFile := flag.String("rules", "", "path to rules YAML file")
	flag.Parse()

	srv, err := web.NewServer(*rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("scoundrel web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
