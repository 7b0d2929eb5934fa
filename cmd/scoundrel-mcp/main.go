package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	scmcp "github.com/stets/scoundrel/internal/mcp"
)

func main() {
	rules := flag.String("rules", "", "path to rules YAML file")
	flag.Parse()

	scmcp.SetRulesFile(*rules)

	s := server.NewMCPServer("scoundrel", "1.0.0")
	scmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
