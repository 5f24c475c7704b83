package main

import (
	"os"

	"chatgpt-cli/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
