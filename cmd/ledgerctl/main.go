// Package main is the entry point for ledgerctl, the Commission Tracker operations CLI.
package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	Execute()
}
