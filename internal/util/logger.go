package util

import (
	"log"
	"os"
)

// NewLogger returns the shared stdout logger used across the client.
func NewLogger() *log.Logger {
	return log.New(os.Stdout, "", log.LstdFlags)
}
