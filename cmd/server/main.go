package main

import (
	"fmt"
	"os"
)

// @title Transparency AI Service
// @version 0.1.0
// @description Follow-up question generation and transparency scoring
// @host localhost:8000
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
