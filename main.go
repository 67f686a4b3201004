// =============================================================================
// Invoice CLI - Main Entry Point
// =============================================================================
//
// This is the main entry point for the invoice CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   invoice generate        - Generate a PDF invoice from flags or a tabular file
//   invoice store-config    - Store the configuration file in 1Password
//   invoice validate        - Validate the configuration file without generating
//   invoice version         - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//
// =============================================================================

package main

import (
	"github.com/KevinFink/simple-invoice-creator/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
