package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testConfig = `
[sender]
name = "Byron Example"
address_1 = "123 Main St"
address_2 = "Springfield, IL 62701"
email = "byron@example.com"
phone = "(555) 123-4567"

[client]
name = "Alex Client"
company = "Acme Corp"
address_1 = "456 Oak Ave"
address_2 = "Portland, OR 97201"

[bank]
account = "000123456789"
ach_routing = "110000000"
wire_routing = "110000001"

[invoice]
number_prefix = "INV-"
filename_prefix = "byron_invoice"
default_description = "Consulting Services"
default_rate = "150"
`

// TestGenerateEndToEnd drives the real command tree: temp config, temp CSV,
// explicit output path, and checks that a PDF lands on disk.
func TestGenerateEndToEnd(t *testing.T) {
	dir := t.TempDir()

	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfig), 0o644))

	csvPath := filepath.Join(dir, "items.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("hours,description,rate\n10,Consulting Services,100\n"), 0o644))

	outPath := filepath.Join(dir, "out.pdf")

	rootCmd.SetArgs([]string{
		"generate",
		"--config", configPath,
		"--csv", csvPath,
		"--date", "2025-01-15",
		"--output", outPath,
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
