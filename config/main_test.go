package config

import (
	"os"
	"testing"
)

// TestMain runs before all tests in the config package
// It forces GO_ENV to "test" so no test can touch a real database
func TestMain(m *testing.M) {
	if err := os.Setenv("GO_ENV", "test"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
