package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/unitconv/internal/domain/units"
	"github.com/phrazzld/unitconv/internal/service"
)

// setupTestServices installs a service over the built-in table and returns
// a function restoring the previous one.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	svc, err := service.NewConversionService(units.Default(), nil, nil)
	require.NoError(t, err)

	old := conversionService
	conversionService = svc
	return func() {
		conversionService = old
	}
}

// execute runs rootCmd with args and returns its combined output. Flag
// variables keep their values between executions, so they are reset first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	convertCategory = ""
	convertJSON = false
	categoriesJSON = false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
