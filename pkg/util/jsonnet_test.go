package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/buildbarn/bb-atomic/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type exampleConfiguration struct {
	Workers  int      `json:"workers"`
	Backend  string   `json:"backend"`
	Features []string `json:"features"`
}

func TestUnmarshalConfigurationFromSnippet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var configuration exampleConfiguration
		require.NoError(t, util.UnmarshalConfigurationFromSnippet(
			"example.jsonnet",
			`{ workers: 2 * 4, backend: 'standard', features: ['a', 'b'] }`,
			&configuration))
		require.Equal(t, exampleConfiguration{
			Workers:  8,
			Backend:  "standard",
			Features: []string{"a", "b"},
		}, configuration)
	})

	t.Run("ExtVar", func(t *testing.T) {
		t.Setenv("BB_ATOMIC_TEST_BACKEND", "locked")
		var configuration exampleConfiguration
		require.NoError(t, util.UnmarshalConfigurationFromSnippet(
			"example.jsonnet",
			`{ backend: std.extVar('BB_ATOMIC_TEST_BACKEND') }`,
			&configuration))
		require.Equal(t, "locked", configuration.Backend)
	})

	t.Run("SyntaxError", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("example.jsonnet", `{ workers: `, &configuration)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("example.jsonnet", `{ workers: 'many' }`, &configuration)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestUnmarshalConfigurationFromFile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.jsonnet")
		require.NoError(t, os.WriteFile(path, []byte(`{ workers: 3 }`), 0o644))
		var configuration exampleConfiguration
		require.NoError(t, util.UnmarshalConfigurationFromFile(path, &configuration))
		require.Equal(t, 3, configuration.Workers)
	})

	t.Run("NonexistentFile", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromFile(filepath.Join(t.TempDir(), "missing.jsonnet"), &configuration)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
