// TiCS: disabled // Test helpers.

package testutils

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// updateGoldenEnv is the environment variable which, when set to true, rewrites golden files with the current results.
const updateGoldenEnv = "TESTS_UPDATE_GOLDEN"

type goldenOptions struct {
	path string
}

// GoldenOption is a supported option reference to change the golden files comparison.
type GoldenOption func(*goldenOptions)

// WithGoldenPath overrides the default path for golden files used.
func WithGoldenPath(path string) GoldenOption {
	return func(o *goldenOptions) {
		if path != "" {
			o.path = path
		}
	}
}

// GoldenPath returns the golden path for the provided test: testdata/golden/<TestName>/<subtest>.
func GoldenPath(t *testing.T) string {
	t.Helper()

	return filepath.Join("testdata", "golden", filepath.FromSlash(t.Name()))
}

// LoadWithUpdateFromGolden loads the element from a plaintext golden file.
// It will update the file first if TESTS_UPDATE_GOLDEN is set to true.
func LoadWithUpdateFromGolden(t *testing.T, data string, opts ...GoldenOption) string {
	t.Helper()

	o := goldenOptions{
		path: GoldenPath(t),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if update, _ := strconv.ParseBool(os.Getenv(updateGoldenEnv)); update {
		t.Logf("updating golden file %s", o.path)
		require.NoError(t, os.MkdirAll(filepath.Dir(o.path), 0750), "Cannot create directory for updating golden files")
		require.NoError(t, os.WriteFile(o.path, []byte(data), 0600), "Cannot write golden file")
	}

	want, err := os.ReadFile(o.path)
	require.NoError(t, err, "Cannot load golden file")

	return string(want)
}

// LoadWithUpdateFromGoldenYAML load the generic element from a YAML serialized golden file.
// It will update the file first if TESTS_UPDATE_GOLDEN is set to true.
func LoadWithUpdateFromGoldenYAML[E any](t *testing.T, got E, opts ...GoldenOption) E {
	t.Helper()

	t.Logf("Serializing object for golden file")
	data, err := yaml.Marshal(got)
	require.NoError(t, err, "Cannot serialize provided object")
	want := LoadWithUpdateFromGolden(t, string(data), opts...)

	var wantDeserialized E
	err = yaml.Unmarshal([]byte(want), &wantDeserialized)
	require.NoError(t, err, "Cannot deserialize golden file")

	return wantDeserialized
}
