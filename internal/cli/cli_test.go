// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.
//
// go-shamir is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeremyhahn/go-shamir/pkg/shamir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRun struct {
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	err    error
}

func runCLI(t *testing.T, stdin string, args ...string) testRun {
	t.Helper()
	for _, key := range []string{
		"SSS_PRIME", "SSS_THRESHOLD", "SSS_SHARES", "SSS_LOG_LEVEL",
		"SSS_LOG_FORMAT", "SSS_METRICS_TEXTFILE", "SSS_OUTPUT",
	} {
		t.Setenv(key, "")
	}

	r := testRun{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	a := newApp(strings.NewReader(stdin), r.stdout, r.stderr)
	r.err = a.run(args)
	return r
}

func decodeShareSet(t *testing.T, data []byte) ShareSet {
	t.Helper()
	var set ShareSet
	require.NoError(t, json.Unmarshal(data, &set))
	return set
}

func TestSplit_Text(t *testing.T) {
	r := runCLI(t, "", "split", "--secret", "125", "--threshold", "3", "--shares", "5")
	require.NoError(t, r.err)

	out := r.stdout.String()
	assert.Contains(t, out, "Prime:     6326213")
	assert.Contains(t, out, "Threshold: 3")
	for _, id := range []string{"  1:", "  2:", "  3:", "  4:", "  5:"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, r.stderr.String(), "scheme created")
}

func TestSplit_JSONExplicitIDs(t *testing.T) {
	r := runCLI(t, "", "split", "--secret", "42", "-t", "2", "--ids", "3,7,9", "-o", "json")
	require.NoError(t, r.err)

	set := decodeShareSet(t, r.stdout.Bytes())
	assert.NotEmpty(t, set.SetID)
	assert.Equal(t, shamir.DefaultPrime, set.Prime)
	assert.Equal(t, 2, set.Threshold)
	require.Len(t, set.Shares, 3)
	for i, id := range []int{3, 7, 9} {
		assert.Equal(t, id, set.Shares[i].ID)
		assert.Equal(t, set.SetID, set.Shares[i].SetID)
	}
}

func TestSplitRecover_RoundTrip(t *testing.T) {
	split := runCLI(t, "", "split", "--secret", "31337", "-t", "3", "-n", "6", "-o", "json")
	require.NoError(t, split.err)

	// Keep only a threshold-sized subset.
	set := decodeShareSet(t, split.stdout.Bytes())
	set.Shares = []shamir.Share{set.Shares[5], set.Shares[1], set.Shares[3]}
	input, err := json.Marshal(set)
	require.NoError(t, err)

	recovered := runCLI(t, string(input), "recover", "--stdin", "-o", "json")
	require.NoError(t, recovered.err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(recovered.stdout.Bytes(), &out))
	assert.Equal(t, float64(31337), out["secret"])
	assert.Equal(t, float64(3), out["shares"])
}

func TestRecover_ShareFlags(t *testing.T) {
	// f(x) = 125 + 2x + 3x^2
	r := runCLI(t, "", "recover", "-t", "3",
		"--share", "1:130", "--share", "2:141", "--share", "3:158")
	require.NoError(t, r.err)
	assert.Equal(t, "recovered secret is: 125\n", r.stdout.String())
}

func TestRecover_InsufficientShares(t *testing.T) {
	r := runCLI(t, "", "recover", "-t", "3", "--share", "1:130", "--share", "2:141")
	require.Error(t, r.err)
	assert.ErrorIs(t, r.err, shamir.ErrInsufficientShares)
	assert.Empty(t, r.stdout.String())
	assert.Contains(t, r.stderr.String(), "Error: failed to recover secret")
}

func TestRecover_DuplicateShareJSONError(t *testing.T) {
	r := runCLI(t, "", "recover", "-t", "2", "-o", "json",
		"--share", "1:130", "--share", "1:130")
	require.Error(t, r.err)
	assert.ErrorIs(t, r.err, shamir.ErrDuplicateShareID)
	assert.Contains(t, r.stderr.String(), `"kind": "duplicate_share_id"`)
}

func TestRecover_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no shares", []string{"recover", "-t", "1"}},
		{"missing colon", []string{"recover", "-t", "1", "--share", "130"}},
		{"bad id", []string{"recover", "-t", "1", "--share", "x:130"}},
		{"bad value", []string{"recover", "-t", "1", "--share", "1:y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, "", tt.args...)
			assert.Error(t, r.err)
		})
	}
}

func TestRecover_BadStdin(t *testing.T) {
	r := runCLI(t, "not json", "recover", "--stdin")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "failed to decode share set")
}

func TestSplit_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"secret equals prime", []string{"split", "--secret", "6326213"}, shamir.ErrSecretTooLarge},
		{"secret above prime", []string{"split", "--secret", "6326214"}, shamir.ErrSecretTooLarge},
		{"negative secret", []string{"split", "--secret", "-1"}, shamir.ErrNegativeSecret},
		{"composite prime", []string{"split", "--secret", "1", "--prime", "100"}, shamir.ErrInvalidPrime},
		{"zero threshold", []string{"split", "--secret", "1", "-t", "0"}, shamir.ErrInvalidThreshold},
		{"too few shares", []string{"split", "--secret", "1", "-t", "3", "-n", "2"}, shamir.ErrInvalidShareCount},
		{"id zero", []string{"split", "--secret", "1", "-t", "1", "--ids", "0"}, shamir.ErrInvalidShareID},
		{"duplicate ids", []string{"split", "--secret", "1", "-t", "1", "--ids", "2,2"}, shamir.ErrDuplicateShareID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, "", tt.args...)
			require.Error(t, r.err)
			assert.ErrorIs(t, r.err, tt.want)
		})
	}
}

func TestSplit_MissingSecret(t *testing.T) {
	r := runCLI(t, "", "split", "-t", "2")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "--secret is required")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sss.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scheme:
  prime: 257
  threshold: 2
  shares: 4
output:
  format: json
`), 0600))

	r := runCLI(t, "", "--config", path, "split", "--secret", "200")
	require.NoError(t, r.err)

	set := decodeShareSet(t, r.stdout.Bytes())
	assert.Equal(t, int64(257), set.Prime)
	assert.Equal(t, 2, set.Threshold)
	assert.Len(t, set.Shares, 4)
}

func TestConfigFile_Missing(t *testing.T) {
	r := runCLI(t, "", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "version")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "failed to read config file")
}

func TestInvalidOutputFormat(t *testing.T) {
	r := runCLI(t, "", "-o", "yaml", "version")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "invalid output format")
}

func TestVerboseLogging(t *testing.T) {
	r := runCLI(t, "", "--verbose", "split", "--secret", "7", "-t", "1", "-n", "1")
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr.String(), "configuration loaded")
	assert.Contains(t, r.stderr.String(), "shares derived")
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sss.prom")

	r := runCLI(t, "", "--metrics-file", path, "split", "--secret", "9", "-t", "2", "-n", "3")
	require.NoError(t, r.err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "shamir_operations_total")
	assert.Contains(t, text, "shamir_shares_issued_total")
	assert.Contains(t, text, "shamir_last_run_timestamp_seconds")
}

func TestVersion(t *testing.T) {
	r := runCLI(t, "", "version")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout.String(), "sss version "+Version)

	r = runCLI(t, "", "version", "-o", "json")
	require.NoError(t, r.err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(r.stdout.Bytes(), &out))
	assert.Equal(t, Version, out["version"])
	assert.Equal(t, GitCommit, out["commit"])
}
