// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfidf/vectorize"
)

const pastaInput = "Crock Pot Pasta Never boil pasta again\nPasta Pomodoro Fresh ingredients Parmesan to taste\n"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := createRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestCounts_CSVOutput(t *testing.T) {
	out, _, err := execute(t, pastaInput, "counts", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "doc,crock,pot,pasta,never,boil,again,pomodoro,fresh,ingredients,parmesan,to,taste", lines[0])
	assert.Equal(t, "0,1,1,2,1,1,1,0,0,0,0,0,0", lines[1])
	assert.Equal(t, "1,0,0,1,0,0,0,1,1,1,1,1,1", lines[2])
}

func TestFeatures_JSON(t *testing.T) {
	out, _, err := execute(t, "b a\na c\n", "features", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["b","a","c"]`, out)
}

func TestIDF_CSV(t *testing.T) {
	out, _, err := execute(t, "red fish\nblue fish\n", "idf", "--format=csv", "--precision=4")
	require.NoError(t, err)
	assert.Equal(t, "term,idf\nred,1.4055\nfish,1.0000\nblue,1.4055\n", out)
}

func TestTF_CSV(t *testing.T) {
	out, _, err := execute(t, "a a b b\n", "tf", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "doc,a,b\n0,0.5,0.5\n", out)
}

func TestFit_IsDefaultCommand(t *testing.T) {
	viaRoot, _, err := execute(t, pastaInput, "--format", "json")
	require.NoError(t, err)
	viaFit, _, err := execute(t, pastaInput, "fit", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, viaFit, viaRoot)

	var doc struct {
		FeatureNames []string    `json:"feature_names"`
		Rows         [][]float64 `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(viaFit), &doc))
	assert.Len(t, doc.FeatureNames, 12)
	require.Len(t, doc.Rows, 2)
	assert.InDelta(t, 2.0/7.0, doc.Rows[0][2], 1e-12)
}

func TestFit_EmptyDocumentPolicy(t *testing.T) {
	_, _, err := execute(t, "a b\n\nb\n", "fit", "--format", "csv")
	assert.ErrorIs(t, err, vectorize.ErrEmptyDocument)

	out, _, err := execute(t, "a b\n\nb\n", "fit", "--format", "csv", "--empty-docs", "zero")
	require.NoError(t, err)
	assert.Contains(t, out, "\n1,0,0\n")
}

func TestFit_EmptyDocumentPolicyFromEnv(t *testing.T) {
	t.Setenv("TFIDF_VECTORIZE_EMPTY_DOCUMENTS", "zero")

	_, _, err := execute(t, "a\n\n", "fit", "--format", "csv")
	assert.NoError(t, err)
}

func TestModel(t *testing.T) {
	out, _, err := execute(t, "a b\na\n", "model")
	require.NoError(t, err)

	var m vectorize.Model
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, []string{"a", "b"}, m.FeatureNames)
	assert.Equal(t, 2, m.Documents)
	assert.Equal(t, 1.0, m.IDF[0])
}

func TestInput_FilesAndCSVColumn(t *testing.T) {
	dir := t.TempDir()
	lines := filepath.Join(dir, "docs.txt")
	require.NoError(t, os.WriteFile(lines, []byte("alpha beta\n"), 0o600))
	table := filepath.Join(dir, "docs.csv")
	require.NoError(t, os.WriteFile(table, []byte("id,text\n1,\"gamma, delta\"\n2,gamma\n"), 0o600))

	out, _, err := execute(t, "", "features", "--format", "csv", lines)
	require.NoError(t, err)
	assert.Equal(t, "index,term\n0,alpha\n1,beta\n", out)

	out, _, err = execute(t, "", "counts", "--format", "csv", "--csv-column", "2", "--csv-header", table)
	require.NoError(t, err)
	assert.Equal(t, "doc,\"gamma,\",delta,gamma\n0,1,1,0\n1,0,0,1\n", out, "punctuation stays attached")

	_, _, err = execute(t, "", "counts", "--csv-column", "3", table)
	assert.ErrorIs(t, err, errShortRecord)

	_, _, err = execute(t, "", "counts", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestInvalidFlagValues(t *testing.T) {
	_, _, err := execute(t, pastaInput, "fit", "--format", "xml")
	assert.Error(t, err)

	_, _, err = execute(t, pastaInput, "fit", "--empty-docs", "skip")
	assert.Error(t, err)
}

func TestLogging_GoesToStderr(t *testing.T) {
	out, errOut, err := execute(t, "a\n", "counts", "--format", "csv", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "doc,a\n0,1\n", out)
	assert.Contains(t, errOut, "corpus read")
}

func TestEmptyCorpus(t *testing.T) {
	out, _, err := execute(t, "", "fit", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"feature_names":[],"rows":[]}`, out)
}

func TestSimilarity_CSV(t *testing.T) {
	out, _, err := execute(t, "red fish\nblue whale\n", "similarity", "--format", "csv", "--precision", "3")
	require.NoError(t, err)
	assert.Equal(t, "doc,0,1\n0,1.000,0.000\n1,0.000,1.000\n", out)
}

func TestInput_HTML(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.html")
	b := filepath.Join(dir, "b.html")
	require.NoError(t, os.WriteFile(a, []byte("<html><script>x()</script><p>Crock <b>Pot</b></p></html>"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("<p>pot</p>"), 0o600))

	out, _, err := execute(t, "", "counts", "--format", "csv", "--html", a, b)
	require.NoError(t, err)
	assert.Equal(t, "doc,crock,pot\n0,1,1\n1,0,1\n", out)

	_, _, err = execute(t, "", "counts", "--html", "--csv-column", "1", a)
	assert.ErrorIs(t, err, errInputMode)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tfidf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: csv\nvectorize:\n  empty_documents: zero\n"), 0o600))

	out, _, err := execute(t, "a\n\n", "tf", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "doc,a\n0,1\n1,0\n", out)

	out, _, err = execute(t, "a\n", "features", "--config", path, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["a"]`, out, "flags beat the config file")

	_, _, err = execute(t, "a\n", "tf", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvFile(t *testing.T) {
	// Register cleanup, then unset so the dotenv file can set the variable.
	t.Setenv("TFIDF_OUTPUT_FORMAT", "")
	require.NoError(t, os.Unsetenv("TFIDF_OUTPUT_FORMAT"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TFIDF_OUTPUT_FORMAT=csv\n"), 0o600))

	out, _, err := execute(t, "a\n", "counts", "--env-file", path)
	require.NoError(t, err)
	assert.Equal(t, "doc,a\n0,1\n", out)

	_, _, err = execute(t, "a\n", "counts", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "failed to load env file")
}

func TestServe_InvalidInvocation(t *testing.T) {
	_, _, err := execute(t, "", "serve", "extra-arg")
	assert.Error(t, err)

	_, _, err = execute(t, "", "serve", "--addr", "not-an-address")
	assert.ErrorContains(t, err, "failed to listen")

	_, _, err = execute(t, "", "serve", "--max-documents", "0")
	assert.ErrorContains(t, err, "configuration validation failed")

	_, _, err = execute(t, "", "serve", "--max-cells", "0")
	assert.ErrorContains(t, err, "configuration validation failed")

	_, _, err = execute(t, "", "serve", "--max-body-bytes=-1")
	assert.ErrorContains(t, err, "configuration validation failed")
}
