package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/newslens/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const staticConfig = `model:
  provider: static
  static_scores:
    Fake News: 0.9
    Real News: 0.1
    Right Bias: 0.7
    Left Bias: 0.2
    Neutral: 0.1
logging:
  level: error
`

// executeCommand runs the root command against a static-provider config file.
func executeCommand(t *testing.T, ctx context.Context, stdin string, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(staticConfig), 0o600))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestAnalyzeCmdJSON(t *testing.T) {
	stdout, _, err := executeCommand(t, context.Background(), "", "analyze", "--json", "Aliens endorse", "candidate")
	require.NoError(t, err)

	var report model.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, model.PolarityFake, report.Polarity.Label)
	assert.InDelta(t, 90.0, report.Polarity.Confidence, 1e-9)
	assert.Equal(t, model.BiasRight, report.Bias.Label)
	assert.InDelta(t, 70.0, report.Bias.Confidence, 1e-9)
	assert.Equal(t, model.CredibilityHigh, report.Indicators.Credibility)
	assert.Equal(t, model.RiskHigh, report.Indicators.Risk)
	assert.Equal(t, "Aliens endorse candidate", report.Excerpt)
	assert.NotEmpty(t, report.ID)
}

func TestAnalyzeCmdStdin(t *testing.T) {
	stdout, _, err := executeCommand(t, context.Background(), "A report piped from stdin.\n", "analyze")
	require.NoError(t, err)

	assert.Contains(t, stdout, "FAKE NEWS")
	assert.Contains(t, stdout, "Right Bias")
	assert.Contains(t, stdout, "High Risk")
}

func TestAnalyzeCmdEmptyInput(t *testing.T) {
	_, stderr, err := executeCommand(t, context.Background(), "   \n", "analyze")
	require.Error(t, err)
	assert.Contains(t, stderr, "Please paste a news article before analyzing.")
}

func TestAnalyzeCmdFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("First article body."), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("Second article body."), 0o600))

	stdout, _, err := executeCommand(t, context.Background(), "", "analyze", "--file", first, "--file", second)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Batch Complete (2 articles)")
	assert.Contains(t, stdout, "first.txt")
	assert.Contains(t, stdout, "second.txt")
	assert.Contains(t, stdout, "Fake: 2")
}

func TestAnalyzeCmdFilesWithFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	blank := filepath.Join(dir, "blank.txt")
	require.NoError(t, os.WriteFile(good, []byte("An article."), 0o600))
	require.NoError(t, os.WriteFile(blank, []byte("  "), 0o600))

	stdout, _, err := executeCommand(t, context.Background(), "", "analyze", "--json", "-f", good, "-f", blank)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 analyses failed")

	var entries []batchEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "good.txt", entries[0].Source)
	require.NotNil(t, entries[0].Report)
	assert.Empty(t, entries[0].Error)
	assert.Equal(t, "blank.txt", entries[1].Source)
	assert.Nil(t, entries[1].Report)
	assert.Equal(t, "Please paste a news article before analyzing.", entries[1].Error)
}

func TestAnalyzeCmdMissingFile(t *testing.T) {
	_, _, err := executeCommand(t, context.Background(), "", "analyze", "--file", "/does/not/exist.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestModelCmd(t *testing.T) {
	stdout, _, err := executeCommand(t, context.Background(), "", "model", "--json")
	require.NoError(t, err)

	var info model.ModelInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, "static", info.Provider)
	assert.Equal(t, "static", info.ModelID)
	assert.Equal(t, model.MethodZeroShot, info.Method)
	assert.Equal(t, model.PolarityCandidates, info.PolarityLabels)
	assert.Equal(t, model.BiasCandidates, info.BiasLabels)
}

func TestModelCmdText(t *testing.T) {
	stdout, _, err := executeCommand(t, context.Background(), "", "model")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Model Information")
	assert.Contains(t, stdout, "Left Bias / Right Bias / Neutral")
}

func TestServeCmdStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stdout, _, err := executeCommand(t, ctx, "", "serve", "--addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Dashboard listening on http://127.0.0.1:0")
}

func TestServeCmdTLS(t *testing.T) {
	certDir := filepath.Join(t.TempDir(), "certs")
	t.Setenv("NEWSLENS_SERVER_CERT_DIR", certDir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stdout, _, err := executeCommand(t, ctx, "", "serve", "--tls", "--addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Dashboard listening on https://127.0.0.1:0")
	assert.FileExists(t, filepath.Join(certDir, "dashboard.crt"))
	assert.FileExists(t, filepath.Join(certDir, "dashboard.key"))
}

func TestInvalidProvider(t *testing.T) {
	_, _, err := executeCommand(t, context.Background(), "", "--provider", "llama", "model")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported model provider")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := executeCommand(t, context.Background(), "", "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to setup logging")
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := executeCommand(t, context.Background(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "newslens dev\n", stdout)
}
