package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"customer_notification_planner/internal/infra/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customersCSV = "CustomerName,MonthDay,Monday,Thursday,EveryDay,Never\n" +
	"Alice,1,,,,\n" +
	"Bob,,,,Y,Y\n" +
	"Walt,,Y,Y,,\n" +
	",,,,Y,\n"

func writeCustomers(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customers.csv")
	require.NoError(t, os.WriteFile(path, []byte(customersCSV), 0o644))
	return path
}

func run(t *testing.T, cfg *config.AppConfig, args ...string) (string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := NewRootCmd(cfg)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--no-color"}, args...))

	require.NoError(t, root.Execute())
	return stdout.String(), stderr.String()
}

func csvConfig(t *testing.T) *config.AppConfig {
	return &config.AppConfig{CustomerSource: config.SourceCSV, SpreadsheetPath: writeCustomers(t)}
}

func TestRoot_NoArgsShowsHelp(t *testing.T) {
	stdout, stderr := run(t, csvConfig(t))
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "planner [start-date] [output-file]")
	assert.Empty(t, stderr)
}

func TestRoot_ConsoleReport(t *testing.T) {
	stdout, stderr := run(t, csvConfig(t), "2024-01-01")
	require.Empty(t, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 90)
	assert.Equal(t, "Mon 01-January-2024 - Alice, Walt", lines[0])
	assert.Equal(t, "Tue 02-January-2024 - ", lines[1])
	assert.Equal(t, "Thu 04-January-2024 - Walt", lines[3])
	assert.NotContains(t, stdout, "Bob")
}

func TestRoot_FileReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")
	stdout, stderr := run(t, csvConfig(t), "2024-01-01", out)
	require.Empty(t, stderr)
	assert.Contains(t, stdout, "Schedule written to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 91)
	assert.Equal(t, "Dates,CustomerNames", lines[0])
	assert.Equal(t, `"Mon 01-January-2024","Alice","Walt"`, lines[1])
	assert.Equal(t, `"Tue 02-January-2024",`, lines[2])
}

func TestRoot_BadDateWarns(t *testing.T) {
	stdout, stderr := run(t, csvConfig(t), "not-a-date")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "WARNING")
	assert.Contains(t, stderr, "not-a-date")
}

func TestRoot_TooManyArgsWarns(t *testing.T) {
	stdout, stderr := run(t, csvConfig(t), "2024-01-01", "a.csv", "extra")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "got 3 arguments")
}

func TestRoot_FileWriteFailureIsReported(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "report.csv")
	stdout, stderr := run(t, csvConfig(t), "2024-01-01", out)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "ERROR")
}

func TestRoot_MissingSpreadsheetIsReported(t *testing.T) {
	cfg := &config.AppConfig{CustomerSource: config.SourceXLSX, SpreadsheetPath: filepath.Join(t.TempDir(), "none.xlsx")}
	_, stderr := run(t, cfg, "2024-01-01")
	assert.Contains(t, stderr, "ERROR")
}

func TestRoot_PostgresWithoutURL(t *testing.T) {
	_, stderr := run(t, &config.AppConfig{CustomerSource: config.SourcePostgres}, "2024-01-01")
	assert.Contains(t, stderr, config.ErrMissingDatabaseURL.Error())
}

func TestRoot_PostgresFlagWithoutURL(t *testing.T) {
	cfg := &config.AppConfig{CustomerSource: config.SourceXLSX, SpreadsheetPath: "Customers.xlsx"}
	_, stderr := run(t, cfg, "--source", "postgres", "2024-01-01")
	assert.Contains(t, stderr, config.ErrMissingDatabaseURL.Error())
}

func TestRoot_InputFlagOverridesConfig(t *testing.T) {
	cfg := &config.AppConfig{CustomerSource: config.SourceXLSX, SpreadsheetPath: "unused.xlsx"}
	stdout, stderr := run(t, cfg, "--source", "csv", "--input", writeCustomers(t), "2024-01-01")
	require.Empty(t, stderr)
	assert.True(t, strings.HasPrefix(stdout, "Mon 01-January-2024 - Alice, Walt\n"))
}

func TestDigest_DryRun(t *testing.T) {
	stdout, stderr := run(t, csvConfig(t), "digest", "--dry-run", "2024-01-04")
	require.Empty(t, stderr)
	assert.Equal(t, "Customers to notify on Thu 04-January-2024:\n• Walt\n", stdout)
}

func TestDigest_DefaultsToToday(t *testing.T) {
	var stdout bytes.Buffer
	root := NewRootCmd(csvConfig(t))
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--no-color", "digest", "--dry-run"})

	today := time.Now()
	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), today.Format("02-January-2006"))
}

func TestDigest_RequiresTelegramSettings(t *testing.T) {
	_, stderr := run(t, csvConfig(t), "digest", "2024-01-04")
	assert.Contains(t, stderr, config.ErrMissingTelegramToken.Error())
}

func TestNotify_RequiresTelegramSettings(t *testing.T) {
	_, stderr := run(t, csvConfig(t), "notify")
	assert.Contains(t, stderr, config.ErrMissingTelegramToken.Error())
}

func TestVersion(t *testing.T) {
	stdout, _ := run(t, csvConfig(t), "version")
	assert.Equal(t, "planner dev (commit=none, built=unknown)\n", stdout)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	for _, in := range []string{
		"2024-01-01", "2024/01/01", "01/01/2024", "1/1/2024",
		"01-January-2024", "Mon 01-January-2024", "1 January 2024",
		"January 1, 2024", "Jan 1 2024", " 2024-01-01 ",
	} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := ParseDate("2024-13-01")
	assert.Error(t, err)
}
