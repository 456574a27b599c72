package report

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/Blackdeer1524/compositehash/src/verify"
)

func sampleReport() verify.Report {
	return verify.Report{
		RunID:     "4f1c8a3e-1d2b-4b8e-9a51-2f8f0f6a7c11",
		StartedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Results: []verify.Result{
			{Name: verify.CheckSmoke, Passed: true, Duration: time.Millisecond},
			{
				Name:     verify.CheckDistribution,
				Passed:   false,
				Error:    "assertion failed: pearson statistic too high",
				Duration: 2 * time.Second,
				Metrics:  verify.Metrics{verify.MetricPearson: 2200.5},
			},
		},
		Failed: 1,
	}
}

func TestWriteRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	want := sampleReport()

	require.NoError(t, Write(fs, "reports/nested/run.yaml", want))

	ok, err := afero.DirExists(fs, "reports/nested")
	require.NoError(t, err)
	require.True(t, ok)

	got, err := Read(fs, "reports/nested/run.yaml")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestWrite_Truncates(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "run.yaml", make([]byte, 64<<10), 0o600))

	require.NoError(t, Write(fs, "run.yaml", sampleReport()))

	got, err := Read(fs, "run.yaml")
	require.NoError(t, err)
	require.Equal(t, sampleReport(), got)
}

func TestWrite_EmptyPath(t *testing.T) {
	require.ErrorIs(t, Write(afero.NewMemMapFs(), "", sampleReport()), ErrEmptyPath)
}

func TestWrite_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	require.Error(t, Write(fs, "run.yaml", sampleReport()))
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(afero.NewMemMapFs(), "absent.yaml")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRead_Garbage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("results: [unterminated"), 0o600))

	_, err := Read(fs, "bad.yaml")
	require.ErrorContains(t, err, "failed to decode report")
}
