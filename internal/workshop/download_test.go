package workshop

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanq16/steamwd/internal/config"
	"github.com/tanq16/steamwd/internal/output"
)

type fakeRunner struct {
	calls []Invocation
	err   error
	onRun func(inv Invocation)
}

func (f *fakeRunner) Run(ctx context.Context, inv Invocation) error {
	f.calls = append(f.calls, inv)
	if f.onRun != nil {
		f.onRun(inv)
	}
	return f.err
}

func newTestDownloader(t *testing.T, runner Runner) (*Downloader, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	output.SetWriter(&buf)
	t.Cleanup(func() { output.SetWriter(nil) })
	d := NewDownloader("steamcmd", filepath.Join(t.TempDir(), "out"))
	d.Runner = runner
	d.Stdin = strings.NewReader("")
	d.Stderr = &bytes.Buffer{}
	return d, &buf
}

func makeModDirs(d *Downloader, gameID string, modIDs ...string) func(Invocation) {
	return func(Invocation) {
		for _, modID := range modIDs {
			os.MkdirAll(d.Layout.ModDir(gameID, modID), 0755)
		}
	}
}

func TestDownloadReportsPerMod(t *testing.T) {
	runner := &fakeRunner{}
	d, buf := newTestDownloader(t, runner)
	runner.onRun = makeModDirs(d, "107410", "111")

	job := NewJob("107410", []string{"111", "222"}, config.Credentials{Username: "u", Password: "p"}, false)
	require.NoError(t, d.Download(context.Background(), job))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "steamcmd", runner.calls[0].Path)
	assert.Equal(t, BuildArgs(d.Layout.Root, "107410", job.ModIDs, "u", "p"), runner.calls[0].Args)
	assert.NotNil(t, runner.calls[0].StreamFunc)

	text := buf.String()
	assert.Contains(t, text, "Mod 111 successfully downloaded")
	assert.Contains(t, text, "Mod 222 has failed to be downloaded")
	assert.Contains(t, text, "Steam Guard")
}

func TestDownloadCreatesLayoutBeforeRunning(t *testing.T) {
	runner := &fakeRunner{}
	d, _ := newTestDownloader(t, runner)
	runner.onRun = func(Invocation) {
		for _, dir := range []string{d.Layout.ContentDir("42"), d.Layout.DownloadsDir("42"), d.Layout.TempDir("42")} {
			assert.DirExists(t, dir)
		}
	}
	require.NoError(t, d.Download(context.Background(), NewJob("42", []string{"1"}, config.Credentials{}, false)))
	require.Len(t, runner.calls, 1)
}

func TestDownloadFailureIsNotFatal(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 5")}
	d, buf := newTestDownloader(t, runner)
	runner.onRun = makeModDirs(d, "1", "9")

	err := d.Download(context.Background(), NewJob("1", []string{"9"}, config.Credentials{}, false))
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Failed to download mods: exit status 5")
	assert.NotContains(t, buf.String(), "Mod 9")
}

func TestDownloadExistingDirsFollowExistenceOnly(t *testing.T) {
	runner := &fakeRunner{}
	d, buf := newTestDownloader(t, runner)
	require.NoError(t, os.MkdirAll(d.Layout.ModDir("1", "5"), 0755))

	require.NoError(t, d.Download(context.Background(), NewJob("1", []string{"5"}, config.Credentials{}, false)))
	assert.Contains(t, buf.String(), "Mod 5 successfully downloaded")
}

func TestDownloadEmptyModList(t *testing.T) {
	runner := &fakeRunner{}
	d, buf := newTestDownloader(t, runner)

	require.NoError(t, d.Download(context.Background(), NewJob("1", nil, config.Credentials{Username: "u", Password: "p"}, false)))
	require.Len(t, runner.calls, 1)
	args := runner.calls[0].Args
	assert.Contains(t, args, "+login")
	assert.Equal(t, "+quit", args[len(args)-1])
	assert.NotContains(t, args, "+workshop_download_item")
	assert.NotContains(t, buf.String(), "Mod ")
}

func TestDownloadVerboseRedactsCredentials(t *testing.T) {
	runner := &fakeRunner{}
	d, buf := newTestDownloader(t, runner)

	job := NewJob("1", []string{"77"}, config.Credentials{Username: "steamuser", Password: "s3cret"}, true)
	require.NoError(t, d.Download(context.Background(), job))

	text := buf.String()
	assert.Contains(t, text, "> steamcmd +force_install_dir")
	assert.Contains(t, text, "+login *** ***")
	assert.NotContains(t, text, "steamuser")
	assert.NotContains(t, text, "s3cret")
	assert.NotContains(t, text, "Steam Guard")

	require.Len(t, runner.calls, 1)
	assert.Nil(t, runner.calls[0].StreamFunc)
	assert.Equal(t, output.Writer(), runner.calls[0].Stdout)
}

func TestDownloadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := &fakeRunner{err: errors.New("signal: killed")}
	runner.onRun = func(Invocation) { cancel() }
	d, buf := newTestDownloader(t, runner)

	err := d.Download(ctx, NewJob("1", []string{"2"}, config.Credentials{}, false))
	assert.True(t, IsCanceled(err))
	assert.NotContains(t, buf.String(), "Failed to download mods")
}

func TestDownloadLayoutError(t *testing.T) {
	runner := &fakeRunner{}
	d, _ := newTestDownloader(t, runner)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	d.Layout = Layout{Root: file}

	assert.Error(t, d.Download(context.Background(), NewJob("1", []string{"2"}, config.Credentials{}, false)))
	assert.Empty(t, runner.calls)
}

func TestBootstrapIgnoresFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("boom")}
	d, _ := newTestDownloader(t, runner)

	d.Bootstrap(context.Background())
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"+quit"}, runner.calls[0].Args)
}

func TestNewJobAssignsUniqueIDs(t *testing.T) {
	a := NewJob("1", nil, config.Credentials{}, false)
	b := NewJob("1", nil, config.Credentials{}, false)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
