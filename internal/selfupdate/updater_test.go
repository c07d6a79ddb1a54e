package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gzipTar builds a tar.gz holding a single file.
func gzipTar(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0755}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// serveRelease stands in for GitHub: it answers the latest-release
// query with tag and serves the given download assets under it.
func serveRelease(t *testing.T, tag string, assets map[string][]byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/abhisek/primer/releases/latest" {
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
			return
		}
		if body, ok := assets[filepath.Base(r.URL.Path)]; ok {
			_, _ = w.Write(body)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	return server
}

func hexSum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func TestReleaseAssetFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"darwin", "arm64", "primer_Darwin_all.tar.gz", false},
		{"darwin", "amd64", "primer_Darwin_all.tar.gz", false},
		{"linux", "amd64", "primer_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "primer_Linux_arm64.tar.gz", false},
		{"linux", "386", "primer_Linux_i386.tar.gz", false},
		{"windows", "amd64", "primer_Windows_x86_64.zip", false},
		{"plan9", "amd64", "", true},
		{"linux", "riscv64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := releaseAssetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumIndex(t *testing.T) {
	body := []byte("aaa111  primer_Darwin_all.tar.gz\n\nnot a checksum line\nbbb222  primer_Linux_x86_64.tar.gz\n")
	index := checksumIndex(body)
	assert.Equal(t, map[string]string{
		"primer_Darwin_all.tar.gz":   "aaa111",
		"primer_Linux_x86_64.tar.gz": "bbb222",
	}, index)
}

func TestMatchChecksum(t *testing.T) {
	data := []byte("release bytes")

	assert.NoError(t, matchChecksum(data, hexSum(data)))

	err := matchChecksum(data, hexSum([]byte("tampered")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUnpackBinary(t *testing.T) {
	binary := []byte("#!/bin/sh\necho primer")

	t.Run("finds the binary in a tar.gz", func(t *testing.T) {
		got, err := unpackBinary(gzipTar(t, "primer", binary), "primer_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("errors when the binary is absent", func(t *testing.T) {
		_, err := unpackBinary(gzipTar(t, "README.md", binary), "primer_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	target := filepath.Join(t.TempDir(), "primer")
	require.NoError(t, os.WriteFile(target, []byte("old build"), 0755))

	next := []byte("next build")
	require.NoError(t, swapBinary(next, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, next, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "mode bits carry over")
}

func TestUpdate(t *testing.T) {
	binary := []byte("fresh primer build")
	// Update resolves the asset for the running platform, so the fake
	// forge must serve that same name.
	if runtime.GOOS == "windows" {
		t.Skip("fake forge serves tar.gz archives")
	}
	asset, err := releaseAssetFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	archive := gzipTar(t, "primer", binary)

	newTestChecker := func(server *httptest.Server, execPath string) *Checker {
		return NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)
	}

	t.Run("installs the latest release", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "primer")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := serveRelease(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(fmt.Sprintf("%s  %s\n", hexSum(archive), asset)),
		})

		var stages []string
		err := newTestChecker(server, execPath).Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0"},
			func(p UpdateProgress) { stages = append(stages, p.Stage) })
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("aborts on a checksum mismatch", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "primer")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := serveRelease(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(fmt.Sprintf("%s  %s\n", hexSum([]byte("tampered")), asset)),
		})

		err := newTestChecker(server, execPath).Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)

		got, readErr := os.ReadFile(execPath)
		require.NoError(t, readErr)
		assert.Equal(t, []byte("old"), got, "target binary untouched")
	})

	t.Run("download failure surfaces", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "primer")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := serveRelease(t, "v2.0.0", nil)
		err := newTestChecker(server, execPath).Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})

	t.Run("refuses a dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(),
			&UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("nothing to do at the latest version", func(t *testing.T) {
		server := serveRelease(t, "v1.0.0", nil)
		err := NewChecker(WithBaseURL(server.URL)).Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})
}
