package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFileOfSize(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
}

func TestInspectBundles(t *testing.T) {
	dist := t.TempDir()
	writeFileOfSize(t, filepath.Join(dist, "a.js"), 2048)
	writeFileOfSize(t, filepath.Join(dist, "sub", "b.js"), 1024)
	writeFileOfSize(t, filepath.Join(dist, "index.html"), 512)
	writeFileOfSize(t, filepath.Join(dist, "style.css"), 256)

	bundles := inspectBundles(dist)

	require.Len(t, bundles.Files, 2)
	require.Equal(t, BundleEntry{Size: 2048, SizeKB: 2}, bundles.Files["a.js"])
	require.Equal(t, BundleEntry{Size: 1024, SizeKB: 1}, bundles.Files["sub/b.js"])

	require.NotNil(t, bundles.Total)
	require.Equal(t, int64(3072), bundles.Total.Size)
	require.Equal(t, float64(3), bundles.Total.SizeKB)
	require.Equal(t, float64(0), bundles.Total.SizeMB)
}

// 合计字节数 = 各文件字节数之和
func TestInspectBundlesTotalIsSum(t *testing.T) {
	dist := t.TempDir()
	sizes := []int{100, 2500, 77777, 1}
	var want int64
	for i, size := range sizes {
		writeFileOfSize(t, filepath.Join(dist, "chunks", fmt.Sprintf("chunk-%d.js", i)), size)
		want += int64(size)
	}

	bundles := inspectBundles(dist)

	require.NotNil(t, bundles.Total)
	require.Equal(t, want, bundles.Total.Size)

	var sum int64
	for _, entry := range bundles.Files {
		sum += entry.Size
	}
	require.Equal(t, want, sum)
}

func TestInspectBundlesMissingDir(t *testing.T) {
	bundles := inspectBundles(filepath.Join(t.TempDir(), "no-such-dist"))

	require.Empty(t, bundles.Files)
	require.Nil(t, bundles.Total)
}

func TestInspectBundlesEmptyDir(t *testing.T) {
	bundles := inspectBundles(t.TempDir())

	require.Empty(t, bundles.Files)
	require.NotNil(t, bundles.Total)
	require.Equal(t, int64(0), bundles.Total.Size)
}

// KB 舍入应当稳定（再舍入一次结果不变）
func TestRound2Idempotent(t *testing.T) {
	for _, v := range []float64{0, 0.004, 0.005, 1.23456, 2, 999.999, 123456.789} {
		once := round2(v)
		require.Equal(t, once, round2(once))
	}
	require.Equal(t, 1.23, round2(1.23456))
	require.Equal(t, float64(2), round2(2048.0/1024))
}
