package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleBundles() BundleMap {
	return BundleMap{
		Files: map[string]BundleEntry{
			"a.js":     {Size: 2048, SizeKB: 2},
			"sub/b.js": {Size: 1024, SizeKB: 1},
		},
		Total: &BundleTotal{Size: 3072, SizeKB: 3, SizeMB: 0},
	}
}

func TestBuildSummary(t *testing.T) {
	api := map[string]EndpointStats{
		"http://localhost:8000/api/master/info": {Avg: 40, Min: 10, Max: 80, Count: 10, P95: 80},
		"http://localhost:8000/api/master/pegs": {Avg: 60, Min: 20, Max: 90, Count: 10, P95: 90},
	}
	frontend := map[string]FrontendStats{
		htmlLoadKey: {Avg: 120, Min: 100, Max: 150},
	}

	summary := buildSummary(api, frontend, sampleBundles())

	require.Equal(t, float64(50), summary.APIAvgResponse) // (40+60)/2
	require.Equal(t, float64(120), summary.FrontendLoadTime)
	require.Equal(t, float64(3), summary.TotalBundleSize)
	require.Equal(t, float64(2), summary.LargestBundle)
}

// 全部测量为空时汇总各项记为 0
func TestBuildSummaryEmpty(t *testing.T) {
	summary := buildSummary(map[string]EndpointStats{}, map[string]FrontendStats{}, BundleMap{})

	require.Equal(t, float64(0), summary.APIAvgResponse)
	require.Equal(t, float64(0), summary.FrontendLoadTime)
	require.Equal(t, float64(0), summary.TotalBundleSize)
	require.Equal(t, float64(0), summary.LargestBundle)
}

func TestBuildReportTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 24, 23, 59, 30, 0, time.FixedZone("JST", 9*3600))
	cfg := defaultConfig()

	report := buildReport(now, cfg, map[string]EndpointStats{}, map[string]FrontendStats{}, BundleMap{})

	parsed, err := time.Parse(time.RFC3339, report.Timestamp)
	require.NoError(t, err)
	require.Equal(t, time.UTC, parsed.Location())
	require.True(t, parsed.Equal(now))
	require.Equal(t, cfg.BaseURL, report.BaseURL)
	require.Equal(t, cfg.APIBaseURL, report.APIBaseURL)
	require.Equal(t, defaultTargets, report.Targets)
}

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	cfg := defaultConfig()

	api := map[string]EndpointStats{
		cfg.APIBaseURL + "/api/master/info": {Avg: 50, Min: 45, Max: 60, Count: 10, P95: 60},
	}
	frontend := map[string]FrontendStats{htmlLoadKey: {Avg: 100, Min: 90, Max: 110}}
	report := buildReport(now, cfg, api, frontend, sampleBundles())

	path, err := ExportJSON(report, dir, now)
	require.NoError(t, err)

	// 文件名中的日期与报告时间戳同日
	require.Equal(t, filepath.Join(dir, "performance-baseline-2026-08-24.json"), path)
	require.Contains(t, path, now.Format("2006-01-02"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, report.Timestamp, decoded["timestamp"])
	require.Equal(t, cfg.BaseURL, decoded["baseUrl"])
	require.Equal(t, cfg.APIBaseURL, decoded["apiBaseUrl"])

	measurements := decoded["measurements"].(map[string]interface{})
	apiSection := measurements["api"].(map[string]interface{})
	require.Contains(t, apiSection, cfg.APIBaseURL+"/api/master/info")

	bundleSection := measurements["bundles"].(map[string]interface{})
	require.Contains(t, bundleSection, "a.js")
	require.Contains(t, bundleSection, "sub/b.js")
	total := bundleSection["_total"].(map[string]interface{})
	require.Equal(t, float64(3072), total["size"])
	require.Equal(t, float64(3), total["sizeKB"])
	require.Equal(t, float64(0), total["sizeMB"])

	targets := decoded["targets"].(map[string]interface{})
	require.Equal(t, float64(200), targets["apiAvgResponse"])
	require.Equal(t, float64(2000), targets["frontendLoad"])
	require.Equal(t, float64(1000), targets["bundleSize"])
	require.Equal(t, float64(2000), targets["totalBundleSize"])

	summary := decoded["summary"].(map[string]interface{})
	require.Equal(t, float64(50), summary["apiAvgResponse"])
	require.Equal(t, float64(100), summary["frontendLoadTime"])
	require.Equal(t, float64(3), summary["totalBundleSize"])
	require.Equal(t, float64(2), summary["largestBundle"])
}

// 同日重跑覆盖同名文件
func TestExportJSONOverwritesSameDay(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	cfg := defaultConfig()

	report := buildReport(now, cfg, map[string]EndpointStats{}, map[string]FrontendStats{}, BundleMap{})
	first, err := ExportJSON(report, dir, now)
	require.NoError(t, err)

	second, err := ExportJSON(report, dir, now.Add(5*time.Hour))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestExportJSONWriteFailure(t *testing.T) {
	// 输出目录实际上是个文件，写入必然失败
	dir := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0644))

	now := time.Now()
	report := buildReport(now, defaultConfig(), map[string]EndpointStats{}, map[string]FrontendStats{}, BundleMap{})

	_, err := ExportJSON(report, dir, now)
	require.Error(t, err)
}

// 空的 bundles 序列化为 {} 而不是 null
func TestBundleMapMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(BundleMap{})
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(data))

	data, err = json.Marshal(BundleMap{Files: map[string]BundleEntry{}})
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(data))
}

func TestBundleMapMarshalMergesTotal(t *testing.T) {
	data, err := json.Marshal(sampleBundles())
	require.NoError(t, err)

	expected := fmt.Sprintf(`{
		"a.js": {"size":2048,"sizeKB":2},
		"sub/b.js": {"size":1024,"sizeKB":1},
		"%s": {"size":3072,"sizeKB":3,"sizeMB":0}
	}`, bundleTotalKey)
	require.JSONEq(t, expected, string(data))
}
