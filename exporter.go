package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ===============================
// 报告组装与导出
// ===============================

// defaultTargets 参考阈值常量
var defaultTargets = Targets{
	APIAvgResponse:  200,
	FrontendLoad:    2000,
	BundleSize:      1000,
	TotalBundleSize: 2000,
}

// buildReport 组装完整基线报告
func buildReport(now time.Time, cfg *Config, api map[string]EndpointStats,
	frontend map[string]FrontendStats, bundles BundleMap) *BaselineReport {

	return &BaselineReport{
		Timestamp:  now.UTC().Format(time.RFC3339),
		BaseURL:    cfg.BaseURL,
		APIBaseURL: cfg.APIBaseURL,
		Measurements: Measurements{
			API:      api,
			Frontend: frontend,
			Bundles:  bundles,
		},
		Targets: defaultTargets,
		Summary: buildSummary(api, frontend, bundles),
	}
}

// buildSummary 计算数值汇总。
// apiAvgResponse 为各端点平均值的均值；无成功端点时记为 0。
func buildSummary(api map[string]EndpointStats, frontend map[string]FrontendStats,
	bundles BundleMap) ReportSummary {

	var summary ReportSummary

	if len(api) > 0 {
		var sum float64
		for _, stats := range api {
			sum += stats.Avg
		}
		summary.APIAvgResponse = sum / float64(len(api))
	}

	if stats, ok := frontend[htmlLoadKey]; ok {
		summary.FrontendLoadTime = stats.Avg
	}

	if bundles.Total != nil {
		summary.TotalBundleSize = bundles.Total.SizeKB
	}
	for _, entry := range bundles.Files {
		if entry.SizeKB > summary.LargestBundle {
			summary.LargestBundle = entry.SizeKB
		}
	}

	return summary
}

// ExportJSON 将报告写入输出目录下的日期文件（同日覆盖）。
// 写入失败致命，由调用方向上传播。
func ExportJSON(report *BaselineReport, outputDir string, now time.Time) (string, error) {
	filePath := filepath.Join(outputDir,
		fmt.Sprintf("performance-baseline-%s.json", now.UTC().Format("2006-01-02")))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("JSON 序列化失败: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("写入报告文件失败: %w", err)
	}

	return filePath, nil
}
