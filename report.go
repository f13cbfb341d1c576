package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// ===============================
// 统计计算
// ===============================

// summarize 对一组样本计算延迟统计。
// 丢弃传输失败的样本；全部无效时返回 false。
// p95 取升序排列中下标 ⌊count×0.95⌋ 处的值（从 0 起算），
// 该定义在 count=10 时即为最大值，保持不变以便报告跨次可比。
func summarize(samples []Sample) (EndpointStats, bool) {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.OK {
			values = append(values, s.ElapsedMs)
		}
	}
	if len(values) == 0 {
		return EndpointStats{}, false
	}

	stats := EndpointStats{
		Min:   values[0],
		Max:   values[0],
		Count: len(values),
	}
	var sum float64
	for _, v := range values {
		sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Avg = sum / float64(len(values))

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := int(float64(len(sorted)) * 0.95)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	stats.P95 = sorted[idx]

	return stats, true
}

// ===============================
// 输出
// ===============================

// printReport 打印人类可读的测量结果（排名视图 + 数值汇总）
func printReport(report *BaselineReport) {
	printAPITable(report.Measurements.API, report.APIBaseURL)
	printFrontend(report.Measurements.Frontend)
	printBundleTable(report.Measurements.Bundles)
	printSummary(report)
}

// 打印端点延迟表格（按平均值降序排名）
func printAPITable(api map[string]EndpointStats, apiBaseURL string) {
	if len(api) == 0 {
		fmt.Println("\n📊 API 延迟: 无有效测量结果")
		return
	}

	urls := make([]string, 0, len(api))
	for url := range api {
		urls = append(urls, url)
	}
	sort.Slice(urls, func(i, j int) bool {
		return api[urls[i]].Avg > api[urls[j]].Avg
	})

	fmt.Println("\n📊 API 延迟 (按平均值降序):")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"端点", "平均(ms)", "P95(ms)", "最小(ms)", "最大(ms)", "成功次数"}),
	)

	for _, url := range urls {
		s := api[url]
		table.Append([]string{
			strings.TrimPrefix(url, apiBaseURL),
			fmt.Sprintf("%.2f", s.Avg),
			fmt.Sprintf("%.2f", s.P95),
			fmt.Sprintf("%.2f", s.Min),
			fmt.Sprintf("%.2f", s.Max),
			fmt.Sprintf("%d", s.Count),
		})
	}

	table.Render()
}

// 打印页面加载结果
func printFrontend(frontend map[string]FrontendStats) {
	if stats, ok := frontend[htmlLoadKey]; ok {
		fmt.Printf("\n🌐 页面加载平均: %.2fms (最小 %.2fms, 最大 %.2fms)\n",
			stats.Avg, stats.Min, stats.Max)
	}
}

// 打印打包产物表格（体积降序，最多 10 个）
func printBundleTable(bundles BundleMap) {
	if len(bundles.Files) == 0 {
		return
	}

	paths := make([]string, 0, len(bundles.Files))
	for path := range bundles.Files {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool {
		return bundles.Files[paths[i]].SizeKB > bundles.Files[paths[j]].SizeKB
	})
	if len(paths) > 10 {
		paths = paths[:10]
	}

	fmt.Println("\n📦 打包产物 Top 10 (按体积降序):")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"文件", "大小(KB)"}),
	)
	for _, path := range paths {
		table.Append([]string{
			path,
			fmt.Sprintf("%.2f", bundles.Files[path].SizeKB),
		})
	}
	table.Render()

	if bundles.Total != nil {
		fmt.Printf("   合计: %.2f MB\n", bundles.Total.SizeMB)
	}
}

// 打印数值汇总（阈值仅作参考，不做比对）
func printSummary(report *BaselineReport) {
	fmt.Println("\n📋 基线汇总:")
	fmt.Printf("   API 平均响应: %.2f ms (参考 %.0f ms)\n",
		report.Summary.APIAvgResponse, report.Targets.APIAvgResponse)
	fmt.Printf("   页面加载时间: %.2f ms (参考 %.0f ms)\n",
		report.Summary.FrontendLoadTime, report.Targets.FrontendLoad)
	fmt.Printf("   打包体积合计: %.2f KB (参考 %.0f KB)\n",
		report.Summary.TotalBundleSize, report.Targets.TotalBundleSize)
	fmt.Printf("   最大单包体积: %.2f KB (参考 %.0f KB)\n",
		report.Summary.LargestBundle, report.Targets.BundleSize)
}
