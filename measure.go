package main

import "net/http"

// ===============================
// 测量驱动
// ===============================

// 页面加载统计在 frontend 结果中的键
const htmlLoadKey = "htmlLoad"

// measureAPIEndpoints 依次测量所有配置的 API 端点。
// 端点之间、同一端点的各次探测之间都严格串行（背靠背，不加间隔），
// 避免并发负载干扰延迟测量。无有效样本的端点不出现在结果中。
func measureAPIEndpoints(client *http.Client, cfg *Config) map[string]EndpointStats {
	results := make(map[string]EndpointStats)

	for _, path := range cfg.APIEndpoints {
		url := cfg.APIBaseURL + path
		logger.Printf("\n🔍 测量端点 %s (%d 次)...\n", path, cfg.APIRuns)

		samples := make([]Sample, 0, cfg.APIRuns)
		for i := 0; i < cfg.APIRuns; i++ {
			samples = append(samples, probe(client, url))
		}

		stats, ok := summarize(samples)
		if !ok {
			logger.Printf("  ⚠️  %s 无有效样本，跳过\n", path)
			continue
		}
		results[url] = stats
		logger.Printf("  ✓ 平均 %.2fms, P95 %.2fms (%d/%d 成功)\n",
			stats.Avg, stats.P95, stats.Count, cfg.APIRuns)
	}

	return results
}

// measureFrontend 测量页面加载延迟。
// 只有成功状态码（2xx）的响应计入样本；全部失败时返回空映射。
func measureFrontend(client *http.Client, cfg *Config) map[string]FrontendStats {
	logger.Printf("\n🌐 测量页面加载 %s (%d 次)...\n", cfg.BaseURL, cfg.FrontendRuns)

	samples := make([]Sample, 0, cfg.FrontendRuns)
	for i := 0; i < cfg.FrontendRuns; i++ {
		s := probe(client, cfg.BaseURL)
		if s.OK && s.StatusCode >= 200 && s.StatusCode < 300 {
			samples = append(samples, s)
		}
	}

	results := make(map[string]FrontendStats)
	stats, ok := summarize(samples)
	if !ok {
		logger.Error("页面加载测量无成功响应")
		return results
	}

	results[htmlLoadKey] = FrontendStats{
		Avg: stats.Avg,
		Min: stats.Min,
		Max: stats.Max,
	}
	logger.Printf("  ✓ 平均 %.2fms (%d/%d 成功)\n", stats.Avg, stats.Count, cfg.FrontendRuns)

	return results
}
