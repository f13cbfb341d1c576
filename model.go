package main

import "encoding/json"

// 单次探测的测量结果
type Sample struct {
	ElapsedMs  float64 // 耗时（ms）
	StatusCode int     // HTTP状态码
	OK         bool    // false 表示传输层错误（耗时无效）
}

// EndpointStats 单个端点的延迟统计（单位：ms，不做舍入）
type EndpointStats struct {
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
	P95   float64 `json:"p95"`
}

// FrontendStats 页面加载统计（仅统计成功响应）
type FrontendStats struct {
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BundleEntry 单个打包产物的体积信息
type BundleEntry struct {
	Size   int64   `json:"size"`   // 字节数
	SizeKB float64 `json:"sizeKB"` // KB，保留两位小数
}

// BundleTotal 打包产物合计（保留键 "_total"）
type BundleTotal struct {
	Size   int64   `json:"size"`
	SizeKB float64 `json:"sizeKB"`
	SizeMB float64 `json:"sizeMB"`
}

// 保留键，用于在 bundles 映射中表示合计。
// 真实文件的相对路径一定以 .js 结尾，不会与之冲突。
const bundleTotalKey = "_total"

// BundleMap 打包产物扫描结果。内部区分文件与合计，
// 序列化时合并为同一个 JSON 映射（合计使用保留键）。
type BundleMap struct {
	Files map[string]BundleEntry
	Total *BundleTotal
}

func (b BundleMap) MarshalJSON() ([]byte, error) {
	merged := make(map[string]interface{}, len(b.Files)+1)
	for path, entry := range b.Files {
		merged[path] = entry
	}
	if b.Total != nil {
		merged[bundleTotalKey] = *b.Total
	}
	return json.Marshal(merged)
}

// Measurements 三个测量区域的结果
type Measurements struct {
	API      map[string]EndpointStats `json:"api"`      // 按完整 URL 索引
	Frontend map[string]FrontendStats `json:"frontend"` // 键为 "htmlLoad"，无成功样本时为空
	Bundles  BundleMap                `json:"bundles"`
}

// Targets 参考阈值（仅写入报告，工具本身不做比对）
type Targets struct {
	APIAvgResponse  float64 `json:"apiAvgResponse"`  // ms
	FrontendLoad    float64 `json:"frontendLoad"`    // ms
	BundleSize      float64 `json:"bundleSize"`      // KB
	TotalBundleSize float64 `json:"totalBundleSize"` // KB
}

// ReportSummary 报告末尾的数值汇总
type ReportSummary struct {
	APIAvgResponse   float64 `json:"apiAvgResponse"`   // 各端点平均值的均值，无成功端点时为 0
	FrontendLoadTime float64 `json:"frontendLoadTime"` // htmlLoad 平均值，无成功样本时为 0
	TotalBundleSize  float64 `json:"totalBundleSize"`  // KB
	LargestBundle    float64 `json:"largestBundle"`    // KB
}

// BaselineReport 完整基线报告
type BaselineReport struct {
	Timestamp    string        `json:"timestamp"` // ISO-8601 UTC
	BaseURL      string        `json:"baseUrl"`
	APIBaseURL   string        `json:"apiBaseUrl"`
	Measurements Measurements  `json:"measurements"`
	Targets      Targets       `json:"targets"`
	Summary      ReportSummary `json:"summary"`
}
