package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ===============================
// 配置加载模块
// ===============================

// 默认配置文件路径（不存在时直接使用默认值）
const defaultConfigPath = "baseline.yaml"

// 环境变量（优先级最高）
const (
	envBaseURL    = "TEST_URL"
	envAPIBaseURL = "API_URL"
)

// Config 运行时配置
type Config struct {
	BaseURL      string        // 前端基础 URL
	APIBaseURL   string        // API 基础 URL
	APIEndpoints []string      // 待测 API 路径列表
	APIRuns      int           // 每个端点探测次数
	FrontendRuns int           // 页面探测次数
	Protocol     Protocol      // 探测使用的协议
	Timeout      time.Duration // 请求超时（0 表示不限制）
	DistDir      string        // 构建产物目录
	OutputDir    string        // 报告输出目录
	EnableLog    bool          // 是否写日志文件
}

// Protocol 协议类型
type Protocol int

const (
	HTTP1 Protocol = iota
	HTTP2
	HTTP3
)

func (p Protocol) String() string {
	switch p {
	case HTTP1:
		return "HTTP/1.1"
	case HTTP2:
		return "HTTP/2"
	case HTTP3:
		return "HTTP/3"
	default:
		return "Unknown"
	}
}

// parseProtocol 解析协议字符串
func parseProtocol(s string) Protocol {
	switch s {
	case "HTTP/3", "http3", "h3":
		return HTTP3
	case "HTTP/2", "http2", "h2":
		return HTTP2
	default:
		return HTTP1
	}
}

// ===============================
// YAML 配置结构
// ===============================

type yamlConfig struct {
	BaseURL      string   `yaml:"base_url"`
	APIBaseURL   string   `yaml:"api_url"`
	APIEndpoints []string `yaml:"api_endpoints"`
	APIRuns      int      `yaml:"api_runs"`
	FrontendRuns int      `yaml:"frontend_runs"`
	Protocol     string   `yaml:"protocol"`
	Timeout      string   `yaml:"timeout"`
	DistDir      string   `yaml:"dist_dir"`
	Output       struct {
		Dir       string `yaml:"dir"`
		EnableLog bool   `yaml:"enable_log"`
	} `yaml:"output"`
}

// defaultConfig 缺省配置（对应本地开发环境）
func defaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:5173",
		APIBaseURL: "http://localhost:8000",
		APIEndpoints: []string{
			"/api/master/info",
			"/api/master/pegs",
			"/api/master/cells",
			"/api/analysis/results",
			"/api/preference/123",
		},
		APIRuns:      10,
		FrontendRuns: 5,
		Protocol:     HTTP1,
		Timeout:      0,
		DistDir:      "./dist",
		OutputDir:    "./performance-reports",
	}
}

// LoadConfig 加载配置：默认值 → 可选 YAML 文件 → 环境变量。
// path 为空时使用默认路径；默认路径不存在不算错误。
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var yc yamlConfig
		if err := yaml.Unmarshal(data, &yc); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
		applyYAML(cfg, yc)
	case explicit:
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 环境变量覆盖
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}

	return cfg, nil
}

// applyYAML 将 YAML 中显式给出的字段覆盖到配置
func applyYAML(cfg *Config, yc yamlConfig) {
	if yc.BaseURL != "" {
		cfg.BaseURL = yc.BaseURL
	}
	if yc.APIBaseURL != "" {
		cfg.APIBaseURL = yc.APIBaseURL
	}
	if len(yc.APIEndpoints) > 0 {
		cfg.APIEndpoints = yc.APIEndpoints
	}
	if yc.APIRuns > 0 {
		cfg.APIRuns = yc.APIRuns
	}
	if yc.FrontendRuns > 0 {
		cfg.FrontendRuns = yc.FrontendRuns
	}
	if yc.Protocol != "" {
		cfg.Protocol = parseProtocol(yc.Protocol)
	}
	if yc.Timeout != "" {
		if timeout, err := time.ParseDuration(yc.Timeout); err == nil {
			cfg.Timeout = timeout
		}
	}
	if yc.DistDir != "" {
		cfg.DistDir = yc.DistDir
	}
	if yc.Output.Dir != "" {
		cfg.OutputDir = yc.Output.Dir
	}
	cfg.EnableLog = yc.Output.EnableLog
}
