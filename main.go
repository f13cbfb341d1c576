package main

import (
	"fmt"
	"os"
	"time"
)

// 全局日志记录器
var logger *Logger

func main() {
	if err := run(); err != nil {
		fmt.Printf("❌ 基线测量失败: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 可选的配置文件路径参数
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	// 先确保输出目录可用，无法创建则整次运行失败
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("创建报告目录失败: %w", err)
	}

	logger, err = NewLogger(cfg.OutputDir, cfg.EnableLog)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Println("🚀 性能基线测量工具")
	logger.Println("==============================")
	logger.LogConfig(*cfg)

	client := createClient(cfg.Protocol, cfg.Timeout)

	// 三个测量区域依次执行，互不共享状态
	now := time.Now()
	api := measureAPIEndpoints(client, cfg)
	frontend := measureFrontend(client, cfg)
	bundles := inspectBundles(cfg.DistDir)

	report := buildReport(now, cfg, api, frontend, bundles)

	jsonPath, err := ExportJSON(report, cfg.OutputDir, now)
	if err != nil {
		return err
	}

	printReport(report)

	logger.Section("报告生成")
	logger.Printf("📄 基线报告: %s\n", jsonPath)

	if logger.GetLogPath() != "" {
		logger.Printf("📝 日志文件: %s\n", logger.GetLogPath())
	}

	logger.Println("\n✅ 测量完成!")
	return nil
}
