package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ===============================
// 日志模块
// ===============================

// Logger 日志记录器，支持同时输出到控制台和文件
type Logger struct {
	file      *os.File
	multiOut  io.Writer
	startTime time.Time
	logPath   string
}

// NewLogger 创建新的日志记录器
// enabled 为 true 时在输出目录下创建日志文件
func NewLogger(outputDir string, enabled bool) (*Logger, error) {
	logger := &Logger{
		startTime: time.Now(),
	}

	if !enabled {
		// 禁用日志时，只输出到控制台
		logger.multiOut = os.Stdout
		return logger, nil
	}

	// 创建日志目录
	logDir := filepath.Join(outputDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("创建日志目录失败: %w", err)
	}

	// 生成日志文件名（基于时间戳）
	timestamp := logger.startTime.Format("2006-01-02_15-04-05")
	logger.logPath = filepath.Join(logDir, fmt.Sprintf("%s.log", timestamp))

	// 创建日志文件
	file, err := os.Create(logger.logPath)
	if err != nil {
		return nil, fmt.Errorf("创建日志文件失败: %w", err)
	}
	logger.file = file

	// 同时输出到控制台和文件
	logger.multiOut = io.MultiWriter(os.Stdout, file)

	return logger, nil
}

// Close 关闭日志文件
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// GetLogPath 获取日志文件路径
func (l *Logger) GetLogPath() string {
	return l.logPath
}

// Printf 格式化输出（同时写入控制台和日志文件）
func (l *Logger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprint(l.multiOut, msg)
}

// Println 输出一行（同时写入控制台和日志文件）
func (l *Logger) Println(args ...interface{}) {
	fmt.Fprintln(l.multiOut, args...)
}

// Info 输出信息日志
func (l *Logger) Info(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.multiOut, "[%s] INFO  %s\n", timestamp, msg)
}

// Warn 输出警告日志
func (l *Logger) Warn(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.multiOut, "[%s] WARN  %s\n", timestamp, msg)
}

// Error 输出错误日志
func (l *Logger) Error(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.multiOut, "[%s] ERROR %s\n", timestamp, msg)
}

// Section 输出分隔区域
func (l *Logger) Section(title string) {
	l.Println()
	l.Printf("==================== %s ====================\n", title)
}

// LogConfig 记录测量配置
func (l *Logger) LogConfig(cfg Config) {
	l.Section("测量配置")
	l.Printf("前端地址: %s\n", cfg.BaseURL)
	l.Printf("API地址: %s\n", cfg.APIBaseURL)
	l.Printf("协议: %s\n", cfg.Protocol)
	l.Printf("每端点探测次数: %d\n", cfg.APIRuns)
	l.Printf("页面探测次数: %d\n", cfg.FrontendRuns)
	l.Printf("构建产物目录: %s\n", cfg.DistDir)
	l.Printf("报告输出目录: %s\n", cfg.OutputDir)
	l.Println("待测端点:")
	for _, path := range cfg.APIEndpoints {
		l.Printf("  - %s\n", path)
	}
}
