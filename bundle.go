package main

import (
	"io/fs"
	"math"
	"path/filepath"
	"strings"
)

// ===============================
// 打包产物扫描
// ===============================

// round2 保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// inspectBundles 递归扫描构建产物目录，统计所有 .js 文件的体积。
// 目录缺失或不可读不致命：打印错误并返回空结果。
func inspectBundles(distDir string) BundleMap {
	files := make(map[string]BundleEntry)
	var totalSize int64

	err := filepath.WalkDir(distDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() || !strings.HasSuffix(path, ".js") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(distDir, path)
		if err != nil {
			return err
		}

		// 统一使用斜杠路径作为键
		files[filepath.ToSlash(rel)] = BundleEntry{
			Size:   info.Size(),
			SizeKB: round2(float64(info.Size()) / 1024),
		}
		totalSize += info.Size()
		return nil
	})
	if err != nil {
		logger.Error("扫描构建产物目录失败 %s: %v", distDir, err)
		return BundleMap{Files: map[string]BundleEntry{}}
	}

	return BundleMap{
		Files: files,
		Total: &BundleTotal{
			Size:   totalSize,
			SizeKB: round2(float64(totalSize) / 1024),
			SizeMB: round2(float64(totalSize) / 1024 / 1024),
		},
	}
}
