package main

import (
	"io"
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	// 测试期间不向控制台输出
	logger = &Logger{multiOut: io.Discard, startTime: time.Now()}
	os.Exit(m.Run())
}
