package main

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/quic-go/quic-go/http3"
)

// ===============================
// HTTP 客户端
// ===============================

// 创建探测客户端，根据配置选择协议。
// timeout 为 0 时不限制（由运行时默认行为决定）。
func createClient(protocol Protocol, timeout time.Duration) *http.Client {
	switch protocol {
	case HTTP3:
		return createHTTP3Client(timeout)
	case HTTP2:
		return createHTTP2Client(timeout)
	default:
		return createHTTP1Client(timeout)
	}
}

// 创建 HTTP/1.1 客户端（禁用 HTTP/2 ALPN 协商）
func createHTTP1Client(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		DialContext: dialer.DialContext,
		TLSClientConfig: &tls.Config{
			NextProtos: []string{"http/1.1"},
		},
		ForceAttemptHTTP2:   false,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// 创建 HTTP/2 客户端（强制 h2 ALPN）
func createHTTP2Client(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		DialContext: dialer.DialContext,
		TLSClientConfig: &tls.Config{
			NextProtos: []string{"h2"},
		},
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// 创建 HTTP/3 客户端（用于探测经 CDN/QUIC 部署的环境）
func createHTTP3Client(timeout time.Duration) *http.Client {
	transport := &http3.RoundTripper{
		TLSClientConfig: &tls.Config{},
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// ===============================
// 探测逻辑
// ===============================

// probe 执行单次计时 GET。
// 传输层错误记录为无效样本（OK=false）并打印错误；
// 非 2xx 且非 404 的状态码打印警告；404 静默接受（部分端点允许缺失）。
func probe(client *http.Client, url string) Sample {
	start := time.Now()
	resp, err := client.Get(url)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("请求失败 %s: %v", url, err)
		return Sample{OK: false}
	}
	defer resp.Body.Close()

	if (resp.StatusCode < 200 || resp.StatusCode >= 300) && resp.StatusCode != http.StatusNotFound {
		logger.Warn("非预期状态码 %d: %s", resp.StatusCode, url)
	}

	return Sample{
		ElapsedMs:  float64(elapsed.Microseconds()) / 1000.0,
		StatusCode: resp.StatusCode,
		OK:         true,
	}
}
