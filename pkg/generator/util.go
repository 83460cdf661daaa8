package generator

import (
	"context"
	"fmt"
	"math"
	"net"
	"net/url"
	"time"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
)

// seedToPtrInt32 は domain の *int64 を SDK 用の *int32 に変換します。
// Gemini API のシードは int32 を期待しているため、範囲外の値は黙って
// 切り詰めずに domain.ErrInvalidInput で弾きます。
func seedToPtrInt32(s *int64) (*int32, error) {
	if s == nil {
		return nil, nil
	}
	if *s > math.MaxInt32 || *s < math.MinInt32 {
		return nil, fmt.Errorf("%w: シード値が int32 の範囲を超えています: %d", domain.ErrInvalidInput, *s)
	}
	v := int32(*s)
	return &v, nil
}

// dereferenceSeed は *int64 を安全に int64 に変換します。nil の場合は 0 を返します。
func dereferenceSeed(s *int64) int64 {
	if s == nil {
		return 0
	}
	return *s
}

// sleepCtx は指定時間サスペンドします。コンテキストが先に打ち切られた場合は
// その理由をエラーとして返します（ポーリングループの中断点）。
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// appendKeyParam は成果物URIに API キーをクエリパラメータとして付与します。
// 既存のクエリ文字列を壊さないよう文字列連結ではなく url.Values を使います。
func appendKeyParam(rawURL, apiKey string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("成果物URIのパースに失敗しました: %w", err)
	}
	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// IsSafeURL は、SSRF (Server-Side Request Forgery) 対策として URL を検証します。
// 許可されたスキーム (http, https) かつ、プライベートIPやループバックアドレスを
// ターゲットにしていないことを確認します。
func IsSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP

	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolvedIPs, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("ホスト '%s' の名前解決に失敗しました: %w", host, err)
		}
		ips = resolvedIPs
	}

	if len(ips) == 0 {
		return false, fmt.Errorf("IPが見つかりません")
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
