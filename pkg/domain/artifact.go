package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURI は自己記述型のインラインアーティファクト表現です。
// 形式は data:<mime>;base64,<payload> で、最初のカンマより前を
// プレフィックスとして扱います。
type DataURI string

const dataURIScheme = "data:"

// NewDataURI は生のバイト列と MIME タイプからインライン表現を構築します。
func NewDataURI(mimeType string, data []byte) DataURI {
	encoded := base64.StdEncoding.EncodeToString(data)
	return DataURI(fmt.Sprintf("%s%s;base64,%s", dataURIScheme, mimeType, encoded))
}

// Decode はインライン表現を MIME タイプと生のバイト列に復元します。
// プレフィックスが欠けている、base64 が壊れている等の不正入力は
// ErrInvalidInput としてエラーを返します（クラッシュさせません）。
func (d DataURI) Decode() (mimeType string, data []byte, err error) {
	s := string(d)

	prefix, payload, found := strings.Cut(s, ",")
	if !found {
		return "", nil, fmt.Errorf("%w: data URI にカンマ区切りがありません", ErrInvalidInput)
	}
	if !strings.HasPrefix(prefix, dataURIScheme) {
		return "", nil, fmt.Errorf("%w: data: プレフィックスがありません", ErrInvalidInput)
	}

	meta := strings.TrimPrefix(prefix, dataURIScheme)
	mimeType = strings.TrimSuffix(meta, ";base64")
	if mimeType == meta {
		return "", nil, fmt.Errorf("%w: base64 指定がありません", ErrInvalidInput)
	}
	if mimeType == "" {
		return "", nil, fmt.Errorf("%w: MIME タイプが空です", ErrInvalidInput)
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: base64 デコード失敗: %v", ErrInvalidInput, err)
	}
	return mimeType, data, nil
}

// IsImage は MIME タイプが image/* かどうかを復号せずに判定します。
func (d DataURI) IsImage() bool {
	mimeType, _, err := d.Decode()
	if err != nil {
		return false
	}
	return strings.HasPrefix(mimeType, "image/")
}
