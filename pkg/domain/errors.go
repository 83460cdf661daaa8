package domain

import "errors"

// クライアントが区別して扱う必要のあるエラー種別です。
// 呼び出し側は errors.Is で判定し、人間が読めるメッセージとして表示します。
var (
	// ErrMissingCredential は API キーが未設定のまま呼び出された場合のエラーです。
	ErrMissingCredential = errors.New("API キーが設定されていません")

	// ErrInvalidInput はインラインアーティファクトのエンコードが不正な場合のエラーです。
	ErrInvalidInput = errors.New("入力データの形式が不正です")

	// ErrGenerationFailed はリモート呼び出し自体は成功したものの、
	// 利用可能な成果物が1件も得られなかった場合のエラーです。
	ErrGenerationFailed = errors.New("生成結果が得られませんでした")

	// ErrDownloadFailed は成果物URIへの追加フェッチが失敗した場合のエラーです。
	ErrDownloadFailed = errors.New("成果物のダウンロードに失敗しました")
)
