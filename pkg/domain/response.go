package domain

// ImageResponse は生成された画像データとそのメタデータです。
type ImageResponse struct {
	Data     []byte
	MimeType string
	UsedSeed int64 // 戻り値は情報欠落を防ぐため int64
}

// Artifact は画像データをインライン表現に変換します。
func (r *ImageResponse) Artifact() DataURI {
	return NewDataURI(r.MimeType, r.Data)
}

// VideoResponse はダウンロード済みの動画バイト列です。
// バッファの所有権は呼び出し側に移り、消費者は1つだけです。
type VideoResponse struct {
	Data     []byte
	MimeType string
}
