package domain

// SupportedAspectRatios は生成要求で指定できるアスペクト比の固定セットです。
var SupportedAspectRatios = []string{"1:1", "16:9", "9:16", "4:3", "3:4"}

// IsValidAspectRatio はアスペクト比タグがサポートセットに含まれるかを判定します。
// 空文字はモデル既定値に委ねるため許容します。
func IsValidAspectRatio(ratio string) bool {
	if ratio == "" {
		return true
	}
	for _, r := range SupportedAspectRatios {
		if r == ratio {
			return true
		}
	}
	return false
}

// SeedImage は生成の起点となる画像素材です。
// 生バイト列と MIME タイプの組で、送信後に変更されることはありません。
type SeedImage struct {
	Data     []byte
	MimeType string
}

// ImageGenerationRequest は単一の画像生成要求です。
// 構築後は不変で、フィールド値以外の同一性を持ちません。
type ImageGenerationRequest struct {
	Prompt      string
	AspectRatio string
	Seed        *int64
}

// ImageEditRequest は既存のインラインアーティファクトに対する編集要求です。
// Source は自己記述型（data:<mime>;base64,...）でなければなりません。
type ImageEditRequest struct {
	Prompt string
	Source DataURI
}

// VideoGenerationRequest は動画生成ジョブの投入要求です。
// SeedImage は任意で、nil の場合はテキストのみで生成します。
type VideoGenerationRequest struct {
	Prompt      string
	Model       string
	AspectRatio string
	SeedImage   *SeedImage
}

// ChatMessage は会話履歴の1ターンです。Role は "user" または "model" です。
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
