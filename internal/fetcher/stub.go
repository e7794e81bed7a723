package fetcher

import (
	"context"

	"brocki-scanner-go/internal/model"
)

// 识别引擎接入前的占位结果
const (
	StubDetected   = "Sneaker"
	StubConfidence = 0.87
)

// StubRecognizer 固定返回同一个识别结果，忽略图片内容
type StubRecognizer struct{}

// NewStubRecognizer 创建占位识别器
func NewStubRecognizer() *StubRecognizer {
	return &StubRecognizer{}
}

// Recognize 返回固定结果
func (r *StubRecognizer) Recognize(ctx context.Context, req model.AnalyzeRequest) (*model.Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &model.Detection{
		Detected:    StubDetected,
		Confidence:  StubConfidence,
		Labels:      []string{"Sneaker", "Shoe", "Footwear"},
		SearchQuery: StubDetected,
	}, nil
}

// StubListingSource 固定返回占位商品
type StubListingSource struct {
	platform model.Platform
	listings []model.Listing
}

// NewStubListingSource 创建某个平台的占位数据源
func NewStubListingSource(platform model.Platform) *StubListingSource {
	return &StubListingSource{
		platform: platform,
		listings: stubListings[platform],
	}
}

// NewStubListingSources 所有平台的占位数据源，按 model.AllPlatforms 顺序
func NewStubListingSources() []ListingSource {
	sources := make([]ListingSource, 0, len(model.AllPlatforms))
	for _, p := range model.AllPlatforms {
		sources = append(sources, NewStubListingSource(p))
	}
	return sources
}

// Platform 平台名
func (s *StubListingSource) Platform() model.Platform {
	return s.platform
}

// Search 返回固定商品，query不参与匹配
func (s *StubListingSource) Search(ctx context.Context, query string) ([]model.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Listing, len(s.listings))
	copy(out, s.listings)
	return out, nil
}

var stubListings = map[model.Platform][]model.Listing{
	model.PlatformRicardo: {
		{Title: "Sample listing A", Price: 45, Platform: model.PlatformRicardo},
		{Title: "Sample listing B", Price: 60, Platform: model.PlatformRicardo},
	},
	model.PlatformTutti: {
		{Title: "Sample listing C", Price: 35.5, Platform: model.PlatformTutti},
	},
	model.PlatformEbay: {
		{Title: "Sample listing D", Price: 52, Platform: model.PlatformEbay, Sold: true},
		{Title: "Sample listing E", Price: 70, Platform: model.PlatformEbay, Sold: true},
	},
}
