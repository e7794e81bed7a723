package fetcher

import (
	"context"

	"brocki-scanner-go/internal/model"
)

// Recognizer 从图片识别商品
type Recognizer interface {
	Recognize(ctx context.Context, req model.AnalyzeRequest) (*model.Detection, error)
}

// ListingSource 单个平台的商品搜索
type ListingSource interface {
	Platform() model.Platform
	Search(ctx context.Context, query string) ([]model.Listing, error)
}
