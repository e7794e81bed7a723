package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"brocki-scanner-go/internal/fetcher"
	"brocki-scanner-go/internal/model"
	"brocki-scanner-go/internal/utils"
)

// QuickSearchMessage /api/search 的提示语
const QuickSearchMessage = "Search works"

// SearchService 跨平台商品搜索
type SearchService struct {
	sources []fetcher.ListingSource
	logger  *zap.Logger
}

// NewSearchService 创建搜索服务，sources的顺序即返回顺序
func NewSearchService(sources []fetcher.ListingSource, logger *zap.Logger) *SearchService {
	return &SearchService{sources: sources, logger: logger}
}

// Search 并发查询所有平台，汇总商品和价格统计
// 单个平台失败只记录日志，该平台结果为空
func (s *SearchService) Search(ctx context.Context, query string) *model.SearchResponse {
	perSource := make([][]model.Listing, len(s.sources))

	var wg sync.WaitGroup
	for i, src := range s.sources {
		wg.Add(1)
		go func(idx int, src fetcher.ListingSource) {
			defer wg.Done()
			listings, err := src.Search(ctx, query)
			if err != nil {
				s.logger.Warn("listing source failed",
					zap.String("platform", string(src.Platform())),
					zap.String("query", utils.SanitizeQuery(query)),
					zap.Error(err),
				)
				return
			}
			perSource[idx] = listings
		}(i, src)
	}
	wg.Wait()

	resp := &model.SearchResponse{
		Query:       query,
		Listings:    make(map[string][]model.Listing, len(s.sources)),
		AllListings: []model.Listing{},
		Stats:       make(map[string]model.PriceStats, len(s.sources)+1),
	}
	for i, src := range s.sources {
		listings := perSource[i]
		if listings == nil {
			listings = []model.Listing{}
		}
		key := src.Platform().Key()
		resp.Listings[key] = listings
		resp.Stats[key] = model.CalculatePriceStats(listings)
		resp.AllListings = append(resp.AllListings, listings...)
	}
	resp.Stats["overall"] = model.CalculatePriceStats(resp.AllListings)

	s.logger.Debug("search completed",
		zap.String("query", utils.SanitizeQuery(query)),
		zap.Int("total", len(resp.AllListings)),
	)
	return resp
}

// QuickSearch 只回显query
func (s *SearchService) QuickSearch(query string) *model.QuickSearchResponse {
	return &model.QuickSearchResponse{
		Success: true,
		Message: QuickSearchMessage,
		Query:   query,
	}
}
