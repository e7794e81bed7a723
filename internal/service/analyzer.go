package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"brocki-scanner-go/internal/fetcher"
	"brocki-scanner-go/internal/model"
	"brocki-scanner-go/internal/utils"
)

// AnalyzeMessage 分析成功时的提示语
const AnalyzeMessage = "Analyze works"

// AnalyzeService 图片分析服务
type AnalyzeService struct {
	recognizer fetcher.Recognizer
	logger     *zap.Logger
}

// NewAnalyzeService 创建分析服务
func NewAnalyzeService(recognizer fetcher.Recognizer, logger *zap.Logger) *AnalyzeService {
	return &AnalyzeService{recognizer: recognizer, logger: logger}
}

// Analyze 识别请求里的商品
// 带了query时跳过识别，直接用手动输入的商品名
func (s *AnalyzeService) Analyze(ctx context.Context, req model.AnalyzeRequest) (*model.AnalyzeResponse, error) {
	s.logger.Debug("analyze",
		zap.Int("image_bytes", len(req.Image)),
		zap.String("query", utils.SanitizeQuery(req.Query)),
	)

	var detection *model.Detection
	if req.Query != "" {
		detection = manualDetection(req.Query)
	} else {
		var err error
		detection, err = s.recognizer.Recognize(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("recognize: %w", err)
		}
	}

	return &model.AnalyzeResponse{
		Success: true,
		Message: AnalyzeMessage,
		Data:    detection,
	}, nil
}

// manualDetection 手动query的识别结果，置信度与占位识别保持一致
func manualDetection(query string) *model.Detection {
	return &model.Detection{
		Detected:    query,
		Confidence:  fetcher.StubConfidence,
		Labels:      []string{},
		SearchQuery: query,
		Manual:      true,
	}
}
