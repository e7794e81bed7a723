package handler

import (
	"net/http"

	"go.uber.org/zap"

	"brocki-scanner-go/internal/model"
	"brocki-scanner-go/internal/service"
)

// AnalyzeHandler 图片分析HTTP处理器
type AnalyzeHandler struct {
	service *service.AnalyzeService
	logger  *zap.Logger
}

// NewAnalyzeHandler 创建处理器
func NewAnalyzeHandler(svc *service.AnalyzeService, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{service: svc, logger: logger}
}

// Analyze 处理分析请求
// POST /analyze
// Body: {"image": "data:image/jpeg;base64,...", "query": "xxx"}
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	fields, ok := readFields(w, r, h.logger)
	if !ok {
		return
	}

	resp, err := h.service.Analyze(r.Context(), model.NewAnalyzeRequest(fields))
	if err != nil {
		h.logger.Error("analyze failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
