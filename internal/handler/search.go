package handler

import (
	"net/http"

	"go.uber.org/zap"

	"brocki-scanner-go/internal/model"
	"brocki-scanner-go/internal/service"
	"brocki-scanner-go/internal/utils"
)

// SearchHandler 商品搜索HTTP处理器
type SearchHandler struct {
	service *service.SearchService
	logger  *zap.Logger
}

// NewSearchHandler 创建处理器
func NewSearchHandler(svc *service.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{service: svc, logger: logger}
}

// Search 各平台商品和价格统计
// POST /search
// Body: {"query": "xxx"}
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, ok := h.readQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Search(r.Context(), query))
}

// QuickSearch 只回显query
// POST /api/search
// Body: {"query": "xxx"}
func (h *SearchHandler) QuickSearch(w http.ResponseWriter, r *http.Request) {
	query, ok := h.readQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.QuickSearch(query))
}

func (h *SearchHandler) readQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	fields, ok := readFields(w, r, h.logger)
	if !ok {
		return "", false
	}
	return utils.NormalizeQuery(model.NewSearchRequest(fields).Query), true
}
