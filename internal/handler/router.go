package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterOptions 路由配置
type RouterOptions struct {
	MaxBodyBytes int64
	Logger       *zap.Logger
}

// NewRouter 注册所有路由并套上中间件
// 未注册的路径由mux返回404，方法不匹配返回405
func NewRouter(analyze *AnalyzeHandler, search *SearchHandler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()
	r.Use(metricsMiddleware)

	r.HandleFunc("/", Root).Methods(http.MethodGet)
	r.HandleFunc("/health", Health).Methods(http.MethodGet)
	r.HandleFunc("/analyze", analyze.Analyze).Methods(http.MethodPost)
	r.HandleFunc("/search", search.Search).Methods(http.MethodPost)
	r.HandleFunc("/api/search", search.QuickSearch).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	var h http.Handler = r
	h = bodyLimitMiddleware(opts.MaxBodyBytes)(h)
	h = corsMiddleware(h)
	h = loggingMiddleware(logger)(h)
	h = requestIDMiddleware(h)
	return h
}
