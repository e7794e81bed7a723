package model

import "encoding/json"

// AnalyzeRequest 分析请求参数
type AnalyzeRequest struct {
	Image string `json:"image,omitempty"` // base64 或 data URL
	Query string `json:"query,omitempty"` // 手动输入的商品名
}

// SearchRequest 搜索请求参数
type SearchRequest struct {
	Query string `json:"query,omitempty"`
}

// Fields 解码后的JSON对象，值保持原始形式
type Fields map[string]json.RawMessage

// String 读取字符串字段，缺失或类型不对时返回空串
func (f Fields) String(key string) string {
	raw, ok := f[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// NewAnalyzeRequest 从请求体字段构建分析请求
func NewAnalyzeRequest(f Fields) AnalyzeRequest {
	return AnalyzeRequest{
		Image: f.String("image"),
		Query: f.String("query"),
	}
}

// NewSearchRequest 从请求体字段构建搜索请求
func NewSearchRequest(f Fields) SearchRequest {
	return SearchRequest{Query: f.String("query")}
}
