package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultQuery 请求没有带query时回显的值
const DefaultQuery = "none"

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeQuery 去掉HTML标记和多余空白，只用于日志
func SanitizeQuery(q string) string {
	q = html.UnescapeString(strictPolicy.Sanitize(q))
	return strings.Join(strings.Fields(q), " ")
}

// NormalizeQuery 原样返回query，为空时返回 DefaultQuery
func NormalizeQuery(q string) string {
	if q == "" {
		return DefaultQuery
	}
	return q
}
