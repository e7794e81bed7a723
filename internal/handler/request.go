package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"brocki-scanner-go/internal/model"
)

// 日志里最多记录的请求体字节数（图片base64很大）
const maxLoggedBody = 512

var errInvalidJSON = errors.New("invalid JSON")

// decodeFields 解析JSON请求体
// 空请求体视为 {}；合法但不是对象的JSON视为没有任何字段
func decodeFields(body []byte) (model.Fields, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return model.Fields{}, nil
	}

	if body[0] != '{' {
		if !json.Valid(body) {
			return nil, errInvalidJSON
		}
		return model.Fields{}, nil
	}

	var fields model.Fields
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errInvalidJSON
	}
	return fields, nil
}

// readFields 读取并解析请求体，失败时直接写错误响应并返回false
func readFields(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (model.Fields, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}

	logger.Debug("received body",
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.ByteString("body", truncate(body, maxLoggedBody)),
	)

	fields, err := decodeFields(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	return fields, true
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
