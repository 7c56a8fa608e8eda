package utils

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondText 发送纯文本响应
func RespondText(w http.ResponseWriter, status int, message string) {
	respondBody(w, status, "text/plain; charset=utf-8", message)
}

// RespondHTML 发送HTML响应
func RespondHTML(w http.ResponseWriter, status int, body string) {
	respondBody(w, status, "text/html; charset=utf-8", body)
}

// RespondError 发送错误响应，错误信息以纯文本返回
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondText(w, status, message)
}

func respondBody(w http.ResponseWriter, status int, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
