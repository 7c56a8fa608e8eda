package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultHost    = "127.0.0.1"
	defaultPort    = "8080"
	defaultRepoURL = "https://github.com/zhouzirui/user-api"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr    string
	RepoURL string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	addr := getEnvOrDefault("BIND_ADDR", defaultHost+":"+defaultPort)

	if strings.ContainsAny(addr, " \t") {
		return ServerConfig{}, fmt.Errorf("invalid BIND_ADDR value: %q", addr)
	}

	if !strings.Contains(addr, ":") {
		// 只给出端口时仍然只监听回环地址。
		addr = defaultHost + ":" + addr
	}

	return ServerConfig{
		Addr:    addr,
		RepoURL: getEnvOrDefault("REPO_URL", defaultRepoURL),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
