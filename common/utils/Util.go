package utils

import (
	"net"
	"strings"
)

// IPChecker 檢查IP是否在白名單(逗號分隔, 可含CIDR). 白名單為空時不限制
func IPChecker(ip string, whiteList string) bool {
	if strings.TrimSpace(whiteList) == "" {
		return true
	}
	clientIP := net.ParseIP(strings.TrimSpace(ip))
	if clientIP == nil {
		return false
	}
	for _, white := range strings.Split(whiteList, ",") {
		white = strings.TrimSpace(white)
		if white == "" {
			continue
		}
		if strings.Contains(white, "/") {
			if _, ipNet, err := net.ParseCIDR(white); err == nil && ipNet.Contains(clientIP) {
				return true
			}
			continue
		}
		if whiteIP := net.ParseIP(white); whiteIP != nil && whiteIP.Equal(clientIP) {
			return true
		}
	}
	return false
}
