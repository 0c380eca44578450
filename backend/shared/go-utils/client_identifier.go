package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the best-guess caller address, preferring proxy headers
// over RemoteAddr. The headers are client-controlled, so only trust the
// result behind a proxy that overwrites them.
func ClientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		for _, ip := range strings.Split(forwardedFor, ",") {
			cleanIP := strings.TrimSpace(ip)
			if isValidIP(cleanIP) {
				return cleanIP
			}
		}
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" && isValidIP(realIP) {
		return realIP
	}

	if forwarded := r.Header.Get("Forwarded"); forwarded != "" {
		for _, part := range strings.Split(forwarded, ";") {
			part = strings.TrimSpace(part)
			if !strings.HasPrefix(part, "for=") {
				continue
			}
			maybeIP := strings.Trim(strings.TrimPrefix(part, "for="), "\"")
			if isValidIP(maybeIP) {
				return maybeIP
			}
		}
	}

	return RemoteIP(r)
}

// RemoteIP returns the host part of the connection's RemoteAddr, ignoring
// any forwarding headers.
func RemoteIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && isValidIP(ip) {
		return ip
	}
	return r.RemoteAddr
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}
