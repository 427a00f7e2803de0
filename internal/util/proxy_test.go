package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewProxyFunc(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "http://secure-proxy.local:3129")

	httpReq := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	u, err := proxy(httpReq)
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("expected the HTTP proxy for plain requests, got %v", u)
	}

	httpsReq := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	u, err = proxy(httpsReq)
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u == nil || u.Host != "secure-proxy.local:3129" {
		t.Errorf("expected the HTTPS proxy for TLS requests, got %v", u)
	}
}

func TestNewProxyFunc_HTTPFallbackForHTTPS(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "")

	httpsReq := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	u, err := proxy(httpsReq)
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("expected the HTTP proxy to cover TLS requests, got %v", u)
	}
}

func TestNewProxyFunc_EmptyFallsBackToEnvironment(t *testing.T) {
	// ProxyFromEnvironment caches the environment on first use, so only
	// the identity of the fallback is asserted here
	proxy := NewProxyFunc("", "")
	if proxy == nil {
		t.Fatal("expected a proxy func")
	}
}
