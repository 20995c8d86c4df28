package util

import (
	"testing"
	"time"
)

const testSecret = "test-secret-key"

// TestGenerateParseToken 签发后解析，负载应一致
func TestGenerateParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("解析 token 失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q, want a@x.com", claims.Email)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Error("过期时间应在将来")
	}
}

// TestParseToken_WrongSecret 密钥不对应拒绝
func TestParseToken_WrongSecret(t *testing.T) {
	token, _ := GenerateToken(testSecret, 1, "a@x.com", time.Hour)

	if _, err := ParseToken("another-secret", token); err == nil {
		t.Error("错误密钥应拒绝 token")
	}
}

// TestParseToken_Expired 过期的 token 应拒绝
func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, "a@x.com", time.Millisecond)
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Error("过期 token 应拒绝")
	}
}

// TestParseToken_Garbage 非法字符串应拒绝
func TestParseToken_Garbage(t *testing.T) {
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(testSecret, bad); err == nil {
			t.Errorf("ParseToken(%q) 应返回错误", bad)
		}
	}
}

// TestGenerateToken_DefaultTTL ttl<=0 时回退到 24 小时
func TestGenerateToken_DefaultTTL(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, "a@x.com", 0)
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}
	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("解析 token 失败: %v", err)
	}
	if claims.ExpiresAt.Sub(claims.IssuedAt.Time) != 24*time.Hour {
		t.Errorf("默认有效期应为 24h，实际 %v", claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	}
}
