// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import "testing"

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("IMAGE_BASE_URL", "")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 4117 {
		t.Errorf("Expected default port 4117, got %d", cfg.Port)
	}
	if cfg.ImageBaseURL != "" {
		t.Errorf("Expected empty image base URL, got %q", cfg.ImageBaseURL)
	}
}

func TestParseFlags_EnvFallback(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IMAGE_BASE_URL", "https://cdn.example.com/img")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Expected port 9090 from env, got %d", cfg.Port)
	}
	if cfg.ImageBaseURL != "https://cdn.example.com/img" {
		t.Errorf("Expected image base URL from env, got %q", cfg.ImageBaseURL)
	}
}

func TestParseFlags_FlagsBeatEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IMAGE_BASE_URL", "https://env.example.com")

	cfg, err := ParseFlags([]string{"-p", "8000", "-image-base-url", "https://flag.example.com"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("Expected flag port 8000, got %d", cfg.Port)
	}
	if cfg.ImageBaseURL != "https://flag.example.com" {
		t.Errorf("Expected flag image base URL, got %q", cfg.ImageBaseURL)
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error for non-numeric PORT")
	}
}

func TestParseFlags_BadFlag(t *testing.T) {
	if _, err := ParseFlags([]string{"-unknown"}); err == nil {
		t.Error("Expected error for unknown flag")
	}
}
