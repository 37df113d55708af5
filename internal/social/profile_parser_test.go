package social

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"1.2K", 1200},
		{"1.5M", 1500000},
		{"123", 123},
		{"12,345", 12345},
		{"5.6K followers", 5600},
		{"100K", 100000},
		{"2.3M", 2300000},
		{"0", 0},
		{"", 0},
		{"no number", 0},
		{"42k", 42000},
		{"3.14k", 3140},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseCount(tt.input)
			if result != tt.expected {
				t.Errorf("parseCount(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseFollowers(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"1.5M Followers, 320 Following, 98 Posts - clipsgirl on Instagram", 1500000},
		{"120 Followers, 5 Following", 120},
		{"3.2m fans on TikTok", 3200000},
		{"840K subscribers", 840000},
		{"98 Posts, 320 Following", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseFollowers(tt.input)
			if result != tt.expected {
				t.Errorf("parseFollowers(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

const profileFixture = `<!DOCTYPE html>
<html>
<head>
<meta property="og:title" content="clipsgirl (@clipsgirl) &#x2713; Verified" />
<meta property="og:description" content="2.3M Followers, 412 Following, 187 Posts - see photos and videos" />
</head>
<body></body>
</html>`

func TestParseProfileDoc(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(profileFixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	profile := parseProfileDoc(doc, "clipsgirl")

	if profile.Username != "clipsgirl" {
		t.Errorf("Username = %q, want %q", profile.Username, "clipsgirl")
	}
	if profile.FollowerCount != 2300000 {
		t.Errorf("FollowerCount = %d, want 2300000", profile.FollowerCount)
	}
	if !profile.Verified {
		t.Error("Verified = false, want true")
	}
}

func TestParseProfileDocNoFollowers(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><head></head><body></body></html>`))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	profile := parseProfileDoc(doc, "ghost")
	if profile.FollowerCount != 0 {
		t.Errorf("FollowerCount = %d, want 0", profile.FollowerCount)
	}
	if profile.Verified {
		t.Error("Verified = true, want false")
	}
}
