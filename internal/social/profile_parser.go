package social

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/models"
)

// PublicProfile is the follower snapshot scraped from a platform's public
// profile page.
type PublicProfile struct {
	Username      string    `json:"username"`
	FollowerCount int64     `json:"follower_count"`
	Verified      bool      `json:"verified"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// ProfileParser scrapes public profile pages for platforms whose API does
// not expose follower counts.
type ProfileParser struct {
	httpClient *http.Client
	log        *zap.Logger
	maxRetries int
}

func NewProfileParser(timeoutMS, maxRetries int, log *zap.Logger) *ProfileParser {
	return &ProfileParser{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		log:        log,
		maxRetries: maxRetries,
	}
}

func profileURL(platform, username string) (string, error) {
	switch platform {
	case models.PlatformInstagram:
		return fmt.Sprintf("https://www.instagram.com/%s/", username), nil
	case models.PlatformTikTok:
		return fmt.Sprintf("https://www.tiktok.com/@%s", username), nil
	default:
		return "", fmt.Errorf("no public profile page for platform %q", platform)
	}
}

func (p *ProfileParser) FetchProfile(ctx context.Context, platform, username string) (*PublicProfile, error) {
	pageURL, err := profileURL(platform, username)
	if err != nil {
		return nil, err
	}

	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := p.httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, pageURL)
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}

	if lastErr != nil {
		return nil, lastErr
	}

	return parseProfileDoc(doc, username), nil
}

func parseProfileDoc(doc *goquery.Document, username string) *PublicProfile {
	profile := &PublicProfile{
		Username:  username,
		FetchedAt: time.Now(),
	}

	// The follower count usually lives in the og:description meta tag,
	// e.g. "1.5M Followers, 320 Following, 98 Posts".
	if desc, exists := doc.Find(`meta[property="og:description"]`).Attr("content"); exists {
		profile.FollowerCount = parseFollowers(desc)
	}

	// Some pages carry it in the page description instead.
	if profile.FollowerCount == 0 {
		if desc, exists := doc.Find(`meta[name="description"]`).Attr("content"); exists {
			profile.FollowerCount = parseFollowers(desc)
		}
	}

	if title, exists := doc.Find(`meta[property="og:title"]`).Attr("content"); exists {
		profile.Verified = strings.Contains(title, "Verified") || strings.Contains(title, "✓")
	}

	return profile
}

var followersRE = regexp.MustCompile(`(?i)([\d,.]+\s*[KkMm]?)\s*(followers|subscribers|fans)`)

// parseFollowers extracts the audience count from a description string like
// "1.5M Followers, 320 Following, 98 Posts".
func parseFollowers(text string) int64 {
	match := followersRE.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	return parseCount(match[1])
}

var countRE = regexp.MustCompile(`[\d,.]+[KkMm]?`)

func parseCount(text string) int64 {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", "")

	match := countRE.FindString(text)
	if match == "" {
		return 0
	}

	multiplier := int64(1)
	if strings.HasSuffix(match, "K") || strings.HasSuffix(match, "k") {
		multiplier = 1000
		match = match[:len(match)-1]
	} else if strings.HasSuffix(match, "M") || strings.HasSuffix(match, "m") {
		multiplier = 1000000
		match = match[:len(match)-1]
	}

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return int64(f * float64(multiplier))
}
