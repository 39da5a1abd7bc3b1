// Package auth verifies Telegram Mini App launch payloads (initData).
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/weektrack-backend/internal/config"
	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// webAppDataKey is the fixed HMAC key Telegram uses to derive the signing secret.
const webAppDataKey = "WebAppData"

// Verifier checks initData signatures against a bot token.
type Verifier struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewVerifier creates a Verifier for the configured bot token.
func NewVerifier(cfg config.TelegramConfig) *Verifier {
	return &Verifier{
		secret: deriveSecret(cfg.BotToken),
		maxAge: cfg.MaxAge,
		now:    time.Now,
	}
}

// launchUser is the subset of the JSON-encoded "user" field we rely on.
type launchUser struct {
	ID       *int64 `json:"id"`
	Username string `json:"username"`
}

// Verify validates initData and returns the claim it carries.
// Every failure wraps domain.ErrUnauthorized; the wrapped text is for logs only.
func (v *Verifier) Verify(initData string) (Claim, error) {
	if strings.TrimSpace(initData) == "" {
		return Claim{}, reject("empty payload")
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return Claim{}, reject("parse payload: %v", err)
	}

	got := values.Get("hash")
	if got == "" {
		return Claim{}, reject("hash missing")
	}
	values.Del("hash")

	for k, vs := range values {
		if len(vs) != 1 {
			return Claim{}, reject("field %q repeated", k)
		}
	}

	want := sign(v.secret, dataCheckString(values))
	if !hmac.Equal([]byte(want), []byte(got)) {
		return Claim{}, reject("hash mismatch")
	}

	authDate, err := parseAuthDate(values.Get("auth_date"))
	if err != nil {
		return Claim{}, reject("auth_date: %v", err)
	}
	if v.maxAge > 0 {
		if authDate.IsZero() {
			return Claim{}, reject("auth_date missing")
		}
		if v.now().Sub(authDate) > v.maxAge {
			return Claim{}, reject("payload expired")
		}
	}

	raw := values.Get("user")
	if raw == "" {
		return Claim{}, reject("user missing")
	}
	var u launchUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return Claim{}, reject("decode user: %v", err)
	}
	if u.ID == nil || *u.ID == 0 {
		return Claim{}, reject("user id missing")
	}

	claim := Claim{
		ExternalID: strconv.FormatInt(*u.ID, 10),
		AuthDate:   authDate,
	}
	if u.Username != "" {
		handle := u.Username
		claim.Handle = &handle
	}
	return claim, nil
}

// Sign returns values encoded as initData with a valid hash for botToken.
// Any existing hash field is replaced.
func Sign(values url.Values, botToken string) string {
	signed := url.Values{}
	for k, vs := range values {
		if k == "hash" || len(vs) == 0 {
			continue
		}
		signed.Set(k, vs[0])
	}
	signed.Set("hash", sign(deriveSecret(botToken), dataCheckString(signed)))
	return signed.Encode()
}

// dataCheckString renders key=value pairs sorted by key and joined by newlines.
// The hash field must already be removed.
func dataCheckString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(values.Get(k))
	}
	return b.String()
}

func deriveSecret(botToken string) []byte {
	mac := hmac.New(sha256.New, []byte(webAppDataKey))
	mac.Write([]byte(botToken))
	return mac.Sum(nil)
}

func sign(secret []byte, data string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

func parseAuthDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, errors.New("not a unix timestamp")
	}
	return time.Unix(sec, 0).UTC(), nil
}

func reject(format string, args ...any) error {
	return fmt.Errorf("%w: initdata: %s", domain.ErrUnauthorized, fmt.Sprintf(format, args...))
}
