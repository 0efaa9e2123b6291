package credentials

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Provider токен партнёра на весь процесс. Читается каждым запросом,
// меняется только через Login/Logout.
type Provider struct {
	mu        sync.RWMutex
	token     string
	partnerID string
	now       func() time.Time
	parser    *jwt.Parser
}

func New(token, partnerID string) *Provider {
	return NewWithClock(token, partnerID, time.Now)
}

func NewWithClock(token, partnerID string, now func() time.Time) *Provider {
	p := &Provider{
		now:    now,
		parser: jwt.NewParser(),
	}
	if strings.TrimSpace(token) != "" {
		// стартовый токен из окружения, ошибку разбора покажет первый Token()
		_ = p.Login(token, partnerID)
	}
	return p
}

// Token возвращает bearer-токен до любого сетевого вызова.
// Подпись не проверяется: это делает бэкенд, здесь только срок жизни.
func (p *Provider) Token() (string, error) {
	p.mu.RLock()
	token := p.token
	p.mu.RUnlock()

	if token == "" {
		return "", ErrLoginRequired
	}

	exp, ok := p.expiresAt(token)
	if ok && !p.now().Before(exp) {
		return "", fmt.Errorf("token expired at %s: %w", exp.UTC().Format(time.RFC3339), ErrLoginRequired)
	}
	return token, nil
}

// Login сохраняет токен. Если partnerID не передан, берётся из claims id/sub.
func (p *Provider) Login(token, partnerID string) error {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return ErrLoginRequired
	}

	if partnerID == "" {
		partnerID = p.subject(token)
	}

	p.mu.Lock()
	p.token = token
	p.partnerID = partnerID
	p.mu.Unlock()
	return nil
}

func (p *Provider) Logout() {
	p.mu.Lock()
	p.token = ""
	p.partnerID = ""
	p.mu.Unlock()
}

func (p *Provider) PartnerID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.partnerID
}

func (p *Provider) LoggedIn() bool {
	_, err := p.Token()
	return err == nil
}

// expiresAt непрозрачные (не JWT) токены считаются бессрочными.
func (p *Provider) expiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := p.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (p *Provider) subject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := p.parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	for _, key := range []string{"id", "_id", "partnerId"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	sub, _ := claims.GetSubject()
	return sub
}
