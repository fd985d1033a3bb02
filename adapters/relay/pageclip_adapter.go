package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type pageclipRelay struct {
	baseURL string
	siteKey string
	client  *http.Client
	logger  logger.Logger
}

func NewPageclipRelay(cfg config.Config, log logger.Logger) (service.FormRelay, error) {
	if cfg.Pageclip.SiteKey == "" {
		return nil, fmt.Errorf("pageclip site_key has not config")
	}
	return &pageclipRelay{
		baseURL: strings.TrimRight(cfg.Pageclip.BaseURL, "/"),
		siteKey: cfg.Pageclip.SiteKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  log,
	}, nil
}

// FormActionURL is the form target: {base}/{siteKey}/{formName}.
func (r *pageclipRelay) FormActionURL(formName string) string {
	return fmt.Sprintf("%s/%s/%s", r.baseURL, url.PathEscape(r.siteKey), url.PathEscape(formName))
}

func (r *pageclipRelay) Send(ctx context.Context, formName string, s contact.Submission) error {
	form := url.Values{}
	form.Set("name", s.Name)
	form.Set("email", s.Email)
	form.Set("subject", s.Subject)
	form.Set("message", s.Message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.FormActionURL(formName), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build pageclip request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("pageclip request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		r.logger.Warn("Pageclip rejected submission",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return fmt.Errorf("pageclip responded with status %d", resp.StatusCode)
	}
	return nil
}
