package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func newRelay(t *testing.T, baseURL string) *pageclipRelay {
	t.Helper()
	var cfg config.Config
	cfg.Pageclip.SiteKey = "SITEKEY"
	cfg.Pageclip.BaseURL = baseURL
	r, err := NewPageclipRelay(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	return r.(*pageclipRelay)
}

func TestFormActionURL(t *testing.T) {
	r := newRelay(t, "https://send.pageclip.co/")
	assert.Equal(t, "https://send.pageclip.co/SITEKEY/contact-form", r.FormActionURL("contact-form"))
}

func TestNewPageclipRelay_RequiresSiteKey(t *testing.T) {
	_, err := NewPageclipRelay(config.Config{}, logger.NewNopLogger())
	assert.Error(t, err)
}

func TestSend(t *testing.T) {
	var gotPath string
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		require.NoError(t, req.ParseForm())
		gotForm = map[string]string{
			"name":    req.PostForm.Get("name"),
			"email":   req.PostForm.Get("email"),
			"subject": req.PostForm.Get("subject"),
			"message": req.PostForm.Get("message"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := newRelay(t, srv.URL)
	err := r.Send(context.Background(), "contact-form", contact.Submission{
		Name: "Ada", Email: "ada@example.com", Subject: "Hello", Message: "Nice site & all",
	})
	require.NoError(t, err)

	assert.Equal(t, "/SITEKEY/contact-form", gotPath)
	assert.Equal(t, "Nice site & all", gotForm["message"])
	assert.Equal(t, "ada@example.com", gotForm["email"])
}

func TestSend_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := newRelay(t, srv.URL).Send(context.Background(), "contact-form", contact.Submission{Name: "A"})
	assert.ErrorContains(t, err, "429")
}
