package media_storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func TestNewImageResolver_Passthrough(t *testing.T) {
	r, err := NewImageResolver(config.Config{}, logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "portfolio/ecommerce", r.ProjectImage("portfolio/ecommerce"))
	assert.Equal(t, "/images/profile.jpg", r.AvatarImage("/images/profile.jpg"))
}

func TestCloudinaryResolver(t *testing.T) {
	var cfg config.Config
	cfg.Cloudinary.CloudName = "demo"
	cfg.Cloudinary.ApiKey = "key"
	cfg.Cloudinary.ApiSecret = "secret"

	r, err := NewImageResolver(cfg, logger.NewNopLogger())
	require.NoError(t, err)

	url := r.ProjectImage("portfolio/ecommerce")
	assert.Contains(t, url, "res.cloudinary.com/demo/image/upload")
	assert.Contains(t, url, projectTransformation)
	assert.Contains(t, url, "portfolio/ecommerce")

	assert.Contains(t, r.AvatarImage("portfolio/profile"), avatarTransformation)

	assert.Equal(t, "/images/task-manager.jpg", r.ProjectImage("/images/task-manager.jpg"))
	assert.Equal(t, "https://cdn.example.com/a.png", r.ProjectImage("https://cdn.example.com/a.png"))
	assert.Equal(t, "", r.ProjectImage(""))
}
