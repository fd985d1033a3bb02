package media_storage

import (
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	projectTransformation = "c_fill,g_auto,w_800,h_450"
	avatarTransformation  = "c_fill,g_face,w_400,h_400"
)

type cloudinaryAdapter struct {
	cld    *cloudinary.Cloudinary
	logger logger.Logger
}

// NewImageResolver returns a Cloudinary-backed resolver when a cloud name is
// configured and a passthrough resolver otherwise.
func NewImageResolver(cfg config.Config, log logger.Logger) (service.ImageResolver, error) {
	if cfg.Cloudinary.CloudName == "" {
		log.Info("Cloudinary not configured, image references are served as-is")
		return passthroughResolver{}, nil
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	log.Info("Cloudinary image resolver ready", zap.String("cloud_name", cfg.Cloudinary.CloudName))
	return &cloudinaryAdapter{cld: cld, logger: log}, nil
}

func (a *cloudinaryAdapter) ProjectImage(ref string) string {
	return a.resolve(ref, projectTransformation)
}

func (a *cloudinaryAdapter) AvatarImage(ref string) string {
	return a.resolve(ref, avatarTransformation)
}

// resolve treats anything that is not already a URL or a site path as a
// Cloudinary public id.
func (a *cloudinaryAdapter) resolve(ref, transformation string) string {
	if !isPublicID(ref) {
		return ref
	}

	img, err := a.cld.Image(ref)
	if err != nil {
		a.logger.Warn("Failed to init cloudinary asset", zap.String("public_id", ref), zap.Error(err))
		return ref
	}
	img.Transformation = transformation

	url, err := img.String()
	if err != nil {
		a.logger.Warn("Failed to build cloudinary URL", zap.String("public_id", ref), zap.Error(err))
		return ref
	}
	return url
}

func isPublicID(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "/") {
		return false
	}
	return !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://")
}

type passthroughResolver struct{}

func (passthroughResolver) ProjectImage(ref string) string { return ref }
func (passthroughResolver) AvatarImage(ref string) string  { return ref }
