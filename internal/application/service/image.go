package service

// ImageResolver turns an image reference from the content document into a
// URL the browser can load.
type ImageResolver interface {
	ProjectImage(ref string) string
	AvatarImage(ref string) string
}
