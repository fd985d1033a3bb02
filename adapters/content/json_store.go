package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type jsonStore struct {
	path   string
	logger logger.Logger

	mu  sync.Mutex
	doc *portfolio.Document
}

// NewJSONStore reads the content file lazily on the first Load and keeps the
// parsed document for the life of the process. A failed read is retried on
// the next call.
func NewJSONStore(path string, log logger.Logger) portfolio.Store {
	return &jsonStore{path: path, logger: log}
}

func (s *jsonStore) Load(ctx context.Context) (*portfolio.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc != nil {
		return s.doc, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error("Failed to read portfolio data", err, zap.String("path", s.path))
		return nil, apperror.NewInternal("failed to load portfolio data", err)
	}

	doc, err := Decode(data)
	if err != nil {
		s.logger.Error("Portfolio data rejected", err, zap.String("path", s.path))
		return nil, err
	}

	s.logger.Info("Portfolio data loaded",
		zap.String("path", s.path),
		zap.Int("experience", len(doc.Experience)),
		zap.Int("projects", len(doc.Projects)),
	)
	s.doc = doc
	return doc, nil
}

// Decode validates raw content against the document schema and parses it.
// Project slugs are filled in from titles where missing.
func Decode(data []byte) (*portfolio.Document, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	doc := &portfolio.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, apperror.NewInvalidInput("portfolio data is not valid JSON", err)
	}

	for i := range doc.Projects {
		doc.Projects[i].Normalize()
		if err := doc.Projects[i].Validate(); err != nil {
			details := fmt.Sprintf("project %q has an invalid slug %q", doc.Projects[i].Title, doc.Projects[i].Slug)
			return nil, apperror.NewInvalidInput(details, err)
		}
	}
	return doc, nil
}

// Validate checks raw content against the document schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return apperror.NewInvalidInput("portfolio data could not be parsed", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		problems = append(problems, field+": "+desc.Description())
	}
	return apperror.NewInvalidInput(strings.Join(problems, "; "), nil)
}
