package inspect

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/viant/afs"

	"github.com/viant/syncdict/inspect/config"
	"github.com/viant/syncdict/objpath"
	"github.com/viant/syncdict/persist"
)

const documentMode = 0o644

// Service loads and rewrites documents holding synced maps.
type Service struct {
	config   *config.Config
	logger   *slog.Logger
	fs       afs.Service
	resolver *objpath.Resolver
}

// Option modifies a service before it is initialised.
type Option func(*Service)

// WithConfig sets the configuration. When omitted config.Default is used.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithLogger sets the logger used to report dropped duplicates.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFS overrides the storage service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New constructs a service.
func New(opts ...Option) *Service {
	ret := &Service{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.config == nil {
		ret.config = config.Default()
	}
	ret.config.Init()
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	ret.resolver = objpath.New(objpath.WithMarker(ret.config.Marker))
	return ret
}

// Config returns the effective configuration.
func (s *Service) Config() *config.Config { return s.config }

// Resolver returns the path resolver configured with the document marker.
func (s *Service) Resolver() *objpath.Resolver { return s.resolver }

// Load downloads URL and decodes it into a generic tree.
func (s *Service) Load(ctx context.Context, URL string) (*Document, error) {
	codec, err := s.codecFor(URL)
	if err != nil {
		return nil, err
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download document %q: %w", URL, err)
	}
	var root any
	if err := codec.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode document %q: %w", URL, err)
	}
	return &Document{URL: URL, Root: root, codec: codec, service: s}, nil
}

// Save encodes doc with its codec and uploads it to URL.
func (s *Service) Save(ctx context.Context, doc *Document, URL string) error {
	data, err := doc.Encode()
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, URL, documentMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("upload document %q: %w", URL, err)
	}
	return nil
}

// Dedupe drops duplicate rows of the synced map node at nodePath and writes
// the document to destURL, or back to URL when destURL is empty. It returns
// the number of rows dropped; nothing is written when there were none.
func (s *Service) Dedupe(ctx context.Context, URL, nodePath, destURL string) (int, error) {
	doc, err := s.Load(ctx, URL)
	if err != nil {
		return 0, err
	}
	prop, err := doc.Property(nodePath)
	if err != nil {
		return 0, err
	}
	dropped := prop.Normalize()
	if dropped == 0 {
		return 0, nil
	}
	if destURL == "" {
		destURL = URL
	}
	if err = s.Save(ctx, doc, destURL); err != nil {
		return 0, err
	}
	s.logger.Info("document deduplicated", "url", destURL, "path", nodePath, "dropped", dropped)
	return dropped, nil
}

// DedupeAll drops duplicate rows of every synced map node selected by
// pattern (see Document.Select).
func (s *Service) DedupeAll(ctx context.Context, URL, pattern, destURL string) (int, error) {
	doc, err := s.Load(ctx, URL)
	if err != nil {
		return 0, err
	}
	dropped := 0
	for _, nodePath := range doc.Select(pattern) {
		prop, err := doc.Property(nodePath)
		if err != nil {
			return 0, err
		}
		dropped += prop.Normalize()
	}
	if dropped == 0 {
		return 0, nil
	}
	if destURL == "" {
		destURL = URL
	}
	if err = s.Save(ctx, doc, destURL); err != nil {
		return 0, err
	}
	s.logger.Info("document deduplicated", "url", destURL, "dropped", dropped)
	return dropped, nil
}

func (s *Service) codecFor(URL string) (persist.Codec, error) {
	format := s.config.Format
	if format == "" {
		format = strings.ToLower(path.Ext(URL))
	}
	return persist.CodecFor(format)
}

// Inspect resolves path against a typed object graph and wraps the synced
// map found there. Pass root by pointer to keep the map live.
func (s *Service) Inspect(root any, nodePath string) (*Property, error) {
	parsed, err := s.resolver.Parse(nodePath)
	if err != nil {
		return nil, err
	}
	value, err := s.resolver.ResolveValue(root, parsed)
	if err != nil {
		return nil, err
	}
	return newValueProperty(nodePath, value, s.logger)
}
