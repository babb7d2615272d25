package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/licensetower/pkg/cache"
	"github.com/matzehuels/licensetower/pkg/config"
	"github.com/matzehuels/licensetower/pkg/errors"
	"github.com/matzehuels/licensetower/pkg/manifest"
)

// Scanner builds package records from a dependency tree. The zero value
// is not usable; construct with New.
type Scanner struct {
	cache        cache.Cache
	cacheTTL     time.Duration
	logger       *log.Logger
	chunkSize    int
	licenseNames []string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithCache sets the decode cache and its entry TTL.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Scanner) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithChunkSize overrides the license chunk size.
func WithChunkSize(size int) Option {
	return func(s *Scanner) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithLicenseNames adds extra license basenames to the recognized set.
func WithLicenseNames(names []string) Option {
	return func(s *Scanner) { s.licenseNames = names }
}

// New creates a Scanner logging to logger.
func New(logger *log.Logger, opts ...Option) *Scanner {
	s := &Scanner{
		cache:     cache.NewNullCache(),
		logger:    logger,
		chunkSize: config.DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run scans the tree under root and returns one record per discovered
// manifest. It fails fast with ROOT_NOT_FOUND when root is not a
// directory; every other failure is recovered per package.
func (s *Scanner) Run(ctx context.Context, root string) ([]Record, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, errors.New(errors.ErrCodeRootNotFound, "directory not found: %s", root)
	}

	s.logger.Info("Scanning for package manifests", "root", abs)

	var records []Record
	for manifestPath := range Manifests(ctx, abs) {
		s.logger.Debug("manifest found", "path", manifestPath)
		records = append(records, s.buildRecord(ctx, manifestPath))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Info("Scan complete", "manifests", len(records))
	return records, nil
}

// buildRecord resolves one manifest into a Record. Never fails: manifest
// and license problems degrade to fallback fields or placeholder chunks.
func (s *Scanner) buildRecord(ctx context.Context, manifestPath string) Record {
	pkgDir := filepath.Dir(manifestPath)

	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		raw = nil
	}
	data := manifest.Parse(raw)
	if data == nil {
		s.logger.Debug("manifest unreadable, using fallbacks", "path", manifestPath)
	}
	info := manifest.Extract(data, pkgDir)

	rec := Record{
		Homepage: info.Homepage,
		Name:     info.Name,
		License:  info.License,
		Version:  info.Version,
	}

	licensePath, ok := FindLicense(ctx, pkgDir, s.licenseNames)
	if !ok {
		rec.Path = pkgDir
		return rec
	}
	rec.Path = licensePath

	text, err := s.decodeCached(ctx, licensePath)
	if err != nil {
		s.logger.Debug("license skipped", "path", licensePath, "err", err)
		rec.Chunks = []string{fmt.Sprintf("[Skipped: %s]", errors.UserMessage(err))}
		return rec
	}
	rec.Chunks = SplitChunks(text, s.chunkSize)
	return rec
}

// decodeCached returns the decoded, NFC-normalized text of a license
// file, consulting the decode cache keyed by the raw bytes.
func (s *Scanner) decodeCached(ctx context.Context, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "unreadable license file")
	}

	key := cache.TextKey(raw)
	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		return string(data), nil
	}

	text, err := Decode(raw)
	if err != nil {
		return "", err
	}
	text = norm.NFC.String(text)
	_ = s.cache.Set(ctx, key, []byte(text), s.cacheTTL)
	return text, nil
}
