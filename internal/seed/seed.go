// Package seed checks and imports storefront seed documents. Every record of
// every collection is validated against its registered shop schema and all
// invalid records are reported at once. Import writes nothing unless the whole
// document is valid.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/schema"
	"github.com/dmitrymomot/storefront/pkg/shop"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

var (
	// ErrUnsupportedFormat is returned for seed files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("seed: unsupported file format")

	// ErrReadFile is returned when the seed file cannot be read or decoded.
	ErrReadFile = errors.New("seed: cannot read seed file")

	// ErrInvalidSeed is returned by Import when any record fails validation.
	ErrInvalidSeed = errors.New("seed: document contains invalid records")

	// ErrImport is returned when the store rejects a collection.
	ErrImport = errors.New("seed: import failed")

	// ErrHashPassword is returned when a user password cannot be hashed.
	ErrHashPassword = errors.New("seed: cannot hash user password")
)

// Collection names as they appear in a seed document.
const (
	CollectionProducts = "products"
	CollectionUsers    = "users"
	CollectionWebPages = "webPages"
	CollectionSettings = "settings"
)

// Document is a seed file: raw records keyed by collection.
type Document struct {
	Products []any `json:"products" yaml:"products"`
	Users    []any `json:"users" yaml:"users"`
	WebPages []any `json:"webPages" yaml:"webPages"`
	Settings []any `json:"settings" yaml:"settings"`
}

// Issue is one record that failed validation.
type Issue struct {
	Collection string
	Index      int
	Schema     string
	Errors     validator.ValidationErrors
}

// Report summarizes a check run.
type Report struct {
	Checked int
	Failed  int
	Issues  []Issue
}

// OK reports whether every record passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Load reads a seed document from path. The format follows the extension:
// .json, or .yaml/.yml.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.Join(ErrReadFile, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DecodeJSON decodes a JSON seed document, keeping numbers in their literal form.
func DecodeJSON(data []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, errors.Join(ErrReadFile, err)
	}
	return doc, nil
}

// DecodeYAML decodes a YAML seed document.
func DecodeYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Join(ErrReadFile, err)
	}
	return doc, nil
}

// Checker validates seed documents.
type Checker struct {
	log            *slog.Logger
	settingsSchema string
	clock          func() time.Time
	bcryptCost     int
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger that receives one record per invalid entry.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.log = l
		}
	}
}

// WithStrictSettings also requires every default* setting to name one of the
// available* entries.
func WithStrictSettings(strict bool) Option {
	return func(c *Checker) {
		if strict {
			c.settingsSchema = shop.SchemaSettingConsistent
		} else {
			c.settingsSchema = shop.SchemaSettingInput
		}
	}
}

// WithClock sets the clock used by time-dependent rules.
func WithClock(clock func() time.Time) Option {
	return func(c *Checker) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithBcryptCost sets the bcrypt cost used to hash user passwords on import.
func WithBcryptCost(cost int) Option {
	return func(c *Checker) {
		if cost > 0 {
			c.bcryptCost = cost
		}
	}
}

// NewChecker returns a Checker. Without options it logs nowhere and uses the
// lenient settings schema.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		log:            logger.Discard(),
		settingsSchema: shop.SchemaSettingInput,
		clock:          time.Now,
		bcryptCost:     bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// collection is one seed collection bound to its schema and target collection.
// prepare, when set, rewrites a normalized record before it is stored.
type collection struct {
	name    string
	target  string
	schema  string
	records []any
	prepare func(rec map[string]any) error
}

func (c *Checker) collections(doc Document) []collection {
	return []collection{
		{name: CollectionProducts, target: "products", schema: shop.SchemaProductInput, records: doc.Products},
		{name: CollectionUsers, target: "users", schema: shop.SchemaUserInput, records: doc.Users, prepare: c.hashPassword},
		{name: CollectionWebPages, target: "webpages", schema: shop.SchemaWebPageInput, records: doc.WebPages},
		{name: CollectionSettings, target: "settings", schema: c.settingsSchema, records: doc.Settings},
	}
}

// hashPassword replaces a plaintext password with its bcrypt hash. A value
// that already is a bcrypt hash is kept.
func (c *Checker) hashPassword(rec map[string]any) error {
	password, _ := rec["password"].(string)
	if password == "" {
		return nil
	}
	if _, err := bcrypt.Cost([]byte(password)); err == nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.bcryptCost)
	if err != nil {
		return errors.Join(ErrHashPassword, err)
	}
	rec["password"] = string(hash)
	return nil
}

// Check validates every record of doc and returns the collected report.
func (c *Checker) Check(ctx context.Context, doc Document) Report {
	report, _ := c.check(ctx, doc)
	return report
}

// check validates doc and also returns the normalized records per collection.
func (c *Checker) check(ctx context.Context, doc Document) (Report, map[string][]any) {
	var report Report
	normalized := make(map[string][]any)
	opt := schema.WithClock(c.clock)

	for _, col := range c.collections(doc) {
		for i, rec := range col.records {
			report.Checked++
			v, err := shop.Validate(col.schema, rec, opt)
			if err == nil {
				normalized[col.name] = append(normalized[col.name], v)
				continue
			}
			verrs := validator.ExtractValidationErrors(err)
			report.Failed++
			report.Issues = append(report.Issues, Issue{
				Collection: col.name,
				Index:      i,
				Schema:     col.schema,
				Errors:     verrs,
			})
			c.log.WarnContext(ctx, "invalid seed record",
				logger.Collection(col.name),
				logger.Index(i),
				logger.Schema(col.schema),
				logger.ValidationErrors(verrs),
			)
		}
	}

	c.log.InfoContext(ctx, "seed check finished",
		logger.Count("checked", report.Checked),
		logger.Count("failed", report.Failed),
	)
	return report, normalized
}

// Store replaces the contents of a collection.
type Store interface {
	Replace(ctx context.Context, collection string, docs []any) (int, error)
}

// Import validates doc and, only when every record passes, replaces each
// collection that has records with their normalized form. User passwords are
// stored as bcrypt hashes. Collections the document leaves empty are not
// touched.
func (c *Checker) Import(ctx context.Context, store Store, doc Document) (Report, error) {
	report, normalized := c.check(ctx, doc)
	if !report.OK() {
		return report, fmt.Errorf("%w: %d of %d", ErrInvalidSeed, report.Failed, report.Checked)
	}

	cols := c.collections(doc)
	for _, col := range cols {
		if col.prepare == nil {
			continue
		}
		for i, rec := range normalized[col.name] {
			m, ok := rec.(map[string]any)
			if !ok {
				continue
			}
			if err := col.prepare(m); err != nil {
				c.log.ErrorContext(ctx, "seed record preparation failed",
					logger.Collection(col.name),
					logger.Index(i),
					logger.Error(err),
				)
				return report, err
			}
		}
	}

	for _, col := range cols {
		docs := normalized[col.name]
		if len(docs) == 0 {
			continue
		}
		n, err := store.Replace(ctx, col.target, docs)
		if err != nil {
			c.log.ErrorContext(ctx, "seed import failed",
				logger.Collection(col.target),
				logger.Error(err),
			)
			return report, errors.Join(ErrImport, err)
		}
		c.log.InfoContext(ctx, "collection imported",
			logger.Collection(col.target),
			logger.Count("inserted", n),
		)
	}
	return report, nil
}
