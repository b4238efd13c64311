// Package importer moves translation pairs between local files, the object store
// and the record store.
//
// A prefix holds English originals under en/ and Spanish translations under es/,
// one JSON document per unit, paired by file stem. Every operation requires an
// active admin reviewer.
package importer

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/repository/prompt"
	"github.com/Taichi-iskw/transqa/internal/repository/reviewer"
	"github.com/Taichi-iskw/transqa/internal/repository/translation"
	"github.com/Taichi-iskw/transqa/internal/service/access"
	"github.com/Taichi-iskw/transqa/internal/storage"
)

const (
	// DefaultConcurrency bounds parallel object fetches
	DefaultConcurrency = 8

	maxValidSamples   = 10
	maxInvalidSamples = 5
)

// PromptSpec identifies the prompt a batch was produced with. It is created when missing.
type PromptSpec struct {
	Key         string
	Name        string
	Description *string
}

// Validation is the outcome of checking a prefix before import
type Validation struct {
	Valid       bool     `json:"valid"`
	Message     string   `json:"message"`
	HasEnFolder bool     `json:"has_en_folder"`
	HasEsFolder bool     `json:"has_es_folder"`
	SampleFiles []string `json:"sample_files"`
}

// LoadResult summarizes one import run
type LoadResult struct {
	ExecutionID        string `json:"execution_id"`
	TranslationsLoaded int    `json:"translations_loaded"`
	PromptsCreated     int    `json:"prompts_created"`
	Skipped            int    `json:"skipped"`
}

// UploadResult lists the objects written by Upload
type UploadResult struct {
	Prefix   string   `json:"prefix"`
	Uploaded int      `json:"uploaded"`
	Keys     []string `json:"keys"`
}

// Service validates prefixes and imports translation pairs
type Service interface {
	ValidatePrefix(ctx context.Context, reviewerName, prefix string) (*Validation, error)
	Load(ctx context.Context, reviewerName, prefix, description string, spec PromptSpec) (*LoadResult, error)
	// Upload copies en/*.json and es/*.json from files to the object store under prefix
	Upload(ctx context.Context, reviewerName string, files fs.FS, prefix string) (*UploadResult, error)
}

type importService struct {
	store        storage.ObjectStore
	reviewers    reviewer.Repository
	prompts      prompt.Repository
	translations translation.Repository
	concurrency  int
	logger       *slog.Logger
	tracer       trace.Tracer
}

// NewService creates an import service. concurrency <= 0 selects DefaultConcurrency.
func NewService(
	store storage.ObjectStore,
	reviewers reviewer.Repository,
	prompts prompt.Repository,
	translations translation.Repository,
	concurrency int,
	logger *slog.Logger,
) Service {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &importService{
		store:        store,
		reviewers:    reviewers,
		prompts:      prompts,
		translations: translations,
		concurrency:  concurrency,
		logger:       logger,
		tracer:       otel.Tracer("import-service"),
	}
}

// ExecutionID derives the stable identifier of an import run
func ExecutionID(prefix, description string) string {
	sum := md5.Sum([]byte(prefix + "|" + description))
	id, _ := uuid.FromBytes(sum[:])
	return id.String()
}

func (s *importService) ValidatePrefix(ctx context.Context, reviewerName, prefix string) (*Validation, error) {
	if _, err := access.Admin(ctx, s.reviewers, reviewerName); err != nil {
		return nil, err
	}

	prefix, err := normalizePrefix(prefix)
	if err != nil {
		return nil, err
	}

	objects, err := s.store.ListObjects(ctx, prefix)
	if err != nil {
		return nil, err
	}

	if len(objects) == 0 {
		return &Validation{
			Message:     fmt.Sprintf("No objects found with prefix: %s", prefix),
			SampleFiles: []string{},
		}, nil
	}

	hasEn, hasEs := hasFolder(objects, prefix, "en"), hasFolder(objects, prefix, "es")
	if !hasEn || !hasEs {
		return &Validation{
			Message:     "Missing required folders: " + strings.Join(missingFolders(hasEn, hasEs), ", "),
			HasEnFolder: hasEn,
			HasEsFolder: hasEs,
			SampleFiles: head(objects, maxInvalidSamples),
		}, nil
	}

	samples := []string{}
	for _, key := range head(objects, maxValidSamples) {
		if strings.HasSuffix(key, ".json") {
			samples = append(samples, key)
		}
	}

	return &Validation{
		Valid:       true,
		Message:     fmt.Sprintf("Valid prefix with %d objects found", len(objects)),
		HasEnFolder: true,
		HasEsFolder: true,
		SampleFiles: samples,
	}, nil
}

func (s *importService) Load(ctx context.Context, reviewerName, prefix, description string, spec PromptSpec) (*LoadResult, error) {
	if _, err := access.Admin(ctx, s.reviewers, reviewerName); err != nil {
		return nil, err
	}

	prefix, err := normalizePrefix(prefix)
	if err != nil {
		return nil, err
	}
	if spec.Key == "" || spec.Name == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "prompt key and name are required")
	}

	executionID := ExecutionID(prefix, description)
	ctx, span := s.tracer.Start(ctx, "import.Load", trace.WithAttributes(
		attribute.String("prefix", prefix),
		attribute.String("execution_id", executionID),
	))
	defer span.End()

	existing, err := s.translations.CountByExecution(ctx, executionID)
	if err != nil {
		return nil, fail(span, err)
	}
	if existing > 0 {
		return nil, fail(span, apperrors.New(apperrors.CodeConflict,
			fmt.Sprintf("translations from this prefix already loaded (execution_id: %s)", executionID)))
	}

	objects, err := s.store.ListObjects(ctx, prefix)
	if err != nil {
		return nil, fail(span, err)
	}
	pairs := pairObjects(objects)
	if len(pairs) == 0 {
		return nil, fail(span, apperrors.New(apperrors.CodeInvalidArg,
			fmt.Sprintf("no complete en/es pairs found under %s", prefix)))
	}

	p, created, err := s.ensurePrompt(ctx, spec)
	if err != nil {
		return nil, fail(span, err)
	}

	loaded, err := s.fetchPairs(ctx, pairs)
	if err != nil {
		return nil, fail(span, err)
	}

	var desc *string
	if description != "" {
		desc = &description
	}

	batch := make([]*model.Translation, 0, len(loaded))
	for _, l := range loaded {
		if l == nil {
			continue
		}
		l.ExecutionID = executionID
		l.ExecutionDescription = desc
		l.PromptID = p.ID
		batch = append(batch, l)
	}

	result := &LoadResult{ExecutionID: executionID, Skipped: len(pairs) - len(batch)}
	if created {
		result.PromptsCreated = 1
	}
	if len(batch) > 0 {
		n, err := s.translations.CreateBatch(ctx, batch)
		if err != nil {
			return nil, fail(span, err)
		}
		result.TranslationsLoaded = int(n)
	}

	span.SetAttributes(
		attribute.Int("translations_loaded", result.TranslationsLoaded),
		attribute.Int("skipped", result.Skipped),
	)
	s.logger.InfoContext(ctx, "import finished",
		slog.String("execution_id", executionID),
		slog.Int("pairs", len(pairs)),
		slog.Int("loaded", result.TranslationsLoaded),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *importService) Upload(ctx context.Context, reviewerName string, files fs.FS, prefix string) (*UploadResult, error) {
	if _, err := access.Admin(ctx, s.reviewers, reviewerName); err != nil {
		return nil, err
	}

	prefix, err := normalizePrefix(prefix)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "import.Upload", trace.WithAttributes(attribute.String("prefix", prefix)))
	defer span.End()

	var names []string
	for _, lang := range []string{"en", "es"} {
		matches, err := fs.Glob(files, lang+"/*.json")
		if err != nil {
			return nil, fail(span, apperrors.Wrap(err, apperrors.CodeInvalidArg, "failed to list local files"))
		}
		if len(matches) == 0 {
			return nil, fail(span, apperrors.New(apperrors.CodeInvalidArg,
				fmt.Sprintf("no %s/*.json files to upload", lang)))
		}
		names = append(names, matches...)
	}
	sort.Strings(names)

	keys := make([]string, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, name := range names {
		g.Go(func() error {
			body, err := fs.ReadFile(files, name)
			if err != nil {
				return apperrors.Wrap(err, apperrors.CodeInvalidArg, "failed to read "+name)
			}
			if !json.Valid(body) {
				return apperrors.New(apperrors.CodeInvalidArg, name+" is not valid JSON")
			}
			key := prefix + "/" + name
			if err := s.store.PutJSON(gctx, key, json.RawMessage(body)); err != nil {
				return err
			}
			keys[i] = key
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.Int("uploaded", len(keys)))
	s.logger.InfoContext(ctx, "upload finished", slog.String("prefix", prefix), slog.Int("objects", len(keys)))
	return &UploadResult{Prefix: prefix, Uploaded: len(keys), Keys: keys}, nil
}

func (s *importService) ensurePrompt(ctx context.Context, spec PromptSpec) (*model.Prompt, bool, error) {
	p, err := s.prompts.GetByKey(ctx, spec.Key)
	if err == nil {
		return p, false, nil
	}
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		return nil, false, err
	}

	p = &model.Prompt{Key: spec.Key, Name: spec.Name, Description: spec.Description}
	if err := s.prompts.Create(ctx, p); err != nil {
		return nil, false, err
	}
	s.logger.InfoContext(ctx, "prompt created", slog.String("key", p.Key), slog.Int("id", p.ID))
	return p, true, nil
}

// fetchPairs reads every pair concurrently. A pair whose documents cannot be
// read is logged and left nil; only cancellation aborts the run.
func (s *importService) fetchPairs(ctx context.Context, pairs []pair) ([]*model.Translation, error) {
	out := make([]*model.Translation, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, p := range pairs {
		g.Go(func() error {
			t, err := s.fetchPair(gctx, p)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.logger.WarnContext(gctx, "skipping translation pair",
					slog.String("en", p.en),
					slog.String("es", p.es),
					slog.Any("error", err),
				)
				return nil
			}
			out[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *importService) fetchPair(ctx context.Context, p pair) (*model.Translation, error) {
	var en, es document
	if err := s.store.GetJSON(ctx, p.en, &en); err != nil {
		return nil, err
	}
	if err := s.store.GetJSON(ctx, p.es, &es); err != nil {
		return nil, err
	}

	t := &model.Translation{
		OriginalContent:   en.text(),
		TranslatedContent: es.text(),
		SourceLanguage:    "en",
		TargetLanguage:    "es",
		InsightsPath:      &p.en,
		AutomatedQAPath:   &p.es,
	}
	if es.Score != nil {
		for _, metric := range model.AllMetrics {
			if v := es.Score.Get(metric); v != nil && (*v < 0 || *v > 1) {
				return nil, apperrors.New(apperrors.CodeInvalidArg,
					fmt.Sprintf("%s score %v out of range in %s", metric, *v, p.es))
			}
		}
		t.Automated = *es.Score
	}
	return t, nil
}

type pair struct {
	stem string
	en   string
	es   string
}

// pairObjects matches en/<stem>.json with es/<stem>.json, ordered by stem
func pairObjects(keys []string) []pair {
	es := make(map[string]string)
	for _, key := range keys {
		if lang, stem, ok := classify(key); ok && lang == "es" {
			es[stem] = key
		}
	}

	var pairs []pair
	for _, key := range keys {
		lang, stem, ok := classify(key)
		if !ok || lang != "en" {
			continue
		}
		if esKey, found := es[stem]; found {
			pairs = append(pairs, pair{stem: stem, en: key, es: esKey})
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].stem < pairs[j].stem })
	return pairs
}

// classify returns the language folder and stem of a JSON key
func classify(key string) (lang, stem string, ok bool) {
	if !strings.HasSuffix(key, ".json") {
		return "", "", false
	}
	dir := path.Base(path.Dir(key))
	if dir != "en" && dir != "es" {
		return "", "", false
	}
	return dir, strings.TrimSuffix(path.Base(key), ".json"), true
}

func normalizePrefix(prefix string) (string, error) {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return "", apperrors.New(apperrors.CodeInvalidArg, "prefix cannot be empty")
	}
	return prefix, nil
}

func hasFolder(keys []string, prefix, lang string) bool {
	for _, key := range keys {
		if strings.HasPrefix(key, prefix+"/"+lang+"/") || strings.HasPrefix(key, lang+"/") {
			return true
		}
	}
	return false
}

func missingFolders(hasEn, hasEs bool) []string {
	var missing []string
	if !hasEn {
		missing = append(missing, "en/")
	}
	if !hasEs {
		missing = append(missing, "es/")
	}
	return missing
}

func head(keys []string, n int) []string {
	if len(keys) > n {
		keys = keys[:n]
	}
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
