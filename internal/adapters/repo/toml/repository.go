package toml

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/monster-deck/internal/domain"
	"github.com/bnema/monster-deck/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	deckPathKey     = "deck.path"
	builtinDeckFile = "monster-oop.toml"
)

//go:embed builtin
var builtinFS embed.FS

// Repository reads a deck from a TOML file. With no deck.path configured it
// serves the embedded deck. View refs resolve to an inline [views] entry or to
// a markdown file relative to the deck file.
type Repository struct {
	source   string
	fsys     fs.FS
	deckFile string
	logger   *zap.Logger

	mu     sync.Mutex
	loaded *deckSchema
}

var (
	_ ports.DeckRepository = (*Repository)(nil)
	_ ports.ViewSource     = (*Repository)(nil)
)

func NewRepository(cfg *viper.Viper, logger *zap.Logger) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	deckPath := strings.TrimSpace(cfg.GetString(deckPathKey))
	if deckPath == "" {
		sub, err := fs.Sub(builtinFS, "builtin")
		if err != nil {
			return nil, fmt.Errorf("open builtin deck: %w", err)
		}
		return &Repository{source: "builtin", fsys: sub, deckFile: builtinDeckFile, logger: logger}, nil
	}

	deckPath, err := normalizeDeckPath(deckPath)
	if err != nil {
		return nil, err
	}

	return &Repository{
		source:   deckPath,
		fsys:     os.DirFS(filepath.Dir(deckPath)),
		deckFile: filepath.Base(deckPath),
		logger:   logger,
	}, nil
}

// Source is the deck file path, or "builtin".
func (r *Repository) Source() string {
	return r.source
}

func (r *Repository) Load(ctx context.Context) (domain.Deck, error) {
	if err := ctx.Err(); err != nil {
		return domain.Deck{}, err
	}

	file, err := r.schema()
	if err != nil {
		return domain.Deck{}, err
	}

	return fromSchema(*file), nil
}

func (r *Repository) Body(ctx context.Context, ref domain.ViewRef) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	file, err := r.schema()
	if err != nil {
		return "", err
	}

	return r.resolveView(*file, string(ref))
}

func (r *Repository) schema() (*deckSchema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded != nil {
		return r.loaded, nil
	}

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	for _, slide := range file.Slides {
		if _, err := r.resolveView(file, slide.View); err != nil {
			return nil, fmt.Errorf("slide %q: %w", slide.ID, err)
		}
	}

	r.logger.Info("deck loaded",
		zap.String("source", r.source),
		zap.String("title", file.Title),
		zap.Int("slides", len(file.Slides)),
	)

	r.loaded = &file
	return r.loaded, nil
}

func (r *Repository) readSchema() (deckSchema, error) {
	data, err := fs.ReadFile(r.fsys, r.deckFile)
	if err != nil {
		return deckSchema{}, fmt.Errorf("read deck file: %w", err)
	}

	var file deckSchema
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return deckSchema{}, fmt.Errorf("decode deck file: %s", strictErr.String())
		}
		return deckSchema{}, fmt.Errorf("decode deck file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return deckSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) resolveView(file deckSchema, ref string) (string, error) {
	if body, ok := file.Views[ref]; ok {
		return body, nil
	}

	name := path.Clean(filepath.ToSlash(strings.TrimSpace(ref)))
	if ref == "" || !fs.ValidPath(name) || path.Ext(name) != ".md" {
		return "", fmt.Errorf("%w: %q", domain.ErrViewNotFound, ref)
	}

	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", domain.ErrViewNotFound, ref)
		}
		return "", fmt.Errorf("read view %q: %w", ref, err)
	}

	return string(data), nil
}

func normalizeDeckPath(deckPath string) (string, error) {
	if strings.HasPrefix(deckPath, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		deckPath = filepath.Join(homeDir, deckPath[2:])
	}

	absPath, err := filepath.Abs(deckPath)
	if err != nil {
		return "", fmt.Errorf("resolve deck path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func fromSchema(file deckSchema) domain.Deck {
	slides := make([]domain.Slide, 0, len(file.Slides))
	for _, entry := range file.Slides {
		slides = append(slides, domain.Slide{
			ID:       domain.SlideID(strings.TrimSpace(entry.ID)),
			Module:   entry.Module,
			Kind:     domain.Kind(strings.ToLower(strings.TrimSpace(entry.Kind))),
			Title:    entry.Title,
			Subtitle: entry.Subtitle,
			View:     domain.ViewRef(entry.View),
		})
	}

	return domain.Deck{Title: file.Title, Slides: slides}
}
