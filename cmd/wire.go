package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/monster-deck/internal/adapters/i18n"
	"github.com/bnema/monster-deck/internal/adapters/render/slide"
	tomlrepo "github.com/bnema/monster-deck/internal/adapters/repo/toml"
	"github.com/bnema/monster-deck/internal/adapters/tui"
	"github.com/bnema/monster-deck/internal/application"
	"github.com/bnema/monster-deck/internal/config"
	"github.com/bnema/monster-deck/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	viper         *viper.Viper
	cfg           config.Config
	logger        *zap.Logger
	closeLog      func()
	frameRenderer func(slide.Frame, slide.Localizer, slide.RenderOptions) (string, error)
	runPresenter  func(context.Context, tui.Model, ...tea.ProgramOption) error

	deckPathFlag string
	localeFlag   string
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Config{Path: cfg.LogPath, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	return &app{
		viper:         v,
		cfg:           cfg,
		logger:        logger,
		closeLog:      closeLog,
		frameRenderer: slide.Render,
		runPresenter:  tui.Run,
	}, nil
}

// deckService builds the deck repository after flags are parsed so --deck
// can override deck.path.
func (a *app) deckService() (*application.DeckService, *tomlrepo.Repository, error) {
	if a.deckPathFlag != "" {
		a.viper.Set(config.KeyDeckPath, a.deckPathFlag)
	}

	repo, err := tomlrepo.NewRepository(a.viper, a.logger.Named("deck"))
	if err != nil {
		return nil, nil, fmt.Errorf("wire deck repository: %w", err)
	}

	return application.NewDeckService(repo, repo, a.logger.Named("presentation")), repo, nil
}

func (a *app) translator() (*i18n.Translator, error) {
	locale := a.cfg.Locale
	if a.localeFlag != "" {
		locale = a.localeFlag
	}

	tr, err := i18n.NewTranslator(locale)
	if err != nil {
		return nil, fmt.Errorf("wire translator: %w", err)
	}

	return tr, nil
}

func (a *app) renderOptions(width int) slide.RenderOptions {
	if width <= 0 {
		width = a.cfg.Width
	}

	return slide.RenderOptions{Width: width, Style: a.cfg.Style}
}
