package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/keydrill/internal/app"
	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/config"
	"github.com/abhisek/keydrill/internal/logger"
	"github.com/abhisek/keydrill/internal/session"
)

// env is everything a command needs to run a quiz.
type env struct {
	cfg  *config.Config
	log  *zap.Logger
	sess *session.Session
}

// setup loads configuration from the command's flags and builds the logger
// and session.
func setup(cmd *cobra.Command) (*env, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(file, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	sess, err := session.New(catalog.Default(), session.Config{
		Settings: cfg.Settings(),
		Logger:   log,
	})
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &env{cfg: cfg, log: log, sess: sess}, nil
}

// runApp launches the TUI. With startQuiz the first quiz starts immediately.
func runApp(cmd *cobra.Command, startQuiz bool) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	if startQuiz {
		if err := e.sess.Start(); err != nil {
			if errors.Is(err, session.ErrNoQuestions) {
				return fmt.Errorf("%w (difficulty %s, %s)", err,
					e.cfg.Quiz.Difficulty, e.sess.Settings().CategoryLabel())
			}
			return err
		}
	}

	e.log.Info("starting tui", zap.Bool("start_quiz", startQuiz))
	return app.Run(app.Options{
		Session:       e.sess,
		FeedbackDelay: e.cfg.Quiz.FeedbackDelay,
		StartQuiz:     startQuiz,
	})
}
