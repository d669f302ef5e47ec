package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"multichat/internal/entities"
	"multichat/internal/interfaces/cli"
	"multichat/internal/repository"
	"multichat/internal/usecases"
)

const apiTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		platformName string
		apiURL       string
		sessionID    string
		offline      bool
		minDelay     time.Duration
		maxDelay     time.Duration
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Terminal client for the multi-platform assistant",
		Long: "Chat with the WhatsApp, Messenger, Telegram or Instagram assistant persona.\n" +
			"Messages go to the HTTP service when it is reachable and are answered locally otherwise.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

			platform, err := entities.ParsePlatform(platformName)
			if err != nil {
				return err
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			conversations, err := repository.NewConversationRepository(1, repository.DefaultHistoryLimit)
			if err != nil {
				return err
			}
			local := usecases.NewMessageService(conversations, usecases.NewRenderer(nil, nil))

			var backend cli.Backend
			if apiURL != "" {
				backend = cli.NewAPIClient(apiURL, apiTimeout)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			session := cli.NewSession(cli.SessionConfig{
				Out:        cmd.OutOrStdout(),
				Backend:    backend,
				Local:      local,
				Platform:   platform,
				SessionID:  sessionID,
				UseBackend: !offline,
				Thinking:   cli.RandomThinking(minDelay, maxDelay),
			})
			err = session.Run(ctx, cmd.InOrStdin())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&platformName, "platform", "p", string(entities.WhatsApp), "assistant persona: WhatsApp, Messenger, Telegram or Instagram")
	flags.StringVar(&apiURL, "api", "http://localhost:5000", "base URL of the chat service, empty to disable")
	flags.StringVarP(&sessionID, "session", "s", "", "session id (random when empty)")
	flags.BoolVar(&offline, "offline", false, "answer locally without calling the service")
	flags.DurationVar(&minDelay, "min-delay", time.Second, "minimum thinking delay for local replies")
	flags.DurationVar(&maxDelay, "max-delay", 3*time.Second, "maximum thinking delay for local replies")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log backend errors to stderr")
	return cmd
}
