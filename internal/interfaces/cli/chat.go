package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"multichat/internal/entities"
	"multichat/internal/usecases"
)

// Backend is the remote reply source; the local MessageService is used when
// it is disabled or fails.
type Backend interface {
	Send(ctx context.Context, platform entities.Platform, text, sessionID string) (string, error)
}

type SessionConfig struct {
	Out        io.Writer
	Backend    Backend
	Local      *usecases.MessageService
	Platform   entities.Platform
	SessionID  string
	UseBackend bool
	// Thinking returns the cosmetic delay before a locally generated reply.
	Thinking func() time.Duration
}

type Session struct {
	out        io.Writer
	backend    Backend
	local      *usecases.MessageService
	platform   entities.Platform
	sessionID  string
	useBackend bool
	thinking   func() time.Duration
	theme      theme
}

func NewSession(cfg SessionConfig) *Session {
	thinking := cfg.Thinking
	if thinking == nil {
		thinking = RandomThinking(time.Second, 3*time.Second)
	}
	return &Session{
		out:        cfg.Out,
		backend:    cfg.Backend,
		local:      cfg.Local,
		platform:   cfg.Platform,
		sessionID:  cfg.SessionID,
		useBackend: cfg.UseBackend && cfg.Backend != nil,
		thinking:   thinking,
		theme:      newTheme(cfg.Platform),
	}
}

// RandomThinking draws a delay uniformly from [min, max).
func RandomThinking(min, max time.Duration) func() time.Duration {
	return func() time.Duration {
		if max <= min {
			return min
		}
		return min + rand.N(max-min)
	}
}

// Run reads lines from in until EOF, /quit or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.printHeader()
	s.assistant(fmt.Sprintf("Hi! 👋 Welcome to your %s AI assistant. I'm here to help with questions, recommendations, and friendly conversation. How can I assist you today?", s.platform))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := s.Handle(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Handle processes one input line. Lines starting with "/" are commands.
func (s *Session) Handle(ctx context.Context, line string) (bool, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return false, nil
	}

	if strings.HasPrefix(text, "/") {
		return s.command(text)
	}

	s.print(s.theme.user, "You", text)
	reply, err := s.reply(ctx, text)
	if err != nil {
		return false, err
	}
	s.assistant(reply)
	return false, nil
}

func (s *Session) command(text string) (bool, error) {
	fields := strings.Fields(text)
	switch strings.ToLower(fields[0]) {
	case "/quit", "/exit":
		s.system("Goodbye!")
		return true, nil
	case "/clear":
		s.local.Forget(s.sessionID)
		s.system("Conversation cleared")
		s.assistant(fmt.Sprintf("Hi! 👋 Welcome to your %s AI assistant. I'm here to help with questions, recommendations, and friendly conversation. How can I assist you today?", s.platform))
	case "/backend":
		if s.backend == nil {
			s.system("No backend configured, staying in Demo mode")
			return false, nil
		}
		s.useBackend = !s.useBackend
		s.system("Mode: " + badge(s.useBackend))
	case "/platform":
		if len(fields) < 2 {
			s.system("Usage: /platform <" + strings.Join(entities.PlatformNames(), "|") + ">")
			return false, nil
		}
		p, err := entities.ParsePlatform(fields[1])
		if err != nil {
			s.system(err.Error())
			return false, nil
		}
		s.switchPlatform(p)
	case "/help":
		s.system("Commands: /platform <name>, /backend, /clear, /quit")
	default:
		s.system("Unknown command " + fields[0] + ", try /help")
	}
	return false, nil
}

func (s *Session) switchPlatform(p entities.Platform) {
	s.platform = p
	s.theme = newTheme(p)
	s.system(fmt.Sprintf("Switched to %s AI assistant", p))
	s.assistant(fmt.Sprintf("Hi! 👋 I'm your %s AI assistant. I'm here to help with anything you need. What can I do for you today?", p))
}

// reply asks the backend first when enabled and falls back to the local
// matcher after the thinking delay.
func (s *Session) reply(ctx context.Context, text string) (string, error) {
	if s.useBackend {
		reply, err := s.backend.Send(ctx, s.platform, text, s.sessionID)
		if err == nil {
			return reply, nil
		}
		log.Debug().Err(err).Msg("backend unavailable, using local assistant")
	}

	if d := s.thinking(); d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	reply, err := s.local.Reply(ctx, s.platform, text, s.sessionID)
	if err != nil {
		return "", err
	}
	return reply.Text, nil
}

func (s *Session) printHeader() {
	fmt.Fprintln(s.out, s.theme.header.Render(fmt.Sprintf("%s AI Assistant", s.platform))+"  "+badge(s.useBackend))
	s.system("Demo persona with canned replies, no real AI. Type /help for commands.")
}

func (s *Session) assistant(text string) {
	s.print(s.theme.assistant, fmt.Sprintf("%s AI", s.platform), text)
}

func (s *Session) system(text string) {
	fmt.Fprintln(s.out, s.theme.system.Render("  "+text))
}

func (s *Session) print(style lipgloss.Style, who, text string) {
	fmt.Fprintf(s.out, "%s %s\n", style.Render(fmt.Sprintf("[%s %s]", who, time.Now().Format("15:04"))), text)
}
