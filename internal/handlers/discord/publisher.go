// Package discord posts closed session results to a Discord channel.
package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/bowcinema/internal/models"
)

// messageSender is the part of discordgo.Session the publisher uses
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config holds the configuration for the publisher
type Config struct {
	// Discord bot token
	Token string

	// ChannelID receives one message per closed session
	ChannelID string

	Logger *slog.Logger
}

// Publisher sends session summaries through the Discord REST API
type Publisher struct {
	session   *discordgo.Session
	sender    messageSender
	channelID string
	logger    *slog.Logger
}

// New creates a new publisher. No gateway connection is opened; messages
// go out over REST.
func New(cfg *Config) (*Publisher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Token == "" {
		return nil, ErrEmptyToken
	}
	if cfg.ChannelID == "" {
		return nil, ErrEmptyChannel
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	p := newPublisher(session, cfg.ChannelID, cfg.Logger)
	p.session = session
	return p, nil
}

func newPublisher(sender messageSender, channelID string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		sender:    sender,
		channelID: channelID,
		logger:    logger,
	}
}

// PublishSession posts the shooter ranking and, when given, the totals chart
func (p *Publisher) PublishSession(ctx context.Context, session *models.SessionRecord, chartPNG []byte) error {
	if session == nil {
		return ErrNilSession
	}

	msg := renderSessionMessage(session, chartPNG)
	if _, err := p.sender.ChannelMessageSendComplex(p.channelID, msg, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	p.logger.Info("session published",
		slog.String("session", session.ID),
		slog.String("channel", p.channelID),
	)
	return nil
}

// Close releases the underlying Discord session
func (p *Publisher) Close() error {
	if p.session == nil {
		return nil
	}
	return p.session.Close()
}
