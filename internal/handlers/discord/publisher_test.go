package discord

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/bowcinema/internal/models"
)

type fakeSender struct {
	channelID string
	sent      *discordgo.MessageSend
	err       error
}

func (f *fakeSender) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channelID = channelID
	f.sent = data
	if f.err != nil {
		return nil, f.err
	}
	return &discordgo.Message{ID: "1", ChannelID: channelID}, nil
}

func testSession() *models.SessionRecord {
	return &models.SessionRecord{
		ID:              "BogenKino_2025-06-14_18-00",
		ArrowsPerPlayer: 3,
		Shooters: []*models.ShooterRecord{
			{Name: "Hawkeye", TotalPoints: 6, Games: []*models.GameRecord{
				{Name: "deer", TotalPoints: 5},
				{Name: "boar", TotalPoints: 1},
			}},
			{Name: "Merida", TotalPoints: 9, Games: []*models.GameRecord{
				{Name: "deer", TotalPoints: 3},
				{Name: "boar", TotalPoints: 6},
			}},
		},
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(&Config{ChannelID: "42"})
	assert.ErrorIs(t, err, ErrEmptyToken)

	_, err = New(&Config{Token: "token"})
	assert.ErrorIs(t, err, ErrEmptyChannel)
}

func TestPublishSession(t *testing.T) {
	sender := &fakeSender{}
	p := newPublisher(sender, "42", nil)

	err := p.PublishSession(context.Background(), testSession(), []byte("png"))
	require.NoError(t, err)

	assert.Equal(t, "42", sender.channelID)
	require.Len(t, sender.sent.Embeds, 1)
	embed := sender.sent.Embeds[0]
	assert.Equal(t, "Bogen Kino: BogenKino_2025-06-14_18-00", embed.Title)
	assert.Equal(t, "Played deer, boar", embed.Description)

	var ranking, best string
	for _, f := range embed.Fields {
		switch f.Name {
		case "Ranking":
			ranking = f.Value
		case "Best per Game":
			best = f.Value
		}
	}
	assert.Equal(t, "**1. Merida**: 9 points 🎯\n**2. Hawkeye**: 6 points\n", ranking)
	assert.Equal(t, "**deer**: Hawkeye (5)\n**boar**: Merida (6)\n", best)

	require.Len(t, sender.sent.Files, 1)
	assert.Equal(t, "attachment://totals.png", embed.Image.URL)
	data, err := io.ReadAll(sender.sent.Files[0].Reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestPublishSession_WithoutChart(t *testing.T) {
	sender := &fakeSender{}
	p := newPublisher(sender, "42", nil)

	require.NoError(t, p.PublishSession(context.Background(), testSession(), nil))
	assert.Empty(t, sender.sent.Files)
	assert.Nil(t, sender.sent.Embeds[0].Image)
}

func TestPublishSession_Errors(t *testing.T) {
	sender := &fakeSender{err: errors.New("rate limited")}
	p := newPublisher(sender, "42", nil)

	err := p.PublishSession(context.Background(), testSession(), nil)
	assert.ErrorIs(t, err, ErrPublishFailed)

	err = p.PublishSession(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNilSession)
}
