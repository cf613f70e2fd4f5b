package discord

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/bowcinema/internal/models"
)

const chartFileName = "totals.png"

// renderSessionMessage builds the summary embed of a closed session
func renderSessionMessage(session *models.SessionRecord, chartPNG []byte) *discordgo.MessageSend {
	ranked := slices.Clone(session.Shooters)
	slices.SortStableFunc(ranked, func(a, b *models.ShooterRecord) int {
		return cmp.Compare(b.TotalPoints, a.TotalPoints)
	})

	ranking := ""
	for i, shooter := range ranked {
		line := fmt.Sprintf("**%d. %s**: %d points", i+1, shooter.Name, shooter.TotalPoints)
		if i == 0 && shooter.TotalPoints > 0 {
			line += " 🎯"
		}
		ranking += line + "\n"
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Shooters",
			Value:  fmt.Sprintf("%d", len(session.Shooters)),
			Inline: true,
		},
		{
			Name:   "Arrows",
			Value:  fmt.Sprintf("%d per game", session.ArrowsPerPlayer),
			Inline: true,
		},
	}
	if ranking != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Ranking",
			Value:  ranking,
			Inline: false,
		})
	}

	// Best shooter per game
	if len(session.Shooters) > 0 {
		best := ""
		for _, g := range session.Shooters[0].Games {
			name, points := bestInGame(session, g.Name)
			best += fmt.Sprintf("**%s**: %s (%d)\n", g.Name, name, points)
		}
		if best != "" {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:   "Best per Game",
				Value:  best,
				Inline: false,
			})
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Bogen Kino: " + session.ID,
		Description: fmt.Sprintf("Played %s", strings.Join(gameNames(session), ", ")),
		Color:       0x00ff00, // Green color
		Fields:      fields,
	}

	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
	if len(chartPNG) > 0 {
		embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + chartFileName}
		msg.Files = []*discordgo.File{
			{
				Name:        chartFileName,
				ContentType: "image/png",
				Reader:      bytes.NewReader(chartPNG),
			},
		}
	}
	return msg
}

// bestInGame returns the first shooter with the highest total in a game
func bestInGame(session *models.SessionRecord, game string) (string, int) {
	name, points := "", -1
	for _, shooter := range session.Shooters {
		g := shooter.Game(game)
		if g != nil && g.TotalPoints > points {
			name, points = shooter.Name, g.TotalPoints
		}
	}
	return name, max(points, 0)
}

func gameNames(session *models.SessionRecord) []string {
	if len(session.Shooters) == 0 {
		return nil
	}
	names := make([]string, 0, len(session.Shooters[0].Games))
	for _, g := range session.Shooters[0].Games {
		names = append(names, g.Name)
	}
	return names
}
