package screen

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

type ChatListPage struct {
	Bot   domain.Bot
	Chats []domain.ChatSummary
}

func (p ChatListPage) render(opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Chat History"),
		s.header.Render(fmt.Sprintf("bot: %s  chats: %d", botLabel(p.Bot), len(p.Chats))),
	}

	if len(p.Chats) == 0 {
		lines = append(lines, s.empty.Render("No chats yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, chat := range p.Chats {
		lines = append(lines, s.section.Render(renderChat(chat, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderChat(chat domain.ChatSummary, opts RenderOptions, s styles) string {
	ageStyle := lipgloss.NewStyle().Foreground(ageColor(chat.CreatedAt, opts.Now))
	head := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.name.Render(guestLabel(chat)),
		" ",
		s.meta.Render(fmt.Sprintf("(guest %s)", chat.GuestID)),
		" ",
		ageStyle.Render(formatWhen(chat.CreatedAt, opts.Now)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, head, s.detail.Render(preview(chat.LastResponse, 72)))
}

type TranscriptPage struct {
	Conversation domain.Conversation
}

func (p TranscriptPage) render(opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Conversation with guest %s", p.Conversation.GuestID)),
		s.header.Render(fmt.Sprintf("bot: %s  messages: %d", p.Conversation.BotID, p.Conversation.Len())),
	}

	if p.Conversation.Len() == 0 {
		lines = append(lines, s.empty.Render("No messages yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, message := range p.Conversation.Messages {
		lines = append(lines, s.section.Render(renderMessage(message, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// MessagesPage renders bare messages, used for incremental live output.
type MessagesPage struct {
	Messages []domain.Message
}

func (p MessagesPage) render(opts RenderOptions, s styles) string {
	lines := make([]string, 0, len(p.Messages))
	for _, message := range p.Messages {
		lines = append(lines, renderMessage(message, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMessage(message domain.Message, opts RenderOptions, s styles) string {
	speaker := s.assistant.Render("bot")
	if message.Role == domain.RoleUser {
		speaker = s.guest.Render("guest")
	}

	head := lipgloss.JoinHorizontal(
		lipgloss.Top,
		speaker,
		" ",
		s.meta.Render(formatWhen(message.Timestamp, opts.Now)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, head, s.detail.Render(strings.TrimSpace(message.Text)))
}

type DocumentListPage struct {
	Bot       domain.Bot
	Documents []domain.Document
}

func (p DocumentListPage) render(opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Documents"),
		s.header.Render(fmt.Sprintf("bot: %s  documents: %d", botLabel(p.Bot), len(p.Documents))),
	}

	if len(p.Documents) == 0 {
		lines = append(lines, s.empty.Render("No documents uploaded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, document := range p.Documents {
		ext := document.Extension()
		if ext == "" {
			ext = "file"
		}
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render(fmt.Sprintf("%-5s", strings.ToUpper(ext))),
			" ",
			s.name.Render(document.Name),
			" ",
			s.meta.Render(fmt.Sprintf("(id %s, uploaded %s)", document.ID, formatWhen(document.UploadedAt, opts.Now))),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type DashboardPage struct {
	Session  domain.Session
	Bots     []domain.Bot
	Selected domain.Bot
	Counts   domain.BotCounts
}

func (p DashboardPage) render(_ RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Dashboard"),
		s.header.Render(fmt.Sprintf("signed in as %s  bots: %d", sessionLabel(p.Session), len(p.Bots))),
	}

	if p.Selected.ID == "" {
		lines = append(lines, s.empty.Render("No bot available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		s.section.Render(s.name.Render(botLabel(p.Selected))),
		countLine("messages", p.Counts.Messages, s),
		countLine("guests", p.Counts.Guests, s),
		countLine("manual responses", p.Counts.ManualResponses, s),
	)

	if len(p.Bots) > 1 {
		others := make([]string, 0, len(p.Bots)-1)
		for _, bot := range p.Bots {
			if bot.ID != p.Selected.ID {
				others = append(others, botLabel(bot))
			}
		}
		lines = append(lines, s.section.Render(s.meta.Render("other bots: "+strings.Join(others, ", "))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func countLine(label string, value int64, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render(fmt.Sprintf("%-17s", label+":")),
		s.count.Render(fmt.Sprintf("%d", value)),
	)
}

type ProfilePage struct {
	Session    domain.Session
	DefaultBot domain.Bot
}

func (p ProfilePage) render(_ RenderOptions, s styles) string {
	defaultBot := s.empty.Render("none")
	if p.DefaultBot.ID != "" {
		defaultBot = s.detail.Render(botLabel(p.DefaultBot))
	}

	lines := []string{
		s.title.Render("Profile"),
		profileLine("username", s.name.Render(p.Session.Username), s),
		profileLine("email", s.detail.Render(p.Session.Email), s),
		profileLine("plan", s.detail.Render(p.Session.Plan.Name()), s),
		profileLine("default bot", defaultBot, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func profileLine(label string, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(fmt.Sprintf("%-12s", label+":")), value)
}

func botLabel(bot domain.Bot) string {
	name := strings.TrimSpace(bot.Name)
	if name == "" {
		return string(bot.ID)
	}
	return fmt.Sprintf("%s (%s)", name, bot.ID)
}

func guestLabel(chat domain.ChatSummary) string {
	if label := strings.TrimSpace(chat.GuestDisplayID); label != "" {
		return label
	}
	return "Guest " + string(chat.GuestID)
}

func sessionLabel(session domain.Session) string {
	if session.Username != "" {
		return session.Username
	}
	return session.Email
}

func preview(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return "(no response yet)"
	}

	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-1]) + "…"
}

func formatWhen(at, now time.Time) string {
	if at.IsZero() {
		return "unknown time"
	}
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	if at.After(now) {
		return at.Format("15:04")
	}

	elapsed := now.Sub(at)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 24*time.Hour:
		hours := int(math.Floor(elapsed.Hours()))
		return plural(hours, "hour") + " ago"
	}

	if at.Year() == now.Year() {
		return at.Format("02 Jan 15:04")
	}
	return at.Format("02 Jan 2006")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 240 is faded grey, 255 bright white.
	baseColor := 240.0
	targetColor := 255.0

	interpolated := baseColor + (targetColor-baseColor)*normalized
	return lipgloss.Color(fmt.Sprintf("%d", int(interpolated)))
}

// ageColor fades chat rows from white (just now) to grey (a week old).
func ageColor(at, now time.Time) lipgloss.Color {
	if now.IsZero() || at.IsZero() || at.After(now) {
		return lipgloss.Color("255")
	}

	week := (7 * 24 * time.Hour).Seconds()
	return interpolateColor(week-now.Sub(at).Seconds(), 0, week)
}
