// Package render draws served screens in the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/2beens/befit/internal/client"
	"github.com/2beens/befit/internal/dashboard"
	"github.com/2beens/befit/internal/diet"
	"github.com/2beens/befit/internal/landing"
	"github.com/2beens/befit/internal/profile"
	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/weight"
	"github.com/2beens/befit/internal/workouts"
)

const (
	DefaultWidth = 60
	barCells     = 20
)

var colors = map[string]lipgloss.Color{
	screen.ColorBlack:        lipgloss.Color("#000000"),
	screen.ColorWhite:        lipgloss.Color("#ffffff"),
	screen.ColorGray:         lipgloss.Color("#8e8e93"),
	screen.ColorPanelDark:    lipgloss.Color("#333333"),
	screen.ColorPanelLight:   lipgloss.Color("#f2f2f7"),
	screen.ColorAccent:       lipgloss.Color("#0a84ff"),
	screen.ColorStoryMuted:   lipgloss.Color("#708090"),
	screen.ColorDone:         lipgloss.Color("#30d158"),
	screen.ColorMacroProtein: lipgloss.Color("#ff453a"),
	screen.ColorMacroFat:     lipgloss.Color("#ffd60a"),
}

func color(name string) lipgloss.Color {
	if c, ok := colors[name]; ok {
		return c
	}
	return lipgloss.Color(name)
}

type styles struct {
	page    lipgloss.Style
	topBar  lipgloss.Style
	title   lipgloss.Style
	heading lipgloss.Style
	panel   lipgloss.Style
	muted   lipgloss.Style
	button  lipgloss.Style
}

func newStyles(p screen.Palette, width int) styles {
	return styles{
		page: lipgloss.NewStyle().
			Foreground(color(p.Foreground)).
			Background(color(p.Background)).
			Width(width),
		topBar:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		title:   lipgloss.NewStyle().Bold(true).Foreground(color(p.Accent)).MarginTop(1),
		heading: lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(p.Muted)).
			Padding(0, 1),
		muted:  lipgloss.NewStyle().Foreground(color(p.Muted)),
		button: lipgloss.NewStyle().Foreground(color(p.Accent)).Bold(true),
	}
}

// Screen renders s for a terminal of the given width.
func Screen(s *client.Screen, width int) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	st := newStyles(s.Palette, width)

	body, err := renderBody(st, s)
	if err != nil {
		return "", err
	}

	return st.page.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		topBar(st, s.TopBar, s.Mode),
		st.title.Render(s.Title),
		body,
	)), nil
}

func topBar(st styles, bar screen.TopBar, mode screen.Mode) string {
	toggle := "[light]"
	if mode.Dark() {
		toggle = "[dark]"
	}
	secondary := bar.Secondary.Label
	if bar.Secondary.Kind == screen.SecondaryLogin {
		secondary = lipgloss.NewStyle().
			Foreground(color(bar.Secondary.Foreground)).
			Background(color(bar.Secondary.Background)).
			Padding(0, 1).
			Render(secondary)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		st.topBar.Render(bar.Logo),
		st.topBar.Render(toggle),
		st.topBar.Render(secondary),
	)
}

func renderBody(st styles, s *client.Screen) (string, error) {
	switch s.Name {
	case screen.NameLanding:
		var b landing.Body
		if err := decode(s, &b); err != nil {
			return "", err
		}
		return landingBody(st, b), nil
	case screen.NameDashboard:
		var b dashboard.Body
		if err := decode(s, &b); err != nil {
			return "", err
		}
		return dashboardBody(st, b), nil
	case screen.NameDiet:
		var b diet.Overview
		if err := decode(s, &b); err != nil {
			return "", err
		}
		return dietBody(st, b), nil
	case screen.NameWeight:
		var b weight.Tracker
		if err := decode(s, &b); err != nil {
			return "", err
		}
		return weightBody(st, b), nil
	case screen.NameWorkouts:
		var b workouts.Overview
		if err := decode(s, &b); err != nil {
			return "", err
		}
		return workoutsBody(st, b), nil
	case screen.NameWorkout:
		var b workouts.Detail
		if err := decode(s, &b); err != nil {
			return "", err
		}
		return workoutBody(st, b), nil
	case screen.NameProfile:
		var b profile.View
		if err := decode(s, &b); err != nil {
			return "", err
		}
		return profileBody(st, b), nil
	default:
		return "", fmt.Errorf("unknown screen: %q", s.Name)
	}
}

func decode(s *client.Screen, dst any) error {
	if err := json.Unmarshal(s.Body, dst); err != nil {
		return fmt.Errorf("decode %s body: %w", s.Name, err)
	}
	return nil
}

// Bar draws fraction (0..1) as a fixed width cell bar.
func Bar(fraction float64, cells int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(cells) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", cells-filled) + "]"
}

func action(st styles, a screen.Action) string {
	return st.button.Render("> "+a.Label) + st.muted.Render(" ("+a.Command+")")
}

func landingBody(st styles, b landing.Body) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		b.Tagline,
		action(st, b.Documentation),
		action(st, b.GitHub),
		st.muted.Render("illustration: "+b.Illustration),
		st.heading.Render(b.Story.Title),
		lipgloss.NewStyle().Foreground(color(b.Story.Color)).Render(b.Story.Text),
	)
}

func dashboardBody(st styles, b dashboard.Body) string {
	tiles := make([]string, 0, len(b.Tiles))
	for _, t := range b.Tiles {
		tiles = append(tiles, st.panel.Render(t.Title+"\n"+t.Value))
	}

	feed := make([]string, 0, len(b.Feed))
	for _, item := range b.Feed {
		feed = append(feed, fmt.Sprintf("%s  %s  %s", item.Username, item.Workout, st.muted.Render(item.TimeAgo)))
	}
	if len(feed) == 0 {
		feed = append(feed, st.muted.Render("no posts yet"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		action(st, b.StartWorkout),
		lipgloss.JoinHorizontal(lipgloss.Top, tiles...),
		st.heading.Render(b.TrendTitle),
		chart(st, b.Trend),
		st.heading.Render(b.FeedTitle),
		strings.Join(feed, "\n"),
	)
}

func dietBody(st styles, b diet.Overview) string {
	lines := []string{
		fmt.Sprintf("%s %s %s", b.Calories.ValueLabel, b.Calories.GoalLabel, Bar(b.Calories.Fraction, barCells)),
	}
	for _, m := range b.Macros {
		lines = append(lines, fmt.Sprintf(
			"%-8s %s %s",
			m.Name,
			lipgloss.NewStyle().Foreground(color(m.Color)).Render(Bar(m.Fraction, barCells)),
			m.Label,
		))
	}
	lines = append(lines, action(st, b.AddFood), st.heading.Render(b.EntriesTitle))
	for _, e := range b.Entries {
		lines = append(lines, fmt.Sprintf("%s  %s", e.Name, st.muted.Render(e.Label)))
	}
	if len(b.Entries) == 0 {
		lines = append(lines, st.muted.Render("nothing eaten yet"))
	}
	return strings.Join(lines, "\n")
}

func chart(st styles, c weight.Chart) string {
	if c.Empty || len(c.Points) == 0 {
		return st.muted.Render("no weight samples")
	}
	span := c.Domain.Max - c.Domain.Min
	lines := make([]string, 0, len(c.Points))
	for _, p := range c.Points {
		fraction := 0.0
		if span > 0 {
			fraction = (p.Weight - c.Domain.Min) / span
		}
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			p.Timestamp.Format("Jan 02"),
			Bar(fraction, barCells),
			weight.FormatWeight(p.Weight),
		))
	}
	lines = append(lines, st.muted.Render(fmt.Sprintf(
		"domain %s - %s %s",
		weight.FormatWeight(c.Domain.Min),
		weight.FormatWeight(c.Domain.Max),
		c.Unit,
	)))
	return strings.Join(lines, "\n")
}

func weightBody(st styles, b weight.Tracker) string {
	today := st.muted.Render("no entry today")
	if b.Today != nil {
		today = b.Today.Label
	}
	lines := []string{
		st.heading.Render(b.TrendTitle),
		chart(st, b.Chart),
		st.heading.Render(b.TodayTitle),
		today,
		action(st, b.AddWeight),
		st.heading.Render(b.EntriesTitle),
	}
	for _, e := range b.Entries {
		lines = append(lines, fmt.Sprintf("%s  %s", e.Day, e.Label))
	}
	return strings.Join(lines, "\n")
}

func workoutsBody(st styles, b workouts.Overview) string {
	var lines []string
	for _, split := range b.Splits {
		lines = append(lines, st.heading.Render(split.Name))
		for _, c := range split.Categories {
			lines = append(lines, st.panel.Render(c.Title+"\n"+st.muted.Render(c.Description)))
		}
	}
	lines = append(lines, action(st, b.AddWorkout))
	return strings.Join(lines, "\n")
}

func workoutBody(st styles, b workouts.Detail) string {
	var lines []string
	if b.SessionID != nil {
		lines = append(lines, st.muted.Render("session "+b.SessionID.String()))
	}
	for _, g := range b.Groups {
		lines = append(lines, st.heading.Render(g.Title))
		for _, e := range g.Exercises {
			mark := "[ ]"
			if e.Done {
				mark = lipgloss.NewStyle().Foreground(color(e.IconColor)).Render("[x]")
			}
			lines = append(lines, fmt.Sprintf("%s %s  %s", mark, e.Description, st.muted.Render(e.ID)))
		}
	}
	lines = append(lines,
		fmt.Sprintf("%s %s", Bar(b.Progress.Fraction, barCells), b.ProgressLabel),
	)
	if b.Start != nil {
		lines = append(lines, action(st, *b.Start))
	}
	lines = append(lines, action(st, b.ViewOther))
	return strings.Join(lines, "\n")
}

func profileBody(st styles, b profile.View) string {
	lines := []string{st.heading.Render(b.PersonalTitle)}
	for _, f := range b.Fields {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Label, f.Value))
	}
	lines = append(lines, st.heading.Render(b.SettingsTitle))
	for _, t := range b.Toggles {
		state := "off"
		if t.On {
			state = "on"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", t.Label, state))
	}
	return strings.Join(lines, "\n")
}
