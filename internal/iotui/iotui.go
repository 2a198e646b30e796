// Package iotui is a terminal explorer of the classification. It shows
// the display root, its children and species counts, and drives the
// navigation state with keys.
package iotui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/navigate"
	"github.com/gnames/gnradial/pkg/selector"
	"github.com/gnames/gnradial/pkg/species"
	"github.com/gnames/gnradial/pkg/view"
)

// Saver writes the frame somewhere and returns a description of the
// result, usually a file path.
type Saver func(view.Frame) (string, error)

const (
	defaultHeight = 15
	searchLimit   = 10
)

// Model is the bubbletea model of the explorer.
type Model struct {
	State   *navigate.State
	Options view.Options
	Frame   view.Frame

	// Children of the display root, as they are listed.
	Children []*hierarchy.Node
	Cursor   int
	Offset   int
	Height   int

	// Searching is true while a common name query is typed.
	Searching bool
	Query     string

	Status string
	Err    error

	save Saver
}

// New creates the explorer model. A nil save disables saving.
func New(state *navigate.State, opts view.Options, save Saver) Model {
	m := Model{
		State:   state,
		Options: opts,
		Height:  defaultHeight,
		save:    save,
	}
	m.refresh()
	return m
}

// Run starts the explorer and returns its final state.
func Run(m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	res, err := p.Run()
	if err != nil {
		return m, err
	}
	if fm, ok := res.(Model); ok {
		return fm, nil
	}
	return m, nil
}

// refresh recomputes the frame after the display root changed.
func (m *Model) refresh() {
	m.Frame = view.Compose(m.State, m.Options)
	m.Children = m.State.Current().Children
	m.Cursor = 0
	m.Offset = 0
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-12, 5)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.Err = nil
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			if m.Cursor < m.Offset {
				m.Offset = m.Cursor
			}
		}
	case "down", "j":
		if m.Cursor < len(m.Children)-1 {
			m.Cursor++
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case "enter", "right", "l":
		if len(m.Children) == 0 {
			break
		}
		if m.State.DrillDown(m.Children[m.Cursor]) {
			m.refresh()
			m.Status = ""
		}
	case "backspace", "left", "h":
		if m.State.DrillUp() {
			m.refresh()
			m.Status = ""
		}
	case "home":
		m.State.Reset(m.State.Tree().Root())
		m.refresh()
	case "/":
		m.Searching = true
		m.Query = ""
	case "s":
		m.saveFrame()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.Searching = false
	case tea.KeyEnter:
		m.Searching = false
		matches := selector.ByCommonName(m.State.Tree(), m.Query, 1)
		if len(matches) == 0 {
			m.Err = selector.CommonNameNotFoundError(m.Query)
			break
		}
		m.State.Reset(matches[0].Node)
		m.refresh()
		m.Status = fmt.Sprintf("Found %q", matches[0].Node.CommonName)
	case tea.KeyBackspace:
		if len(m.Query) > 0 {
			r := []rune(m.Query)
			m.Query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.Query += " "
	case tea.KeyRunes:
		m.Query += string(msg.Runes)
	}
	return m, nil
}

func (m *Model) saveFrame() {
	if m.save == nil {
		return
	}
	res, err := m.save(m.Frame)
	if err != nil {
		m.Err = err
		return
	}
	m.Status = "Saved " + res
}

func (m Model) View() string {
	var b strings.Builder
	f := m.Frame

	b.WriteString(styleTitle.Render(f.Title))
	b.WriteString("\n")
	b.WriteString("Common Name: " + f.CommonName)
	b.WriteString("\n")
	b.WriteString(styleDim.Render("Taxonomic path: " + f.PathString))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Species: %s   Shown taxa: %d",
		humanize.Comma(int64(f.SpeciesTotal)), len(f.Nodes)))
	if len(f.HiddenRanks) > 0 {
		b.WriteString(styleDim.Render(
			fmt.Sprintf("   Drawn down to %s", f.MaxRank),
		))
	}
	b.WriteString("\n\n")

	if len(m.Children) == 0 {
		b.WriteString(styleDim.Render("  " + species.NoChildren))
		b.WriteString("\n")
	}

	end := min(m.Offset+m.Height, len(m.Children))
	for i := m.Offset; i < end; i++ {
		b.WriteString(m.childLine(i))
		b.WriteString("\n")
	}
	if len(m.Children) > m.Height {
		b.WriteString(styleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Children))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.Searching:
		b.WriteString("Common name: " + m.Query + "_")
	case m.Err != nil:
		b.WriteString(styleError.Render(errMessage(m.Err)))
	case m.Status != "":
		b.WriteString(styleStatus.Render(m.Status))
	}
	b.WriteString("\n")
	b.WriteString(styleDim.Render(m.help()))
	return b.String()
}

func (m Model) childLine(i int) string {
	n := m.Children[i]
	cursor := "  "
	style := styleNormal
	if i == m.Cursor {
		cursor = "▸ "
		style = styleSelected
	}

	line := cursor + style.Render(n.Name) + " " +
		rankStyle(n.Rank).Render(n.Rank.String())
	if n.CommonName != "" {
		line += styleDim.Render(" (" + n.CommonName + ")")
	}
	if !n.IsSpecies() {
		cnt := species.CountLeaves(n)
		line += styleDim.Render(fmt.Sprintf("  %s species", humanize.Comma(int64(cnt))))
	}
	if m.Frame.Selection.IsHidden(n.Rank) {
		line += styleDim.Render("  not drawn")
	}
	return line
}

func (m Model) help() string {
	if m.Searching {
		return "⏎ go  esc cancel"
	}
	parts := []string{"↑/↓ move", "⏎ drill down"}
	if m.Frame.CanDrillUp {
		parts = append(parts, "⌫ drill up")
	}
	parts = append(parts, "/ search", "home top")
	if m.save != nil {
		parts = append(parts, "s save")
	}
	parts = append(parts, "q quit")
	return strings.Join(parts, "  ")
}

// errMessage returns the user-facing text of an error without markup.
func errMessage(err error) string {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) || gnErr.Msg == "" {
		return err.Error()
	}
	msg := fmt.Sprintf(gnErr.Msg, gnErr.Vars...)
	return strings.NewReplacer("<em>", "", "</em>", "").Replace(msg)
}
