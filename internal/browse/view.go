package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/applykit/internal/stub"
)

var (
	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")) // bright blue

	inactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")) // dim gray

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	activeHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("39"))

	inactiveHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	tagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	contentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

type stubModel struct {
	name          string
	raw           string
	regions       []stub.Region
	bulleted      map[string]bool
	leftViewport  viewport.Model
	rightViewport viewport.Model
	activePane    int // 0=left, 1=right
	width         int
	height        int
	ready         bool

	wantQuit bool
}

func (m stubModel) Init() tea.Cmd {
	return nil
}

func (m stubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.wantQuit = true
			return m, tea.Quit
		case "esc", "b":
			m.wantQuit = false
			return m, tea.Quit
		case "tab", "left", "right":
			m.activePane = 1 - m.activePane
			return m, nil
		}
	}

	// Forward scrolling keys to the active viewport.
	var cmd tea.Cmd
	if m.activePane == 0 {
		m.leftViewport, cmd = m.leftViewport.Update(msg)
	} else {
		m.rightViewport, cmd = m.rightViewport.Update(msg)
	}
	return m, cmd
}

func (m *stubModel) recalcLayout() {
	// 2 border chars per pane + 1 gap between panes.
	paneWidth := max((m.width-5)/2, 20)

	// Header (1 line) + border top/bottom (2) + status bar (1) = 4 lines overhead.
	paneHeight := max(m.height-4, 5)

	if !m.ready {
		m.leftViewport = viewport.New(paneWidth, paneHeight)
		m.rightViewport = viewport.New(paneWidth, paneHeight)
		m.ready = true
	} else {
		m.leftViewport.Width = paneWidth
		m.leftViewport.Height = paneHeight
		m.rightViewport.Width = paneWidth
		m.rightViewport.Height = paneHeight
	}

	m.leftViewport.SetContent(m.raw)
	m.rightViewport.SetContent(renderRegions(m.regions, m.bulleted, paneWidth))
}

func (m stubModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	paneWidth := m.leftViewport.Width

	leftHeader := " " + m.name
	rightHeader := fmt.Sprintf(" Regions (%d)", len(m.regions))

	var leftHeaderRendered, rightHeaderRendered string
	var leftBorder, rightBorder lipgloss.Style

	if m.activePane == 0 {
		leftHeaderRendered = activeHeaderStyle.Render(leftHeader)
		rightHeaderRendered = inactiveHeaderStyle.Render(rightHeader)
		leftBorder = activeBorderStyle.Width(paneWidth)
		rightBorder = inactiveBorderStyle.Width(paneWidth)
	} else {
		leftHeaderRendered = inactiveHeaderStyle.Render(leftHeader)
		rightHeaderRendered = activeHeaderStyle.Render(rightHeader)
		leftBorder = inactiveBorderStyle.Width(paneWidth)
		rightBorder = activeBorderStyle.Width(paneWidth)
	}

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(paneWidth+2).Render(leftHeaderRendered),
		" ",
		lipgloss.NewStyle().Width(paneWidth+2).Render(rightHeaderRendered),
	)

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		leftBorder.Render(m.leftViewport.View()),
		" ",
		rightBorder.Render(m.rightViewport.View()),
	)

	statusBar := statusBarStyle.Width(m.width).Render(" ←/→/Tab switch  ↑/↓ scroll  Esc back  q quit")

	return headerRow + "\n" + panes + "\n" + statusBar
}

// renderRegions lists each region with its tag and offset. Content of
// bulleted tags is shown as extracted items.
func renderRegions(regions []stub.Region, bulleted map[string]bool, width int) string {
	if len(regions) == 0 {
		return "  (no regions)"
	}

	var b strings.Builder
	for i, r := range regions {
		b.WriteString(tagStyle.Render(r.Tag))
		b.WriteString(offsetStyle.Render(fmt.Sprintf("  @%d", r.Offset)))
		b.WriteByte('\n')

		if bulleted[r.Tag] {
			items := stub.ExtractItems(r.Content)
			if len(items) == 0 {
				b.WriteString(offsetStyle.Render("  (no items)") + "\n")
			}
			for _, item := range items {
				b.WriteString(contentStyle.Render(wordWrap("• "+item, width-2)) + "\n")
			}
		} else {
			b.WriteString(contentStyle.Render(wordWrap(r.Content, width-2)) + "\n")
		}

		if i < len(regions)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func wordWrap(text string, width int) string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) <= width {
				line += " " + w
			} else {
				out = append(out, line)
				line = w
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// RunStubView opens the split-pane view of one stub: raw text on the left,
// scanned regions on the right. bulleted names the tags shown as item lists.
// Returns wantQuit=true if the user pressed q/ctrl+c, false if they pressed esc to return to the picker.
func RunStubView(name, raw string, bulleted map[string]bool) (bool, error) {
	m := stubModel{
		name:     name,
		raw:      raw,
		regions:  stub.Scan(raw),
		bulleted: bulleted,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	final := result.(stubModel)
	return final.wantQuit, nil
}
