// Package gallery is the browsable quote list, used for both the full
// gallery and the user's favorites
package gallery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/Justice-Caban/QuickQuotes/internal/storage"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	"github.com/Justice-Caban/QuickQuotes/internal/tui/notify"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cardHeight is the rendered height of one quote card including spacing
const cardHeight = 6

// Mode selects which quotes the gallery lists
type Mode int

const (
	ModeAll Mode = iota
	ModeFavorites
)

// Model represents the gallery view model
type Model struct {
	width  int
	height int
	mode   Mode

	// Dependencies
	storage *storage.Storage
	userID  string
	styles  theme.Styles
	copy    func(string) error

	// Data
	quotes    []*storage.Quote
	favorites map[string]bool

	// UI state
	cursor    int
	offset    int
	category  *palette.Category
	search    textinput.Model
	searching bool
	status    string

	// Loading state
	loading bool
	seq     int
	err     error
}

// NewModel creates a new gallery model
func NewModel(st *storage.Storage, userID string, mode Mode, styles theme.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "Search quotes or authors..."
	ti.Prompt = "Search: "
	ti.CharLimit = 100
	ti.Width = 40

	m := Model{
		mode:      mode,
		storage:   st,
		userID:    userID,
		copy:      clipboard.WriteAll,
		favorites: make(map[string]bool),
		search:    ti,
		loading:   true,
	}
	m.SetStyles(styles)
	return m
}

// SetStyles swaps in styles rebuilt after a theme change
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
	m.search.PromptStyle = s.Value.Bold(true)
	m.search.TextStyle = s.Text
	m.search.PlaceholderStyle = s.MutedText.Italic(true)
	m.search.Cursor.Style = s.Value
}

// Searching reports whether the search input has focus
func (m Model) Searching() bool {
	return m.searching
}

// Title returns the view title
func (m Model) Title() string {
	if m.mode == ModeFavorites {
		return "Favorites"
	}
	return "Quote Gallery"
}

// Refresh reloads the quotes, e.g. when the view becomes active
func (m Model) Refresh() (Model, tea.Cmd) {
	cmd := m.reload()
	return m, cmd
}

// Init loads the quotes
func (m Model) Init() tea.Cmd {
	return m.load()
}

// Update handles messages for the gallery view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-20, 20)
		m.adjustOffset()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchInput(msg)
		}
		return m.handleKeyPress(msg)

	case quotesLoadedMsg:
		if msg.mode != m.mode || msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.quotes = msg.quotes
			m.favorites = msg.favorites
		}
		m.clampCursor()
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			return m, notify.Cmd(notify.FromError("Favorite Failed", msg.err))
		}
		var cmd tea.Cmd
		if m.mode == ModeFavorites {
			cmd = m.reload()
		}
		if msg.favorited {
			m.favorites[msg.quoteID] = true
			m.status = "Added to favorites"
		} else {
			delete(m.favorites, msg.quoteID)
			m.status = "Removed from favorites"
		}
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.adjustOffset()
		}

	case "down", "j":
		if m.cursor < len(m.quotes)-1 {
			m.cursor++
			m.adjustOffset()
		}

	case "g":
		// Go to top
		m.cursor = 0
		m.offset = 0

	case "G":
		// Go to bottom
		if len(m.quotes) > 0 {
			m.cursor = len(m.quotes) - 1
			m.adjustOffset()
		}

	case "r":
		cmd := m.reload()
		return m, cmd

	case "/":
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case "tab":
		m.category = nextCategory(m.category, 1)
		cmd := m.reload()
		return m, cmd

	case "shift+tab":
		m.category = nextCategory(m.category, -1)
		cmd := m.reload()
		return m, cmd

	case "esc":
		if m.category != nil || m.search.Value() != "" {
			m.category = nil
			m.search.Reset()
			cmd := m.reload()
			return m, cmd
		}

	case "f":
		if q := m.selected(); q != nil {
			return m, m.toggleFavorite(q.ID)
		}

	case "y":
		if q := m.selected(); q != nil {
			return m.copyQuote(q)
		}
	}

	return m, nil
}

// handleSearchInput handles input while the search box has focus
func (m Model) handleSearchInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.Reset()
		cmd := m.reload()
		return m, cmd

	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		reload := m.reload()
		return m, tea.Batch(cmd, reload)
	}
	return m, cmd
}

// copyQuote copies the quote text, keeping it in the status line
func (m Model) copyQuote(q *storage.Quote) (Model, tea.Cmd) {
	text := q.Text()
	m.status = "Copied: " + text
	if err := m.copy(text); err != nil {
		return m, notify.Cmd(notify.Notification{
			Title:       "Failed to copy",
			Message:     err.Error(),
			Severity:    notify.SeverityWarning,
			Suggestion:  "The quote is shown in the status line instead",
			Dismissible: true,
		})
	}
	return m, nil
}

// nextCategory steps the category filter through All and every category
func nextCategory(current *palette.Category, step int) *palette.Category {
	// Position 0 is All, 1..n are the categories
	pos := 0
	if current != nil {
		pos = int(*current) + 1
	}

	n := palette.CategoryCount + 1
	pos = ((pos+step)%n + n) % n
	if pos == 0 {
		return nil
	}

	c := palette.Category(pos - 1)
	return &c
}

func (m Model) selected() *storage.Quote {
	if m.cursor < 0 || m.cursor >= len(m.quotes) {
		return nil
	}
	return m.quotes[m.cursor]
}

func (m *Model) visibleItems() int {
	return max((m.height-10)/cardHeight, 1)
}

// adjustOffset adjusts the scroll offset to keep cursor visible
func (m *Model) adjustOffset() {
	visible := m.visibleItems()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.quotes) {
		m.cursor = len(m.quotes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
	m.adjustOffset()
}

// View renders the gallery view
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.MutedText.Render("Loading quotes..."))
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	default:
		b.WriteString(m.renderQuoteList())
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title, category tabs and search bar
func (m Model) renderHeader() string {
	title := m.styles.Title.Render(m.Title())

	tabs := []string{m.styles.RenderTab("All", m.category == nil)}
	for _, c := range palette.AllCategories() {
		tabs = append(tabs, m.styles.RenderTab(c.Title(), m.category != nil && *m.category == c))
	}

	info := m.styles.MutedText.Render(fmt.Sprintf("%d quotes", len(m.quotes)))

	var searchBar string
	if m.searching || m.search.Value() != "" {
		searchBar = "\n" + m.search.View()
	}

	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n" + info + searchBar
}

// renderQuoteList renders the visible quote cards
func (m Model) renderQuoteList() string {
	if len(m.quotes) == 0 {
		if m.mode == ModeFavorites && m.category == nil && m.search.Value() == "" {
			return m.styles.MutedText.Render("No favorites yet. Press f on a quote in the gallery to save it.")
		}
		return m.styles.MutedText.Render("No quotes match current filters")
	}

	width := max(m.width-4, 20)
	end := min(m.offset+m.visibleItems(), len(m.quotes))

	cards := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		cards = append(cards, m.renderQuote(m.quotes[i], i == m.cursor, width))
	}

	return strings.Join(cards, "\n")
}

// renderQuote renders one quote card
func (m Model) renderQuote(q *storage.Quote, isCursor bool, width int) string {
	heart := m.styles.MutedText.Render("♡")
	if m.favorites[q.ID] {
		heart = m.styles.Error.Render("♥")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Text.Render(fmt.Sprintf("\"%s\"", q.Content)),
		m.styles.MutedText.Render("— "+q.Author),
		m.styles.CategoryBadge(q.Category, q.Category.String())+"  "+heart,
	)

	card := m.styles.Card.Width(width)
	if isCursor {
		card = card.BorderForeground(m.styles.Primary)
	}
	return card.Render(body)
}

// renderFooter renders the footer with controls
func (m Model) renderFooter() string {
	controls := []string{
		"↑↓/jk: navigate",
		"/: search",
		"tab: category",
		"f: favorite",
		"y: copy",
		"r: refresh",
	}
	if m.searching {
		controls = []string{"Enter: done", "Esc: clear"}
	}

	return m.styles.Help.Render(strings.Join(controls, " • "))
}

// Messages

type quotesLoadedMsg struct {
	mode      Mode
	seq       int
	quotes    []*storage.Quote
	favorites map[string]bool
	err       error
}

type favoriteToggledMsg struct {
	quoteID   string
	favorited bool
	err       error
}

// Commands

// reload bumps the load sequence so responses to older queries are dropped
func (m *Model) reload() tea.Cmd {
	m.seq++
	m.status = ""
	return m.load()
}

func (m Model) load() tea.Cmd {
	st, userID, mode, seq := m.storage, m.userID, m.mode, m.seq
	search := m.search.Value()
	var category *palette.Category
	if m.category != nil {
		c := *m.category
		category = &c
	}

	return func() tea.Msg {
		msg := quotesLoadedMsg{mode: mode, seq: seq}
		if st == nil {
			msg.err = errors.New("storage is not available")
			return msg
		}

		favorites, err := st.Favorites.IDs(userID)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.favorites = favorites

		if mode == ModeFavorites {
			quotes, err := st.Favorites.ListQuotes(userID, search)
			if err != nil {
				msg.err = err
				return msg
			}
			for _, q := range quotes {
				if category == nil || q.Category == *category {
					msg.quotes = append(msg.quotes, q)
				}
			}
			return msg
		}

		msg.quotes, msg.err = st.Quotes.List(storage.QuoteFilter{Category: category, Search: search})
		return msg
	}
}

func (m Model) toggleFavorite(quoteID string) tea.Cmd {
	st, userID := m.storage, m.userID
	return func() tea.Msg {
		if st == nil {
			return favoriteToggledMsg{quoteID: quoteID, err: errors.New("storage is not available")}
		}
		on, err := st.Favorites.Toggle(userID, quoteID)
		return favoriteToggledMsg{quoteID: quoteID, favorited: on, err: err}
	}
}
