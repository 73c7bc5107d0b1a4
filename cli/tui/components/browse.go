package components

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nutriveg/nutriveg-cli/cli/listing"
	"github.com/nutriveg/nutriveg-cli/cli/tui/models"
)

// SortChoice is a sort order offered by the `s` key.
type SortChoice struct {
	Label string
	Order string
}

// FilterChoice is a facet selection offered by the `f` key.
type FilterChoice struct {
	Label  string
	Facets listing.Facets
}

// BrowseConfig describes one collection view: the table layout and the
// sort/filter choices the collection supports.
type BrowseConfig[T any] struct {
	Title   string
	Columns []table.Column
	Row     func(T) table.Row
	Sorts   []SortChoice
	Filters []FilterChoice
}

// Browse is the interactive collection view shared by recipes, articles and
// nutritionists: a paged table with search, sort cycling and filter cycling.
// All controls that would issue a request are ignored while one is in
// flight; late responses from an abandoned request are discarded by the
// controller.
type Browse[T any] struct {
	models.BaseModel
	controller *listing.Controller[T]
	config     BrowseConfig[T]

	table     table.Model
	spinner   spinner.Model
	search    textinput.Model
	searching bool

	sortIdx   int
	filterIdx int
	notice    string
}

type browseResultMsg[T any] struct {
	result listing.Result[T]
}

// NewBrowse creates a browse model over source with the given page size.
func NewBrowse[T any](ctx context.Context, source listing.Source[T], limit int, config BrowseConfig[T]) *Browse[T] {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	t := table.New(
		table.WithColumns(config.Columns),
		table.WithFocused(true),
		table.WithHeight(limit+1),
	)
	input := textinput.New()
	input.Placeholder = "pesquisar..."
	input.CharLimit = 100
	return &Browse[T]{
		BaseModel:  models.NewBaseModel(ctx),
		controller: listing.New(source, limit),
		config:     config,
		table:      t,
		spinner:    s,
		search:     input,
		sortIdx:    -1,
		filterIdx:  -1,
	}
}

func (m *Browse[T]) Init() tea.Cmd {
	req, err := m.controller.SetMode(listing.List{})
	if err != nil {
		m.SetError(err)
		return tea.Quit
	}
	return tea.Batch(m.spinner.Tick, m.fetch(req))
}

func (m *Browse[T]) fetch(req listing.Request) tea.Cmd {
	return func() tea.Msg {
		return browseResultMsg[T]{result: m.controller.Fetch(m.Context(), req)}
	}
}

func (m *Browse[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	case browseResultMsg[T]:
		if m.controller.Apply(msg.result) {
			m.refreshRows()
		}
		return m, nil
	case spinner.TickMsg:
		if m.controller.InFlight() {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	m.BaseModel.Update(msg)
	if !m.controller.InFlight() {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

func (m *Browse[T]) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quit()
		return m, tea.Quit
	case "esc":
		m.searching = false
		m.search.Blur()
		m.notice = ""
		return m, nil
	case "enter":
		req, err := m.controller.SetMode(listing.Search{Term: m.search.Value()})
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.searching = false
		m.search.Blur()
		m.notice = ""
		return m, tea.Batch(m.spinner.Tick, m.fetch(req))
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Browse[T]) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.Quit()
		return m, tea.Quit
	}
	if m.controller.InFlight() {
		return m, nil
	}
	switch msg.String() {
	case "left", "h":
		if listing.HasPrev(m.controller.Offset(), m.controller.Limit()) {
			return m.page(m.controller.CurrentPage() - 1)
		}
	case "right", "l":
		if listing.HasNext(m.controller.Offset(), m.controller.Limit(), m.controller.Page().TotalCount) {
			return m.page(m.controller.CurrentPage() + 1)
		}
	case "/":
		m.searching = true
		m.search.SetValue("")
		m.search.Focus()
		return m, textinput.Blink
	case "s":
		if len(m.config.Sorts) > 0 {
			m.sortIdx = (m.sortIdx + 1) % len(m.config.Sorts)
			m.filterIdx = -1
			return m.setMode(listing.Sort{Order: m.config.Sorts[m.sortIdx].Order})
		}
	case "f":
		if len(m.config.Filters) > 0 {
			m.filterIdx = (m.filterIdx + 1) % len(m.config.Filters)
			m.sortIdx = -1
			return m.setMode(listing.Filter{Facets: m.config.Filters[m.filterIdx].Facets})
		}
	case "r":
		m.sortIdx = -1
		m.filterIdx = -1
		return m.setMode(listing.List{})
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Browse[T]) setMode(mode listing.Mode) (tea.Model, tea.Cmd) {
	req, err := m.controller.SetMode(mode)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, m.fetch(req))
}

func (m *Browse[T]) page(n int) (tea.Model, tea.Cmd) {
	req, err := m.controller.PageTo(n)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, m.fetch(req))
}

func (m *Browse[T]) refreshRows() {
	items := m.controller.Page().Items
	rows := make([]table.Row, len(items))
	for i, item := range items {
		rows[i] = m.config.Row(item)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *Browse[T]) View() string {
	if m.IsQuitting() {
		return ""
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.config.Title) + "\n")
	b.WriteString(m.modeLine())
	if m.searching {
		b.WriteString(m.search.View() + "\n")
	}
	switch {
	case m.controller.InFlight():
		b.WriteString(fmt.Sprintf("\n  %s carregando...\n", m.spinner.View()))
	case m.controller.NoMatches():
		b.WriteString("\n" + SubtitleStyle.Render("Nenhum resultado encontrado.") + "\n")
	case m.controller.State() == listing.StateFailed:
		b.WriteString("\n" + ErrorStyle.Render(m.controller.Err().Error()) + "\n")
	default:
		b.WriteString(m.table.View() + "\n")
	}
	if m.notice != "" {
		b.WriteString(NoticeStyle.Render(m.notice) + "\n")
	}
	page := m.controller.Page()
	if footer := Pagination(page.Offset, page.Limit, page.TotalCount); footer != "" {
		b.WriteString("\n" + footer + "\n")
	}
	b.WriteString(HelpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *Browse[T]) modeLine() string {
	switch mode := m.controller.Mode().(type) {
	case listing.Search:
		return SubtitleStyle.Render(fmt.Sprintf("pesquisa: %q", mode.Term)) + "\n"
	case listing.Sort:
		if m.sortIdx >= 0 {
			return SubtitleStyle.Render("ordenado por: "+m.config.Sorts[m.sortIdx].Label) + "\n"
		}
	case listing.Filter:
		if m.filterIdx >= 0 {
			return SubtitleStyle.Render("filtro: "+m.config.Filters[m.filterIdx].Label) + "\n"
		}
	}
	return ""
}

func (m *Browse[T]) helpLine() string {
	parts := []string{"←/→ páginas", "/ pesquisar"}
	if len(m.config.Sorts) > 0 {
		parts = append(parts, "s ordenar")
	}
	if len(m.config.Filters) > 0 {
		parts = append(parts, "f filtrar")
	}
	parts = append(parts, "r limpar", "q sair")
	return strings.Join(parts, " • ")
}

// RunBrowse drives the browse model through a bubbletea program.
func RunBrowse[T any](ctx context.Context, source listing.Source[T], limit int, config BrowseConfig[T]) error {
	model := NewBrowse(ctx, source, limit, config)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if m, ok := final.(*Browse[T]); ok && m.Error() != nil {
		return m.Error()
	}
	return nil
}
