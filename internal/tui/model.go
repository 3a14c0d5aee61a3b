// Package tui hosts the interactive widget showcase.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/config"
	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ui"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/events"
)

const barStep = 10.0

// Options configures the showcase.
type Options struct {
	Config *config.Config
	// Records fills the table. nil shows SampleRecords; an empty non-nil
	// slice shows the table placeholder.
	Records []components.Record
	Columns []string
	Bars    []float64
	Rating  int
	Logger  *logger.Logger
}

// SampleRecords is the record set shown when none is supplied.
func SampleRecords() []components.Record {
	return []components.Record{
		components.R("id", 1, "name", "John", "age", 30),
		components.R("id", 2, "name", "Alice", "age", 25),
		components.R("id", 3, "name", "Priya", "age", 41),
	}
}

// Model is the bubbletea model of the showcase. It owns the state every
// widget reads from props: the modal and sidebar flags, the committed
// rating and the bar values.
type Model struct {
	cfg  *config.Config
	ctx  components.RenderContext
	log  *logger.Logger
	keys keyMap
	help help.Model
	bus  *events.KeyBus

	records []components.Record
	columns []string

	barValues   []float64
	rating      int
	modalOpen   bool
	sidebarOpen bool

	width, height int
	quitting      bool
	ratingX       int
	ratingY       int

	widgetOpts []components.Option

	header  *components.HeaderBanner
	table   *components.Table
	bars    []*components.Bar
	stars   *components.Rating
	modal   *components.Modal
	sidebar *components.Sidebar
}

// NewModel builds the showcase and its widgets.
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	records := opts.Records
	if records == nil {
		records = SampleRecords()
	}
	bars := opts.Bars
	if len(bars) == 0 {
		bars = []float64{75, -40, 0}
	}

	m := &Model{
		cfg:       cfg,
		ctx:       components.DefaultContext().WithTheme(cfg.ThemeValue()).WithStyles(cfg.StyleSheet()),
		log:       opts.Logger.WithComponent("showcase"),
		keys:      defaultKeyMap(),
		help:      help.New(),
		bus:       events.NewKeyBus(opts.Logger),
		records:   records,
		columns:   opts.Columns,
		barValues: append([]float64(nil), bars...),
		rating:    opts.Rating,
	}

	m.widgetOpts = []components.Option{components.WithLogger(opts.Logger), components.WithKeyBus(m.bus)}
	widgetOpts := m.widgetOpts

	m.header = components.NewHeaderBanner(components.HeaderProps{
		Message:  "tuikit showcase",
		Subtitle: "every widget, driven from one model",
		Attrs:    components.Attributes{ID: "showcase-header"},
	})
	m.table = components.NewTable(components.TableProps{
		Records:     records,
		Columns:     opts.Columns,
		Placeholder: cfg.Table.Placeholder,
		CellStyle:   highlightOldest(records),
	}, widgetOpts...).WithBorder(cfg.TableBorder())
	m.stars = components.NewRating(m.ratingProps(), widgetOpts...)
	m.modal = components.NewModal(m.modalProps(), widgetOpts...)
	m.sidebar = components.NewSidebar(m.sidebarProps(), widgetOpts...)
	m.rebuildBars()

	return m
}

func (m *Model) ratingProps() components.RatingProps {
	return components.RatingProps{Committed: components.Int(m.rating), Update: m.setRating}
}

func (m *Model) modalProps() components.ModalProps {
	return components.ModalProps{
		IsOpen:  components.Bool(m.modalOpen),
		OnClose: m.closeModal,
		Title:   "About",
		Content: ui.Static("Widgets render from props.\nPress esc or Close to dismiss."),
	}
}

func (m *Model) sidebarProps() components.SidebarProps {
	return components.SidebarProps{
		IsOpen:  m.sidebarOpen,
		Toggle:  m.toggleSidebar,
		Content: ui.Static("Records\nBars\nRating"),
	}
}

func (m *Model) rebuildBars() {
	m.bars = m.bars[:0]
	for _, v := range m.barValues {
		bar := components.NewBar(components.BarProps{
			Value:    v,
			FontSize: m.cfg.Bar.FontSize,
			Content:  ui.Static(components.FormatValue(v) + "%"),
		}, m.widgetOpts...)
		if m.cfg.Bar.Width > 0 {
			bar.WithTrackWidth(m.cfg.Bar.Width)
		}
		m.bars = append(m.bars, bar)
	}
}

func (m *Model) setRating(level int) {
	m.rating = level
	m.stars.SetProps(m.ratingProps())
}

func (m *Model) openModal() {
	m.modalOpen = true
	m.modal.SetProps(m.modalProps())
}

func (m *Model) closeModal() {
	m.modalOpen = false
	m.modal.SetProps(m.modalProps())
}

func (m *Model) toggleSidebar() {
	m.sidebarOpen = !m.sidebarOpen
	m.sidebar.SetProps(m.sidebarProps())
}

// highlightOldest marks the largest numeric "age" cell.
func highlightOldest(records []components.Record) components.CellStyleFunc {
	oldest := -1
	for _, r := range records {
		if v, ok := r.Get("age"); ok {
			if age, isInt := v.(int); isInt && age > oldest {
				oldest = age
			}
		}
	}
	return func(column string, value any) components.StyleToken {
		if age, ok := value.(int); ok && column == "age" && age == oldest {
			return "highlighted-cell"
		}
		return ""
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Rating returns the committed rating.
func (m *Model) Rating() int {
	return m.rating
}

// ModalOpen reports whether the dialog is showing.
func (m *Model) ModalOpen() bool {
	return m.modalOpen
}

// SidebarOpen reports whether the sidebar is showing.
func (m *Model) SidebarOpen() bool {
	return m.sidebarOpen
}

// BarValues returns the current bar values.
func (m *Model) BarValues() []float64 {
	return append([]float64(nil), m.barValues...)
}

// Quitting reports whether the user asked to leave.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Listeners returns the number of key listeners on the showcase bus.
func (m *Model) Listeners() int {
	return m.bus.Len()
}
