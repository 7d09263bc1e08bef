package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seatsort/pkg/classify"
	"github.com/matzehuels/seatsort/pkg/dataset"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	seatio "github.com/matzehuels/seatsort/pkg/io"
	"github.com/matzehuels/seatsort/pkg/pipeline"
	"github.com/matzehuels/seatsort/pkg/seatmap"
	"github.com/matzehuels/seatsort/pkg/sorting"
	"github.com/matzehuels/seatsort/pkg/source"
)

// menuCommand creates the interactive menu command.
func (c *CLI) menuCommand() *cobra.Command {
	var s settings

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Load, configure, seat and export interactively",
		Long: `Load, configure, seat and export interactively.

The menu keeps one dataset for the whole session. Seating classifies and
sorts it in place, so values inserted afterwards go straight into the
sorted sequences.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, opts, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			// The TUI owns the terminal, so pipeline logs are dropped.
			runner := pipeline.NewRunner(log.New(io.Discard))
			m := newMenuModel(contextOf(cmd), runner, opts, cfg.Export.Dir)

			p := tea.NewProgram(m,
				tea.WithContext(contextOf(cmd)),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	s.addConfigFlags(cmd)
	s.addPipelineFlags(cmd)
	s.addExportFlags(cmd)

	return cmd
}

// =============================================================================
// Menu items
// =============================================================================

type menuAction int

const (
	actionLoad menuAction = iota
	actionClassifier
	actionSorter
	actionLayout
	actionSeat
	actionBench
	actionInsert
	actionQuit
)

type menuEntry struct {
	key    string
	label  string
	action menuAction
}

var menuEntries = []menuEntry{
	{"1", "Load or generate data", actionLoad},
	{"2", "Choose classifier", actionClassifier},
	{"3", "Choose sorter", actionSorter},
	{"4", "Layout settings", actionLayout},
	{"5", "Seat, display and export", actionSeat},
	{"6", "Benchmark current settings", actionBench},
	{"7", "Insert one integer", actionInsert},
	{"q", "Quit", actionQuit},
}

// pickItem is one choice in a picker list.
type pickItem struct {
	value string
	title string
	desc  string
}

func (i pickItem) Title() string       { return i.title }
func (i pickItem) Description() string { return i.desc }
func (i pickItem) FilterValue() string { return i.value }

// field is one text prompt of a form.
type field struct {
	label string
	def   string
}

// form collects answers to a sequence of prompts, then submits them.
type form struct {
	fields  []field
	answers []string
	submit  func(m *menuModel, answers []string) error
}

// =============================================================================
// Model
// =============================================================================

type menuState int

const (
	stateMain menuState = iota
	statePick
	stateForm
)

var (
	menuTitleStyle    = StyleTitle.MarginBottom(1)
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	menuNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	menuKeyStyle      = lipgloss.NewStyle().Foreground(colorDim)
	menuErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	menuStatusStyle   = lipgloss.NewStyle().Foreground(colorGreen)
)

// menuModel is the bubbletea model behind the menu command.
type menuModel struct {
	ctx       context.Context
	runner    *pipeline.Runner
	opts      pipeline.Options
	exportDir string

	ds     *dataset.Dataset
	result *pipeline.Result

	state  menuState
	cursor int
	width  int
	height int
	picker list.Model
	onPick func(m *menuModel, value string) error
	input  textinput.Model
	form   *form

	output string
	status string
	err    error
}

func newMenuModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, exportDir string) menuModel {
	ds, _ := dataset.New()
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 8192
	ti.Width = 60
	if exportDir == "" {
		exportDir = defaultExportDir
	}
	return menuModel{
		ctx:       ctx,
		runner:    runner,
		opts:      opts,
		exportDir: exportDir,
		ds:        ds,
		input:     ti,
		width:     60,
		height:    14,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, max(min(msg.Height-4, 16), 6)
		if m.state == statePick {
			m.picker.SetSize(m.width, m.height)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateMain:
			return m.updateMain(msg)
		case statePick:
			return m.updatePick(msg)
		case stateForm:
			return m.updateForm(msg)
		}
	}
	return m, nil
}

func (m menuModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case "enter":
		return m.trigger(menuEntries[m.cursor].action)
	case "esc":
		return m, tea.Quit
	default:
		for i, e := range menuEntries {
			if e.key == key {
				m.cursor = i
				return m.trigger(e.action)
			}
		}
	}
	return m, nil
}

func (m menuModel) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = stateMain
		return m, nil
	case "enter":
		item, ok := m.picker.SelectedItem().(pickItem)
		m.state = stateMain
		if !ok {
			return m, nil
		}
		m.err = m.onPick(&m, item.value)
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m menuModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state, m.form = stateMain, nil
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		f := m.form
		answer := strings.TrimSpace(m.input.Value())
		if answer == "" {
			answer = f.fields[len(f.answers)].def
		}
		f.answers = append(f.answers, answer)
		if len(f.answers) < len(f.fields) {
			cmd := m.prompt(f.fields[len(f.answers)])
			return m, cmd
		}
		m.state, m.form = stateMain, nil
		m.input.Blur()
		m.err = f.submit(&m, f.answers)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// trigger starts the interaction for a main menu action.
func (m menuModel) trigger(a menuAction) (tea.Model, tea.Cmd) {
	m.err, m.status = nil, ""
	var cmd tea.Cmd
	switch a {
	case actionLoad:
		m.openPicker("Load data", []pickItem{
			{string(source.KindManual), "Manual", "type the values"},
			{string(source.KindRandom), "Random", "generate uniformly distributed values"},
			{string(source.KindCSV), "CSV file", "import a comma or newline delimited file"},
		}, pickSource)
	case actionClassifier:
		items := make([]pickItem, len(classify.Strategies))
		for i, s := range classify.Strategies {
			items[i] = pickItem{string(s), string(s), classifierDescriptions[s]}
		}
		m.openPicker("Classifier", items, func(m *menuModel, v string) error {
			m.opts.Classifier = classify.Strategy(v)
			m.status = "Classifier: " + v
			return nil
		})
	case actionSorter:
		items := make([]pickItem, len(sorting.Algorithms))
		for i, alg := range sorting.Algorithms {
			items[i] = pickItem{string(alg), string(alg), sorterDescriptions[alg]}
		}
		m.openPicker("Sorter", items, func(m *menuModel, v string) error {
			m.opts.Sorter = sorting.Algorithm(v)
			m.status = "Sorter: " + v
			return nil
		})
	case actionLayout:
		cmd = m.openForm(&form{
			fields: []field{
				{"Mode (0 = left-right, 1 = front-back)", modeIndex(m.opts.Layout.Mode)},
				{"Odd side (0 = left/front, 1 = right/back)", sideIndex(m.opts.Layout.OddSide)},
				{"Rows and columns (0 0 derives them)", fmt.Sprintf("%d %d", m.opts.Layout.Rows, m.opts.Layout.Cols)},
			},
			submit: submitLayout,
		})
	case actionSeat:
		if m.err = m.seat(); m.err != nil {
			return m, nil
		}
		cmd = m.openForm(&form{
			fields: []field{
				{"Odd CSV file", seatio.DefaultOddFile},
				{"Even CSV file", seatio.DefaultEvenFile},
				{"Seat map CSV file", seatio.DefaultSeatsFile},
			},
			submit: submitExport,
		})
	case actionBench:
		m.err = m.bench()
	case actionInsert:
		cmd = m.openForm(&form{
			fields: []field{{"Integer to insert", ""}},
			submit: submitInsert,
		})
	case actionQuit:
		return m, tea.Quit
	}
	return m, cmd
}

func (m *menuModel) openPicker(title string, items []pickItem, onPick func(*menuModel, string) error) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	l := list.New(listItems, list.NewDefaultDelegate(), m.width, m.height)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	m.picker = l
	m.onPick = onPick
	m.state = statePick
}

func (m *menuModel) openForm(f *form) tea.Cmd {
	m.form = f
	m.state = stateForm
	return m.prompt(f.fields[0])
}

func (m *menuModel) prompt(f field) tea.Cmd {
	m.input.Reset()
	m.input.Placeholder = f.def
	return m.input.Focus()
}

// =============================================================================
// Actions
// =============================================================================

func pickSource(m *menuModel, kind string) error {
	var f *form
	switch source.Kind(kind) {
	case source.KindManual:
		f = &form{
			fields: []field{{fmt.Sprintf("Values, separated by spaces (%d to %d)", dataset.MinSize, dataset.MaxSize), ""}},
			submit: func(m *menuModel, answers []string) error {
				values, err := source.Parse(strings.Fields(answers[0]))
				if err != nil {
					return err
				}
				return m.load(values)
			},
		}
	case source.KindRandom:
		f = &form{
			fields: []field{
				{fmt.Sprintf("Count (%d to %d)", dataset.MinSize, dataset.MaxSize), strconv.Itoa(source.DefaultCount)},
				{"Lower and upper bound", fmt.Sprintf("%d %d", source.DefaultMin, source.DefaultMax)},
				{"Seed (0 draws a fresh one)", "0"},
			},
			submit: submitRandom,
		}
	case source.KindCSV:
		f = &form{
			fields: []field{{"CSV path", ""}},
			submit: func(m *menuModel, answers []string) error {
				values, err := source.ImportCSV(answers[0])
				if err != nil {
					return err
				}
				return m.load(values)
			},
		}
	default:
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown source %q", kind)
	}
	m.openForm(f)
	return nil
}

func submitRandom(m *menuModel, answers []string) error {
	count, err := strconv.Atoi(answers[0])
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "count %q", answers[0])
	}
	bounds, err := source.Parse(strings.Fields(answers[1]))
	if err != nil {
		return err
	}
	if len(bounds) != 2 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "expected two bounds, got %d", len(bounds))
	}
	seed, err := strconv.ParseUint(answers[2], 10, 64)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "seed %q", answers[2])
	}
	values, err := source.Random(count, bounds[0], bounds[1], seed)
	if err != nil {
		return err
	}
	return m.load(values)
}

func submitLayout(m *menuModel, answers []string) error {
	mode, err := seatmap.ParseMode(answers[0])
	if err != nil {
		return err
	}
	side, err := seatmap.ParseSide(answers[1])
	if err != nil {
		return err
	}
	dims, err := source.Parse(strings.Fields(answers[2]))
	if err != nil {
		return err
	}
	if len(dims) != 2 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "expected rows and columns, got %d values", len(dims))
	}
	layout := seatmap.Config{Rows: dims[0], Cols: dims[1], Mode: mode, OddSide: side}
	if err := layout.Validate(); err != nil {
		return err
	}
	m.opts.Layout = layout
	m.status = fmt.Sprintf("Layout: %s, odd side %s, %dx%d", mode, side, dims[0], dims[1])
	return nil
}

func submitExport(m *menuModel, answers []string) error {
	names := seatio.Names{Odd: answers[0], Even: answers[1], Seats: answers[2]}
	paths, err := seatio.ExportCSV(m.exportDir, names, m.result.Odd, m.result.Even, m.result.Grid)
	if err != nil {
		return err
	}
	m.status = "Exported " + strings.Join(paths, ", ")
	return nil
}

func submitInsert(m *menuModel, answers []string) error {
	v, err := strconv.Atoi(answers[0])
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "%q is not an integer", answers[0])
	}
	if err := m.ds.Insert(v); err != nil {
		return err
	}
	m.status = fmt.Sprintf("Inserted %d (%d values)", v, m.ds.Len())
	return nil
}

// load replaces the session dataset.
func (m *menuModel) load(values []int) error {
	ds, err := dataset.New(values...)
	if err != nil {
		return err
	}
	if err := ds.Validate(); err != nil {
		return err
	}
	m.ds, m.result, m.output = ds, nil, ""
	m.status = fmt.Sprintf("Loaded %d values", ds.Len())
	return nil
}

// seat runs the pipeline on the session dataset and renders the grid.
func (m *menuModel) seat() error {
	if m.ds.Len() < dataset.MinSize {
		return apperrors.New(apperrors.ErrCodeInsufficientData, "load at least %d values first", dataset.MinSize)
	}
	opts := m.opts
	opts.Formats = []string{pipeline.FormatASCII}
	result, err := m.runner.Execute(m.ctx, m.ds, opts)
	if err != nil {
		return err
	}
	m.result = result
	m.output = string(result.Artifacts[pipeline.FormatASCII])
	if d := result.Grid.Dropped(); d > 0 {
		m.output += StyleWarning.Render(fmt.Sprintf("%d values did not fit", d)) + "\n"
	}
	return nil
}

// bench times the configured classifier and sorter on a copy of the
// session dataset.
func (m *menuModel) bench() error {
	if m.ds.Len() < dataset.MinSize {
		return apperrors.New(apperrors.ErrCodeInsufficientData, "load at least %d values first", dataset.MinSize)
	}
	res, err := m.runner.Bench(m.ctx, m.ds, m.opts.Classifier, m.opts.Sorter)
	if err != nil {
		return err
	}
	m.output = benchTable([]pipeline.BenchResult{res})
	return nil
}

var classifierDescriptions = map[classify.Strategy]string{
	classify.Stable:     "keeps input order, uses extra buffers",
	classify.Partition:  "in place, one forward pass",
	classify.TwoPointer: "in place, swaps from both ends",
}

var sorterDescriptions = map[sorting.Algorithm]string{
	sorting.Quick: "median-of-three quicksort",
	sorting.Heap:  "in-place heapsort",
}

func modeIndex(m seatmap.Mode) string {
	if m == seatmap.FrontBack {
		return "1"
	}
	return "0"
}

func sideIndex(s seatmap.Side) string {
	if s == seatmap.Second {
		return "1"
	}
	return "0"
}

// =============================================================================
// View
// =============================================================================

func (m menuModel) View() string {
	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("Seatsort"))
	b.WriteString("\n")

	switch m.state {
	case statePick:
		b.WriteString(m.picker.View())
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("↑/↓ choose · enter select · esc back"))
	case stateForm:
		// The seat map stays visible while the export prompts run.
		if m.output != "" {
			b.WriteString(m.output)
			b.WriteString("\n")
		}
		f := m.form
		b.WriteString(menuNormalStyle.Render(f.fields[len(f.answers)].label))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(StyleDim.Render("enter confirm (empty keeps the default) · esc cancel"))
	default:
		for i, e := range menuEntries {
			style, marker := menuNormalStyle, "  "
			if i == m.cursor {
				style, marker = menuSelectedStyle, "› "
			}
			b.WriteString(marker + menuKeyStyle.Render("["+e.key+"] ") + style.Render(e.label) + "\n")
		}
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(m.summary()))
		b.WriteString("\n")
		if m.output != "" {
			b.WriteString("\n")
			b.WriteString(m.output)
		}
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(menuErrorStyle.Render(iconError + " " + apperrors.UserMessage(m.err)))
	case m.status != "":
		b.WriteString(menuStatusStyle.Render(iconSuccess + " " + m.status))
	}
	b.WriteString("\n")
	return b.String()
}

// summary describes the session state in one line.
func (m menuModel) summary() string {
	layout := m.opts.Layout
	dims := "auto"
	if layout.Resolved() {
		dims = fmt.Sprintf("%dx%d", layout.Rows, layout.Cols)
	}
	return fmt.Sprintf("%d values · %s · %s, odd %s, %s",
		m.ds.Len(), m.opts, layout.Mode, layout.OddSide, dims)
}
