package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"rosalind/internal/config"
	"rosalind/internal/fasta"
	"rosalind/internal/nucleotide"
	"rosalind/internal/translation"
	"rosalind/internal/translator"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Colors for modern design
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	// GC band styles
	gcHighStyle    = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	gcLowStyle     = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	gcUnknownStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// gcStyle colours a GC fraction: above 60% high, below 40% low.
func gcStyle(gc float64) lipgloss.Style {
	switch {
	case math.IsNaN(gc):
		return gcUnknownStyle
	case gc > 0.6:
		return gcHighStyle
	case gc < 0.4:
		return gcLowStyle
	}
	return lipgloss.NewStyle().Foreground(textColor)
}

// SequenceRecord is a parsed FASTA record with its derived views.
type SequenceRecord struct {
	ID          string
	Description string
	Nucleotides string
	Translated  string
	RevComp     string
	GCCount     int
	GC          float64
}

func (r SequenceRecord) gcLabel() string {
	if math.IsNaN(r.GC) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", r.GC*100)
}

type listItem struct {
	record SequenceRecord
}

func (i listItem) FilterValue() string {
	return i.record.ID
}

func (i listItem) Title() string {
	if i.record.ID != "" {
		return i.record.ID
	}
	return "(no id)"
}

func (i listItem) Description() string {
	gc := gcStyle(i.record.GC).Render(i.record.gcLabel())
	return fmt.Sprintf("GC: %s    Len: %d    AA: %d", gc, len(i.record.Nucleotides), len(i.record.Translated))
}

type mode int

const (
	modeNucleotides mode = iota
	modeTranslated
	modeRevComp
)

func (m mode) String() string {
	switch m {
	case modeNucleotides:
		return "Nucleotides"
	case modeTranslated:
		return "Translated"
	case modeRevComp:
		return "Reverse complement"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	records       []SequenceRecord
	table         *translation.Table
	currentMode   mode
	showHelp      bool
	width         int
	height        int
	totalRecords  int
	selectedIndex int
}

// buildRecords derives the browser views for each parsed record.
func buildRecords(recs []fasta.Record, table *translation.Table) []SequenceRecord {
	proteins := translator.Translate(translator.FromFasta(recs), table)
	out := make([]SequenceRecord, len(recs))
	for i, r := range recs {
		out[i] = SequenceRecord{
			ID:          r.ID,
			Description: r.Description,
			Nucleotides: r.Sequence,
			Translated:  proteins[i],
			RevComp:     nucleotide.ReverseComplement(r.Sequence),
			GCCount:     r.GCCount(),
			GC:          r.GCPercent(),
		}
	}
	return out
}

func newModel(records []SequenceRecord, table *translation.Table) model {
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = listItem{record: record}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "FASTA Records"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:         l,
		records:      records,
		table:        table,
		currentMode:  modeNucleotides,
		totalRecords: len(records),
	}
}

func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % 3
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// left panel takes 1/3 of width
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4) // borders and status

		return m, nil

	case tea.KeyMsg:
		// let the list own keys while the filter prompt is open
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "h":
			m.showHelp = !m.showHelp
			return m, nil
		case "tab":
			return m.cycleMode(), nil
		case "1":
			m.currentMode = modeNucleotides
			return m, nil
		case "2":
			m.currentMode = modeTranslated
			return m, nil
		case "3":
			m.currentMode = modeRevComp
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelpModal()
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderLeftPanel(),
		m.renderRightPanel(),
	)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatusBar(),
	)
}

func (m model) renderLeftPanel() string {
	return containerStyle.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) selected() (SequenceRecord, bool) {
	item, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return SequenceRecord{}, false
	}
	return item.record, true
}

// sequenceFor returns the sequence shown in the current mode and its title.
func (m model) sequenceFor(rec SequenceRecord) (string, string) {
	switch m.currentMode {
	case modeTranslated:
		return rec.Translated, "Translated Sequence (" + m.table.Name() + ")"
	case modeRevComp:
		return rec.RevComp, "Reverse Complement"
	}
	return rec.Nucleotides, "Nucleotides"
}

// sequenceWidth is the number of sequence characters per line in the right
// panel.
func (m model) sequenceWidth() int {
	w := m.width*2/3 - 10 // padding and borders
	if w < 10 {
		w = 10
	}
	return w
}

// buildRightLines wraps the active sequence of rec to the panel width.
func (m model) buildRightLines(rec SequenceRecord) []string {
	seq, _ := m.sequenceFor(rec)
	width := m.sequenceWidth()
	lines := make([]string, 0, len(seq)/width+1)
	for start := 0; start < len(seq); start += width {
		end := min(start+width, len(seq))
		lines = append(lines, seq[start:end])
	}
	return lines
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3
	panel := containerStyle.Width(rightWidth - 2).Height(m.height - 4)

	if len(m.records) == 0 {
		return panel.Render("No records available")
	}
	record, ok := m.selected()
	if !ok {
		return panel.Render("No item selected")
	}

	header := titleStyle.Render(strings.TrimSpace(record.ID + " " + record.Description))

	label := lipgloss.NewStyle().Foreground(mutedColor)
	style := gcStyle(record.GC)
	metaStr := label.Render("GC: ") + style.Render(record.gcLabel()) +
		label.Render("    ") + style.Render(fmt.Sprintf("GC bases: %d", record.GCCount)) +
		label.Render("    ") + style.Render(fmt.Sprintf("Len: %d", len(record.Nucleotides)))

	panelContent := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		metaStr,
		"",
		m.formatSequence(record),
	)
	return panel.Render(panelContent)
}

func (m model) formatSequence(rec SequenceRecord) string {
	_, title := m.sequenceFor(rec)
	lines := m.buildRightLines(rec)
	if len(lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(mutedColor).
			Render(fmt.Sprintf("No %s available", strings.ToLower(title)))
	}

	titleStr := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true).
		Render(title + ":")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStr,
		"",
		sequenceStyle.Render(strings.Join(lines, "\n")),
	)
}

func (m model) renderStatusBar() string {
	leftInfo := fmt.Sprintf("%d/%d records", m.selectedIndex+1, m.totalRecords)
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode)
	rightInfo := "Press 'h' for help, 'q' to quit"

	spacing := m.width - len(leftInfo) - len(centerInfo) - len(rightInfo) - 6

	var statusContent string
	if spacing > 0 {
		leftSpacing := spacing / 2
		statusContent = leftInfo + strings.Repeat(" ", leftSpacing) +
			centerInfo + strings.Repeat(" ", spacing-leftSpacing) + rightInfo
	} else {
		// narrow terminals
		statusContent = fmt.Sprintf("%s | %s", leftInfo, centerInfo)
	}

	return statusBarStyle.
		Width(m.width).
		Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `FASTA Browser - Help

Navigation:
  up/down, j/k  Navigate list
  /             Filter records by id

View Modes:
  1             Show nucleotides
  2             Show translated sequence
  3             Show reverse complement
  tab           Cycle modes

General:
  h             Toggle this help
  q, Ctrl+C     Quit application

Current Mode: ` + m.currentMode.String() + `
Translation Table: ` + m.table.Name() + `
Total Records: ` + fmt.Sprintf("%d", m.totalRecords) + `
`

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Align(lipgloss.Center).
		Render(helpContent)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func main() {
	inputFlag := flag.String("in", "", "input FASTA file path (defaults to input_fasta from config)")
	configFlag := flag.String("config", "", "path to config.json (optional)")
	tableFlag := flag.String("table", "", "translation table (standard, vertebrate-mitochondrial)")
	flag.Parse()

	logger := log.New(os.Stderr)

	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		logger.Fatal("failed to load config", "path", *configFlag, "err", err)
	}
	path := cfg.InputFasta
	if *inputFlag != "" {
		path = *inputFlag
	}
	if path == "" {
		logger.Fatal("no input FASTA given; use -in or input_fasta in config.json")
	}
	tableName := cfg.TranslationTable
	if *tableFlag != "" {
		tableName = *tableFlag
	}
	table, ok := translation.Lookup(tableName)
	if !ok {
		logger.Fatal("unknown translation table", "table", tableName, "known", translation.Names())
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Fatal("failed to open input fasta", "path", path, "err", err)
	}
	recs, err := fasta.ReadAll(f)
	f.Close()
	if err != nil {
		logger.Fatal("failed to read input fasta", "path", path, "err", err)
	}

	p := tea.NewProgram(newModel(buildRecords(recs, table), table), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
