package tui

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fittrack/fittrack/pkg/stats"
	"github.com/fittrack/fittrack/pkg/store"
	gsync "github.com/fittrack/fittrack/pkg/sync"
	"github.com/fittrack/fittrack/pkg/tracker"
)

// DataChangedMsg is sent when the file watcher detects store changes.
type DataChangedMsg struct{}

// SyncDoneMsg is sent when git sync completes.
type SyncDoneMsg struct {
	Err error
}

// ExportDoneMsg is sent when a data export finishes.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// Tab indices.
const (
	tabDashboard = iota
	tabWorkouts
	tabRecords
	tabGoals
	tabCount
)

var tabNames = []string{"Dashboard", "Workouts", "Records", "Goals"}

// Model is the Bubble Tea model for the fittrack dashboard.
type Model struct {
	store      *store.Store
	keys       KeyMap
	bodyWeight float64
	width      int
	height     int

	activeTab int
	cursor    [tabCount]int

	// Data snapshots, rebuilt on every reload
	workouts     []store.Workout
	stats        stats.Stats
	records      []stats.RecordEntry
	goals        []store.Goal
	achievements []stats.Achievement
	session      *store.Session

	// Modal state
	showHelpModal     bool
	showDeleteConfirm bool
	deleteTarget      string
	deleteIsGoal      bool

	// Status message
	statusMsg     string
	statusTimeout time.Time
}

// NewModel creates a new TUI model.
func NewModel(s *store.Store, bodyWeight float64) Model {
	m := Model{
		store:      s,
		keys:       DefaultKeyMap(),
		bodyWeight: bodyWeight,
	}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// reload rebuilds every derived snapshot from the store. All statistics are
// recomputed in full; nothing is cached between reloads.
func (m *Model) reload() {
	now := time.Now()
	m.workouts = m.store.RecentWorkouts(0)
	m.stats = stats.Calculate(m.workouts, now)
	m.records = stats.RecordsWithImprovement(m.workouts)
	m.goals = tracker.Refresh(m.store.Goals(), m.stats)
	m.achievements = stats.Achievements(m.workouts, m.stats, m.bodyWeight, now)
	m.store.CleanupStaleSession(now)
	m.session = m.store.Session()
	m.clampCursors()
}

func (m *Model) clampCursors() {
	lengths := [tabCount]int{0, len(m.workouts), len(m.records), len(m.goals)}
	for tab, n := range lengths {
		if m.cursor[tab] >= n {
			m.cursor[tab] = n - 1
		}
		if m.cursor[tab] < 0 {
			m.cursor[tab] = 0
		}
	}
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = time.Now().Add(4 * time.Second)
}

// listLen returns the number of selectable rows on the active tab.
func (m Model) listLen() int {
	switch m.activeTab {
	case tabWorkouts:
		return len(m.workouts)
	case tabRecords:
		return len(m.records)
	case tabGoals:
		return len(m.goals)
	}
	return 0
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, tea.ClearScreen

	case DataChangedMsg:
		m.reload()
		return m, nil

	case SyncDoneMsg:
		if msg.Err != nil {
			m.setStatus("Sync failed: " + msg.Err.Error())
		} else {
			m.setStatus("Synced successfully")
			m.reload()
		}
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.setStatus("Export failed: " + msg.Err.Error())
		} else {
			m.setStatus("Exported to " + msg.Path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help modal
	if m.showHelpModal {
		switch msg.String() {
		case "esc", "enter", "?", "q":
			m.showHelpModal = false
		}
		return m, nil
	}

	// Delete confirmation
	if m.showDeleteConfirm {
		switch msg.String() {
		case "y", "Y":
			if m.deleteIsGoal {
				m.store.DeleteGoal(m.deleteTarget)
				m.setStatus("Goal deleted")
			} else {
				m.store.DeleteWorkout(m.deleteTarget)
				m.setStatus("Workout deleted")
			}
			m.reload()
			m.showDeleteConfirm = false
		case "n", "N", "esc":
			m.showDeleteConfirm = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.activeTab] > 0 {
			m.cursor[m.activeTab]--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.activeTab] < m.listLen()-1 {
			m.cursor[m.activeTab]++
		}

	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % tabCount

	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount

	case key.Matches(msg, m.keys.Tab1):
		m.activeTab = tabDashboard
	case key.Matches(msg, m.keys.Tab2):
		m.activeTab = tabWorkouts
	case key.Matches(msg, m.keys.Tab3):
		m.activeTab = tabRecords
	case key.Matches(msg, m.keys.Tab4):
		m.activeTab = tabGoals

	case key.Matches(msg, m.keys.Delete):
		switch m.activeTab {
		case tabWorkouts:
			if i := m.cursor[tabWorkouts]; i < len(m.workouts) {
				m.deleteTarget = m.workouts[i].ID
				m.deleteIsGoal = false
				m.showDeleteConfirm = true
			}
		case tabGoals:
			if i := m.cursor[tabGoals]; i < len(m.goals) {
				m.deleteTarget = m.goals[i].ID
				m.deleteIsGoal = true
				m.showDeleteConfirm = true
			}
		}

	case key.Matches(msg, m.keys.Seed):
		if m.activeTab == tabGoals && len(m.goals) == 0 {
			m.store.SaveGoals(tracker.DefaultGoals(m.stats, time.Now()))
			m.reload()
			m.setStatus("Starter goals added")
		}

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()

	case key.Matches(msg, m.keys.Reload):
		m.reload()
		m.setStatus("Reloaded")

	case key.Matches(msg, m.keys.Sync):
		m.setStatus("Syncing...")
		root := m.store.Root
		return m, func() tea.Msg {
			return SyncDoneMsg{Err: gsync.SyncRepo(root)}
		}

	case key.Matches(msg, m.keys.Help):
		m.showHelpModal = true
	}

	return m, nil
}

// exportCmd writes the export document next to the data directory.
func (m Model) exportCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		path := filepath.Join(s.Root, "fittrack-export.json")
		data, err := s.Export(time.Now())
		if err == nil {
			err = os.WriteFile(path, []byte(data), 0644)
		}
		return ExportDoneMsg{Path: path, Err: err}
	}
}
