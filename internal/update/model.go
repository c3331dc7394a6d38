package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/pomod/internal/dialog"
	"github.com/sandeepkv93/pomod/internal/idgen"
	"github.com/sandeepkv93/pomod/internal/logging"
	"github.com/sandeepkv93/pomod/internal/model"
	"github.com/sandeepkv93/pomod/internal/notify"
	"github.com/sandeepkv93/pomod/internal/pomodoro"
	"github.com/sandeepkv93/pomod/internal/scheduler"
	"github.com/sandeepkv93/pomod/internal/storage"
	"github.com/sandeepkv93/pomod/internal/tasklist"
	"github.com/sandeepkv93/pomod/internal/theme"
	"github.com/sandeepkv93/pomod/internal/views"
)

const (
	appName     = "pomod"
	notifyTitle = "Pomodoro"
	breakBody   = "Time to start your break!"
	workBody    = "Back to work!"
	defaultTick = time.Second
	statusTTL   = 4 * time.Second
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Deps are the collaborators the model drives. Zero values fall back to
// in-memory or no-op implementations.
type Deps struct {
	Tasks        *tasklist.List
	Theme        *theme.Manager
	Notify       *notify.Center
	IDs          idgen.Generator
	Durations    pomodoro.Durations
	TickInterval time.Duration
	// StatusTTL is how long a non-error status stays visible. Negative keeps
	// statuses until they are replaced.
	StatusTTL    time.Duration
	Logger       *log.Logger
}

type Model struct {
	Status      StatusBar
	Palette     CommandPaletteState
	HelpVisible bool
	Quitting    bool
	LastError   error

	ctx     context.Context
	tasks   *tasklist.List
	theme   *theme.Manager
	center  *notify.Center
	ids     idgen.Generator
	engine  *pomodoro.Engine
	logger  *log.Logger
	dialogs dialog.Controller
	keys    keyMap
	styles  views.Styles

	tickInterval time.Duration
	ticker       *scheduler.Ticker
	tickGen      uint64

	statusTTL time.Duration
	statusSeq uint64

	// rows maps a task id to its row in taskList.
	rows        map[string]int
	taskList    list.Model
	progressBar progress.Model
	barWidth    int
	commandIn   textinput.Model
	helpModel   help.Model
	detail      viewport.Model
	detailKey   string
	width       int
	height      int
}

type TickMsg struct {
	Gen uint64
	At  time.Time
}

// TaskIDMsg delivers a freshly generated id for a pending add.
type TaskIDMsg struct {
	ID         string
	Submission dialog.Submission
	Err        error
}

type SystemThemeMsg struct {
	Theme model.Theme
}

// ClearStatusMsg expires the status that was set as number Seq.
type ClearStatusMsg struct {
	Seq uint64
}

func NewModel(deps Deps) Model {
	ctx := context.Background()
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.Tasks == nil {
		deps.Tasks = tasklist.New(storage.NewMemoryStore(), deps.Logger)
	}
	if deps.Theme == nil {
		deps.Theme = theme.NewManager(nil, nil, deps.Logger)
	}
	if deps.Notify == nil {
		deps.Notify = notify.NewCenter(notify.NoopNotifier{}, false, deps.Logger)
	}
	if deps.IDs == nil {
		deps.IDs = idgen.NewUUIDGenerator()
	}
	if deps.TickInterval <= 0 {
		deps.TickInterval = defaultTick
	}
	if deps.StatusTTL == 0 {
		deps.StatusTTL = statusTTL
	}

	m := Model{
		ctx:          ctx,
		tasks:        deps.Tasks,
		theme:        deps.Theme,
		center:       deps.Notify,
		ids:          deps.IDs,
		engine:       pomodoro.NewEngine(deps.Durations),
		logger:       deps.Logger,
		dialogs:      dialog.NewController(),
		keys:         defaultKeyMap(),
		tickInterval: deps.TickInterval,
		statusTTL:    deps.StatusTTL,
		rows:         make(map[string]int),
		barWidth:     32,
	}
	m.tasks.Load(ctx)
	m.theme.Resolve(ctx)
	m.initBubbleComponents()
	m.applyTheme()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 40, 12)
	m.taskList.Title = "Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetShowStatusBar(false)
	m.taskList.SetFilteringEnabled(false)

	m.commandIn = textinput.New()
	m.commandIn.Prompt = "/"
	m.commandIn.CharLimit = 256
	m.commandIn.Width = 48

	m.helpModel = help.New()
	m.detail = viewport.New(80, 6)
}

// applyTheme rebuilds every theme-dependent style from the current theme.
func (m *Model) applyTheme() {
	m.styles = views.NewStyles(m.theme.Current())
	m.progressBar = progress.New(
		progress.WithSolidFill(m.styles.Palette.PhaseColor(m.engine.Phase() == pomodoro.PhaseBreak)),
		progress.WithoutPercentage(),
		progress.WithWidth(m.barWidth),
	)
	m.detailKey = ""
}

// Shutdown stops the tick source. Safe to call more than once.
func (m Model) Shutdown() {
	if m.ticker != nil {
		m.ticker.Stop()
	}
}

func (m Model) Engine() *pomodoro.Engine { return m.engine }

func (m Model) Tasks() []model.Task { return m.tasks.Tasks() }

func (m Model) Theme() model.Theme { return m.theme.Current() }

func (m Model) Dialogs() dialog.Controller { return m.dialogs }
