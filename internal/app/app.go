// Package app wires the trawl components together: configuration,
// keybindings, the screen renderer and the views, driven by a
// synchronous read-key/execute/render loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/trawlfm/trawl/internal/config"
	"github.com/trawlfm/trawl/internal/fileinfo"
	"github.com/trawlfm/trawl/internal/imagemeta"
	"github.com/trawlfm/trawl/internal/keybind"
	"github.com/trawlfm/trawl/internal/natsort"
	"github.com/trawlfm/trawl/internal/renderer"
	"github.com/trawlfm/trawl/internal/view"
)

// Options configure the application.
type Options struct {
	// StartDir is the directory shown first. Defaults to ".".
	StartDir string

	// ConfigPath locates the JSON configuration file.
	ConfigPath string

	// KeybindPath locates the binding file; overrides the config.
	KeybindPath string

	// LogLevel and LogPath control the file logger. An empty LogPath
	// disables logging entirely (the terminal belongs to the UI).
	LogLevel string
	LogPath  string
}

// App owns the application state and the main loop.
type App struct {
	log      *Logger
	cfg      *config.Config
	bindings keybind.Bindings
	screen   *renderer.Screen
	input    io.Reader

	dir    *view.DirView
	status *view.StatusView
	path   string

	showHidden bool
	logFile    *os.File
}

// New builds an App from options: configuration and bindings are
// loaded, the starting directory is read. The screen is attached
// separately with SetScreen so tests can substitute an in-memory one.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	bindPath := opts.KeybindPath
	if bindPath == "" {
		bindPath = cfg.KeybindPath
	}
	bindings, err := loadBindings(bindPath)
	if err != nil {
		return nil, err
	}

	start := opts.StartDir
	if start == "" {
		start = "."
	}
	start, err = filepath.Abs(start)
	if err != nil {
		return nil, NewOperationError("resolve_dir", opts.StartDir, err)
	}

	a := &App{
		cfg:        cfg,
		bindings:   bindings,
		input:      os.Stdin,
		dir:        view.NewDirView(cfg.Theme),
		status:     view.NewStatusView(cfg.Theme),
		showHidden: cfg.ShowHidden,
	}
	if err := a.changeDir(start); err != nil {
		return nil, err
	}

	// The log file opens last: a failed construction must not leave an
	// open file behind.
	logOut := io.Writer(nil)
	if opts.LogPath != "" {
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, NewOperationError("open_log", opts.LogPath, err)
		}
		logOut = f
		a.logFile = f
	}
	a.log = NewLogger(logOut, ParseLogLevel(opts.LogLevel))
	return a, nil
}

// SetScreen attaches the renderer the app draws into.
func (a *App) SetScreen(s *renderer.Screen) {
	a.screen = s
}

// SetInput substitutes the key source; tests script it.
func (a *App) SetInput(r io.Reader) {
	a.input = r
}

// Path returns the directory currently shown.
func (a *App) Path() string {
	return a.path
}

// Run drives the main loop until a quit command or an error. The
// screen is released on every exit path, panics included, so the
// terminal never stays in raw mode.
func (a *App) Run() error {
	if a.screen == nil {
		return errors.New("app: no screen attached")
	}
	if err := a.screen.Activate(); err != nil {
		return err
	}
	defer func() {
		r := recover()
		a.screen.Deactivate()
		if r != nil {
			panic(r)
		}
	}()

	a.log.Info("session started dir=%s", a.path)

	buf := make([]byte, 1)
	for {
		a.draw()
		if err := a.screen.Render(); err != nil {
			return NewOperationError("render", "", err)
		}

		if _, err := io.ReadFull(a.input, buf); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return NewOperationError("read_key", "", err)
		}
		key := keyName(buf[0])
		cmd, ok := a.bindings.Lookup(key)
		if !ok {
			continue
		}

		if err := a.Execute(cmd); err != nil {
			if errors.Is(err, ErrQuit) {
				a.log.Info("session ended")
				return nil
			}
			// Navigation failures (permission denied, races with
			// other processes) are logged, not fatal.
			a.log.Warn("command failed: %v", err)
		}
	}
}

// Shutdown releases the terminal; safe to call from a signal handler
// and after Run has already cleaned up.
func (a *App) Shutdown() {
	if a.screen != nil {
		a.screen.Deactivate()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// Execute runs one bound command against the application state.
func (a *App) Execute(cmd string) error {
	switch cmd {
	case "quit":
		return ErrQuit
	case "cursor_down":
		a.dir.MoveSelection(1)
	case "cursor_up":
		a.dir.MoveSelection(-1)
	case "top":
		a.dir.Selected = 0
	case "bottom":
		a.dir.Selected = len(a.dir.Entries) - 1
		a.dir.ClampSelection()
	case "enter":
		return a.enterSelected()
	case "parent":
		return a.changeDir(filepath.Dir(a.path))
	case "toggle_hidden":
		a.showHidden = !a.showHidden
		return a.changeDir(a.path)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return nil
}

// enterSelected descends into the selected entry if it is a directory.
func (a *App) enterSelected() error {
	e, ok := a.selected()
	if !ok {
		return ErrNoEntries
	}
	if !e.Dir {
		return nil // file preview is handled elsewhere
	}
	return a.changeDir(filepath.Join(a.path, e.Name))
}

func (a *App) selected() (view.Entry, bool) {
	if len(a.dir.Entries) == 0 {
		return view.Entry{}, false
	}
	return a.dir.Entries[a.dir.Selected], true
}

// changeDir reads and sorts a directory into the listing view.
func (a *App) changeDir(path string) error {
	entries, err := readEntries(path, a.showHidden)
	if err != nil {
		return NewOperationError("read_dir", path, err)
	}
	a.path = path
	a.dir.Entries = entries
	a.dir.Selected = 0
	return nil
}

// readEntries lists a directory: directories first, each group in
// natural order.
func readEntries(path string, showHidden bool) ([]view.Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]view.Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		entries = append(entries, view.Entry{
			Name:    name,
			Dir:     d.IsDir(),
			Symlink: d.Type()&os.ModeSymlink != 0,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Dir != entries[j].Dir {
			return entries[i].Dir
		}
		return natsort.Less(entries[i].Name, entries[j].Name)
	})
	return entries, nil
}

// draw rebuilds the logical frame: listing plus status bar.
func (a *App) draw() {
	a.status.Left = a.statusText()
	a.status.Index = 0
	a.status.Total = len(a.dir.Entries)
	if a.status.Total > 0 {
		a.status.Index = a.dir.Selected + 1
	}

	a.dir.Render(a.screen)
	a.status.Render(a.screen)
}

// statusText formats the metadata line for the selected entry.
func (a *App) statusText() string {
	e, ok := a.selected()
	if !ok {
		return a.path + " (empty)"
	}

	full := filepath.Join(a.path, e.Name)
	info, err := fileinfo.Stat(full)
	if err != nil {
		return e.Name
	}
	line := info.StatusLine()

	// Image files get their EXIF orientation appended so the preview
	// pane knows how the image will be rotated.
	if o := imageOrientation(full); o > 1 {
		line += fmt.Sprintf(" [orientation %d]", o)
	}
	return line
}

func imageOrientation(path string) int {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		return 0
	}
	o, err := imagemeta.OrientationFile(path)
	if err != nil {
		return 0
	}
	return o
}

// keyName translates a raw input byte into a binding key.
func keyName(b byte) string {
	switch b {
	case 0x03:
		return "ctrl-c"
	case '\r', '\n':
		return "enter"
	case 0x1b:
		return "esc"
	case 0x7f:
		return "backspace"
	}
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return ""
}

// loadBindings parses the binding file, or falls back to the built-in
// table when no file is configured.
func loadBindings(path string) (keybind.Bindings, error) {
	if path == "" {
		return defaultBindings(), nil
	}
	list, err := keybind.ParseFile(path)
	if err != nil {
		return nil, err
	}
	// User files extend the defaults rather than replace them.
	merged := defaultBindings()
	for k, v := range keybind.NewBindings(list) {
		merged[k] = v
	}
	return merged, nil
}

func defaultBindings() keybind.Bindings {
	return keybind.Bindings{
		"j":      "cursor_down",
		"k":      "cursor_up",
		"g":      "top",
		"G":      "bottom",
		"h":      "parent",
		"l":      "enter",
		"enter":  "enter",
		".":      "toggle_hidden",
		"q":      "quit",
		"ctrl-c": "quit",
	}
}
