package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/shift"
)

// DebugLogger logs TUI state, input and events to a file as JSON lines.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "rota-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	return initDebugLoggerAt(DebugLogPath, enabled)
}

func initDebugLoggerAt(path string, enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
		debugLog.file = nil
	}
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogMouse logs pointer events other than plain motion without a button.
func LogMouse(msg tea.MouseMsg) {
	if !debugEnabled() {
		return
	}
	if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone {
		return
	}
	debugLog.log("MOUSE", map[string]any{
		"x":     msg.X,
		"y":     msg.Y,
		"event": tea.MouseEvent(msg).String(),
	})
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MODE_CHANGE", map[string]any{
		"from":   modeString(from),
		"to":     modeString(to),
		"reason": reason,
	})
}

// LogDrag logs a step of a drag session.
func LogDrag(action string, d *grid.Drag) {
	if !debugEnabled() {
		return
	}
	data := map[string]any{"action": action}
	if s, ok := d.Session(); ok {
		data["entity_id"] = s.Anchor.EntityID
		data["anchor_slot"] = s.Anchor.Slot
		data["start_x"] = s.StartX
		data["current_x"] = s.CurrentX
		data["target"] = s.Target
		data["span"] = s.Preview.StartTime + "-" + s.Preview.EndTime
	}
	debugLog.log("DRAG", data)
}

// LogFilter logs the selection after it changed.
func LogFilter(sel filter.Selection, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FILTER", map[string]any{
		"reason":  reason,
		"by":      string(sel.By),
		"name":    sel.Name,
		"type":    sel.Type,
		"status":  sel.Status,
		"date":    sel.Date.Format("2006-01-02"),
		"density": string(sel.Density),
		"search":  sel.NameSearch,
	})
}

// LogCommit logs a draft sent to the repository.
func LogCommit(id int64, d shift.Draft) {
	if !debugEnabled() {
		return
	}
	debugLog.log("COMMIT", map[string]any{
		"id":             id,
		"worker":         d.Worker,
		"service_client": d.ServiceClient,
		"start":          d.Start,
		"end":            d.End,
		"coverage":       string(d.Coverage),
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// modeString returns a string representation of a Mode.
func modeString(m Mode) string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeDrag:
		return "Drag"
	case ModePrompt:
		return "Prompt"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}
