package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/shift"
	"github.com/javiermolinar/rota/internal/tui/commands"
	"github.com/javiermolinar/rota/internal/tui/view"
)

// Editor fields in display order.
const (
	fieldWorker = iota
	fieldServiceClient
	fieldRole
	fieldType
	fieldStart
	fieldEnd
	fieldStatus
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Worker", "Service/Client", "Role", "Type", "Start", "End", "Status", "Notes",
}

// editorField is either a choice cycled with left/right or a text input.
type editorField struct {
	options []string
	choice  int
	input   *textinput.Model
	locked  bool
}

func (f editorField) value() string {
	if f.input != nil {
		return strings.TrimSpace(f.input.Value())
	}
	if f.choice < 0 || f.choice >= len(f.options) {
		return ""
	}
	return f.options[f.choice]
}

// set selects value, adding it to the options when it is not offered.
func (f *editorField) set(value string) {
	if f.input != nil {
		f.input.SetValue(value)
		return
	}
	for i, o := range f.options {
		if o == value {
			f.choice = i
			return
		}
	}
	f.options = append(f.options, value)
	f.choice = len(f.options) - 1
}

func (f *editorField) cycle(delta int) {
	if f.input != nil || len(f.options) == 0 {
		return
	}
	n := len(f.options)
	f.choice = ((f.choice+delta)%n + n) % n
}

// editorState is the assignment editor: a draft being completed before it
// is committed as a new or updated shift.
type editorState struct {
	id     int64 // zero creates a shift
	draft  shift.Draft
	fields [fieldCount]editorField
	focus  int
	err    string
}

func newEditorState(styles *Styles) editorState {
	var e editorState
	for _, i := range []int{fieldStart, fieldEnd, fieldNotes} {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 5
		in.TextStyle = styles.ModalInputTextStyle
		in.Cursor.Style = styles.ModalInputCursorStyle
		in.PlaceholderStyle = styles.ModalPlaceholderStyle
		e.fields[i].input = &in
	}
	e.fields[fieldStart].input.Placeholder = "HH:MM"
	e.fields[fieldEnd].input.Placeholder = "HH:MM"
	e.fields[fieldNotes].input.CharLimit = 200
	e.fields[fieldNotes].input.Placeholder = shift.DefaultNotes
	return e
}

func (e editorState) creating() bool {
	return e.id == 0
}

func names(entities []shift.Entity) []string {
	out := make([]string, 0, len(entities)+1)
	out = append(out, "")
	for _, en := range entities {
		out = append(out, en.Name)
	}
	return out
}

func roleOptions() []string {
	out := []string{""}
	for _, r := range shift.Roles() {
		out = append(out, string(r))
	}
	return out
}

// openEditor fills the editor from a draft. id is zero for a new shift.
func (m *Model) openEditor(id int64, d shift.Draft) {
	e := &m.editor
	e.id = id
	e.draft = d
	e.err = ""

	e.fields[fieldWorker] = editorField{
		options: names(filter.WorkersForRole(d.RequiredRole, m.entities)),
		locked:  d.WorkerLocked(),
	}
	e.fields[fieldServiceClient] = editorField{
		options: names(filter.ServiceClientOptions(m.entities)),
		locked:  d.ServiceClientLocked(),
	}
	e.fields[fieldRole] = editorField{options: roleOptions()}
	e.fields[fieldType] = editorField{options: append([]string{""}, shift.Types()...)}
	e.fields[fieldStatus] = editorField{
		options: []string{string(shift.CoverageCovered), string(shift.CoverageUncovered)},
	}

	e.fields[fieldWorker].set(d.Worker)
	e.fields[fieldServiceClient].set(d.ServiceClient)
	e.fields[fieldRole].set(d.RequiredRole)
	e.fields[fieldType].set(d.Type)
	e.fields[fieldStatus].set(string(d.Coverage))
	e.fields[fieldStart].set(d.Start)
	e.fields[fieldEnd].set(d.End)
	e.fields[fieldNotes].set(d.Notes)

	e.focus = -1
	m.focusEditorField(1)

	m.modalType = ModalEditor
	m.setMode(ModeModal, "editor")
}

// editShift opens the editor on an existing shift.
func (m *Model) editShift(s *shift.Shift) {
	m.openEditor(s.ID, shift.EditDraft(s, m.entities))
}

// focusEditorField moves focus by delta, skipping locked fields.
func (m *Model) focusEditorField(delta int) {
	e := &m.editor
	if e.focus >= 0 && e.fields[e.focus].input != nil {
		e.fields[e.focus].input.Blur()
	}
	next := e.focus
	for range fieldCount {
		next = ((next+delta)%fieldCount + fieldCount) % fieldCount
		if !e.fields[next].locked {
			break
		}
	}
	e.focus = next
	if in := e.fields[next].input; in != nil {
		in.Focus()
		in.CursorEnd()
	}
}

// editorDraft collects the field values into the draft being edited.
func (e editorState) editorDraft() shift.Draft {
	d := e.draft
	d.Worker = e.fields[fieldWorker].value()
	d.ServiceClient = e.fields[fieldServiceClient].value()
	d.RequiredRole = e.fields[fieldRole].value()
	d.Type = e.fields[fieldType].value()
	d.Start = e.fields[fieldStart].value()
	d.End = e.fields[fieldEnd].value()
	d.Coverage = shift.Coverage(e.fields[fieldStatus].value())
	d.Notes = e.fields[fieldNotes].value()
	if d.Notes == "" && e.creating() {
		d.Notes = shift.DefaultNotes
	}
	return d
}

// setRole changes the required role. The worker list narrows to the role
// and any chosen worker is cleared.
func (m *Model) setRole(delta int) {
	e := &m.editor
	e.fields[fieldRole].cycle(delta)
	if e.fields[fieldWorker].locked {
		return
	}
	role := e.fields[fieldRole].value()
	e.fields[fieldWorker].options = names(filter.WorkersForRole(role, m.entities))
	e.fields[fieldWorker].choice = 0
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := &m.editor
	f := &e.fields[e.focus]

	switch msg.String() {
	case "esc":
		m.closeModal("editor cancelled")
		return m, nil
	case "enter", "ctrl+s":
		d := e.editorDraft()
		if err := d.Validate(); err != nil {
			e.err = err.Error()
			LogError("editor validate", err)
			return m, nil
		}
		LogCommit(e.id, d)
		id := e.id
		m.closeModal("editor commit")
		return m, commands.SaveShift(m.repo, id, d)
	case "tab", "down":
		m.focusEditorField(1)
		return m, nil
	case "shift+tab", "up":
		m.focusEditorField(-1)
		return m, nil
	}

	if f.input == nil {
		switch msg.String() {
		case "left", "h":
			if e.focus == fieldRole {
				m.setRole(-1)
			} else {
				f.cycle(-1)
			}
		case "right", "l", " ":
			if e.focus == fieldRole {
				m.setRole(1)
			} else {
				f.cycle(1)
			}
		}
		e.err = ""
		return m, nil
	}

	in, cmd := f.input.Update(msg)
	*f.input = in
	e.err = ""
	return m, cmd
}

func (m Model) editorTitle() string {
	if m.editor.creating() {
		return "New shift"
	}
	return fmt.Sprintf("Edit shift #%d", m.editor.id)
}

func (m Model) renderEditor() string {
	e := m.editor
	d := e.editorDraft()

	meta := []string{d.Date.Format("Mon 02 Jan"), fmt.Sprintf("%s-%s", d.Start, d.End)}
	if !e.creating() {
		meta = append(meta, string(e.draft.Coverage))
	}

	fields := make([]view.EditorField, 0, fieldCount)
	for i, f := range e.fields {
		value := f.value()
		if f.input != nil && i == e.focus {
			value = f.input.View()
		}
		fields = append(fields, view.EditorField{
			Label:   fieldLabels[i],
			Value:   value,
			Focused: i == e.focus,
			Locked:  f.locked,
			Choice:  f.input == nil,
		})
	}

	hint := "tab/↑↓ move · ←/→ change · role narrows workers"
	body := view.RenderEditorBody(view.EditorModel{
		Meta:   meta,
		Fields: fields,
		Hint:   hint,
		Error:  e.err,
	}, view.EditorStyles{
		TagStyle:    m.styles.ModalTagStyle,
		LabelStyle:  m.styles.ModalLabelStyle,
		ValueStyle:  m.styles.ModalValueStyle,
		FocusStyle:  m.styles.ModalFocusStyle,
		LockedStyle: m.styles.ModalLockedStyle,
		HintStyle:   m.styles.ModalHintStyle,
		ErrorStyle:  m.styles.ModalErrorStyle,
		BodyStyle:   m.styles.ModalBodyStyle,
		LabelWidth:  16,
		ValueWidth:  modalWidth - 26,
	})

	return view.RenderModalFrame(m.editorTitle(), body, view.EditorFooter(e.creating(), m.modalStyles()), m.modalStyles())
}
