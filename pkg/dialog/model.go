package dialog

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/formdlg/pkg/form"
)

// SubmitMsg is emitted when the submit protocol resolves. Programs that
// embed Model watch for it in the command stream; Dialog uses it to end
// its private program.
type SubmitMsg struct {
	Values map[string]any
}

// CancelMsg is emitted when the dialog is cancelled.
type CancelMsg struct{}

// fieldState holds the mutable control state for one field. The FieldSpec
// stays immutable; everything the user changes lives here.
type fieldState struct {
	input   textinput.Model // text fields and editable selects
	option  int             // readonly selects: index into Options
	cycle   int             // editable selects: last option cycled in
	checked bool            // checkboxes
	message string          // inline finding from the last submit
	warn    bool            // message is a warning, not an error
}

// Model is the bubbletea component behind a form dialog. Dialog runs it
// standalone; hosts may also embed it in a larger program and intercept
// SubmitMsg and CancelMsg themselves.
type Model struct {
	spec   form.Spec
	fields []fieldState

	// focusOrder holds the indexes of every field that can take focus, in
	// declaration order. focusIndex walks it; -1 means the action bar,
	// where focusButton walks barButtons.
	focusOrder  []int
	barButtons  []int
	focusIndex  int
	focusButton int

	// Terminal size from the last WindowSizeMsg
	width  int
	height int

	// confirming is set while the warning overlay is up; pending holds the
	// values collected by the submit that raised it.
	confirming bool
	warnings   []string
	pending    map[string]any

	// done latches after the first resolution; later input is inert.
	done   bool
	result form.Result

	help help.Model
	keys keyMap
}

// NewModel validates the description and builds the dialog component, so
// an invalid form can never reach the screen.
func NewModel(spec form.Spec) (Model, error) {
	if err := spec.Validate(); err != nil {
		return Model{}, err
	}

	m := Model{
		spec:       spec,
		fields:     make([]fieldState, len(spec.Fields)),
		focusIndex: -1,
		help:       help.New(),
		keys:       defaultKeyMap(),
	}

	for i, f := range spec.Fields {
		st := fieldState{cycle: -1}
		switch f.Kind {
		case form.KindText:
			st.input = newFieldInput(f)
		case form.KindSelect:
			if f.Readonly {
				st.option = indexOf(f.Options, f.DefaultString())
				if st.option < 0 {
					st.option = 0
				}
			} else {
				st.input = newFieldInput(f)
				st.cycle = indexOf(f.Options, f.DefaultString())
			}
		case form.KindCheckbox:
			st.checked = f.DefaultBool()
		}
		m.fields[i] = st

		if focusable(f) {
			m.focusOrder = append(m.focusOrder, i)
		}
		if f.Kind == form.KindButton && f.BindTo == "" {
			m.barButtons = append(m.barButtons, i)
		}
	}

	if len(m.focusOrder) > 0 {
		m.focusIndex = 0
	}
	m.applyFocus()
	return m, nil
}

// newFieldInput builds the text control for text fields and editable
// selects.
func newFieldInput(f form.FieldSpec) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(f.DefaultString())
	return ti
}

// focusable reports whether a field takes part in the field focus order.
// Labels never do; buttons only when bound to a field.
func focusable(f form.FieldSpec) bool {
	switch f.Kind {
	case form.KindText, form.KindSelect, form.KindCheckbox:
		return true
	case form.KindButton:
		return f.BindTo != ""
	default:
		return false
	}
}

// Done reports whether the dialog has resolved.
func (m Model) Done() bool {
	return m.done
}

// Result returns the dialog outcome. It is meaningful only after Done
// reports true.
func (m Model) Result() form.Result {
	return m.result
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SubmitMsg:
		if !m.done {
			m.done = true
			m.result = form.Result{Values: msg.Values}
		}
		return m, tea.Quit

	case CancelMsg:
		if !m.done {
			m.done = true
			m.result = form.CancelledResult()
		}
		return m, tea.Quit

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateFocusedInput(msg)
}

// updateKey routes key presses: global cancel keys first, then the warning
// overlay when it is up, then focus movement, then the focused control.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m.cancel()
	}

	if m.confirming {
		return m.updateConfirm(msg)
	}

	if key.Matches(msg, m.keys.Cancel) {
		return m.cancel()
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	if m.focusIndex == -1 {
		return m.updateActionBar(msg)
	}
	return m.updateField(m.focusOrder[m.focusIndex], msg)
}

// cancel resolves the dialog as cancelled. The result is latched here, not
// on message delivery, so a cancel always beats a submit still in flight.
func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.done = true
	m.result = form.CancelledResult()
	return m, cancelCmd
}

func cancelCmd() tea.Msg {
	return CancelMsg{}
}

func submitCmd(values map[string]any) tea.Cmd {
	return func() tea.Msg {
		return SubmitMsg{Values: values}
	}
}

// moveFocus advances focus by delta through the field order and the action
// bar, wrapping at both ends. The bar is a single stop in the cycle.
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	stops := len(m.focusOrder)
	hasBar := len(m.barButtons) > 0
	if hasBar {
		stops++
	}
	if stops == 0 {
		return m, nil
	}

	pos := m.focusIndex
	if pos == -1 {
		pos = len(m.focusOrder)
	}
	pos = (pos + delta + stops) % stops

	if hasBar && pos == len(m.focusOrder) {
		m.focusIndex = -1
		if m.focusButton >= len(m.barButtons) {
			m.focusButton = 0
		}
	} else {
		m.focusIndex = pos
	}
	m.applyFocus()
	return m, textinput.Blink
}

// applyFocus blurs every text control and focuses the one under the
// cursor, so exactly one input blinks.
func (m *Model) applyFocus() {
	for i := range m.fields {
		m.fields[i].input.Blur()
	}
	i := m.focusedField()
	if i < 0 {
		return
	}
	f := m.spec.Fields[i]
	if f.Kind == form.KindText || (f.Kind == form.KindSelect && !f.Readonly) {
		m.fields[i].input.Focus()
	}
}

// focusedField returns the index of the focused field, or -1 when focus is
// on the action bar or nothing is focusable.
func (m Model) focusedField() int {
	if m.focusIndex < 0 || m.focusIndex >= len(m.focusOrder) {
		return -1
	}
	return m.focusOrder[m.focusIndex]
}

// updateActionBar handles keys while the action bar has focus.
func (m Model) updateActionBar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.focusButton > 0 {
			m.focusButton--
		}
	case key.Matches(msg, m.keys.Right):
		if m.focusButton < len(m.barButtons)-1 {
			m.focusButton++
		}
	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Toggle):
		if len(m.barButtons) > 0 {
			return m.pressButton(m.barButtons[m.focusButton])
		}
	}
	return m, nil
}

// updateField handles keys for the focused field.
func (m Model) updateField(i int, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.spec.Fields[i]

	switch f.Kind {
	case form.KindCheckbox:
		if key.Matches(msg, m.keys.Toggle) || key.Matches(msg, m.keys.Enter) {
			m.fields[i].checked = !m.fields[i].checked
		}
		return m, nil

	case form.KindButton:
		if key.Matches(msg, m.keys.Enter) || key.Matches(msg, m.keys.Toggle) {
			return m.pressButton(i)
		}
		return m, nil

	case form.KindSelect:
		if f.Readonly {
			return m.updateReadonlySelect(i, msg)
		}
		return m.updateEditableSelect(i, msg)

	default: // form.KindText
		if key.Matches(msg, m.keys.Enter) {
			return m.moveFocus(1)
		}
		var cmd tea.Cmd
		m.fields[i].input, cmd = m.fields[i].input.Update(msg)
		return m, cmd
	}
}

// updateReadonlySelect cycles the option list. Free text never reaches a
// readonly select; keys that do not cycle are dropped.
func (m Model) updateReadonlySelect(i int, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.spec.Fields[i].Options)
	switch {
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left):
		m.fields[i].option = (m.fields[i].option - 1 + n) % n
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right):
		m.fields[i].option = (m.fields[i].option + 1) % n
	case key.Matches(msg, m.keys.Enter):
		return m.moveFocus(1)
	}
	return m, nil
}

// updateEditableSelect mixes free text with option cycling: up and down
// rotate the option list into the input, anything else edits normally.
// Only the bare arrow keys cycle, letters like j and k stay typeable.
func (m Model) updateEditableSelect(i int, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.spec.Fields[i]

	switch msg.Type {
	case tea.KeyUp, tea.KeyDown:
		step := 1
		if msg.Type == tea.KeyUp {
			step = -1
		}
		n := len(f.Options)
		cur := m.fields[i].cycle
		var next int
		switch {
		case cur < 0 && step < 0:
			next = n - 1
		case cur < 0:
			next = 0
		default:
			next = (cur + step + n) % n
		}
		m.fields[i].cycle = next
		m.fields[i].input.SetValue(f.Options[next])
		m.fields[i].input.CursorEnd()
		return m, nil
	}

	if key.Matches(msg, m.keys.Enter) {
		return m.moveFocus(1)
	}
	var cmd tea.Cmd
	m.fields[i].input, cmd = m.fields[i].input.Update(msg)
	return m, cmd
}

// updateFocusedInput forwards non-key messages (cursor blinks) to the
// focused text control.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	i := m.focusedField()
	if i < 0 {
		return m, nil
	}
	f := m.spec.Fields[i]
	if f.Kind != form.KindText && !(f.Kind == form.KindSelect && !f.Readonly) {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[i].input, cmd = m.fields[i].input.Update(msg)
	return m, cmd
}

// pressButton runs a button's role behavior. Submit and cancel are the
// engine's own; plain buttons run the caller's handler.
func (m Model) pressButton(i int) (tea.Model, tea.Cmd) {
	switch m.spec.Fields[i].Role {
	case form.RoleSubmit:
		return m.submit()
	case form.RoleCancel:
		return m.cancel()
	default:
		return m.pressPlain(i)
	}
}

// pressPlain runs a plain button's handler. For bound buttons an accepted
// return replaces the target field's text.
func (m Model) pressPlain(i int) (tea.Model, tea.Cmd) {
	f := m.spec.Fields[i]
	if f.OnPress == nil {
		return m, nil
	}
	if f.BindTo == "" {
		f.OnPress("")
		return m, nil
	}

	ti := m.fieldIndex(f.BindTo)
	if ti < 0 {
		return m, nil
	}
	value, ok := f.OnPress(m.fieldText(ti))
	if !ok {
		return m, nil
	}
	m.setFieldText(ti, value)
	return m, nil
}

// fieldIndex returns the position of the value-producing field with the
// given key, or -1.
func (m Model) fieldIndex(k string) int {
	for i, f := range m.spec.Fields {
		if f.Kind.ProducesValue() && f.Key == k {
			return i
		}
	}
	return -1
}

// fieldText returns the current text of a text or select field.
func (m Model) fieldText(i int) string {
	f := m.spec.Fields[i]
	if f.Kind == form.KindSelect && f.Readonly {
		return f.Options[m.fields[i].option]
	}
	return m.fields[i].input.Value()
}

// setFieldText replaces the current text of a text or select field. A
// readonly select only moves when the value names one of its options.
func (m *Model) setFieldText(i int, value string) {
	f := m.spec.Fields[i]
	if f.Kind == form.KindSelect && f.Readonly {
		if idx := indexOf(f.Options, value); idx >= 0 {
			m.fields[i].option = idx
		}
		return
	}
	m.fields[i].input.SetValue(value)
	m.fields[i].input.CursorEnd()
}

// submit runs the submit protocol: collect values, validate in declaration
// order with a per-field short circuit, then resolve, hold for warning
// confirmation, or stay open on errors.
func (m Model) submit() (tea.Model, tea.Cmd) {
	values := m.collectValues()

	for i := range m.fields {
		m.fields[i].message = ""
		m.fields[i].warn = false
	}

	hardErrs := 0
	var warnings []string
	for i, f := range m.spec.Fields {
		if !f.Kind.ProducesValue() {
			continue
		}
		for _, validate := range f.Validators {
			err := validate(values[f.Key])
			if err == nil {
				continue
			}
			m.fields[i].message = findingMessage(err)
			if form.IsWarning(err) {
				m.fields[i].warn = true
				warnings = append(warnings, fieldTitle(f)+": "+m.fields[i].message)
			} else {
				hardErrs++
			}
			break
		}
	}

	if hardErrs > 0 {
		return m, nil
	}
	if len(warnings) > 0 {
		m.confirming = true
		m.warnings = warnings
		m.pending = values
		return m, nil
	}
	return m, submitCmd(values)
}

// updateConfirm handles the warning overlay: y resolves the held submit,
// n or esc returns to the form with the warnings shown inline.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		values := m.pending
		m.confirming = false
		m.pending = nil
		m.warnings = nil
		return m, submitCmd(values)
	case "n", "N", "esc":
		m.confirming = false
		m.pending = nil
		m.warnings = nil
	}
	return m, nil
}

// collectValues reads every value-producing control. Text is trimmed at
// collection time so validators and callers see the same value.
func (m Model) collectValues() map[string]any {
	values := make(map[string]any)
	for i, f := range m.spec.Fields {
		if !f.Kind.ProducesValue() {
			continue
		}
		switch {
		case f.Kind == form.KindCheckbox:
			values[f.Key] = m.fields[i].checked
		case f.Kind == form.KindSelect && f.Readonly:
			values[f.Key] = f.Options[m.fields[i].option]
		default:
			values[f.Key] = strings.TrimSpace(m.fields[i].input.Value())
		}
	}
	return values
}

// findingMessage extracts the display text from a validator finding.
func findingMessage(err error) string {
	var fe *form.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}

// fieldTitle returns the best display name for a field.
func fieldTitle(f form.FieldSpec) string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}

func indexOf(list []string, want string) int {
	for i, s := range list {
		if s == want {
			return i
		}
	}
	return -1
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.contentWidth()

	sections := []string{TitleStyle.Render(m.spec.Title)}

	for _, row := range m.rows() {
		joined := m.renderField(row[0])
		for _, i := range row[1:] {
			joined = lipgloss.JoinHorizontal(lipgloss.Top, joined, "  ", m.renderField(i))
		}
		sections = append(sections, joined)
	}

	if len(m.barButtons) > 0 {
		sections = append(sections,
			SeparatorStyle.Render(strings.Repeat("─", width)),
			m.renderActionBar(width))
	}
	sections = append(sections, HelpBarStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	frame := DialogStyle.Width(width)
	if m.spec.MinHeight > 0 {
		frame = frame.Height(m.spec.MinHeight)
	}
	box := frame.Render(content)

	if m.confirming {
		return RenderOverlay(m.renderConfirm(), m.width, m.height)
	}
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// contentWidth clamps the dialog between its declared minimum and the
// terminal, leaving room for the frame.
func (m Model) contentWidth() int {
	width := m.spec.MinWidth
	if width <= 0 {
		width = DefaultMinWidth
	}
	if m.width > 0 && m.width-frameOverhead < width {
		width = m.width - frameOverhead
	}
	if width < 20 {
		width = 20
	}
	return width
}

// rows groups visible fields by Row, ordered by Col then declaration.
// Buttons never form blocks of their own: bound ones render beside their
// target and the rest collect into the action bar.
func (m Model) rows() [][]int {
	byRow := make(map[int][]int)
	var order []int
	for i, f := range m.spec.Fields {
		if f.Kind == form.KindButton {
			continue
		}
		if _, ok := byRow[f.Row]; !ok {
			order = append(order, f.Row)
		}
		byRow[f.Row] = append(byRow[f.Row], i)
	}
	sort.Ints(order)

	rows := make([][]int, 0, len(order))
	for _, r := range order {
		row := byRow[r]
		sort.SliceStable(row, func(a, b int) bool {
			return m.spec.Fields[row[a]].Col < m.spec.Fields[row[b]].Col
		})
		rows = append(rows, row)
	}
	return rows
}

// renderField draws one field block: label, control, and the inline
// message from the last submit, if any.
func (m Model) renderField(i int) string {
	f := m.spec.Fields[i]
	focused := m.focusedField() == i

	switch f.Kind {
	case form.KindLabel:
		return LabelStyle.Render(f.Label)
	case form.KindCheckbox:
		return m.renderCheckbox(i, focused)
	default:
		return m.renderControlBlock(i, focused)
	}
}

// renderControlBlock draws a text or select field, with any bound buttons
// beside the control.
func (m Model) renderControlBlock(i int, focused bool) string {
	f := m.spec.Fields[i]

	label := m.renderLabel(f, focused)

	var control string
	if f.Kind == form.KindSelect && f.Readonly {
		control = m.renderCycler(i, focused)
	} else {
		control = m.fields[i].input.View()
	}
	for _, b := range m.boundButtons(f.Key) {
		control = lipgloss.JoinHorizontal(lipgloss.Top, control, " ", m.renderButton(b))
	}

	lines := []string{label, "  " + control}
	if msg := m.renderMessage(i); msg != "" {
		lines = append(lines, "  "+msg)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderLabel draws a field label with the focus arrow and muted help
// suffix.
func (m Model) renderLabel(f form.FieldSpec, focused bool) string {
	label := f.Label
	if focused {
		label = FocusedLabelStyle.Render("→ " + label)
	} else {
		label = LabelStyle.Render("  " + label)
	}
	if f.Help != "" {
		label = lipgloss.JoinHorizontal(lipgloss.Top, label, "  ", HelpTextStyle.Render(f.Help))
	}
	return label
}

// renderCycler draws a readonly select as ◂ value ▸.
func (m Model) renderCycler(i int, focused bool) string {
	value := m.spec.Fields[i].Options[m.fields[i].option]
	s := "◂ " + value + " ▸"
	if focused {
		return FocusedInputStyle.Render(s)
	}
	return BlurredInputStyle.Render(s)
}

// renderCheckbox draws a checkbox with its label on the same line.
func (m Model) renderCheckbox(i int, focused bool) string {
	f := m.spec.Fields[i]

	box := "[ ]"
	if m.fields[i].checked {
		box = "[✓]"
	}
	line := box + " " + f.Label
	if focused {
		line = FocusedInputStyle.Render("→ " + line)
	} else {
		line = LabelStyle.Render("  " + line)
	}
	if f.Help != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, "  ", HelpTextStyle.Render(f.Help))
	}

	if msg := m.renderMessage(i); msg != "" {
		return lipgloss.JoinVertical(lipgloss.Left, line, "  "+msg)
	}
	return line
}

// renderButton draws a button, bound or bar.
func (m Model) renderButton(i int) string {
	label := "[ " + m.spec.Fields[i].Label + " ]"
	if m.buttonFocused(i) {
		return FocusedButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

// buttonFocused reports whether the button at field index i has focus,
// either through the field order (bound) or the action bar.
func (m Model) buttonFocused(i int) bool {
	if m.focusIndex == -1 {
		return len(m.barButtons) > 0 && m.barButtons[m.focusButton] == i
	}
	return m.focusedField() == i
}

// boundButtons returns the buttons bound to the given field key, in
// declaration order.
func (m Model) boundButtons(k string) []int {
	if k == "" {
		return nil
	}
	var bound []int
	for i, f := range m.spec.Fields {
		if f.Kind == form.KindButton && f.BindTo == k {
			bound = append(bound, i)
		}
	}
	return bound
}

// renderActionBar draws the unbound buttons right-aligned.
func (m Model) renderActionBar(width int) string {
	bar := m.renderButton(m.barButtons[0])
	for _, i := range m.barButtons[1:] {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, "  ", m.renderButton(i))
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(bar)
}

// renderMessage draws the inline finding recorded by the last submit.
func (m Model) renderMessage(i int) string {
	st := m.fields[i]
	if st.message == "" {
		return ""
	}
	if st.warn {
		return FieldWarningStyle.Render("⚠ " + st.message)
	}
	return FieldErrorStyle.Render("✗ " + st.message)
}

// renderConfirm draws the proceed-anyway overlay listing every warning.
func (m Model) renderConfirm() string {
	var b strings.Builder
	b.WriteString("Warnings\n\n")
	for _, w := range m.warnings {
		b.WriteString("⚠ " + w + "\n")
	}
	b.WriteString("\nProceed anyway? (y/n)")
	return WarningBoxStyle.Render(b.String())
}
