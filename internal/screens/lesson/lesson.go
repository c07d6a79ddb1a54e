package lesson

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/primer/internal/focus"
	"github.com/abhisek/primer/internal/manifest"
	"github.com/abhisek/primer/internal/primitive"
	"github.com/abhisek/primer/internal/router"
	"github.com/abhisek/primer/internal/screen"
	"github.com/abhisek/primer/internal/screens/summary"
	"github.com/abhisek/primer/internal/store"
	"github.com/abhisek/primer/internal/tutor"
	"github.com/abhisek/primer/internal/ui/components"
	"github.com/abhisek/primer/internal/ui/layout"
	"github.com/abhisek/primer/internal/widgets"
)

// tutorPollInterval is how often the screen checks for a generated
// tutor comment.
const tutorPollInterval = 500 * time.Millisecond

// widgetView pairs one machine with its editable input state. A widget
// completed in a previous run keeps restored set and no machine input.
type widgetView struct {
	def     manifest.Widget
	machine *primitive.Machine

	balancer *widgets.BalancerState
	place    *widgets.PlaceValueState
	input    components.TextInput
	cursor   int

	restored *store.InstanceProgress

	// Feed geometry from the last layout pass, in content lines.
	top    int
	height int
}

func (v *widgetView) complete() bool {
	if v.restored != nil {
		return true
	}
	return v.machine.State().Complete
}

// LessonScreen plays one manifest lesson as a scrollable widget feed.
type LessonScreen struct {
	lesson *manifest.Lesson
	events store.EventRepo
	snaps  store.SnapshotRepo

	session    *tutor.Session
	dispatcher *tutor.Dispatcher
	tracker    *focus.Tracker

	views    []*widgetView
	selected int
	scroll   int
	width    int
	height   int

	advanceGen int
	tutorLine  string
	errMsg     string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New builds the player for a lesson. Previously completed widgets are
// restored from the latest snapshot instead of replayed. The tutoring
// session may be nil; play then proceeds without commentary.
func New(lesson *manifest.Lesson, events store.EventRepo, snaps store.SnapshotRepo, session *tutor.Session) (*LessonScreen, error) {
	s := &LessonScreen{
		lesson:  lesson,
		events:  events,
		snaps:   snaps,
		session: session,
	}

	var saved map[string]store.InstanceProgress
	if snaps != nil {
		if snap, err := snaps.Latest(context.Background()); err == nil && snap != nil && snap.Data.LessonID == lesson.ID {
			saved = snap.Data.Instances
		}
	}

	var ch tutor.Channel
	if session != nil {
		s.dispatcher = tutor.NewDispatcher(session)
		ch = session
	}
	s.tracker = focus.New(ch, focus.DefaultConfig())

	for _, def := range lesson.Widgets {
		v := &widgetView{def: def}

		if prog, ok := saved[def.ID]; ok && prog.Complete {
			prog := prog
			v.restored = &prog
			s.views = append(s.views, v)
			continue
		}

		widgetID := def.ID
		machine, err := widgets.Build(def, func(result primitive.EvaluationResult) {
			s.persistEvaluation(widgetID, def.Type, result)
		})
		if err != nil {
			return nil, err
		}
		if s.dispatcher != nil {
			machine.AddSink(s.dispatcher)
		}
		v.machine = machine
		s.views = append(s.views, v)
	}

	// Start on the first unfinished widget.
	for i, v := range s.views {
		if !v.complete() {
			s.selected = i
			break
		}
	}
	return s, nil
}

func (s *LessonScreen) Init() tea.Cmd {
	if s.session != nil {
		s.session.SetMode(tutor.SessionModeLesson)
	}
	s.beginSelected()
	return tutorTick()
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

// Progress returns solved and total challenge counts across the feed.
func (s *LessonScreen) Progress() (solved, total int) {
	for _, v := range s.views {
		total += len(v.def.Challenges)
		if v.restored != nil {
			solved += len(v.def.Challenges)
			continue
		}
		for _, rec := range v.machine.Records() {
			if rec.Correct {
				solved++
			}
		}
	}
	return solved, total
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	v := s.views[s.selected]
	if v.complete() {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next widget"},
			{Key: "Esc", Description: "Back"},
		}
	}
	st := v.machine.State()
	if st.Status.Terminal() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Tab", Description: "Switch widget"},
	}
	switch v.def.Type {
	case manifest.TypeBalancer:
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Element"},
			layout.KeyHint{Key: "+/-", Description: "Adjust"},
			layout.KeyHint{Key: "u", Description: "Undo"})
		if v.def.GuidedAvailable {
			hints = append(hints, layout.KeyHint{Key: "g", Description: "Guide me"})
		}
	case manifest.TypePlaceValue:
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Column"},
			layout.KeyHint{Key: "0-9", Description: "Type"},
			layout.KeyHint{Key: "u", Description: "Undo"})
	}
	return hints
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		if msg.gen != s.advanceGen || msg.widget >= len(s.views) {
			return s, nil
		}
		return s, s.advance(s.views[msg.widget])

	case tutorTickMsg:
		if s.session != nil {
			if c, ok := s.session.ConsumeComment(); ok {
				s.tutorLine = c.Text
			}
		}
		return s, tutorTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		s.selectWidget((s.selected + 1) % len(s.views))
		return s, nil
	case "shift+tab":
		s.selectWidget((s.selected + len(s.views) - 1) % len(s.views))
		return s, nil
	case "up":
		s.scrollTo(s.scroll - 1)
		return s, nil
	case "down":
		s.scrollTo(s.scroll + 1)
		return s, nil
	case "pgup":
		s.scrollTo(s.scroll - s.contentHeight())
		return s, nil
	case "pgdown":
		s.scrollTo(s.scroll + s.contentHeight())
		return s, nil
	}

	v := s.views[s.selected]
	if v.complete() {
		return s, nil
	}

	st := v.machine.State()
	if st.Status.Terminal() {
		switch msg.String() {
		case "enter", "n":
			return s, s.advance(v)
		}
		return s, nil
	}
	if st.Status != primitive.StatusAwaitingInput {
		return s, nil
	}

	if msg.String() == "R" {
		s.resetWidget(v)
		return s, nil
	}

	switch v.def.Type {
	case manifest.TypeBalancer:
		return s.handleBalancerKey(v, msg)
	case manifest.TypePlaceValue:
		return s.handlePlaceValueKey(v, msg)
	default:
		return s.handleFlashcardKey(v, msg)
	}
}

func (s *LessonScreen) handleBalancerKey(v *widgetView, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if v.balancer == nil {
		return s, nil
	}
	elements := v.balancer.Elements()

	switch msg.String() {
	case "left", "h":
		if v.cursor > 0 {
			v.cursor--
		}
	case "right", "l":
		if v.cursor < len(elements)-1 {
			v.cursor++
		}
	case "+", "=":
		s.adjustBalancer(v, elements, 1)
	case "-", "_":
		s.adjustBalancer(v, elements, -1)
	case "u":
		if snap := v.machine.History().Undo(); snap != nil {
			v.balancer.Restore(snap)
		}
	case "ctrl+r":
		if snap := v.machine.History().Redo(); snap != nil {
			v.balancer.Restore(snap)
		}
	case "g":
		s.toggleGuided(v)
	case "enter":
		return s, s.submit(v, v.balancer)
	}
	return s, nil
}

func (s *LessonScreen) adjustBalancer(v *widgetView, elements []string, delta int) {
	if v.cursor >= len(elements) {
		return
	}
	el := elements[v.cursor]
	if v.machine.History().Len() == 0 {
		v.machine.History().Push(v.balancer.Snapshot(), "start")
	}
	v.balancer.Adjust(el, delta)
	v.machine.History().Push(v.balancer.Snapshot(),
		fmt.Sprintf("%s %+d", el, delta))
}

func (s *LessonScreen) toggleGuided(v *widgetView) {
	if v.machine.State().GuidedDimension != "" {
		v.machine.ExitGuided()
		return
	}
	ch := v.machine.Challenge()
	if ch == nil || v.balancer == nil {
		return
	}
	unresolved := v.balancer.UnresolvedElements(*ch)
	if len(unresolved) > 0 {
		v.machine.EnterGuided(unresolved[0])
	}
}

func (s *LessonScreen) handlePlaceValueKey(v *widgetView, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if v.place == nil {
		return s, nil
	}
	cols := v.place.Columns

	switch key := msg.String(); key {
	case "left", "h":
		if v.cursor > 0 {
			v.cursor--
		}
	case "right", "l":
		if v.cursor < len(cols)-1 {
			v.cursor++
		}
	case "backspace":
		s.editColumn(v, 0)
	case "u":
		if snap := v.machine.History().Undo(); snap != nil {
			v.place.Restore(snap)
		}
	case "ctrl+r":
		if snap := v.machine.History().Redo(); snap != nil {
			v.place.Restore(snap)
		}
	case "enter":
		return s, s.submit(v, v.place)
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if v.cursor < len(cols) {
				s.editColumn(v, cols[v.cursor]*10+int(key[0]-'0'))
			}
		}
	}
	return s, nil
}

func (s *LessonScreen) editColumn(v *widgetView, value int) {
	if v.machine.History().Len() == 0 {
		v.machine.History().Push(v.place.Snapshot(), "start")
	}
	v.place.Set(v.cursor, value)
	v.machine.History().Push(v.place.Snapshot(),
		fmt.Sprintf("column %d = %d", v.cursor+1, value))
}

func (s *LessonScreen) handleFlashcardKey(v *widgetView, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		answer := v.input.Value()
		if answer == "" {
			return s, nil
		}
		cmd := s.submit(v, answer)
		v.input.Submit(v.machine.State().Status == primitive.StatusSolved)
		return s, cmd
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return s, cmd
}

// submit runs one evaluation. Input handling for the widget is
// implicitly disabled while evaluating because CheckAnswer runs
// synchronously within this update.
func (s *LessonScreen) submit(v *widgetView, candidate any) tea.Cmd {
	outcome := v.machine.CheckAnswer(candidate)
	if !outcome.Evaluated {
		return nil
	}

	s.persistAttempt(v, outcome)
	s.relayout()

	if outcome.AutoAdvanceAfter > 0 {
		s.advanceGen++
		gen := s.advanceGen
		idx := s.indexOf(v)
		return tea.Tick(outcome.AutoAdvanceAfter, func(time.Time) tea.Msg {
			return autoAdvanceMsg{widget: idx, gen: gen}
		})
	}
	return nil
}

// advance moves a widget to its next challenge, or finishes it.
func (s *LessonScreen) advance(v *widgetView) tea.Cmd {
	s.advanceGen++
	if !v.machine.State().Status.Terminal() || v.machine.State().Complete {
		return nil
	}
	v.machine.Advance()

	if v.machine.State().Complete {
		s.saveSnapshot()
		if s.allComplete() {
			return s.finishLesson()
		}
		// Move on to the next unfinished widget.
		for i, other := range s.views {
			if !other.complete() {
				s.selectWidget(i)
				break
			}
		}
		return nil
	}

	s.prepareChallenge(v)
	s.relayout()
	return nil
}

func (s *LessonScreen) resetWidget(v *widgetView) {
	s.advanceGen++
	v.machine.Reset()
	v.machine.Begin()
	s.prepareChallenge(v)
	s.relayout()
}

// beginSelected opens the selected widget for input if it is still
// presenting.
func (s *LessonScreen) beginSelected() {
	v := s.views[s.selected]
	if v.complete() {
		return
	}
	if v.machine.State().Status == primitive.StatusPresenting {
		v.machine.Begin()
		s.prepareChallenge(v)
	}
	s.relayout()
}

// prepareChallenge rebuilds the editable state for the widget's
// current challenge.
func (s *LessonScreen) prepareChallenge(v *widgetView) {
	v.cursor = 0
	v.balancer = nil
	v.place = nil

	ch := v.machine.Challenge()
	if ch == nil {
		return
	}

	switch v.def.Type {
	case manifest.TypeBalancer:
		state, err := widgets.NewBalancerState(*ch)
		if err != nil {
			s.errMsg = err.Error()
			return
		}
		v.balancer = state
	case manifest.TypePlaceValue:
		state, err := widgets.NewPlaceValueState(*ch)
		if err != nil {
			s.errMsg = err.Error()
			return
		}
		v.place = state
	default:
		v.input = components.NewTextInput("Type your answer...", ch.Kind == "integer", 40)
	}
}

func (s *LessonScreen) selectWidget(i int) {
	if i < 0 || i >= len(s.views) || i == s.selected {
		return
	}
	s.selected = i
	s.beginSelected()
	s.scrollIntoView(s.views[i])
}

func (s *LessonScreen) indexOf(v *widgetView) int {
	for i, other := range s.views {
		if other == v {
			return i
		}
	}
	return 0
}

func (s *LessonScreen) allComplete() bool {
	for _, v := range s.views {
		if !v.complete() {
			return false
		}
	}
	return true
}

// finishLesson tears down tutoring plumbing and shows the summary.
func (s *LessonScreen) finishLesson() tea.Cmd {
	s.tracker.Close()
	if s.session != nil {
		s.session.SetMode(tutor.SessionModeIdle)
	}

	results := make([]summary.WidgetResult, 0, len(s.views))
	for _, v := range s.views {
		r := summary.WidgetResult{
			Title:         v.def.Title,
			PrimitiveType: v.def.Type,
		}
		if v.restored != nil {
			r.Score = v.restored.Score
			r.Success = v.restored.Score >= primitive.CorrectFloor
			r.Restored = true
		} else if res := v.machine.Result(); res != nil {
			r.Score = res.Score
			r.Success = res.Success
			r.Records = v.machine.Records()
		}
		results = append(results, r)
	}

	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(s.lesson.Title, results)}
	}
}

// Teardown saves progress and detaches the tutoring session when the
// learner backs out mid-lesson.
func (s *LessonScreen) Teardown() {
	s.saveSnapshot()
	s.tracker.Close()
	if s.session != nil {
		s.session.SetMode(tutor.SessionModeIdle)
	}
}

// forwardToInput routes non-key messages (cursor blinks) to the active
// text input.
func (s *LessonScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	v := s.views[s.selected]
	if v.complete() || v.def.Type != manifest.TypeFlashcards {
		return s, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return s, cmd
}

// persistAttempt appends the attempt event off the UI loop.
func (s *LessonScreen) persistAttempt(v *widgetView, outcome primitive.CheckOutcome) {
	if s.events == nil {
		return
	}
	ch := v.machine.Challenge()
	if ch == nil {
		return
	}
	data := store.AttemptEventData{
		InstanceID:    v.machine.Widget().InstanceID,
		PrimitiveType: v.def.Type,
		ChallengeID:   ch.ID,
		Attempt:       outcome.Record.Attempts,
		Correct:       outcome.Correct,
		TimeMs:        int(outcome.Record.TimeToAnswer.Milliseconds()),
	}
	go func() {
		_ = s.events.AppendAttempt(context.Background(), data)
	}()
}

// persistEvaluation is the submission callback wired into each machine.
func (s *LessonScreen) persistEvaluation(instanceID, primitiveType string, result primitive.EvaluationResult) {
	if s.events == nil {
		return
	}
	data := store.EvaluationEventData{
		InstanceID:    instanceID,
		PrimitiveType: primitiveType,
		Success:       result.Success,
		Score:         result.Score,
		Metrics:       result.Metrics,
		ElapsedMs:     result.Elapsed.Milliseconds(),
	}
	go func() {
		_ = s.events.AppendEvaluation(context.Background(), data)
	}()
}

// saveSnapshot persists per-widget progress so a later run can resume.
func (s *LessonScreen) saveSnapshot() {
	if s.snaps == nil {
		return
	}

	instances := make(map[string]store.InstanceProgress, len(s.views))
	for _, v := range s.views {
		if v.restored != nil {
			instances[v.def.ID] = *v.restored
			continue
		}
		prog := store.InstanceProgress{
			PrimitiveType:  v.def.Type,
			ChallengeIndex: v.machine.State().Index,
			Complete:       v.machine.State().Complete,
		}
		if res := v.machine.Result(); res != nil {
			prog.Submitted = true
			prog.Score = res.Score
		}
		instances[v.def.ID] = prog
	}

	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:   1,
			LessonID:  s.lesson.ID,
			Instances: instances,
		},
	}
	go func() {
		_ = s.snaps.Save(context.Background(), snap)
	}()
}

func tutorTick() tea.Cmd {
	return tea.Tick(tutorPollInterval, func(t time.Time) tea.Msg {
		return tutorTickMsg(t)
	})
}
