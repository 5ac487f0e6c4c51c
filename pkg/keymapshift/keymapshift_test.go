package keymapshift

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"
)

var (
	layoutA = LayoutMap{
		Layout:  Layout{Label: "A", Direction: LeftToRight},
		Forward: map[uint16]string{30: "a", 31: "s"},
	}
	layoutB = LayoutMap{
		Layout:  Layout{Label: "B", Direction: LeftToRight},
		Forward: map[uint16]string{30: "ф", 31: "ы"},
	}
	layoutH = LayoutMap{
		Layout:  Layout{Label: "H", Direction: RightToLeft},
		Forward: map[uint16]string{30: "ש", 31: "ד"},
	}
)

func TestMatchLayoutPicksBestCoverage(t *testing.T) {
	snapshot := Snapshot{layoutA, layoutB}

	assert.Equal(t, Score{Value: -2, Matches: 0}, Coverage("фы", Invert(layoutA)))
	assert.Equal(t, Score{Value: 7, Matches: 2}, ScoreLayout("фы", layoutB))

	idx, ok := MatchLayout("фы", snapshot)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestRemap(t *testing.T) {
	assert.Equal(t, "as", Remap("фы", layoutB, layoutA))
	assert.Equal(t, "фы", Remap("as", layoutA, layoutB))
}

func TestRemapKeepsUnknownCharacters(t *testing.T) {
	target := LayoutMap{
		Layout:  Layout{Label: "T"},
		Forward: map[uint16]string{30: "x"},
	}
	// '1' is not on layoutA, 's' maps to key 31 which target lacks.
	assert.Equal(t, "x1 s", Remap("a1 s", layoutA, target))
}

func TestRemapPreservesCharacterCount(t *testing.T) {
	out := Remap("as as, фы!", layoutA, layoutB)
	assert.Equal(t, len([]rune("as as, фы!")), len([]rune(out)))
	assert.Equal(t, "фы фы, фы!", out)
}

func TestRemapAmbiguousKeyUsesLowestKeyCode(t *testing.T) {
	current := LayoutMap{
		Layout:  Layout{Label: "C"},
		Forward: map[uint16]string{9: "x", 5: "x", 3: "x", 7: "y"},
	}
	target := LayoutMap{
		Layout:  Layout{Label: "T"},
		Forward: map[uint16]string{3: "A", 5: "B", 9: "C", 7: "D"},
	}

	assert.Equal(t, []uint16{3, 5, 9}, Invert(current)['x'])
	for i := 0; i < 50; i++ {
		require.Equal(t, "AD", Remap("xy", current, target))
	}
}

func TestInvertDropsMultiCharacterGlyphs(t *testing.T) {
	lm := LayoutMap{
		Layout:  Layout{Label: "D"},
		Forward: map[uint16]string{1: "´e", 2: "e", 3: ""},
	}
	inv := Invert(lm)
	assert.Len(t, inv, 1)
	assert.Equal(t, []uint16{2}, inv['e'])
	assert.False(t, inv.Has('´'))
}

func TestNextLayout(t *testing.T) {
	snapshot := Snapshot{layoutA, layoutB}

	next, ok := NextLayout(0, snapshot)
	require.True(t, ok)
	assert.Equal(t, 1, next)

	next, ok = NextLayout(1, snapshot)
	require.True(t, ok)
	assert.Equal(t, 0, next)

	next, ok = NextLayout(0, Snapshot{layoutA})
	require.True(t, ok)
	assert.Equal(t, 0, next)

	_, ok = NextLayout(0, nil)
	assert.False(t, ok)
}

func TestShiftSingleLayoutCyclesToItself(t *testing.T) {
	out, err := ShiftText("as", Snapshot{layoutA})
	require.NoError(t, err)
	assert.Equal(t, "as", out)
}

func TestShiftUndetermined(t *testing.T) {
	_, err := Shift("!", Snapshot{layoutA, layoutB})
	assert.ErrorIs(t, err, ErrLayoutUndetermined)

	_, err = Shift("as", nil)
	assert.ErrorIs(t, err, ErrLayoutUndetermined)
}

func TestApplyDirection(t *testing.T) {
	assert.Equal(t, "cba", ApplyDirection("abc", LeftToRight, RightToLeft))
	assert.Equal(t, "cba", ApplyDirection("abc", RightToLeft, LeftToRight))
	assert.Equal(t, "abc", ApplyDirection("abc", RightToLeft, RightToLeft))
	// combining marks are reversed like any other code point
	assert.Equal(t, "\u05c1\u05e9a", ApplyDirection("a\u05e9\u05c1", LeftToRight, RightToLeft))
}

func TestShiftAcrossDirections(t *testing.T) {
	snapshot := Snapshot{layoutA, layoutH}

	res, err := Shift("as", snapshot)
	require.NoError(t, err)
	assert.Equal(t, "דש", res.Text)
	assert.Equal(t, "A", res.From.Label)
	assert.Equal(t, "H", res.To.Label)

	res, err = Shift("דש", snapshot)
	require.NoError(t, err)
	assert.Equal(t, "H", res.From.Label)
	assert.Equal(t, "as", res.Text)
}

func TestDirectionHint(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		dir    Direction
		hinted bool
	}{
		{name: "latin", text: "hello", dir: LeftToRight, hinted: true},
		{name: "hebrew", text: "שלום", dir: RightToLeft, hinted: true},
		{name: "arabic", text: "مرحبا", dir: RightToLeft, hinted: true},
		{name: "leading punctuation", text: "  ...שלום", dir: RightToLeft, hinted: true},
		{name: "digits are weak", text: "123 abc", dir: LeftToRight, hinted: true},
		{name: "no strong characters", text: "12, 34!", hinted: false},
		{name: "empty", text: "", hinted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := DirectionHint(tt.text)
			assert.Equal(t, tt.hinted, ok)
			if tt.hinted {
				assert.Equal(t, tt.dir, dir)
			}
		})
	}
}

func TestDirectionBonus(t *testing.T) {
	assert.Equal(t, 5, DirectionBonus(RightToLeft, true, RightToLeft))
	assert.Equal(t, 3, DirectionBonus(LeftToRight, true, LeftToRight))
	assert.Equal(t, -2, DirectionBonus(RightToLeft, true, LeftToRight))
	assert.Equal(t, -2, DirectionBonus(LeftToRight, true, RightToLeft))
	assert.Equal(t, 0, DirectionBonus(LeftToRight, false, RightToLeft))
}

func TestCoverageIsMonotonic(t *testing.T) {
	inv := Invert(layoutA)
	before := Coverage("a", inv)
	after := Coverage("as", inv)
	assert.Equal(t, before.Value+2, after.Value)
	assert.Equal(t, before.Matches+1, after.Matches)
}

func TestCoverageIgnoresControlCharacters(t *testing.T) {
	inv := Invert(layoutA)
	assert.Equal(t, Coverage("as", inv), Coverage("a\ts\n\x00", inv))
}

func TestMatchLayoutTieBreaks(t *testing.T) {
	twin := LayoutMap{Layout: Layout{Label: "A2"}, Forward: layoutA.Forward}
	idx, ok := MatchLayout("as", Snapshot{layoutA, twin})
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	more := Score{Value: 4, Matches: 3}
	fewer := Score{Value: 4, Matches: 2}
	assert.True(t, more.beats(fewer))
	assert.False(t, fewer.beats(more))
	assert.False(t, fewer.beats(fewer))
}

func TestMatchLayoutIsDeterministic(t *testing.T) {
	snapshot := Snapshot{layoutA, layoutB, layoutH}
	first, ok := MatchLayout("аs фы", snapshot)
	require.True(t, ok)
	for i := 0; i < 100; i++ {
		idx, _ := MatchLayout("аs фы", snapshot)
		require.Equal(t, first, idx)
	}
}

type fakeSource struct {
	text string
	ok   bool
	err  error
}

func (f fakeSource) SelectedText(context.Context) (string, bool, error) {
	return f.text, f.ok, f.err
}

type fakeSink struct {
	got string
	err error
}

func (f *fakeSink) ReplaceSelectedText(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.got = text
	return nil
}

type fakeCatalog struct {
	snapshot  Snapshot
	calls     int
	activated []string
}

func (f *fakeCatalog) Snapshot(context.Context) (Snapshot, error) {
	f.calls++
	return f.snapshot, nil
}

func (f *fakeCatalog) Activate(_ context.Context, label string) error {
	f.activated = append(f.activated, label)
	return nil
}

type fakeRecorder struct {
	inputs  []string
	results []Result
}

func (f *fakeRecorder) RecordShift(_ context.Context, input string, res Result) error {
	f.inputs = append(f.inputs, input)
	f.results = append(f.results, res)
	return nil
}

func TestRunOnce(t *testing.T) {
	catalog := &fakeCatalog{snapshot: Snapshot{layoutA, layoutB}}
	sink := &fakeSink{}
	recorder := &fakeRecorder{}
	s := NewShifter(fakeSource{text: "фы", ok: true}, sink, catalog, zap.NewNop().Sugar(),
		WithRecorder(recorder), WithActivator(catalog))

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, "as", sink.got)
	assert.Equal(t, 1, catalog.calls)
	assert.Equal(t, []string{"A"}, catalog.activated)
	require.Len(t, recorder.results, 1)
	assert.Equal(t, "фы", recorder.inputs[0])
	assert.Equal(t, "B", recorder.results[0].From.Label)
}

func TestRunOnceNoSelection(t *testing.T) {
	catalog := &fakeCatalog{snapshot: Snapshot{layoutA, layoutB}}
	sink := &fakeSink{}
	s := NewShifter(fakeSource{}, sink, catalog, zap.NewNop().Sugar())

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Zero(t, catalog.calls)
	assert.Empty(t, sink.got)
}

func TestRunOnceUndeterminedLeavesSelection(t *testing.T) {
	catalog := &fakeCatalog{snapshot: Snapshot{layoutA, layoutB}}
	sink := &fakeSink{}
	s := NewShifter(fakeSource{text: "?", ok: true}, sink, catalog, zap.NewNop().Sugar())

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrLayoutUndetermined)
	assert.Empty(t, sink.got)
}

func TestRunOnceInjectionFailed(t *testing.T) {
	catalog := &fakeCatalog{snapshot: Snapshot{layoutA, layoutB}}
	sink := &fakeSink{err: errors.New("wtype: not found")}
	recorder := &fakeRecorder{}
	s := NewShifter(fakeSource{text: "as", ok: true}, sink, catalog, zap.NewNop().Sugar(),
		WithRecorder(recorder))

	err := s.RunOnce(context.Background())
	require.ErrorIs(t, err, ErrInjectionFailed)
	var injErr *InjectionError
	require.ErrorAs(t, err, &injErr)
	assert.Equal(t, "wtype: not found", injErr.Reason)
	assert.Empty(t, recorder.results)
}

func TestRunOnceSourceError(t *testing.T) {
	catalog := &fakeCatalog{}
	boom := errors.New("boom")
	s := NewShifter(fakeSource{err: boom}, &fakeSink{}, catalog, zap.NewNop().Sugar())

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, catalog.calls)
}
