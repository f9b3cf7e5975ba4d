package sokoban

import (
	"errors"
	"reflect"
	"testing"
)

// corridor is a 3-wide corridor: target above box above player.
var corridor = Layout{
	"WWW",
	"WTW",
	"WBW",
	"WPW",
	"WWW",
}

func mustEngine(t *testing.T, l Layout) *Engine {
	t.Helper()
	e, err := NewEngine(l)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e
}

func TestNewEngineLocatesPlayer(t *testing.T) {
	e := mustEngine(t, corridor)

	x, y := e.Player()
	if x != 1 || y != 3 {
		t.Errorf("Player() = (%d, %d), want (1, 3)", x, y)
	}
	if e.Steps() != 0 {
		t.Errorf("Steps() = %d, want 0", e.Steps())
	}
}

func TestNewEngineNoPlayer(t *testing.T) {
	_, err := NewEngine(Layout{"WWW", "WBW", "WTW", "WWW"})
	if !errors.Is(err, ErrNoPlayer) {
		t.Errorf("NewEngine() error = %v, want ErrNoPlayer", err)
	}
}

func TestLoadFailureKeepsState(t *testing.T) {
	e := mustEngine(t, corridor)
	e.Move(DirUp)

	if err := e.Load(Layout{"WWW"}); !errors.Is(err, ErrNoPlayer) {
		t.Fatalf("Load() error = %v, want ErrNoPlayer", err)
	}
	if e.Steps() != 1 {
		t.Errorf("failed Load should not reset steps, got %d", e.Steps())
	}
}

func TestCorridorPushWins(t *testing.T) {
	e := mustEngine(t, corridor)

	if e.IsVictory() {
		t.Fatal("fresh level with a box off target must not be a victory")
	}

	outcome := e.Move(DirUp)
	if outcome != Victory {
		t.Fatalf("Move(up) = %s, want victory", outcome)
	}

	want := []string{"WWW", "W*W", "WPW", "W.W", "WWW"}
	if got := e.Snapshot().Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("grid after push:\n%v\nwant\n%v", got, want)
	}

	x, y := e.Player()
	if x != 1 || y != 2 {
		t.Errorf("Player() = (%d, %d), want (1, 2)", x, y)
	}
	if e.Steps() != 1 {
		t.Errorf("Steps() = %d, want 1", e.Steps())
	}
}

func TestCorridorMoveIntoWall(t *testing.T) {
	e := mustEngine(t, corridor)
	before := e.Snapshot()

	if outcome := e.Move(DirDown); outcome != Blocked {
		t.Fatalf("Move(down) = %s, want blocked", outcome)
	}

	after := e.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("blocked move changed state:\n%+v\n%+v", before, after)
	}
}

func TestWallNeverChangesState(t *testing.T) {
	l := Layout{
		"WWWWW",
		"W.P.W",
		"WWWWW",
	}

	for _, dir := range []Direction{DirUp, DirDown} {
		e := mustEngine(t, l)
		before := e.Snapshot()
		if outcome := e.Move(dir); outcome != Blocked {
			t.Errorf("Move(%s) = %s, want blocked", dir, outcome)
		}
		if !reflect.DeepEqual(before, e.Snapshot()) {
			t.Errorf("Move(%s) into wall changed state", dir)
		}
	}
}

func TestBlockedPush(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		dir    Direction
	}{
		{
			name:   "wall behind box",
			layout: Layout{"WWWWW", "WPBWW", "WWWWW"},
			dir:    DirRight,
		},
		{
			name:   "box behind box",
			layout: Layout{"WWWWWW", "WPBBTW", "WWWWWW"},
			dir:    DirRight,
		},
		{
			name:   "box on target behind box",
			layout: Layout{"WWWWWW", "WPB*TW", "WWWWWW"},
			dir:    DirRight,
		},
		{
			name:   "grid edge behind box",
			layout: Layout{"PB"},
			dir:    DirRight,
		},
		{
			name:   "short row behind box",
			layout: Layout{"WWWW", "W.PB", "WWWW"},
			dir:    DirRight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.layout)
			before := e.Snapshot()

			if outcome := e.Move(tt.dir); outcome != BlockedPush {
				t.Fatalf("Move(%s) = %s, want blocked_push", tt.dir, outcome)
			}
			if !reflect.DeepEqual(before, e.Snapshot()) {
				t.Error("blocked push changed state")
			}
		})
	}
}

func TestPushOntoTargetRestoresTerrain(t *testing.T) {
	// Player starts on floor, walks onto a target, then pushes from it.
	l := Layout{
		"WWWWWWW",
		"WPTB.TW",
		"WWWWWWW",
	}
	e := mustEngine(t, l)

	if outcome := e.Move(DirRight); outcome != Moved {
		t.Fatalf("first move = %s, want moved", outcome)
	}
	if got := e.At(1, 1); got != Floor {
		t.Errorf("vacated start cell = %s, want floor", got)
	}

	if outcome := e.Move(DirRight); outcome != Pushed {
		t.Fatalf("push = %s, want pushed", outcome)
	}
	if got := e.At(2, 1); got != Target {
		t.Errorf("vacated target cell = %s, want target", got)
	}
	if got := e.At(4, 1); got != Box {
		t.Errorf("pushed box = %s, want box", got)
	}

	if outcome := e.Move(DirRight); outcome != Victory {
		t.Fatalf("final push = %s, want victory", outcome)
	}
	if got := e.At(5, 1); got != BoxOnTarget {
		t.Errorf("box cell = %s, want box on target", got)
	}
	if got := e.At(3, 1); got != Floor {
		t.Errorf("vacated floor cell = %s, want floor", got)
	}
	if e.Steps() != 3 {
		t.Errorf("Steps() = %d, want 3", e.Steps())
	}
}

func TestPushBoxOffTarget(t *testing.T) {
	l := Layout{
		"WWWWWW",
		"WP*.TW",
		"WWWWWW",
	}
	e := mustEngine(t, l)

	if outcome := e.Move(DirRight); outcome != Pushed {
		t.Fatalf("push = %s, want pushed", outcome)
	}
	if got := e.At(3, 1); got != Box {
		t.Errorf("box pushed off target = %s, want box", got)
	}
	if got := e.At(2, 1); got != Player {
		t.Errorf("player cell = %s, want player", got)
	}

	// Step off: the cell the box left is target terrain in the layout.
	e.Move(DirLeft)
	if got := e.At(2, 1); got != Target {
		t.Errorf("vacated cell = %s, want target", got)
	}
}

func TestStepCounterIncrementsOncePerMove(t *testing.T) {
	l := Layout{
		"WWWWWW",
		"WP.BTW",
		"WWWWWW",
	}
	e := mustEngine(t, l)

	e.Move(DirRight) // moved
	if e.Steps() != 1 {
		t.Fatalf("Steps() after move = %d, want 1", e.Steps())
	}
	e.Move(DirUp) // blocked
	if e.Steps() != 1 {
		t.Fatalf("Steps() after blocked = %d, want 1", e.Steps())
	}
	e.Move(DirRight) // pushed onto target
	if e.Steps() != 2 {
		t.Fatalf("Steps() after push = %d, want 2", e.Steps())
	}
}

func TestVictoryIdempotent(t *testing.T) {
	e := mustEngine(t, corridor)

	first, second := e.IsVictory(), e.IsVictory()
	if first != second || first {
		t.Errorf("IsVictory() = %v then %v, want false twice", first, second)
	}

	e.Move(DirUp)
	first, second = e.IsVictory(), e.IsVictory()
	if first != second || !first {
		t.Errorf("IsVictory() = %v then %v, want true twice", first, second)
	}
}

func TestTryMoveRejectsNonCardinal(t *testing.T) {
	l := Layout{
		"WWWW",
		"W..W",
		"WP.W",
		"WWWW",
	}

	for _, d := range [][2]int{{0, 0}, {1, 1}, {-1, -1}, {2, 0}, {0, -2}} {
		e := mustEngine(t, l)
		before := e.Snapshot()
		if outcome := e.TryMove(d[0], d[1]); outcome != Blocked {
			t.Errorf("TryMove(%d, %d) = %s, want blocked", d[0], d[1], outcome)
		}
		if !reflect.DeepEqual(before, e.Snapshot()) {
			t.Errorf("TryMove(%d, %d) changed state", d[0], d[1])
		}
	}
}

func TestVoidIsNotTraversable(t *testing.T) {
	l := Layout{
		" WWW",
		" P.W",
		" WWW",
	}
	e := mustEngine(t, l)

	if outcome := e.Move(DirLeft); outcome != Blocked {
		t.Errorf("Move(left) into void = %s, want blocked", outcome)
	}
}

func TestResetRestoresLayout(t *testing.T) {
	e := mustEngine(t, corridor)
	e.Move(DirUp)

	e.Reset()

	if got := e.Snapshot().Rows(); !reflect.DeepEqual(got, []string(corridor)) {
		t.Errorf("grid after Reset = %v, want %v", got, corridor)
	}
	if e.Steps() != 0 {
		t.Errorf("Steps() after Reset = %d, want 0", e.Steps())
	}
	if e.IsVictory() {
		t.Error("IsVictory() after Reset should be false")
	}
}

func TestLoadDeepCopiesLayout(t *testing.T) {
	rows := []string{"WWW", "WTW", "WBW", "WPW", "WWW"}
	e := mustEngine(t, Layout(rows))

	rows[1] = "WWW"
	e.Move(DirUp)

	if got := e.At(1, 1); got != BoxOnTarget {
		t.Errorf("engine should not see caller mutations, got %s", got)
	}
}

func TestOutcomeRegistered(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    bool
	}{
		{Blocked, false},
		{BlockedPush, false},
		{Moved, true},
		{Pushed, true},
		{Victory, true},
	}

	for _, tt := range tests {
		if got := tt.outcome.Registered(); got != tt.want {
			t.Errorf("%s.Registered() = %v, want %v", tt.outcome, got, tt.want)
		}
	}
}
