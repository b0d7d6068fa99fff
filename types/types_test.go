package types

import "testing"

func TestPlayerOther(t *testing.T) {
	if PlayerA.Other() != PlayerB || PlayerB.Other() != PlayerA {
		t.Fatal("Other should swap the two seats")
	}
	for _, p := range Players {
		if p.Other().Other() != p {
			t.Fatalf("%v.Other().Other() = %v", p, p.Other().Other())
		}
	}
}

func TestPlayerString(t *testing.T) {
	tests := []struct {
		p    Player
		want string
	}{
		{PlayerA, "A"},
		{PlayerB, "B"},
		{Player(3), "Player(3)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Player(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
	if Player(-1).Valid() || Player(2).Valid() {
		t.Fatal("out of range players should not be valid")
	}
}

func TestGameStateWinner(t *testing.T) {
	tests := []struct {
		name     string
		scores   [2]int
		finished bool
		want     Player
		ok       bool
	}{
		{"running", [2]int{10, 3}, false, PlayerA, false},
		{"a wins", [2]int{10, 3}, true, PlayerA, true},
		{"b wins", [2]int{1, 30}, true, PlayerB, true},
		{"tie", [2]int{7, 7}, true, PlayerA, false},
	}
	for _, tt := range tests {
		s := &GameState{Scores: tt.scores, Finished: tt.finished}
		got, ok := s.Winner()
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%s: Winner() = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
