package storage

import "testing"

func TestStoreTopScores(t *testing.T) {
	store := openTemp(t)
	for _, s := range []int{100, 50, 200, 500, 300} {
		if _, err := store.SaveScore("asteroids", s, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("asteroids_demo", 9000, 1)

	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{"limited", 3, []int{500, 300, 200}},
		{"all fit", 10, []int{500, 300, 200, 100, 50}},
		{"default limit", 0, []int{500, 300, 200, 100, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.TopScores("asteroids", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d scores, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.Score != tt.want[i] || e.GameID != "asteroids" {
					t.Errorf("entry %d = %+v, want score %d", i, e, tt.want[i])
				}
			}
		})
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("asteroids", 100, 1)
	store.SaveScore("asteroids", 300, 1)
	store.SaveScore("asteroids", 200, 1)

	if high, _ = store.HighScore("asteroids"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	store.SaveScore("asteroids", 0, 7)

	stats, err := store.Stats("asteroids")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 4 || stats.HighScore != 300 || stats.AvgScore != 150 || stats.BestWave != 7 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.Stats("nothing")
	if err != nil {
		t.Fatalf("Stats(empty) failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreClearAndAllScores(t *testing.T) {
	store := openTemp(t)
	for i := 0; i < 20; i++ {
		store.SaveScore("asteroids", i*10, 1)
	}
	store.SaveScore("asteroids_demo", 300, 1)

	all, err := store.AllScores("asteroids")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(all))
	}

	n, err := store.ClearScores("asteroids")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 20 {
		t.Errorf("ClearScores() removed %d, want 20", n)
	}
	if got, _ := store.AllScores("asteroids"); len(got) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(got))
	}
	if got, _ := store.AllScores("asteroids_demo"); len(got) != 1 {
		t.Error("demo scores should not be affected by clearing arcade scores")
	}
}

func TestStoreTopScoresKeepWaveAndBreakTies(t *testing.T) {
	store := openTemp(t)
	first, _ := store.SaveScore("asteroids", 800, 2)
	second, _ := store.SaveScore("asteroids", 800, 5)

	got, err := store.TopScores("asteroids", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != first || got[1].ID != second {
		t.Fatalf("tie order = %+v, want earlier game first", got)
	}
	if got[0].Wave != 2 || got[1].Wave != 5 {
		t.Errorf("waves = %d, %d", got[0].Wave, got[1].Wave)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}
}
