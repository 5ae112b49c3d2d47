package quiz

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{3, 3, 100},
		{2, 3, 67},
		{1, 3, 33},
		{0, 4, 0},
		{9, 10, 90},
		{1, 8, 13}, // 12.5 rounds half up
		{3, 8, 38}, // 37.5 rounds half up
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		pct  int
		want Tier
	}{
		{100, TierExamReady},
		{90, TierExamReady},
		{89, TierGood},
		{75, TierGood},
		{74, TierFair},
		{60, TierFair},
		{59, TierNeedsImprovement},
		{0, TierNeedsImprovement},
	}
	for _, tt := range tests {
		if got := TierFor(tt.pct); got != tt.want {
			t.Errorf("TierFor(%d) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

// playQuiz answers the first `correct` questions right and the rest wrong,
// then advances past the last question.
func playQuiz(t *testing.T, total, correct int) ResultView {
	t.Helper()
	r := &recordingRenderer{}
	c := NewController(r)
	qs := testQuestions(total)
	if err := c.Initialize(qs); err != nil {
		t.Fatal(err)
	}
	for i, q := range qs {
		choice := wrongFor(q)
		if i < correct {
			choice = q.CorrectIndex
		}
		if err := c.SelectOption(choice); err != nil {
			t.Fatal(err)
		}
		c.Advance()
	}
	if len(r.results) != 1 {
		t.Fatalf("results renders = %d, want 1", len(r.results))
	}
	return r.results[0]
}

func TestResultTiering_EndToEnd(t *testing.T) {
	msgs := DefaultMessages()
	tests := []struct {
		name           string
		total, correct int
		wantPct        int
		wantTier       Tier
	}{
		{"3 of 3", 3, 3, 100, TierExamReady},
		{"2 of 3", 3, 2, 67, TierFair},
		{"0 of 4", 4, 0, 0, TierNeedsImprovement},
		{"9 of 10", 10, 9, 90, TierExamReady},
		{"4 of 5", 5, 4, 80, TierGood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := playQuiz(t, tt.total, tt.correct)
			if res.Percentage != tt.wantPct {
				t.Errorf("Percentage = %d, want %d", res.Percentage, tt.wantPct)
			}
			if res.Tier != tt.wantTier {
				t.Errorf("Tier = %v, want %v", res.Tier, tt.wantTier)
			}
			if res.Message != msgs.For(tt.wantTier) {
				t.Errorf("Message = %q, want %q", res.Message, msgs.For(tt.wantTier))
			}
			if res.Score != tt.correct || res.Total != tt.total {
				t.Errorf("Score/Total = %d/%d, want %d/%d", res.Score, res.Total, tt.correct, tt.total)
			}
		})
	}
}

func TestMessages_WithDefaults(t *testing.T) {
	m := Messages{Good: "Nice."}.WithDefaults()
	if m.Good != "Nice." {
		t.Errorf("Good = %q, want override kept", m.Good)
	}
	if m.ExamReady != DefaultMessages().ExamReady {
		t.Errorf("ExamReady = %q, want default", m.ExamReady)
	}
}

func TestDifficulty(t *testing.T) {
	if DifficultyMedium.DisplayName() != "Medium" {
		t.Errorf("DisplayName = %q, want Medium", DifficultyMedium.DisplayName())
	}
	if DifficultyNone.DisplayName() != "" {
		t.Error("unset difficulty should have no badge")
	}
	if Difficulty("extreme").Valid() {
		t.Error("unknown difficulty should be invalid")
	}
	if OptionLabel(2) != "C." {
		t.Errorf("OptionLabel(2) = %q, want C.", OptionLabel(2))
	}
}
