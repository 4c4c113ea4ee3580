package model

import "testing"

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{name: "no answers yet", scores: nil, want: 0.0},
		{name: "single score", scores: []float64{7.52}, want: 7.52},
		{name: "two scores", scores: []float64{6.0, 8.0}, want: 7.0},
		{name: "rounded to two decimals", scores: []float64{5.0, 5.0, 6.0}, want: 5.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &InterviewSession{Scores: tt.scores}

			if got := session.AverageScore(); got != tt.want {
				t.Fatalf("AverageScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrentQuestion(t *testing.T) {
	session := &InterviewSession{
		Questions: []Question{
			{Text: "first"},
			{Text: "second"},
		},
	}

	q, ok := session.CurrentQuestion()
	if !ok || q.Text != "first" {
		t.Fatalf("CurrentQuestion() = %v, %v", q, ok)
	}

	session.Cursor = 2
	if _, ok := session.CurrentQuestion(); ok {
		t.Fatal("exhausted session still reports a current question")
	}
}
