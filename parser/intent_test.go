package parser

import "testing"

func TestIntentGate_IsAnalyticalQuery(t *testing.T) {
	gate := NewIntentGate(DefaultTables().QuestionIndicators)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "how much question", input: "berapa total bulan ini?", want: true},
		{name: "question mark only", input: "kopi?", want: true},
		{name: "tips request", input: "Tips hemat dong", want: true},
		{name: "analysis noun", input: "ANALISIS keuangan", want: true},
		{name: "english summary", input: "monthly summary please", want: true},
		{name: "plain transaction", input: "Habis beli kopi 25rb", want: false},
		{name: "fuel transaction", input: "isi bensin 100k", want: false},
		{name: "empty", input: "", want: false},

		// Question detection takes precedence over a present amount. These
		// read like transactions but are routed as questions.
		{name: "time noun in a salary entry", input: "Gaji bulan ini 5 juta", want: true},
		{name: "transaction followed by a question", input: "beli kopi 25rb kemarin, berapa total pengeluaran minggu ini juga?", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gate.IsAnalyticalQuery(tt.input); got != tt.want {
				t.Errorf("IsAnalyticalQuery(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIntentGate_Match(t *testing.T) {
	gate := NewIntentGate([]string{"berapa", "total", "?"})

	got, ok := gate.Match("Total berapa?")
	if !ok {
		t.Fatal("Match() found nothing")
	}
	// Table order, not position in the text.
	if got != "berapa" {
		t.Errorf("Match() = %q, want %q", got, "berapa")
	}
}

func TestIntentGate_BlankIndicatorsIgnored(t *testing.T) {
	gate := NewIntentGate([]string{"", "  "})

	if gate.IsAnalyticalQuery("beli kopi 25rb") {
		t.Error("blank indicators should never match")
	}
}
