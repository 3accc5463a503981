package dwmbar

import "testing"

func TestSprintf(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Sprintf("%d MiB", 5761), "5761 MiB"},
		{Sprintf("%.2f %.2f %.2f", 0.5, 1.0, 2.345678), "0.50 1.00 2.35"},
		{Sprintf("%.0f%%%c", 87.0, '-'), "87%-"},
		{Sprintf("KB:%s", "us"), "KB:us"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, tt.got)
		}
	}
}

func TestLine(t *testing.T) {
	var line Line
	line.Add(" Mem %s | ", "")
	line.Add("L:%s", "1.00 1.00 1.00")
	if got := line.String(); got != " Mem  | L:1.00 1.00 1.00" {
		t.Fatalf("unexpected line %q", got)
	}
}
