package event

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantZero  bool
	}{
		{
			name:      "Slash format 2025/8/2",
			text:      "2025/8/2",
			wantYear:  2025,
			wantMonth: time.August,
			wantDay:   2,
		},
		{
			name:      "Slash format with leading zeros 2025/08/02",
			text:      "2025/08/02",
			wantYear:  2025,
			wantMonth: time.August,
			wantDay:   2,
		},
		{
			name:      "Dash format 2025-8-2",
			text:      "2025-8-2",
			wantYear:  2025,
			wantMonth: time.August,
			wantDay:   2,
		},
		{
			name:      "Dot format 2025.8.2",
			text:      "2025.8.2",
			wantYear:  2025,
			wantMonth: time.August,
			wantDay:   2,
		},
		{
			name:      "Japanese format 2025年8月2日",
			text:      "2025年8月2日",
			wantYear:  2025,
			wantMonth: time.August,
			wantDay:   2,
		},
		{
			name:      "Surrounding whitespace",
			text:      " 2025/8/2 ",
			wantYear:  2025,
			wantMonth: time.August,
			wantDay:   2,
		},
		{
			name:     "Empty string",
			text:     "",
			wantZero: true,
		},
		{
			name:     "Month and day without year",
			text:     "8/2",
			wantZero: true,
		},
		{
			name:     "Invalid format",
			text:     "未定",
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.text)

			if tt.wantZero {
				if !got.IsZero() {
					t.Errorf("ParseDate(%q) = %v, want zero time", tt.text, got)
				}
				return
			}

			if got.Year() != tt.wantYear {
				t.Errorf("ParseDate(%q).Year() = %d, want %d", tt.text, got.Year(), tt.wantYear)
			}
			if got.Month() != tt.wantMonth {
				t.Errorf("ParseDate(%q).Month() = %v, want %v", tt.text, got.Month(), tt.wantMonth)
			}
			if got.Day() != tt.wantDay {
				t.Errorf("ParseDate(%q).Day() = %d, want %d", tt.text, got.Day(), tt.wantDay)
			}
		})
	}
}

func TestEvent_DateRange(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		to    string
		japan bool
		want  string
	}{
		{
			name:  "Japan single day",
			from:  "2025/8/2",
			japan: true,
			want:  "2025年08月02日",
		},
		{
			name:  "Japan range within month",
			from:  "2025/8/2",
			to:    "2025/8/3",
			japan: true,
			want:  "2025年08月02日〜03日",
		},
		{
			name:  "Japan range across months",
			from:  "2025/8/31",
			to:    "2025/9/1",
			japan: true,
			want:  "2025年08月31日〜09月01日",
		},
		{
			name: "International single day",
			from: "2025/10/18",
			want: "October 18, 2025",
		},
		{
			name: "International range within month",
			from: "2025/10/18",
			to:   "2025/10/19",
			want: "October 18-19, 2025",
		},
		{
			name: "International range across months",
			from: "2025/8/31",
			to:   "2025/9/1",
			want: "August 31 - September 01, 2025",
		},
		{
			name: "End equal to start collapses to single day",
			from: "2025/8/2",
			to:   "2025/8/2",
			want: "August 02, 2025",
		},
		{
			name: "No parseable start",
			from: "未定",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := New("Test Event", "Tokyo", "", tt.from, tt.to)
			evt.Japan = tt.japan

			if got := evt.DateRange(); got != tt.want {
				t.Errorf("Event.DateRange() = %q, want %q", got, tt.want)
			}
		})
	}
}
