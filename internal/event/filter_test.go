package event

import (
	"testing"
	"time"
)

func TestFilterUpcoming(t *testing.T) {
	now := time.Date(2025, time.August, 15, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		events    []*Event
		horizon   int
		wantNames []string
	}{
		{
			name:      "Empty slice",
			events:    []*Event{},
			horizon:   730,
			wantNames: []string{},
		},
		{
			name: "Past event dropped",
			events: []*Event{
				New("Spring Fair", "Osaka", "", "2025/4/12", "2025/4/13"),
			},
			horizon:   730,
			wantNames: []string{},
		},
		{
			name: "Event ending today kept",
			events: []*Event{
				New("Weekend Fair", "Nagoya", "", "2025/8/14", "2025/8/15"),
			},
			horizon:   730,
			wantNames: []string{"Weekend Fair"},
		},
		{
			name: "Ongoing multi-day event kept",
			events: []*Event{
				New("Long Expo", "Tokyo", "", "2025/8/10", "2025/8/20"),
			},
			horizon:   730,
			wantNames: []string{"Long Expo"},
		},
		{
			name: "Future event kept",
			events: []*Event{
				New("Autumn Fair", "Sendai", "", "2025/11/1", ""),
			},
			horizon:   730,
			wantNames: []string{"Autumn Fair"},
		},
		{
			name: "Event beyond horizon dropped",
			events: []*Event{
				New("Distant Fair", "Sapporo", "", "2028/1/1", ""),
			},
			horizon:   730,
			wantNames: []string{},
		},
		{
			name: "Horizon disabled keeps distant event",
			events: []*Event{
				New("Distant Fair", "Sapporo", "", "2028/1/1", ""),
			},
			horizon:   0,
			wantNames: []string{"Distant Fair"},
		},
		{
			name: "Unparseable start dropped",
			events: []*Event{
				New("Mystery Fair", "Somewhere", "", "未定", ""),
			},
			horizon:   730,
			wantNames: []string{},
		},
		{
			name: "Mixed",
			events: []*Event{
				New("Spring Fair", "Osaka", "", "2025/4/12", "2025/4/13"),
				New("Weekend Fair", "Nagoya", "", "2025/8/14", "2025/8/15"),
				New("Autumn Fair", "Sendai", "", "2025/11/1", ""),
				New("Distant Fair", "Sapporo", "", "2028/1/1", ""),
			},
			horizon:   730,
			wantNames: []string{"Weekend Fair", "Autumn Fair"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterUpcoming(tt.events, now, tt.horizon)

			if len(got) != len(tt.wantNames) {
				t.Fatalf("FilterUpcoming() returned %d events, want %d", len(got), len(tt.wantNames))
			}
			for i, e := range got {
				if e.Name != tt.wantNames[i] {
					t.Errorf("FilterUpcoming() at position %d = %q, want %q", i, e.Name, tt.wantNames[i])
				}
			}
		})
	}
}

func TestSortByDate(t *testing.T) {
	tests := []struct {
		name      string
		events    []*Event
		wantOrder []string // Expected order of Name values
	}{
		{
			name:      "Empty slice",
			events:    []*Event{},
			wantOrder: []string{},
		},
		{
			name: "Reverse order",
			events: []*Event{
				New("December Fair", "Tokyo", "", "2025/12/31", ""),
				New("June Fair", "Tokyo", "", "2025/6/15", ""),
				New("January Fair", "Tokyo", "", "2025/1/1", ""),
			},
			wantOrder: []string{"January Fair", "June Fair", "December Fair"},
		},
		{
			name: "Unparseable dates at end",
			events: []*Event{
				New("March Fair", "Tokyo", "", "2025/3/1", ""),
				New("Mystery Fair", "Tokyo", "", "未定", ""),
				New("January Fair", "Tokyo", "", "2025/1/1", ""),
			},
			wantOrder: []string{"January Fair", "March Fair", "Mystery Fair"},
		},
		{
			name: "Same date ties break by name",
			events: []*Event{
				New("Zeta Fair", "Tokyo", "", "2025/3/15", ""),
				New("Alpha Fair", "Tokyo", "", "2025/3/15", ""),
			},
			wantOrder: []string{"Alpha Fair", "Zeta Fair"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a copy to avoid modifying the test data
			events := make([]*Event, len(tt.events))
			copy(events, tt.events)

			SortByDate(events)

			if len(events) != len(tt.wantOrder) {
				t.Fatalf("SortByDate() resulted in %d events, want %d", len(events), len(tt.wantOrder))
			}
			for i, e := range events {
				if e.Name != tt.wantOrder[i] {
					t.Errorf("SortByDate() at position %d = %q, want %q", i, e.Name, tt.wantOrder[i])
				}
			}
		})
	}
}

func TestSplit(t *testing.T) {
	a := New("Tokyo Fair", "Tokyo", "東京", "2025/9/1", "")
	a.Japan = true
	b := New("Rome Fair", "Rome", "ローマ(イタリア)", "2025/9/5", "")
	c := New("Kyoto Fair", "Kyoto", "京都", "2025/9/10", "")
	c.Japan = true

	japan, international := Split([]*Event{a, b, c})

	if len(japan) != 2 {
		t.Fatalf("expected 2 japan events, got %d", len(japan))
	}
	if japan[0].Name != "Tokyo Fair" || japan[1].Name != "Kyoto Fair" {
		t.Errorf("japan events out of order: %s, %s", japan[0].Name, japan[1].Name)
	}

	if len(international) != 1 {
		t.Fatalf("expected 1 international event, got %d", len(international))
	}
	if international[0].Name != "Rome Fair" {
		t.Errorf("expected Rome Fair, got %s", international[0].Name)
	}
}
