package sheet

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shinichi-ohki/maker-events/internal/region"
)

func TestExportURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "edit URL converted to CSV export",
			url:  "https://docs.google.com/spreadsheets/d/1a2XqNp01q6hFiyyFjq5hMlYGV66Z9UeOHZP4snSXaz0/edit?gid=0#gid=0",
			want: "https://docs.google.com/spreadsheets/d/1a2XqNp01q6hFiyyFjq5hMlYGV66Z9UeOHZP4snSXaz0/export?format=csv",
		},
		{
			name: "bare sheet URL converted",
			url:  "https://docs.google.com/spreadsheets/d/abc-DEF_123",
			want: "https://docs.google.com/spreadsheets/d/abc-DEF_123/export?format=csv",
		},
		{
			name: "non-spreadsheet URL passes through",
			url:  "https://example.com/events.csv",
			want: "https://example.com/events.csv",
		},
		{
			name: "spreadsheet URL without an ID passes through",
			url:  "https://docs.google.com/spreadsheets/",
			want: "https://docs.google.com/spreadsheets/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExportURL(tt.url); got != tt.want {
				t.Errorf("ExportURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestFetchEvents(t *testing.T) {
	tests := []struct {
		name       string
		csvContent string
		statusCode int
		wantError  bool
		wantCount  int
	}{
		{
			name: "successful fetch with events",
			csvContent: "名称,場所,地域,から,まで,URL,備考\n" +
				"2025年,,,,,,\n" +
				"夏のフェア,会場A,東京,8/2,8/3,https://example.com/a,\n" +
				"Maker Faire Rome 2025,Gazometro,ローマ(イタリア),10/17,10/19,https://example.com/rome,\n",
			statusCode: http.StatusOK,
			wantCount:  2,
		},
		{
			name:       "HTTP error",
			csvContent: "",
			statusCode: http.StatusNotFound,
			wantError:  true,
		},
		{
			name:       "empty body",
			csvContent: "",
			statusCode: http.StatusOK,
			wantCount:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Verify User-Agent is set
				if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "maker-events") {
					t.Errorf("User-Agent = %q, should contain 'maker-events'", userAgent)
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.csvContent))
			}))
			defer server.Close()

			c := New(server.URL, region.New())
			events, err := c.FetchEvents()

			if tt.wantError {
				if err == nil {
					t.Error("FetchEvents() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("FetchEvents() unexpected error: %v", err)
			}
			if len(events) != tt.wantCount {
				t.Errorf("FetchEvents() returned %d events, want %d", len(events), tt.wantCount)
			}
		})
	}
}

func TestNew(t *testing.T) {
	c := New(DefaultSheetURL, region.New())

	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.client == nil {
		t.Error("sheet client is nil")
	}
	if c.url != DefaultSheetURL {
		t.Errorf("sheet url = %q, want %q", c.url, DefaultSheetURL)
	}
}
