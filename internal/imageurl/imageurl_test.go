package imageurl

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		picture string
		origin  string
		want    string
	}{
		{"empty falls back to placeholder", "", "http://localhost:5000", Placeholder},
		{"absolute http passes through", "http://cdn.example.com/p.png", "http://localhost:5000", "http://cdn.example.com/p.png"},
		{"absolute https passes through", "https://cdn.example.com/p.png", "http://localhost:5000", "https://cdn.example.com/p.png"},
		{"relative joins origin", "/uploads/u1.png", "http://localhost:5000", "http://localhost:5000/uploads/u1.png"},
		{"double slash collapses", "/uploads/u1.png", "http://localhost:5000/", "http://localhost:5000/uploads/u1.png"},
		{"bare path joins origin", "uploads/u1.png", "http://localhost:5000", "http://localhost:5000/uploads/u1.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.picture, tt.origin); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.picture, tt.origin, got, tt.want)
			}
		})
	}
}
