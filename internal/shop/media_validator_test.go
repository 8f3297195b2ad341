package shop

import "testing"

func TestMediaTypeFor(t *testing.T) {
	cases := []struct {
		filename string
		want     string
		wantErr  bool
	}{
		{"storefront.jpg", "IMAGE", false},
		{"storefront.JPG", "IMAGE", false},
		{"tour.mp4", "VIDEO", false},
		{"clip.webm", "VIDEO", false},
		{"menu.pdf", "", true},
		{"noextension", "", true},
	}

	for _, tc := range cases {
		got, err := MediaTypeFor(tc.filename)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected an error", tc.filename)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.filename, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.filename, tc.want, got)
		}
	}
}
