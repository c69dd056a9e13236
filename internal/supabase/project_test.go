package supabase

import "testing"

func TestProjectRef(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		ref     string
		wantErr bool
	}{
		{name: "valid", url: "https://abcdefgh.supabase.co", ref: "abcdefgh"},
		{name: "trailing slash", url: "https://abcdefgh.supabase.co/", ref: "abcdefgh"},
		{name: "hyphenated ref", url: "https://my-project.supabase.co", ref: "my-project"},
		{name: "http scheme", url: "http://abcdefgh.supabase.co", wantErr: true},
		{name: "wrong domain", url: "https://abcdefgh.supabase.io", wantErr: true},
		{name: "missing ref", url: "https://.supabase.co", wantErr: true},
		{name: "not a url", url: "abcdefgh", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ProjectRef(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ProjectRef(%q) expected error, got ref %q", tt.url, ref)
				}
				return
			}

			if err != nil {
				t.Fatalf("ProjectRef(%q) returned error: %v", tt.url, err)
			}
			if ref != tt.ref {
				t.Errorf("ProjectRef(%q) = %q, want %q", tt.url, ref, tt.ref)
			}
		})
	}
}
