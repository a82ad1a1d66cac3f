package endpoints

import "testing"

func TestNormalizeAPIURI(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: "",
		},
		{
			name: "already canonical",
			raw:  "https://api.github.com",
			want: "https://api.github.com",
		},
		{
			name: "trailing slash",
			raw:  "https://api.github.com/",
			want: "https://api.github.com",
		},
		{
			name: "multiple trailing slashes",
			raw:  "https://github.example.com/api/v3///",
			want: "https://github.example.com/api/v3",
		},
		{
			name: "upper case host",
			raw:  "https://GitHub.Example.COM/api/v3/",
			want: "https://github.example.com/api/v3",
		},
		{
			name: "default https port dropped",
			raw:  "https://github.example.com:443/api/v3",
			want: "https://github.example.com/api/v3",
		},
		{
			name: "default http port dropped",
			raw:  "http://github.example.com:80/api/v3",
			want: "http://github.example.com/api/v3",
		},
		{
			name: "non-default port kept",
			raw:  "https://github.example.com:8443/api/v3",
			want: "https://github.example.com:8443/api/v3",
		},
		{
			name: "dot segments resolved",
			raw:  "https://github.example.com/api/./v3/../v3/",
			want: "https://github.example.com/api/v3",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  https://github.example.com/api/v3  ",
			want: "https://github.example.com/api/v3",
		},
		{
			name: "non-http scheme passed through",
			raw:  "ssh://git@github.example.com/",
			want: "ssh://git@github.example.com",
		},
		{
			name: "unparseable passed through trimmed",
			raw:  "http:/bad-url/",
			want: "http:/bad-url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAPIURI(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizeAPIURI(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeAPIURIIdempotent(t *testing.T) {
	inputs := []string{
		"https://api.github.com/",
		"https://GitHub.Example.COM:443/api/v3///",
		"http://github.example.com:8080/api/v3/",
		"http:/bad-url",
		"not a url at all",
	}

	for _, raw := range inputs {
		once := NormalizeAPIURI(raw)
		twice := NormalizeAPIURI(once)
		if once != twice {
			t.Errorf("NormalizeAPIURI not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}
