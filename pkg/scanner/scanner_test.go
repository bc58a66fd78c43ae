package scanner

import "testing"

func TestContainsBytes(t *testing.T) {
	for _, tc := range []struct {
		name    string
		buf     []byte
		pattern []byte
		want    bool
	}{
		{"hit at start", []byte("/bin/sh -c"), []byte("/bin/sh"), true},
		{"hit in middle", []byte("aaa/bin/shbbb"), []byte("/bin/sh"), true},
		{"hit at end", []byte{0x90, 0x90, 0x0f, 0x05}, []byte{0x0f, 0x05}, true},
		{"no hit", []byte{0x90, 0x0f, 0x90, 0x05}, []byte{0x0f, 0x05}, false},
		{"pattern longer than buf", []byte("sh"), []byte("/bin/sh"), false},
		{"empty pattern", []byte("anything"), nil, false},
		{"empty buf", nil, []byte("x"), false},
		{"both empty", nil, nil, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsBytes(tc.buf, tc.pattern); got != tc.want {
				t.Errorf("ContainsBytes(%q, %q) = %v, want %v", tc.buf, tc.pattern, got, tc.want)
			}
		})
	}
}

func TestContainsString(t *testing.T) {
	for _, tc := range []struct {
		name   string
		buf    []byte
		needle string
		want   bool
	}{
		{"substring hit", []byte("xxexecveyy"), "execve", true},
		{"case sensitive", []byte("EXECVE"), "execve", false},
		{"empty needle", []byte("payload"), "", false},
		{"nil buf", nil, "flag", false},
		{"needle with interior nul", []byte("a\x00b"), "\x00", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsString(tc.buf, tc.needle); got != tc.want {
				t.Errorf("ContainsString(%q, %q) = %v, want %v", tc.buf, tc.needle, got, tc.want)
			}
		})
	}
}
