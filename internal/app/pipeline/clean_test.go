package pipeline

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain hanzi", "你好世界", "你好世界"},
		{"emoji and punctuation removed", "你好世界！😀123", "你好世界123"},
		{"latin kept", "我用Go写代码", "我用Go写代码"},
		{"cjk punctuation removed", "你好，世界。", "你好世界"},
		{"whitespace kept", "你好 世界\n再见", "你好 世界\n再见"},
		{"fullwidth space kept", "你好　世界", "你好　世界"},
		{"symbols deleted not replaced", "加#油@加*油", "加油加油"},
		{"only junk", "😀🎉！？＃", ""},
		{"digits kept", "2024年", "2024年"},
		{"compatibility ideograph kept", "裏", "裏"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.in)
			if got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// Cleaning is idempotent.
			if again := CleanText(got); again != got {
				t.Errorf("CleanText not idempotent: %q → %q", got, again)
			}
		})
	}
}
