package auth

import "testing"

func TestIsPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"abc12345", true},
		{"Senha2024", true},
		{"short1", false},
		{"onlyletters", false},
		{"12345678", false},
	}
	for _, tc := range cases {
		if got := isPasswordStrong(tc.password); got != tc.want {
			t.Fatalf("isPasswordStrong(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestIsEmailValid(t *testing.T) {
	valid := []string{"joao@oficina.com", "maria.silva@mail.com.br"}
	invalid := []string{"not-an-email", "a@b", "@missing.com"}

	for _, e := range valid {
		if !isEmailValid(e) {
			t.Fatalf("isEmailValid(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if isEmailValid(e) {
			t.Fatalf("isEmailValid(%q) = true, want false", e)
		}
	}
}
