package passhash

import (
	"bytes"
	"testing"
)

func TestHash_Deterministic(t *testing.T) {
	t.Parallel()

	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	h1 := Hash("pw1", salt)
	h2 := Hash("pw1", salt)
	if !bytes.Equal(h1, h2) {
		t.Fatalf("hash not deterministic for fixed inputs")
	}
	if len(h1) != 64 {
		t.Fatalf("digest length: got %d want 64", len(h1))
	}
}

func TestHash_SaltSensitive(t *testing.T) {
	t.Parallel()

	s1, _ := GenerateSalt()
	s2, _ := GenerateSalt()
	if bytes.Equal(s1, s2) {
		t.Fatalf("two generated salts are identical")
	}
	if bytes.Equal(Hash("pw1", s1), Hash("pw1", s2)) {
		t.Fatalf("identical passwords with different salts must hash differently")
	}
}

func TestHash_PasswordSensitive(t *testing.T) {
	t.Parallel()

	salt, _ := GenerateSalt()
	if bytes.Equal(Hash("pw1", salt), Hash("pw2", salt)) {
		t.Fatalf("different passwords with same salt must hash differently")
	}
	// без нормализации: регистр и пробелы значимы
	if bytes.Equal(Hash("pw1", salt), Hash("PW1", salt)) {
		t.Fatalf("hash must be case-sensitive")
	}
	if bytes.Equal(Hash("pw1", salt), Hash(" pw1", salt)) {
		t.Fatalf("hash must be whitespace-sensitive")
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	salt, _ := GenerateSalt()
	h := Hash("pw1", salt)
	if !Equal(h, Hash("pw1", salt)) {
		t.Fatalf("Equal returned false for identical digests")
	}
	if Equal(h, Hash("pw2", salt)) {
		t.Fatalf("Equal returned true for different digests")
	}
}

func TestGenerateSalt_Size(t *testing.T) {
	t.Parallel()

	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	if len(salt) != SaltSize {
		t.Fatalf("salt length: got %d want %d", len(salt), SaltSize)
	}
}
