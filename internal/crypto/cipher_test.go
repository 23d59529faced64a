package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func testRoundKeys(t *testing.T) []string {
	t.Helper()
	subkeys, err := NewKeyScheduler().DeriveRoundKeys("this12is896a9key", Rounds)
	if err != nil {
		t.Fatalf("DeriveRoundKeys error: %v", err)
	}
	return subkeys
}

func TestNewCipher_WrongRoundKeyCount(t *testing.T) {
	subkeys := testRoundKeys(t)

	if _, err := NewCipher(subkeys[:Rounds-1]); !errors.Is(err, ErrWrongRoundKeyCount) {
		t.Fatalf("7 keys: error = %v, want ErrWrongRoundKeyCount", err)
	}
	if _, err := NewCipher(append(subkeys, "extra")); !errors.Is(err, ErrWrongRoundKeyCount) {
		t.Fatalf("9 keys: error = %v, want ErrWrongRoundKeyCount", err)
	}
	if _, err := NewCipher(nil); !errors.Is(err, ErrWrongRoundKeyCount) {
		t.Fatalf("nil keys: error = %v, want ErrWrongRoundKeyCount", err)
	}
}

func TestCipher_RoundTrip(t *testing.T) {
	cipher, err := NewCipher(testRoundKeys(t))
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}

	// Lengths chosen around the block boundary: empty, shorter than a
	// block, exactly one block, partial trailing block, several blocks.
	plaintexts := []string{
		"",
		"a",
		"1234567",
		"12345678",
		"123456789",
		"email SamplePassword123!",
		"пароль от почты",
		"label-with-unicode-✓-and-a-long-tail-that-spans-many-blocks",
	}

	for _, plaintext := range plaintexts {
		ciphertext := cipher.Encrypt([]byte(plaintext))
		if len(ciphertext) != len([]byte(plaintext)) {
			t.Fatalf("ciphertext length = %d, want %d", len(ciphertext), len([]byte(plaintext)))
		}

		got := cipher.Decrypt(ciphertext)
		if !bytes.Equal(got, []byte(plaintext)) {
			t.Fatalf("round trip failed for %q: got %q", plaintext, got)
		}
	}
}

func TestCipher_Deterministic(t *testing.T) {
	cipher, err := NewCipher(testRoundKeys(t))
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}

	plaintext := []byte("email SamplePassword123!")
	c1 := cipher.Encrypt(plaintext)
	c2 := cipher.Encrypt(plaintext)

	if !bytes.Equal(c1, c2) {
		t.Fatal("expected identical ciphertexts for identical input")
	}
	if bytes.Equal(c1, plaintext) {
		t.Fatal("ciphertext equals plaintext")
	}
}

func TestCipher_InputNotModified(t *testing.T) {
	cipher, err := NewCipher(testRoundKeys(t))
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}

	plaintext := []byte("do not touch this buffer")
	original := make([]byte, len(plaintext))
	copy(original, plaintext)

	_ = cipher.Encrypt(plaintext)
	if !bytes.Equal(plaintext, original) {
		t.Fatal("Encrypt modified its input slice")
	}
}

func TestCipher_DifferentKeysDisagree(t *testing.T) {
	scheduler := NewKeyScheduler()

	k1, err := scheduler.DeriveRoundKeys("this12is896a9key", Rounds)
	if err != nil {
		t.Fatalf("DeriveRoundKeys error: %v", err)
	}
	k2, err := scheduler.DeriveRoundKeys("another16charKey", Rounds)
	if err != nil {
		t.Fatalf("DeriveRoundKeys error: %v", err)
	}

	c1, err := NewCipher(k1)
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}
	c2, err := NewCipher(k2)
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}

	plaintext := []byte("VALID_KEY")
	if bytes.Equal(c1.Encrypt(plaintext), c2.Encrypt(plaintext)) {
		t.Fatal("two different key sets produced identical ciphertext")
	}

	// Decrypting under the wrong key must still succeed syntactically and
	// produce garbage, never an error.
	garbage := c2.Decrypt(c1.Encrypt(plaintext))
	if bytes.Equal(garbage, plaintext) {
		t.Fatal("wrong key decrypted to the original plaintext")
	}
}

// The trailing partial block is left unpermuted, so a one-block change in
// the tail must stay within the tail after a full encrypt/decrypt cycle.
func TestCipher_PartialBlockRoundTrip(t *testing.T) {
	cipher, err := NewCipher(testRoundKeys(t))
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}

	for length := 0; length < 3*BlockSize; length++ {
		plaintext := bytes.Repeat([]byte{'x'}, length)
		for i := range plaintext {
			plaintext[i] = byte('a' + i%26)
		}

		got := cipher.Decrypt(cipher.Encrypt(plaintext))
		if !bytes.Equal(got, plaintext) {
			t.Fatalf("round trip failed at length %d", length)
		}
	}
}

func TestPermute_InverseTable(t *testing.T) {
	block := []byte("abcdefgh")

	permuted := permute(block, pbox)
	if bytes.Equal(permuted, block) {
		t.Fatal("P-box left a full block unchanged")
	}

	restored := permute(permuted, pboxInv)
	if !bytes.Equal(restored, block) {
		t.Fatalf("inverse P-box failed: got %q", restored)
	}
}
