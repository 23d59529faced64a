package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyScheduler отвечает за детерминированный вывод раундовых подключей из
// мастер-ключа. Он не хранит состояния: один и тот же мастер-ключ всегда
// даёт один и тот же набор подключей, иначе ранее сохранённые записи
// невозможно будет расшифровать.
type KeyScheduler interface {
	// DeriveRoundKeys validates the master key against the key policy and
	// derives rounds fixed-length subkeys from it. Returns
	// [ErrInvalidKeyLength], [ErrInvalidKeyAlphabet] or
	// [ErrInvalidRoundCount] when the inputs violate the policy; the
	// derivation itself cannot fail once the inputs are valid.
	DeriveRoundKeys(masterKey string, rounds int) ([]string, error)
}

// Cipher is the keyed invertible transform used as the codec for every
// line the vault persists or reads. Implementations are pure: identical
// input and bound round keys always produce identical output, and
// Decrypt(Encrypt(x)) == x for every byte string x.
type Cipher interface {
	Encrypt(plaintext []byte) []byte
	Decrypt(ciphertext []byte) []byte
}
