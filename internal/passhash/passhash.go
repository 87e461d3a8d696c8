// Package passhash — хранение паролей: HMAC-SHA-512 с индивидуальной
// случайной солью (соль играет роль ключа HMAC).
package passhash

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
)

// SaltSize — размер ключа HMAC-SHA-512; соль генерируется один раз на
// пользователя при регистрации.
const SaltSize = 64

func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// Hash считает HMAC-SHA-512(key=salt, msg=password). Пароль не
// нормализуется: регистр и пробелы значимы.
func Hash(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

// Equal сравнивает дайджесты за константное время.
func Equal(a, b []byte) bool { return hmac.Equal(a, b) }
