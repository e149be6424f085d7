package hashio

import (
	"bytes"
	"crypto/md5" //nolint
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
)

const size = 512

type HashFunc func([]byte) ([]byte, error)

var ErrHashFuncNotFound = errors.New("hash func not found")

// ReadAll reads in blocks by buf size and hashes
func ReadAll(r io.Reader, hasher hash.Hash) ([]byte, error) {
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("read: %w", err)
		}
	}

	return hasher.Sum(nil), nil
}

// Fingerprint hashes the content with the hashFunc and returns it hex encoded
func Fingerprint(content []byte, hashFunc HashFunc) (string, error) {
	if hashFunc == nil {
		return "", ErrHashFuncNotFound
	}

	sum, err := hashFunc(content)
	if err != nil {
		return "", fmt.Errorf("call HashFunc: %w", err)
	}

	return hex.EncodeToString(sum), nil
}

func HashSumFunc(hasher func() hash.Hash) HashFunc {
	return func(in []byte) ([]byte, error) {
		return ReadAll(bytes.NewReader(in), hasher())
	}
}

func MD5() func() hash.Hash {
	return func() hash.Hash {
		return md5.New()
	}
}

func SHA1() func() hash.Hash {
	return func() hash.Hash {
		return sha1.New()
	}
}

func MD5HashFunc() HashFunc {
	return HashSumFunc(MD5())
}

func SHA1HashFunc() HashFunc {
	return HashSumFunc(SHA1())
}
