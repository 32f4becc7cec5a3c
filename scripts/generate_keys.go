//go:build ignore

// This script generates random admin API keys for the cache administration endpoints.
// Run with: go run scripts/generate_keys.go [-n 2]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	// URL-safe so the key can be pasted into headers and env files unquoted.
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	count := flag.Int("n", 1, "number of keys to generate")
	flag.Parse()

	if *count < 1 {
		fmt.Fprintln(os.Stderr, "-n must be at least 1")
		os.Exit(1)
	}

	keys := make([]string, 0, *count)
	for i := 0; i < *count; i++ {
		key, err := generateSecureKey(24)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating admin API key: %v\n", err)
			os.Exit(1)
		}
		keys = append(keys, key)
	}

	fmt.Println("Add this to your .env file:")
	fmt.Println()
	fmt.Printf("ADMIN_API_KEYS=%s\n", strings.Join(keys, ","))
	fmt.Println()
	fmt.Println("Send one of them as the X-API-Key header to /api/cache endpoints.")
	fmt.Println("Never commit these keys to version control.")
}
