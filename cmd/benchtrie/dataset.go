package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v6"
)

// loadWordsFromFile reads one word per line, skipping blank lines.
func loadWordsFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list %q: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list %q: %w", path, err)
	}
	return words, nil
}

// generateWords produces count synthetic, seeded words when no word-list
// file is supplied. Each word ends with its index, so the words are
// distinct.
func generateWords(count int, seed uint64) []string {
	gofakeit.Seed(int64(seed))
	words := make([]string, count)
	for i := range words {
		words[i] = fmt.Sprintf("%s%s%d", gofakeit.HipsterWord(), gofakeit.Word(), i)
	}
	return words
}
