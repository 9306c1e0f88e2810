// Command keywordsdemo runs all five keyword-extraction algorithms over one
// or more text files and prints to stdout the top-10 results of TF-IDF,
// RAKE, TextRank and YAKE, plus the vertex and edge counts of the TextRank
// and Co-occurrence graphs. It is
// a developer convenience modeled on the teacher's cmd/smoketest, not part
// of the library's public contract.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/az-ai-labs/keyword-extraction-go/keywords"
	"github.com/az-ai-labs/keyword-extraction-go/tokenizer"
)

const maxWorkers = 4

// englishStopWords is a small default stop-word set for the demo binary.
// Real callers supply their own (the library never bundles one, spec §1).
var englishStopWords = stopWordSet(
	"a", "an", "the", "and", "or", "but", "is", "are", "was", "were",
	"be", "been", "being", "of", "in", "on", "at", "to", "for", "with",
	"by", "from", "as", "it", "its", "this", "that", "these", "those",
	"has", "have", "had", "not", "no",
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file.txt> [more files...]\n", os.Args[0])
		os.Exit(1)
	}

	paths := os.Args[1:]
	fmt.Fprintf(os.Stderr, "Processing %d file(s)\n", len(paths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, path := range paths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			out, err := processFile(p)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR %s: %v\n", p, err)
				return
			}
			fmt.Print(out)
		}(path)
	}
	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n", time.Since(start).Round(time.Millisecond))
}

func processFile(path string) (string, error) {
	fileStart := time.Now()
	fmt.Fprintf(os.Stderr, "START %s\n", path)

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)

	var out strings.Builder
	fmt.Fprintf(&out, "=== %s ===\n", path)

	tfidf, err := keywords.NewTFIDFFromText(text, englishStopWords, nil)
	if err != nil {
		return "", fmt.Errorf("tf-idf: %w", err)
	}
	printRanked(&out, "TF-IDF", tfidf.TopWithScores(10))

	rake, err := keywords.NewRAKE(text, englishStopWords, nil)
	if err != nil {
		return "", fmt.Errorf("rake: %w", err)
	}
	printRanked(&out, "RAKE", rake.TopWithScores(10))

	textrank, err := keywords.NewTextRank(text, englishStopWords, nil)
	if err != nil {
		return "", fmt.Errorf("textrank: %w", err)
	}
	printRanked(&out, "TextRank (words)", textrank.TopWithScores(10))
	printRanked(&out, "TextRank (phrases)", textrank.TopPhrasesWithScores(10))
	vertices, edges := textrank.Stats()
	fmt.Fprintf(&out, "-- TextRank graph --\n  %d vertices, %d edges\n", vertices, edges)

	content := tokenizer.ContentTokens(text, tokenizer.Options{StopWords: englishStopWords})
	cooc, err := keywords.NewCoOccurrence(content, 2, nil, nil)
	if err != nil {
		return "", fmt.Errorf("co-occurrence: %w", err)
	}
	coVertices, coEdges := cooc.Stats()
	fmt.Fprintf(&out, "-- Co-occurrence graph --\n  %d vertices, %d edges\n", coVertices, coEdges)

	yake, err := keywords.NewYAKE(text, englishStopWords, nil)
	if err != nil {
		return "", fmt.Errorf("yake: %w", err)
	}
	printRanked(&out, "YAKE (lower is better)", yake.TopWithScores(10))

	fmt.Fprintf(os.Stderr, "DONE  %s in %s\n", path, time.Since(fileStart).Round(time.Millisecond))
	return out.String(), nil
}

func printRanked(out *strings.Builder, label string, ranked []keywords.Scored) {
	fmt.Fprintf(out, "-- %s --\n", label)
	for _, r := range ranked {
		fmt.Fprintf(out, "  %-30s %.4f\n", r.Term, r.Score)
	}
}

func stopWordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
