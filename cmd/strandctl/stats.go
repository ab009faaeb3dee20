package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/strandkit/strand/internal/config"
	"github.com/strandkit/strand/internal/metrics"
)

// textStats is the JSON shape of the stats command output.
type textStats struct {
	Characters    int    `json:"characters"`
	Graphemes     int    `json:"graphemes"`
	Words         int    `json:"words"`
	Sentences     int    `json:"sentences"`
	Paragraphs    int    `json:"paragraphs"`
	Vowels        int    `json:"vowels"`
	Consonants    int    `json:"consonants"`
	Digits        int    `json:"digits"`
	Uppercase     int    `json:"uppercase"`
	Lowercase     int    `json:"lowercase"`
	Punctuation   int    `json:"punctuation"`
	Whitespace    int    `json:"whitespace"`
	MostFreqChar  string `json:"most_frequent_character"`
	LeastFreqChar string `json:"least_frequent_character"`
	MostFreqWord  string `json:"most_frequent_word"`
	LeastFreqWord string `json:"least_frequent_word"`
}

func computeStats(text string) textStats {
	return textStats{
		Characters:    metrics.Characters(text),
		Graphemes:     metrics.Length(text),
		Words:         metrics.Words(text),
		Sentences:     metrics.Sentences(text),
		Paragraphs:    metrics.Paragraphs(text),
		Vowels:        metrics.Vowels(text),
		Consonants:    metrics.Consonants(text),
		Digits:        metrics.Digits(text),
		Uppercase:     metrics.Uppercase(text),
		Lowercase:     metrics.Lowercase(text),
		Punctuation:   metrics.Punctuation(text),
		Whitespace:    metrics.Whitespace(text),
		MostFreqChar:  metrics.MostFrequentCharacter(text),
		LeastFreqChar: metrics.LeastFrequentCharacter(text),
		MostFreqWord:  metrics.MostFrequentWord(text),
		LeastFreqWord: metrics.LeastFrequentWord(text),
	}
}

func runStats(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(stderr)

	input := fs.String("input", "", "Input text (default: stdin)")
	asJSON := fs.Bool("json", false, "Emit JSON instead of the configured output format")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	data, err := readInput(*input, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	stats := computeStats(string(data))

	if *asJSON || cfg.OutputFormat == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(stats); err != nil {
			fmt.Fprintf(stderr, "encode stats: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stdout, "characters:  %d\n", stats.Characters)
	fmt.Fprintf(stdout, "graphemes:   %d\n", stats.Graphemes)
	fmt.Fprintf(stdout, "words:       %d\n", stats.Words)
	fmt.Fprintf(stdout, "sentences:   %d\n", stats.Sentences)
	fmt.Fprintf(stdout, "paragraphs:  %d\n", stats.Paragraphs)
	fmt.Fprintf(stdout, "vowels:      %d\n", stats.Vowels)
	fmt.Fprintf(stdout, "consonants:  %d\n", stats.Consonants)
	fmt.Fprintf(stdout, "digits:      %d\n", stats.Digits)
	fmt.Fprintf(stdout, "uppercase:   %d\n", stats.Uppercase)
	fmt.Fprintf(stdout, "lowercase:   %d\n", stats.Lowercase)
	fmt.Fprintf(stdout, "punctuation: %d\n", stats.Punctuation)
	fmt.Fprintf(stdout, "whitespace:  %d\n", stats.Whitespace)
	fmt.Fprintf(stdout, "most frequent character:  %s\n", stats.MostFreqChar)
	fmt.Fprintf(stdout, "least frequent character: %s\n", stats.LeastFreqChar)
	fmt.Fprintf(stdout, "most frequent word:       %s\n", stats.MostFreqWord)
	fmt.Fprintf(stdout, "least frequent word:      %s\n", stats.LeastFreqWord)
	return 0
}
