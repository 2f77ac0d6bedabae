package services

import (
	"strings"
	"unicode/utf8"
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText groups resume lines into chunks of at most maxChunkSize runes.
// Each chunk after the first starts with the last overlap runes of the
// previous one when the next line still fits. Lines longer than a chunk are
// split on sentence boundaries.
func (tc *textChunker) ChunkText(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChunkSize {
		overlap = maxChunkSize / 4
	}

	var chunks []string
	var currentChunk strings.Builder
	currentSize := 0
	// hasNew is false while the chunk holds only carried overlap.
	hasNew := false

	flush := func() {
		chunks = append(chunks, currentChunk.String())
		currentChunk.Reset()
		currentSize = 0
		hasNew = false

		if overlap > 0 {
			overlapText := strings.TrimSpace(getLastNChars(chunks[len(chunks)-1], overlap))
			if overlapText != "" {
				currentChunk.WriteString(overlapText)
				currentSize = utf8.RuneCountInString(overlapText)
			}
		}
	}

	add := func(piece string) {
		pieceSize := utf8.RuneCountInString(piece)
		if currentSize > 0 && currentSize+pieceSize+1 > maxChunkSize {
			flush()
			// The carried overlap alone may not leave room for the piece.
			if currentSize+pieceSize+1 > maxChunkSize {
				currentChunk.Reset()
				currentSize = 0
			}
		}

		if currentSize > 0 {
			currentChunk.WriteString("\n")
			currentSize++
		}
		currentChunk.WriteString(piece)
		currentSize += pieceSize
		hasNew = true
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if utf8.RuneCountInString(line) <= maxChunkSize {
			add(line)
			continue
		}

		for _, sentence := range splitIntoSentences(line) {
			for _, piece := range splitByRunes(sentence, maxChunkSize) {
				add(piece)
			}
		}
	}

	if hasNew {
		chunks = append(chunks, currentChunk.String())
	}

	return chunks
}

func splitIntoSentences(text string) []string {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var result []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

func splitByRunes(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var parts []string
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		if part := strings.TrimSpace(string(runes[start:end])); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func getLastNChars(text string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= n {
		return text
	}

	return string(runes[len(runes)-n:])
}
