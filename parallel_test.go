package rosettes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHighlightManyOrder(t *testing.T) {
	var blocks []Block
	for i := 0; i < 20; i++ {
		blocks = append(blocks, Block{
			Code:     fmt.Sprintf("x%d = %d\n", i, i),
			Language: "python",
		})
	}

	results, err := HighlightMany(context.Background(), blocks, WithFormatterName("null"))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(blocks) {
		t.Fatalf("got %d results, want %d", len(results), len(blocks))
	}
	for i, out := range results {
		if out != blocks[i].Code {
			t.Errorf("result %d = %q, want %q", i, out, blocks[i].Code)
		}
	}
}

func TestHighlightManySmallBatch(t *testing.T) {
	blocks := []Block{
		{Code: "{}", Language: "json"},
		{Code: "x = 1\n", Language: "python"},
	}
	results, err := HighlightMany(context.Background(), blocks)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if !strings.Contains(results[1], `data-language="python"`) {
		t.Errorf("result 1 = %q", results[1])
	}
}

func TestHighlightManyPropagatesError(t *testing.T) {
	var blocks []Block
	for i := 0; i < 20; i++ {
		blocks = append(blocks, Block{Code: "x", Language: "go"})
	}
	blocks[13].Language = "cobol"

	_, err := HighlightMany(context.Background(), blocks)
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("err = %v, want ErrUnknownLanguage", err)
	}
}

func TestHighlightManyCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var blocks []Block
	for i := 0; i < 20; i++ {
		blocks = append(blocks, Block{Code: "x", Language: "go"})
	}
	if _, err := HighlightMany(ctx, blocks); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestHighlightManyEmpty(t *testing.T) {
	results, err := HighlightMany(context.Background(), nil)
	if err != nil || results != nil {
		t.Fatalf("got %v, %v", results, err)
	}
}

func TestTokenizeMany(t *testing.T) {
	var blocks []Block
	for i := 0; i < 10; i++ {
		blocks = append(blocks, Block{Code: "a: 1\n", Language: "yaml"})
	}
	streams, err := TokenizeMany(context.Background(), blocks, WithMaxWorkers(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(streams) != 10 {
		t.Fatalf("got %d streams", len(streams))
	}
	for i, tokens := range streams {
		var b strings.Builder
		for _, tok := range tokens {
			b.WriteString(tok.Value)
		}
		if b.String() != blocks[i].Code {
			t.Errorf("stream %d not lossless: %q", i, b.String())
		}
	}
}
