package storelingo

import (
	"fmt"
	"testing"
)

func makeRequests(n int) []TranslationRequest {
	reqs := make([]TranslationRequest, n)
	for i := range reqs {
		reqs[i] = TranslationRequest{
			SourceID:     "1",
			Field:        fmt.Sprintf("text_%d", i),
			OriginalText: fmt.Sprintf("text number %d", i),
		}
	}
	return reqs
}

func TestPartition_PreservesOrder(t *testing.T) {
	reqs := makeRequests(25)
	batches := Partition(reqs, 10)

	if len(batches) != 3 {
		t.Fatalf("Expected 3 batches, got %d", len(batches))
	}

	var flat []TranslationRequest
	for _, b := range batches {
		flat = append(flat, b...)
	}
	if len(flat) != len(reqs) {
		t.Fatalf("Expected %d requests after concatenation, got %d", len(reqs), len(flat))
	}
	for i := range reqs {
		if flat[i].OriginalText != reqs[i].OriginalText {
			t.Errorf("Request %d reordered: got %q, want %q", i, flat[i].OriginalText, reqs[i].OriginalText)
		}
	}
}

func TestPartition_BatchSizes(t *testing.T) {
	cases := []struct {
		n     int
		size  int
		sizes []int
	}{
		{25, 10, []int{10, 10, 5}},
		{10, 10, []int{10}},
		{1, 10, []int{1}},
		{9, 3, []int{3, 3, 3}},
		{4, 1, []int{1, 1, 1, 1}},
	}

	for _, tc := range cases {
		batches := Partition(makeRequests(tc.n), tc.size)
		if len(batches) != len(tc.sizes) {
			t.Errorf("Partition(%d, %d): expected %d batches, got %d", tc.n, tc.size, len(tc.sizes), len(batches))
			continue
		}
		for i, b := range batches {
			if len(b) != tc.sizes[i] {
				t.Errorf("Partition(%d, %d): batch %d has size %d, want %d", tc.n, tc.size, i, len(b), tc.sizes[i])
			}
		}
	}
}

func TestPartition_EmptyInput(t *testing.T) {
	if batches := Partition(nil, 10); len(batches) != 0 {
		t.Errorf("Expected zero batches for empty input, got %d", len(batches))
	}
}

func TestPartition_InvalidSizeFallsBackToDefault(t *testing.T) {
	batches := Partition(makeRequests(25), 0)
	if len(batches) != 3 {
		t.Errorf("Expected default batch size %d to yield 3 batches, got %d", DefaultBatchSize, len(batches))
	}

	batches = Partition(makeRequests(25), -5)
	if len(batches) != 3 {
		t.Errorf("Expected default batch size for negative input, got %d batches", len(batches))
	}
}

func TestPartition_OrdinalsAreBatchLocal(t *testing.T) {
	batches := Partition(makeRequests(25), 10)
	for bi, b := range batches {
		for i, req := range b {
			if req.Ordinal != i {
				t.Errorf("Batch %d request %d has ordinal %d, want %d", bi, i, req.Ordinal, i)
			}
		}
	}
}
