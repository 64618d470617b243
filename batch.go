package storelingo

// DefaultBatchSize is the number of requests grouped into one upstream call.
const DefaultBatchSize = 10

// Partition splits an ordered request list into batches of at most size
// requests. Order is preserved, batches never overlap, and the last batch may
// be shorter. A size below 1 falls back to DefaultBatchSize. Each request's
// Ordinal is set to its position local to its batch, which is what response
// decoding zips against.
func Partition(reqs []TranslationRequest, size int) []Batch {
	if size < 1 {
		size = DefaultBatchSize
	}

	var batches []Batch
	for start := 0; start < len(reqs); start += size {
		end := start + size
		if end > len(reqs) {
			end = len(reqs)
		}

		batch := make(Batch, end-start)
		copy(batch, reqs[start:end])
		for i := range batch {
			batch[i].Ordinal = i
		}

		batches = append(batches, batch)
	}

	return batches
}
