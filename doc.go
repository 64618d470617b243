// Package storelingo translates e-commerce store content (products,
// collections, pages, and third-party widget text) into a target language
// through an AI model, while minimizing model calls and respecting the rate
// limits of both the store admin API and the translation API.
//
// The core is the batching pipeline: extracted text fragments are partitioned
// into fixed-size batches, each batch is serialized into one delimited prompt,
// the model's free-text response is decoded back onto the batch by position,
// and token usage is accumulated. A batch that fails upstream degrades to
// echoing its source text instead of aborting the job.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/storelingo/storelingo"
//	    "github.com/storelingo/storelingo/provider"
//	)
//
//	func main() {
//	    client := provider.NewOpenAIClient(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    orch := storelingo.NewOrchestrator(client)
//
//	    reqs := storelingo.ExtractProduct(product, storelingo.FieldSelection{
//	        "title":       true,
//	        "description": true,
//	    })
//
//	    results, err := orch.TranslateBatch(context.Background(), reqs, "es_ES", storelingo.ContextProduct)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    storelingo.ApplyProductResults(&product, results)
//	}
package storelingo
