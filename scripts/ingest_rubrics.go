package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"alfredoptarigan/tender-evaluator/internal/config"
	"alfredoptarigan/tender-evaluator/internal/services"
)

func main() {
	log.Println("🚀 Starting rubric ingestion...")

	// Load configuration
	cfg := config.Load()

	// Initialize services
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	chunker := services.NewTextChunker()

	ctx := context.Background()

	rubrics := []struct {
		Path       string
		RubricType string
		Name       string
	}{
		{
			Path:       "./reference_docs/technical_evaluation_rubric.pdf",
			RubricType: "technical_rubric",
			Name:       "Technical Evaluation Rubric",
		},
		{
			Path:       "./reference_docs/commercial_evaluation_guidelines.pdf",
			RubricType: "commercial_rubric",
			Name:       "Commercial Evaluation Guidelines",
		},
		{
			Path:       "./reference_docs/tender_document_checklist.pdf",
			RubricType: "document_checklist",
			Name:       "Tender Document Checklist",
		},
	}

	successCount := 0
	failCount := 0

	for _, rubric := range rubrics {
		log.Printf("\n📄 Processing: %s", rubric.Name)
		log.Printf("   Path: %s", rubric.Path)
		log.Printf("   Type: %s", rubric.RubricType)

		// Check if file exists
		if _, err := os.Stat(rubric.Path); os.IsNotExist(err) {
			log.Printf("   ⚠️  File not found, skipping...")
			failCount++
			continue
		}

		// Extract text from PDF
		log.Printf("   📖 Extracting text...")
		content, err := pdfParser.ExtractProposalText(rubric.Path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Extracted %d pages, %d characters", content.PageCount, len(content.Text))

		// Chunk the text
		log.Printf("   ✂️  Chunking text...")
		chunks := chunker.ChunkText(content.Text, 1000, 200)
		log.Printf("   ✅ Created %d chunks", len(chunks))

		// Embed and store each chunk
		log.Printf("   🔄 Embedding and storing chunks...")
		for i, chunk := range chunks {
			embedding, err := geminiService.GenerateEmbedding(ctx, chunk)
			if err != nil {
				log.Printf("   ❌ Failed to generate embedding for chunk %d: %v", i+1, err)
				continue
			}

			rubricID := fmt.Sprintf("%s_chunk_%d", rubric.RubricType, i)

			err = qdrantService.UpsertRubric(ctx, rubricID, rubric.RubricType, chunk, embedding)
			if err != nil {
				log.Printf("   ❌ Failed to store chunk %d: %v", i+1, err)
				continue
			}

			if (i+1)%5 == 0 || i == len(chunks)-1 {
				log.Printf("   📊 Progress: %d/%d chunks stored", i+1, len(chunks))
			}
		}

		log.Printf("   ✅ Successfully ingested %s", rubric.Name)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d rubrics", successCount)
	log.Printf("   ❌ Failed: %d rubrics", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some rubrics failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All rubrics ingested successfully!")
}
