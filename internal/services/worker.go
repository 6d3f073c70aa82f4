package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/repositories"
)

// Worker processes queued AI baseline jobs in the background so vendor
// registration returns immediately.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(vendorID uuid.UUID)
}

type worker struct {
	vendorRepo      repositories.VendorRepository
	baselineService BaselineService
	jobQueue        chan uuid.UUID
	concurrency     int
	wg              sync.WaitGroup
	stopChan        chan struct{}
}

func NewWorker(
	vendorRepo repositories.VendorRepository,
	baselineService BaselineService,
	concurrency int,
) Worker {
	return &worker{
		vendorRepo:      vendorRepo,
		baselineService: baselineService,
		jobQueue:        make(chan uuid.UUID, 100),
		concurrency:     concurrency,
		stopChan:        make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	// Start worker goroutines
	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Start polling for pending jobs
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(vendorID uuid.UUID) {
	select {
	case w.jobQueue <- vendorID:
		log.Printf("📥 Baseline job %s enqueued\n", vendorID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue job %s\n", vendorID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Worker %d started processing jobs\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case vendorID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing baseline for vendor %s\n", workerID, vendorID)
			if err := w.baselineService.GenerateBaseline(ctx, vendorID); err != nil {
				log.Printf("❌ Worker #%d failed to process baseline for %s: %v\n", workerID, vendorID, err)
			} else {
				log.Printf("✅ Worker #%d completed baseline for %s\n", workerID, vendorID)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	log.Println("🔄 Starting pending baseline poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending baseline poller stopped")
			return
		case <-ticker.C:
			pending, err := w.vendorRepo.FindPendingBaselines(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending baselines: %v\n", err)
				continue
			}

			if len(pending) > 0 {
				log.Printf("📋 Found %d pending baseline jobs\n", len(pending))
			}

			for _, vendor := range pending {
				w.EnqueueJob(vendor.ID)
			}
		}
	}
}
