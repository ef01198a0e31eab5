package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"detailhq/config"
	"detailhq/models"
	"detailhq/services/vision"
)

const TypeAnalysisRun = "analysis:run"

// AnalysisTaskPayload carries one queued photo-analysis request.
type AnalysisTaskPayload struct {
	AnalysisID string               `json:"analysisId"`
	Photos     []models.PhotoUpload `json:"photos"`
}

// NewAnalysisTask builds the asynq task for a queued analysis.
func NewAnalysisTask(analysisID string, photos []models.PhotoUpload) (*asynq.Task, error) {
	payload, err := json.Marshal(AnalysisTaskPayload{AnalysisID: analysisID, Photos: photos})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAnalysisRun, payload, asynq.MaxRetry(2), asynq.Timeout(5*time.Minute)), nil
}

// NewAnalysisQueueClient returns the asynq client used to enqueue analyses.
func NewAnalysisQueueClient() *asynq.Client {
	return asynq.NewClient(analysisRedisOpts())
}

func analysisRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAnalysisQueueDB,
	}
}

// InitAnalysisWorker runs the async analysis worker in background.
func InitAnalysisWorker(agg *vision.Aggregator, cache *vision.SummaryCache, logger *zap.Logger) {
	srv := asynq.NewServer(
		analysisRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAnalysisRun, handleAnalysisTask(agg, cache, logger))

	// Start async worker with retry logic
	go func() {
		log.Println("[AnalysisWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AnalysisWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AnalysisWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAnalysisTask(agg *vision.Aggregator, cache *vision.SummaryCache, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload AnalysisTaskPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Error("analysis task has malformed payload", zap.Error(err))
			return err
		}

		photos := make([]models.PhotoInput, 0, len(payload.Photos))
		for _, upload := range payload.Photos {
			photo, err := upload.Decode()
			if err != nil {
				logger.Error("analysis task has undecodable photo",
					zap.String("analysisID", payload.AnalysisID),
					zap.Error(err),
				)
				return err
			}
			photos = append(photos, photo)
		}

		summary, err := agg.Aggregate(ctx, photos)
		if err != nil {
			logger.Error("queued analysis failed",
				zap.String("analysisID", payload.AnalysisID),
				zap.Error(err),
			)
			return err
		}

		if err := cache.Put(ctx, payload.AnalysisID, summary); err != nil {
			logger.Error("failed to store analysis summary",
				zap.String("analysisID", payload.AnalysisID),
				zap.Error(err),
			)
			return err
		}

		logger.Info("queued analysis completed",
			zap.String("analysisID", payload.AnalysisID),
			zap.String("condition", string(summary.OverallCondition)),
			zap.Int("photosFailed", summary.PhotosFailed),
		)
		return nil
	}
}
