package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	"github.com/annotation-microservice/internal/domain/repository"
	"github.com/annotation-microservice/internal/usecase"
)

// Worker keeps the cached statistics warm: every collection change event on
// the annotation stream triggers a recompute.
type Worker struct {
	streamRepo repository.StreamRepository
	statsUC    *usecase.StatsUseCase
	group      string
	consumer   string
	logger     *zap.Logger
}

func NewWorker(
	streamRepo repository.StreamRepository,
	statsUC *usecase.StatsUseCase,
	group string,
	logger *zap.Logger,
) *Worker {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "stats-worker"
	}

	return &Worker{
		streamRepo: streamRepo,
		statsUC:    statsUC,
		group:      group,
		consumer:   fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		logger:     logger,
	}
}

func (w *Worker) Name() string {
	return "stats-refresh"
}

func (w *Worker) Start(ctx context.Context) error {
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.AnnotationEventStream, w.group); err != nil {
		return err
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.AnnotationEventStream, w.group, w.consumer)
	if err != nil {
		return err
	}

	w.logger.Info("Stats worker consuming change events",
		zap.String("stream", domain.AnnotationEventStream),
		zap.String("group", w.group),
		zap.String("consumer", w.consumer))

	for msg := range msgChan {
		w.handle(ctx, msg)
	}

	return nil
}

func (w *Worker) Stop() error {
	return nil
}

func (w *Worker) handle(ctx context.Context, msg domain.StreamMessage) {
	var event domain.ChangeEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		w.logger.Warn("Skipping undecodable change event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Ack anyway: redelivery cannot fix a malformed payload.
		_ = w.streamRepo.AckMessage(ctx, domain.AnnotationEventStream, w.group, msg.ID)
		return
	}

	w.logger.Debug("Collection changed",
		zap.String("collection", event.Collection),
		zap.Int("records", event.Records),
		zap.String("actor", event.Actor))

	if err := w.statsUC.Refresh(ctx); err != nil {
		// Leave the message pending so a healthy consumer retries it.
		w.logger.Error("Failed to refresh statistics", zap.Error(err))
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.AnnotationEventStream, w.group, msg.ID); err != nil {
		w.logger.Error("Failed to ack change event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}
