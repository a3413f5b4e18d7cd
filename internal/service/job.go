package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// AnalysisBackend определяет контракт сервиса анализа видео
type AnalysisBackend interface {
	Analyze(ctx context.Context, req models.UploadRequest) (*models.AnalysisResponse, error)
}

// StageDelays - отметки времени, после которых меняется этап
type StageDelays struct {
	Stage1 time.Duration
	Stage2 time.Duration
}

// DefaultStageDelays - 20 и 40 секунд
var DefaultStageDelays = StageDelays{Stage1: 20 * time.Second, Stage2: 40 * time.Second}

// JobOutcome - итог одной отправки
type JobOutcome struct {
	Result *models.AnalysisResult
	Err    error
}

// JobSnapshot - состояние задачи для отображения
type JobSnapshot struct {
	Stage     models.Stage           `json:"stage"`
	Label     string                 `json:"label"`
	Location  string                 `json:"location,omitempty"`
	FileName  string                 `json:"file_name,omitempty"`
	StartedAt *time.Time             `json:"started_at,omitempty"`
	Result    *models.AnalysisResult `json:"result,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// JobEstimator ведет единственную задачу загрузки и оценивает ее этап по прошедшему времени,
// так как сервис анализа не присылает событий о прогрессе.
//
// Каждая отправка получает номер поколения. Таймеры и ответы предыдущих поколений
// игнорируются, поэтому после Reset старые этапы не попадают в новую задачу.
type JobEstimator struct {
	backend   AnalysisBackend
	scheduler Scheduler
	delays    StageDelays
	logger    *logrus.Logger
	now       func() time.Time

	mu         sync.Mutex
	job        models.UploadJob
	generation uint64
	// outstanding остается true, пока запрос к сервису анализа не вернулся,
	// в том числе после Reset
	outstanding bool
	timers      []Timer
	lastErr     error
}

func NewJobEstimator(backend AnalysisBackend, scheduler Scheduler, delays StageDelays, logger *logrus.Logger) *JobEstimator {
	if scheduler == nil {
		scheduler = NewWallClockScheduler()
	}
	return &JobEstimator{
		backend:   backend,
		scheduler: scheduler,
		delays:    delays,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit отправляет видео и ждет результата
func (e *JobEstimator) Submit(ctx context.Context, req models.UploadRequest) (*models.AnalysisResult, error) {
	outcome, err := e.Start(ctx, req)
	if err != nil {
		return nil, err
	}
	select {
	case out := <-outcome:
		return out.Result, out.Err
	case <-ctx.Done():
		// Запрос продолжает выполняться, его результат применится к задаче
		return nil, ctx.Err()
	}
}

// Start проверяет входные данные, переводит задачу в Submitting и отправляет
// ровно один запрос в фоне. Итог приходит в канал один раз.
func (e *JobEstimator) Start(ctx context.Context, req models.UploadRequest) (<-chan JobOutcome, error) {
	log := e.logger.WithFields(logrus.Fields{
		"service":  "job",
		"method":   "Start",
		"location": req.Location,
	})

	if req.File == nil || req.File.Content == nil {
		log.Warn("Upload rejected: no video file")
		return nil, fmt.Errorf("%w: a video file is required", ErrValidation)
	}
	location := strings.TrimSpace(req.Location)
	if location == "" {
		log.Warn("Upload rejected: empty location")
		return nil, fmt.Errorf("%w: location is required", ErrValidation)
	}
	req.Location = location

	e.mu.Lock()
	if e.job.Stage.Active() || e.outstanding {
		e.mu.Unlock()
		log.Warn("Upload rejected: previous request is still outstanding")
		return nil, ErrJobActive
	}

	e.stopTimersLocked()
	e.generation++
	gen := e.generation
	e.outstanding = true
	e.lastErr = nil
	e.job = models.UploadJob{
		Stage:     models.StageSubmitting,
		Location:  location,
		FileName:  req.File.Name,
		StartedAt: e.now(),
	}
	e.timers = []Timer{
		e.scheduler.AfterFunc(e.delays.Stage1, func() { e.advance(gen, models.StageAnalyzingStage1) }),
		e.scheduler.AfterFunc(e.delays.Stage2, func() { e.advance(gen, models.StageAnalyzingStage2) }),
	}
	e.mu.Unlock()

	log.WithField("file", req.File.Name).Info("Submitting video for analysis")

	outcome := make(chan JobOutcome, 1)
	// Отмена на середине запроса не поддерживается
	reqCtx := context.WithoutCancel(ctx)
	go func() {
		resp, err := e.backend.Analyze(reqCtx, req)
		outcome <- e.resolve(gen, resp, err)
		close(outcome)
	}()
	return outcome, nil
}

// Reset отменяет таймеры, очищает результат и возвращает задачу в Idle
func (e *JobEstimator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopTimersLocked()
	e.generation++
	e.lastErr = nil
	e.job = models.UploadJob{Stage: models.StageIdle}
}

// Snapshot возвращает копию текущего состояния
func (e *JobEstimator) Snapshot() JobSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := JobSnapshot{
		Stage:    e.job.Stage,
		Label:    e.job.Stage.Label(),
		Location: e.job.Location,
		FileName: e.job.FileName,
	}
	if !e.job.StartedAt.IsZero() {
		startedAt := e.job.StartedAt
		snap.StartedAt = &startedAt
	}
	if e.job.Result != nil {
		result := *e.job.Result
		result.Images = append([]string(nil), e.job.Result.Images...)
		snap.Result = &result
	}
	if e.lastErr != nil {
		snap.Error = e.lastErr.Error()
	}
	return snap
}

// Stage возвращает текущий этап
func (e *JobEstimator) Stage() models.Stage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.job.Stage
}

func (e *JobEstimator) advance(gen uint64, to models.Stage) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation || !e.job.Stage.Active() || e.job.Stage >= to {
		return
	}
	e.job.Stage = to
	e.logger.WithFields(logrus.Fields{
		"service": "job",
		"stage":   to.String(),
	}).Debug("Job stage advanced")
}

func (e *JobEstimator) resolve(gen uint64, resp *models.AnalysisResponse, err error) JobOutcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	log := e.logger.WithFields(logrus.Fields{
		"service": "job",
		"method":  "resolve",
	})

	e.outstanding = false

	if gen != e.generation {
		log.Info("Discarding analysis response of a superseded job")
		if err != nil {
			return JobOutcome{Err: errors.Join(ErrJobSuperseded, err)}
		}
		return JobOutcome{Err: ErrJobSuperseded}
	}
	e.stopTimersLocked()

	if err == nil && resp == nil {
		err = fmt.Errorf("%w: empty analysis response", ErrTransport)
	}
	if err == nil && resp.Error != "" {
		err = &ServerReportedError{Message: resp.Error}
	}
	if err != nil {
		log.WithError(err).Error("Video analysis failed")
		e.lastErr = err
		e.job = models.UploadJob{Stage: models.StageIdle}
		return JobOutcome{Err: err}
	}

	e.job.Stage = models.StageDone
	e.job.Result = &models.AnalysisResult{
		Report:  resp.Report,
		Summary: resp.Summary,
		Images:  append([]string(nil), resp.Images...),
	}
	log.WithField("images", len(resp.Images)).Info("Video analysis completed successfully")

	result := *e.job.Result
	result.Images = append([]string(nil), e.job.Result.Images...)
	return JobOutcome{Result: &result}
}

func (e *JobEstimator) stopTimersLocked() {
	for _, t := range e.timers {
		t.Stop()
	}
	e.timers = nil
}
