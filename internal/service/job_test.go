package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/shenikar/siren_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// manualScheduler запоминает отложенные вызовы и запускает их по команде теста
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{delay: d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// fire вызывает i-й таймер, даже если он остановлен, как при гонке Stop и срабатывания
func (s *manualScheduler) fire(i int) {
	s.mu.Lock()
	t := s.timers[i]
	s.mu.Unlock()
	t.fn()
}

func (s *manualScheduler) timer(i int) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers[i]
}

func (s *manualScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// newTestJobEstimator - вспомогательная функция для создания оценщика с моком сервиса анализа
func newTestJobEstimator(t *testing.T) (*JobEstimator, *mocks.MockAnalysisBackend, *manualScheduler) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockAnalysisBackend(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	scheduler := &manualScheduler{}
	return NewJobEstimator(backend, scheduler, DefaultStageDelays, logger), backend, scheduler
}

func validUpload(location string) models.UploadRequest {
	return models.UploadRequest{
		File:     &models.VideoFile{Name: "cctv.mp4", Content: strings.NewReader("video-bytes")},
		Location: location,
	}
}

func TestJobSubmit_Success(t *testing.T) {
	estimator, backend, scheduler := newTestJobEstimator(t)

	backend.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UploadRequest) (*models.AnalysisResponse, error) {
			assert.Equal(t, "Anna Nagar", req.Location)
			return &models.AnalysisResponse{
				Report:  "two vehicles",
				Summary: "minor collision",
				Images:  []string{"http://engine/static/frame1.jpg"},
			}, nil
		}).Times(1)

	result, err := estimator.Submit(context.Background(), validUpload("  Anna Nagar "))

	require.NoError(t, err)
	assert.Equal(t, "two vehicles", result.Report)
	assert.Equal(t, []string{"http://engine/static/frame1.jpg"}, result.Images)

	snap := estimator.Snapshot()
	assert.Equal(t, models.StageDone, snap.Stage)
	assert.Equal(t, "Analysis complete", snap.Label)
	require.NotNil(t, snap.Result)
	assert.Equal(t, "minor collision", snap.Result.Summary)

	// Оба таймера этапов запланированы на 20 и 40 секунд и отменены после ответа
	require.Equal(t, 2, scheduler.count())
	assert.Equal(t, 20*time.Second, scheduler.timer(0).delay)
	assert.Equal(t, 40*time.Second, scheduler.timer(1).delay)
	assert.True(t, scheduler.timer(0).stopped)
	assert.True(t, scheduler.timer(1).stopped)
}

func TestJobSubmit_EmptyLocation(t *testing.T) {
	estimator, backend, scheduler := newTestJobEstimator(t)

	backend.EXPECT().Analyze(gomock.Any(), gomock.Any()).Times(0) // Запрос не должен отправляться

	result, err := estimator.Submit(context.Background(), validUpload("   "))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, result)
	assert.Equal(t, models.StageIdle, estimator.Stage())
	assert.Equal(t, 0, scheduler.count())
}

func TestJobSubmit_MissingFile(t *testing.T) {
	estimator, backend, _ := newTestJobEstimator(t)

	backend.EXPECT().Analyze(gomock.Any(), gomock.Any()).Times(0)

	_, err := estimator.Submit(context.Background(), models.UploadRequest{Location: "Guindy"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = estimator.Submit(context.Background(), models.UploadRequest{File: &models.VideoFile{Name: "empty.mp4"}, Location: "Guindy"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, models.StageIdle, estimator.Stage())
}

func TestJobSubmit_ServerReportedError(t *testing.T) {
	estimator, backend, scheduler := newTestJobEstimator(t)

	backend.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		Return(&models.AnalysisResponse{Error: "corrupt file"}, nil).
		Times(1)

	result, err := estimator.Submit(context.Background(), validUpload("Adyar"))

	require.Error(t, err)
	var reported *ServerReportedError
	require.True(t, errors.As(err, &reported))
	assert.Equal(t, "corrupt file", reported.Message)
	assert.Nil(t, result)

	snap := estimator.Snapshot()
	assert.Equal(t, models.StageIdle, snap.Stage)
	assert.Nil(t, snap.Result)
	assert.Contains(t, snap.Error, "corrupt file")
	assert.True(t, scheduler.timer(0).stopped)
	assert.True(t, scheduler.timer(1).stopped)
}

func TestJobSubmit_TransportError(t *testing.T) {
	estimator, backend, _ := newTestJobEstimator(t)

	backend.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		Return(nil, ErrTransport).
		Times(1)

	_, err := estimator.Submit(context.Background(), validUpload("Adyar"))

	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, models.StageIdle, estimator.Stage())
}

func TestJobStart_StagesAdvanceWhileOutstanding(t *testing.T) {
	estimator, backend, scheduler := newTestJobEstimator(t)
	release := make(chan struct{})

	backend.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.UploadRequest) (*models.AnalysisResponse, error) {
			<-release
			return &models.AnalysisResponse{Report: "r", Summary: "s"}, nil
		}).Times(1)

	outcome, err := estimator.Start(context.Background(), validUpload("T. Nagar"))
	require.NoError(t, err)
	assert.Equal(t, models.StageSubmitting, estimator.Stage())
	assert.Equal(t, "Detecting accidents...", estimator.Snapshot().Label)

	scheduler.fire(0)
	assert.Equal(t, models.StageAnalyzingStage1, estimator.Stage())
	assert.Equal(t, "Analyzing severity...", estimator.Snapshot().Label)

	scheduler.fire(1)
	assert.Equal(t, models.StageAnalyzingStage2, estimator.Stage())
	assert.Equal(t, "Generating detailed report...", estimator.Snapshot().Label)

	// Запоздавший первый таймер не откатывает этап назад
	scheduler.fire(0)
	assert.Equal(t, models.StageAnalyzingStage2, estimator.Stage())

	close(release)
	out := <-outcome
	require.NoError(t, out.Err)
	assert.Equal(t, models.StageDone, estimator.Stage())
}

func TestJobStart_SecondSubmitWhileOutstanding(t *testing.T) {
	estimator, backend, _ := newTestJobEstimator(t)
	release := make(chan struct{})

	backend.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.UploadRequest) (*models.AnalysisResponse, error) {
			<-release
			return &models.AnalysisResponse{Report: "r"}, nil
		}).Times(1) // Ровно один запрос

	outcome, err := estimator.Start(context.Background(), validUpload("Velachery"))
	require.NoError(t, err)

	_, err = estimator.Start(context.Background(), validUpload("Velachery"))
	assert.ErrorIs(t, err, ErrJobActive)

	close(release)
	out := <-outcome
	require.NoError(t, out.Err)
}

func TestJobReset_NoStaleTimerAfterReset(t *testing.T) {
	estimator, backend, scheduler := newTestJobEstimator(t)
	release := make(chan struct{})

	gomock.InOrder(
		backend.EXPECT().
			Analyze(gomock.Any(), gomock.Any()).
			Return(&models.AnalysisResponse{Report: "first"}, nil),
		backend.EXPECT().
			Analyze(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, models.UploadRequest) (*models.AnalysisResponse, error) {
				<-release
				return &models.AnalysisResponse{Report: "second"}, nil
			}),
	)

	_, err := estimator.Submit(context.Background(), validUpload("Tambaram"))
	require.NoError(t, err)
	require.Equal(t, models.StageDone, estimator.Stage())

	estimator.Reset()
	snap := estimator.Snapshot()
	assert.Equal(t, models.StageIdle, snap.Stage)
	assert.Nil(t, snap.Result)

	outcome, err := estimator.Start(context.Background(), validUpload("Tambaram"))
	require.NoError(t, err)
	require.Equal(t, 4, scheduler.count())

	// Таймеры первой задачи срабатывают поздно и не должны влиять на вторую
	scheduler.fire(0)
	scheduler.fire(1)
	assert.Equal(t, models.StageSubmitting, estimator.Stage())

	scheduler.fire(2)
	assert.Equal(t, models.StageAnalyzingStage1, estimator.Stage())

	close(release)
	out := <-outcome
	require.NoError(t, out.Err)
	assert.Equal(t, "second", out.Result.Report)
}

func TestJobReset_WhileOutstandingDiscardsResponse(t *testing.T) {
	estimator, backend, scheduler := newTestJobEstimator(t)
	release := make(chan struct{})

	backend.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.UploadRequest) (*models.AnalysisResponse, error) {
			<-release
			return &models.AnalysisResponse{Report: "late"}, nil
		}).Times(1)

	outcome, err := estimator.Start(context.Background(), validUpload("Egmore"))
	require.NoError(t, err)

	estimator.Reset()
	assert.True(t, scheduler.timer(0).stopped)
	assert.True(t, scheduler.timer(1).stopped)

	close(release)
	out := <-outcome
	assert.ErrorIs(t, out.Err, ErrJobSuperseded)

	snap := estimator.Snapshot()
	assert.Equal(t, models.StageIdle, snap.Stage)
	assert.Nil(t, snap.Result)
}

func TestJobStart_ResetDoesNotAllowSecondRequest(t *testing.T) {
	estimator, backend, _ := newTestJobEstimator(t)
	release := make(chan struct{})
	var (
		mu       sync.Mutex
		inFlight int
		peak     int
	)

	backend.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.UploadRequest) (*models.AnalysisResponse, error) {
			mu.Lock()
			inFlight++
			peak = max(peak, inFlight)
			mu.Unlock()

			<-release

			mu.Lock()
			inFlight--
			mu.Unlock()
			return &models.AnalysisResponse{Report: "r"}, nil
		}).Times(2)

	first, err := estimator.Start(context.Background(), validUpload("Porur"))
	require.NoError(t, err)

	// Сброс не отменяет запрос, новая отправка ждет его завершения
	for i := 0; i < 5; i++ {
		estimator.Reset()
		assert.Equal(t, models.StageIdle, estimator.Stage())

		_, err = estimator.Start(context.Background(), validUpload("Porur"))
		assert.ErrorIs(t, err, ErrJobActive)
	}

	close(release)
	out := <-first
	assert.ErrorIs(t, out.Err, ErrJobSuperseded)

	second, err := estimator.Start(context.Background(), validUpload("Porur"))
	require.NoError(t, err)
	out = <-second
	require.NoError(t, out.Err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, peak)
}

func TestJobStart_CallerCancellationDoesNotAbortRequest(t *testing.T) {
	estimator, backend, _ := newTestJobEstimator(t)

	backend.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.UploadRequest) (*models.AnalysisResponse, error) {
			assert.NoError(t, ctx.Err())
			return &models.AnalysisResponse{Report: "ok"}, nil
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := estimator.Start(ctx, validUpload("Mylapore"))
	require.NoError(t, err)
	out := <-outcome
	require.NoError(t, out.Err)
}
