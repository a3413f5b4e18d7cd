package models

import (
	"io"
	"time"
)

// Stage - этап обработки видео, показываемый оператору
type Stage int

const (
	StageIdle Stage = iota
	StageSubmitting
	StageAnalyzingStage1
	StageAnalyzingStage2
	StageDone
	StageFailed
)

var stageNames = map[Stage]string{
	StageIdle:            "idle",
	StageSubmitting:      "submitting",
	StageAnalyzingStage1: "analyzing_stage1",
	StageAnalyzingStage2: "analyzing_stage2",
	StageDone:            "done",
	StageFailed:          "failed",
}

var stageLabels = map[Stage]string{
	StageSubmitting:      "Detecting accidents...",
	StageAnalyzingStage1: "Analyzing severity...",
	StageAnalyzingStage2: "Generating detailed report...",
	StageDone:            "Analysis complete",
	StageFailed:          "Analysis failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Label возвращает текст для оператора
func (s Stage) Label() string {
	return stageLabels[s]
}

// Active - запрос на анализ еще выполняется
func (s Stage) Active() bool {
	return s == StageSubmitting || s == StageAnalyzingStage1 || s == StageAnalyzingStage2
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// VideoFile - загружаемый видеофайл
type VideoFile struct {
	Name    string
	Content io.Reader
}

// Coordinates - координаты места съемки
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// UploadRequest - параметры отправки видео на анализ
type UploadRequest struct {
	File        *VideoFile
	Location    string
	Coordinates *Coordinates
}

// AnalysisResult - результат анализа видео
type AnalysisResult struct {
	Report  string   `json:"report"`
	Summary string   `json:"summary"`
	Images  []string `json:"images"`
}

// AnalysisResponse - ответ сервиса анализа как он есть
type AnalysisResponse struct {
	Error   string
	Report  string
	Summary string
	Images  []string
}

// UploadJob - единственная задача загрузки в рамках сессии
type UploadJob struct {
	Stage     Stage
	Location  string
	FileName  string
	Result    *AnalysisResult
	StartedAt time.Time
}
