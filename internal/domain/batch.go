package domain

import "time"

// Outcome é o resultado do processamento de um registro
type Outcome string

const (
	OutcomeInserted Outcome = "inserted"
	OutcomeUpdated  Outcome = "updated"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeFailed   Outcome = "failed"
)

type RecordFailure struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// BatchReport resume uma passada completa sobre as linhas de uma fonte
type BatchReport struct {
	ID            string          `json:"id"`
	Source        Source          `json:"source"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    time.Time       `json:"finished_at"`
	Rows          int             `json:"rows"`
	Inserted      int             `json:"inserted"`
	Updated       int             `json:"updated"`
	Skipped       int             `json:"skipped"`
	Failed        int             `json:"failed"`
	ParseErrors   int             `json:"parse_errors"`
	Interrupted   bool            `json:"interrupted"`
	Failures      []RecordFailure `json:"failures,omitempty"`
	FinalizeError string          `json:"finalize_error,omitempty"`
}

func NewBatchReport(id string, source Source) *BatchReport {
	return &BatchReport{
		ID:        id,
		Source:    source,
		StartedAt: time.Now(),
		Failures:  []RecordFailure{},
	}
}

// Count contabiliza o resultado de um registro
func (r *BatchReport) Count(outcome Outcome) {
	switch outcome {
	case OutcomeInserted:
		r.Inserted++
	case OutcomeUpdated:
		r.Updated++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
}

// Fail registra a falha de um registro com o motivo
func (r *BatchReport) Fail(key string, err error) {
	r.Failed++
	r.Failures = append(r.Failures, RecordFailure{Key: key, Reason: err.Error()})
}

func (r *BatchReport) Processed() int {
	return r.Inserted + r.Updated + r.Skipped + r.Failed
}

func (r *BatchReport) Finish() {
	r.FinishedAt = time.Now()
}

func (r *BatchReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
