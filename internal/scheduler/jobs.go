package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownJob = errors.New("job desconhecido")

// Job é a interface comum dos agendadores expostos na API
type Job interface {
	Start(ctx context.Context) error
	TriggerManualSync()
	GetStatus() map[string]any
}

// Jobs indexa os agendadores pelo nome usado nas rotas (ml, magalu, stock, daily-report)
type Jobs map[string]Job

func (j Jobs) Names() []string {
	names := make([]string, 0, len(j))
	for name := range j {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StartAll inicia todos os agendadores, parando no primeiro erro
func (j Jobs) StartAll(ctx context.Context) error {
	for _, name := range j.Names() {
		if err := j[name].Start(ctx); err != nil {
			return fmt.Errorf("erro ao iniciar agendador %s: %w", name, err)
		}
	}
	return nil
}

// Trigger dispara um job pelo nome; "all" dispara as sincronizações de planilha
func (j Jobs) Trigger(name string) ([]string, error) {
	if name == "all" {
		triggered := make([]string, 0, len(j))
		for _, n := range j.Names() {
			if _, ok := j[n].(*DailyReportService); ok {
				continue
			}
			j[n].TriggerManualSync()
			triggered = append(triggered, n)
		}
		return triggered, nil
	}

	job, ok := j[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	job.TriggerManualSync()
	return []string{name}, nil
}

func (j Jobs) Status() map[string]any {
	status := make(map[string]any, len(j))
	for name, job := range j {
		status[name] = job.GetStatus()
	}
	return status
}
