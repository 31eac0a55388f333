package scheduler

import (
	"testing"

	"erp-cars-backend/internal/config"
	"erp-cars-backend/internal/jobs"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRegistersAllJobs(t *testing.T) {
	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{
			MarkOverdueContracts: "0 0 2 * * *",
			SendReturnReminders:  "0 0 9 * * *",
			SendOverdueNotices:   "0 0 10 * * *",
		},
	}
	jr := jobs.NewJobRunner(nil, nil, &jobs.Services{}, cfg)

	s := NewScheduler(jr)
	assert.True(t, s.IsRunning())
	assert.Len(t, s.cron.Entries(), 3)
}

func TestSchedulerSkipsBadSchedule(t *testing.T) {
	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{
			MarkOverdueContracts: "not a schedule",
			SendReturnReminders:  "0 0 9 * * *",
			SendOverdueNotices:   "0 0 10 * * *",
		},
	}
	jr := jobs.NewJobRunner(nil, nil, &jobs.Services{}, cfg)

	s := NewScheduler(jr)
	assert.Len(t, s.cron.Entries(), 2)
}
