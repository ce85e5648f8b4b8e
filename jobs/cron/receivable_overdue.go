package cron

import (
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/models"
	"github.com/varejotech/caixa/types"
)

type ReceivableOverdueJob struct {
}

func (j *ReceivableOverdueJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:00:00").Do(flagOverdueReceivables)
	<-s.Start()
}

// flagOverdueReceivables moves open receivables past their due date into
// pending_write_off, so they show up in the write-off queue.
func flagOverdueReceivables() {
	today := time.Now().Format("2006-01-02")

	var receivables []*models.Receivable

	config.DataBase.
		Where("status = ? AND due_date < ?", types.ReceivableOpen, today).
		Find(&receivables)

	for _, receivable := range receivables {
		if err := receivable.TransitionTo(types.ReceivablePendingWriteOff); err != nil {
			config.Logger.Errorf("overdue sweep: receivable %d: %v", receivable.ID, err)
			continue
		}
	}

	if len(receivables) > 0 {
		config.Logger.Infof("overdue sweep flagged %d receivables", len(receivables))
	}
}
