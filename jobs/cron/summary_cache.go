package cron

import (
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/models"
	"github.com/varejotech/caixa/services/summary_service"
)

type SummaryCacheJob struct {
}

func (j *SummaryCacheJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Hour().Do(warmSummaryCaches)
	<-s.Start()
}

// warmSummaryCaches precomputes the trailing-year summary for every active
// store so the summary endpoint serves from redis.
func warmSummaryCaches() {
	var stores []*models.Store

	config.DataBase.Where("active = ?", true).Find(&stores)

	from, to := summary_service.DefaultWindow(time.Now())

	for _, store := range stores {
		summaries := summary_service.Compute(store.ID, from, to)

		if err := config.Redis.SetKey(summary_service.CacheKey(store.ID), summaries, summary_service.CacheTTL); err != nil {
			config.Logger.Errorf("summary warm: store %d: %v", store.ID, err)
		}
	}

	config.Logger.Infof("summary cache warmed for %d stores", len(stores))
}
