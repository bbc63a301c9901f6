package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"santriku_backend/internals/features/finance/tagihan/model"
)

// StartOverdueScheduler menandai tagihan pending yang lewat jatuh tempo jadi overdue.
// Proyeksi 'overdue' hanya milik sweep ini; reconciliation core tidak pernah menyetelnya.
func StartOverdueScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@daily", func() {
		SweepOverdue(db)
	})
	if err != nil {
		log.Printf("[SCHEDULER ERROR] Gagal daftar job overdue: %v", err)
		return c
	}

	c.Start()
	log.Println("[SCHEDULER] Overdue sweep terdaftar (@daily)")
	return c
}

func SweepOverdue(db *gorm.DB) {
	today := time.Now().Truncate(24 * time.Hour)

	res := db.Model(&model.TagihanModel{}).
		Where("tagihan_status = ? AND tagihan_jatuh_tempo < ?", model.TagihanStatusPending, today).
		Update("tagihan_status", model.TagihanStatusOverdue)
	if res.Error != nil {
		log.Printf("[SCHEDULER ERROR] Sweep overdue gagal: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[SCHEDULER] %d tagihan ditandai overdue", res.RowsAffected)
	}
}
