package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	tagihanModel "santriku_backend/internals/features/finance/tagihan/model"
	m "santriku_backend/internals/features/finance/transaksi/model"
)

func TestFromModelWithTagihan(t *testing.T) {
	trx := &m.TransaksiModel{
		TransaksiID:         uuid.New(),
		TransaksiTagihanID:  uuid.New(),
		TransaksiSantriID:   uuid.New(),
		TransaksiNominalIDR: 150000,
		TransaksiMetode:     m.TransaksiMetodeTransfer,
		TransaksiStatus:     m.TransaksiStatusPending,
		TransaksiCreatedAt:  time.Now(),
	}

	t.Run("Given tagihan lookup succeeded Then response nests the tagihan", func(t *testing.T) {
		tg := &tagihanModel.TagihanModel{
			TagihanID:       trx.TransaksiTagihanID,
			TagihanSantriID: trx.TransaksiSantriID,
			TagihanStatus:   tagihanModel.TagihanStatusPending,
		}
		resp := FromModelWithTagihan(trx, tg)
		if resp.Tagihan == nil {
			t.Fatal("expected nested tagihan")
		}
		if resp.Tagihan.TagihanID != tg.TagihanID {
			t.Errorf("nested tagihan id mismatch: %s", resp.Tagihan.TagihanID)
		}
	})

	t.Run("Given tagihan lookup failed Then response omits the nested tagihan entirely", func(t *testing.T) {
		resp := FromModelWithTagihan(trx, nil)
		if resp.Tagihan != nil {
			t.Fatal("nil lookup must not produce a zero-valued nested tagihan")
		}
		raw, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.Contains(string(raw), `"tagihan"`) {
			t.Errorf("serialized response must drop the tagihan key, got %s", raw)
		}
	})
}
